// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bytes"
	"io"
)

// Tape receives the text written by print instructions. Everything written
// since the last rewind is kept, and forwarded to Output when it is set.
type Tape struct {
	Output io.Writer

	written bytes.Buffer
}

var _ Channel = (*Tape)(nil)
var _ io.Writer = (*Tape)(nil)

// Rewind forgets everything written so far.
func (tc *Tape) Rewind() {
	tc.written.Reset()
}

// Write forwards data to Output, and records what was written.
func (tc *Tape) Write(data []byte) (n int, err error) {
	n = len(data)
	if tc.Output != nil {
		n, err = tc.Output.Write(data)
	}

	tc.written.Write(data[:n])

	return
}

// Text returns everything written since the last rewind.
func (tc *Tape) Text() string {
	return tc.written.String()
}
