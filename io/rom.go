// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"io"
	"os"

	"github.com/ezrec/acc8/cpu"
)

// Rom holds the program image copied into memory at reset.
type Rom struct {
	Data []byte
}

var _ Channel = (*Rom)(nil)

// Rewind does nothing; a rom is read only.
func (rc *Rom) Rewind() {
}

// Load reads a raw image of at most cpu.MEMORY_SIZE bytes.
func (rc *Rom) Load(input io.Reader) (err error) {
	data, err := io.ReadAll(io.LimitReader(input, cpu.MEMORY_SIZE+1))
	if err != nil {
		return
	}

	if len(data) > cpu.MEMORY_SIZE {
		err = ErrRomSize
		return
	}

	rc.Data = data
	return
}

// LoadFile reads a raw image from a file.
func (rc *Rom) LoadFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return rc.Load(inf)
}
