// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// Span is a half-open byte range [Lo, Hi) in a line of source text.
type Span struct {
	Lo int // Start of the span, inclusive.
	Hi int // End of the span, exclusive.
}

// NewSpan creates a span. hi is clamped so the span is never negative.
func NewSpan(lo, hi int) Span {
	if hi < lo {
		hi = lo
	}
	return Span{Lo: lo, Hi: hi}
}

// Len returns how many bytes the span covers.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// Shift returns the span moved by offset bytes.
func (s Span) Shift(offset int) Span {
	return Span{Lo: s.Lo + offset, Hi: s.Hi + offset}
}

// Spanned pairs a value with the span it was read from.
type Spanned[T any] struct {
	Data T
	Span Span
}

// String renders the value followed by its span.
func (s Spanned[T]) String() string {
	return fmt.Sprintf("%v @ %d..%d", s.Data, s.Span.Lo, s.Span.Hi)
}
