// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package io provides the I/O channels of the acc8 emulator: the Rom that
// holds the program image loaded at reset, and the Tape that receives the
// text written by print instructions.
package io

// Channel defines the interface for all I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
}
