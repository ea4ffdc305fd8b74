// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrImageSize = errors.New(f("image too large"))
	ErrOutput    = errors.New(f("print output failed"))
)

// ErrOpcode is the fatal fault raised when the byte at pc is not an opcode.
type ErrOpcode struct {
	Opcode byte
	Pc     uint8
}

func (eo ErrOpcode) Error() string {
	return f("unknown instruction 0x%02x in position 0x%02x", eo.Opcode, eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrImage reports the size of a rejected program image.
type ErrImage int

func (ei ErrImage) Error() string {
	return f("image is %d bytes, memory holds %d", int(ei), MEMORY_SIZE)
}

func (ei ErrImage) Unwrap() error {
	return ErrImageSize
}
