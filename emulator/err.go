// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     uint8
	LineNo int // 1-based source line, or 0 when no program listing is known.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("pc 0x%02x %v", err.Pc, err.Err)
	}
	return f("line %d pc 0x%02x %v", err.LineNo, err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrCheck reports a failed check script.
type ErrCheck struct {
	Name string
	Err  error
}

func (err *ErrCheck) Error() string {
	return f("check %v: %v", err.Name, err.Err)
}

func (err *ErrCheck) Unwrap() error {
	return err.Err
}
