// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"

	"github.com/ezrec/acc8/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrParse    = errors.New(f("failed to parse source"))
	ErrAssemble = errors.New(f("failed to assemble program"))
)
