// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/acc8/cpu"
)

// Disassemble decodes a memory image into assembler source, yielding the
// address and text of each instruction. Bytes that do not start a complete
// instruction are yielded as byte directives. Reassembling the yielded text
// reproduces the image.
func Disassemble(image []byte) iter.Seq2[int, string] {
	return func(yield func(addr int, text string) bool) {
		for addr := 0; addr < len(image); {
			def, ok := cpu.Decode(image[addr])
			if !ok || addr+def.Len() > len(image) {
				if !yield(addr, fmt.Sprintf(".byte $%02X", image[addr])) {
					return
				}
				addr++
				continue
			}

			words := make([]string, len(def.Operands))
			for n, kind := range def.Operands {
				value := image[addr+1+n]
				if kind == cpu.OPERAND_ADDRESS {
					words[n] = fmt.Sprintf("[$%02X]", value)
				} else {
					words[n] = fmt.Sprintf("$%02X", value)
				}
			}

			text := def.Mnemonic
			if len(words) != 0 {
				text += " " + strings.Join(words, ", ")
			}

			if !yield(addr, text) {
				return
			}
			addr += def.Len()
		}
	}
}
