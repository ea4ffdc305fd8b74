// Package cpu implements the instruction set and virtual machine for the
// acc8 system.
//
// The machine consists of an 8-bit program counter (pc), a single 8-bit
// accumulator (acc) and a flat 256 byte memory. All arithmetic and all
// addressing wraps modulo 256. The opcode table in this package is the only
// definition of the instruction set; the assembler and disassembler decode
// through it as well.
package cpu
