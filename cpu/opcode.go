// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
)

// Opcode is the byte that selects an instruction.
type Opcode uint8

const (
	// 0x0_
	OP_NOP = Opcode(0x00) // nop

	// 0x1_ data transfer
	OP_LD  = Opcode(0x10) // ld
	OP_LDI = Opcode(0x11) // ldi
	OP_ST  = Opcode(0x12) // st
	OP_STI = Opcode(0x13) // sti
	OP_MOV = Opcode(0x14) // mov

	// 0x2_ control flow
	OP_JMP = Opcode(0x20) // jmp
	OP_JZ  = Opcode(0x21) // jz

	// 0x3_ arithmetic
	OP_ADD  = Opcode(0x30) // add
	OP_ADDI = Opcode(0x31) // addi
	OP_SUB  = Opcode(0x32) // sub
	OP_SUBI = Opcode(0x33) // subi
	OP_SHR  = Opcode(0x34) // shr
	OP_SHL  = Opcode(0x35) // shl
	OP_AND  = Opcode(0x36) // and
	OP_ANDI = Opcode(0x37) // andi

	// 0x4_
	OP_PRINT = Opcode(0x40) // print

	// 0x5_
	OP_STOP = Opcode(0x50) // stop
)

// Operand is the kind of an operand byte following an opcode.
type Operand int

const (
	OPERAND_VALUE   = Operand(0) // An immediate value.
	OPERAND_ADDRESS = Operand(1) // A memory address.
)

// String returns the operand kind name.
func (o Operand) String() string {
	if o == OPERAND_ADDRESS {
		return "address"
	}
	return "value"
}

// Definition describes a single opcode of the instruction set.
type Definition struct {
	Opcode   Opcode
	Mnemonic string
	Operands []Operand
}

// Len returns the number of bytes an instruction with this definition occupies.
func (def Definition) Len() int {
	return 1 + len(def.Operands)
}

// definitions is the instruction set. The assembler, disassembler and
// machine all decode through this table.
var definitions = []Definition{
	{OP_NOP, "nop", nil},
	{OP_LD, "ld", []Operand{OPERAND_ADDRESS}},
	{OP_LDI, "ldi", []Operand{OPERAND_VALUE}},
	{OP_ST, "st", []Operand{OPERAND_ADDRESS}},
	{OP_STI, "sti", []Operand{OPERAND_VALUE, OPERAND_ADDRESS}},
	{OP_MOV, "mov", []Operand{OPERAND_ADDRESS, OPERAND_ADDRESS}},
	{OP_JMP, "jmp", []Operand{OPERAND_ADDRESS}},
	{OP_JZ, "jz", []Operand{OPERAND_ADDRESS}},
	{OP_ADD, "add", []Operand{OPERAND_ADDRESS}},
	{OP_ADDI, "addi", []Operand{OPERAND_VALUE}},
	{OP_SUB, "sub", []Operand{OPERAND_ADDRESS}},
	{OP_SUBI, "subi", []Operand{OPERAND_VALUE}},
	{OP_SHR, "shr", nil},
	{OP_SHL, "shl", nil},
	{OP_AND, "and", []Operand{OPERAND_ADDRESS}},
	{OP_ANDI, "andi", []Operand{OPERAND_VALUE}},
	{OP_PRINT, "print", []Operand{OPERAND_ADDRESS}},
	{OP_STOP, "stop", nil},
}

var (
	byOpcode   [256]*Definition
	byMnemonic = make(map[string]*Definition, len(definitions))
)

func init() {
	for n := range definitions {
		def := &definitions[n]
		byOpcode[def.Opcode] = def
		byMnemonic[def.Mnemonic] = def
	}
}

// Definitions returns a copy of the whole instruction set, in opcode order.
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}

// Lookup finds the definition for an instruction mnemonic.
func Lookup(mnemonic string) (def Definition, ok bool) {
	pdef, ok := byMnemonic[mnemonic]
	if ok {
		def = *pdef
	}
	return
}

// Decode finds the definition for an opcode byte.
func Decode(b byte) (def Definition, ok bool) {
	pdef := byOpcode[b]
	if pdef != nil {
		def, ok = *pdef, true
	}
	return
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	return byOpcode[op] != nil
}

// Len returns the number of bytes the instruction occupies, or 0 for an
// invalid opcode.
func (op Opcode) Len() int {
	def, ok := Decode(byte(op))
	if !ok {
		return 0
	}
	return def.Len()
}

// String returns the mnemonic of the opcode.
func (op Opcode) String() string {
	def, ok := Decode(byte(op))
	if !ok {
		return fmt.Sprintf("Opcode(0x%02x)", uint8(op))
	}
	return def.Mnemonic
}
