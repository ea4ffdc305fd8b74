// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/acc8/cpu"
)

// Line is a single parsed line of the program: a Label, a Directive or an
// Instruction.
type Line interface {
	// Size returns the number of bytes the line encodes to.
	Size() int
	line()
}

// Label declares a name for the current position, for example `.foo:`.
type Label string

func (Label) line() {}

// Size of a label is zero; it only names a position.
func (Label) Size() int {
	return 0
}

func (l Label) String() string {
	return fmt.Sprintf("Label(%v)", string(l))
}

// DirectiveKind is the type of assembler directive.
type DirectiveKind int

const (
	DIRECTIVE_BYTE = DirectiveKind(0) // Emit a literal byte.
)

// Directive is a command to the assembler itself, for example `.byte $FF`.
type Directive struct {
	Kind  DirectiveKind
	Value uint8
}

func (Directive) line() {}

// Size of a byte directive is one.
func (Directive) Size() int {
	return 1
}

func (d Directive) String() string {
	return fmt.Sprintf("Directive(Byte(%d))", d.Value)
}

// Arg is an instruction operand: either a value, or a label that is
// resolved to its address when the program is assembled.
type Arg struct {
	Label     string // Label name; empty for a value.
	Value     uint8  // Value, when Label is empty.
	Bracketed bool   // Written as [operand].
	Span      Span   // Location in the line.
}

// IsLabel returns true if the argument refers to a label.
func (a Arg) IsLabel() bool {
	return len(a.Label) != 0
}

func (a Arg) String() string {
	if a.IsLabel() {
		return fmt.Sprintf("Label(%v)", a.Label)
	}
	return fmt.Sprintf("Value(%d)", a.Value)
}

// Instruction is an opcode with its arguments. There are always exactly as
// many arguments as the opcode has operands.
type Instruction struct {
	Opcode cpu.Opcode
	Args   []Arg
}

func (Instruction) line() {}

// Size of an instruction is the length of its opcode.
func (in Instruction) Size() int {
	return in.Opcode.Len()
}

func (in Instruction) String() string {
	if len(in.Args) == 0 {
		return fmt.Sprintf("Instruction(%v)", in.Opcode)
	}
	args := make([]string, len(in.Args))
	for n, arg := range in.Args {
		args[n] = arg.String()
	}
	return fmt.Sprintf("Instruction(%v %v)", in.Opcode, strings.Join(args, ", "))
}
