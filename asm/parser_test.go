// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/acc8/cpu"
)

func parseText(t *testing.T, text string) (Line, *Diag) {
	tokens, diag := Tokenize(text)
	if diag != nil {
		t.Fatalf("%v: %v", text, diag)
	}
	return ParseLine(tokens)
}

func TestParseLine(t *testing.T) {
	table := [](struct {
		text string
		line Line
	}){
		{".byte $FF", Directive{Kind: DIRECTIVE_BYTE, Value: 255}},
		{"  .byte $0   ; zero", Directive{Kind: DIRECTIVE_BYTE, Value: 0}},
		{".foo:", Label("foo")},
		{"  . foo :  ", Label("foo")},
		{"nop", Instruction{Opcode: cpu.OP_NOP}},
		{"stop", Instruction{Opcode: cpu.OP_STOP}},
		{"shl ; double", Instruction{Opcode: cpu.OP_SHL}},
		{"ldi $05", Instruction{Opcode: cpu.OP_LDI, Args: []Arg{
			{Value: 5, Span: Span{4, 7}}}}},
		{"ld [$10]", Instruction{Opcode: cpu.OP_LD, Args: []Arg{
			{Value: 0x10, Bracketed: true, Span: Span{3, 8}}}}},
		{"ld $10", Instruction{Opcode: cpu.OP_LD, Args: []Arg{
			{Value: 0x10, Span: Span{3, 6}}}}},
		{"sti $27 [$0]", Instruction{Opcode: cpu.OP_STI, Args: []Arg{
			{Value: 0x27, Span: Span{4, 7}},
			{Value: 0, Bracketed: true, Span: Span{8, 12}}}}},
		{"sti $27, [$0]", Instruction{Opcode: cpu.OP_STI, Args: []Arg{
			{Value: 0x27, Span: Span{4, 7}},
			{Value: 0, Bracketed: true, Span: Span{9, 13}}}}},
		{"mov src, [dst]", Instruction{Opcode: cpu.OP_MOV, Args: []Arg{
			{Label: "src", Span: Span{4, 7}},
			{Label: "dst", Bracketed: true, Span: Span{9, 14}}}}},
		{"jmp loop", Instruction{Opcode: cpu.OP_JMP, Args: []Arg{
			{Label: "loop", Span: Span{4, 8}}}}},
		{"ldi count", Instruction{Opcode: cpu.OP_LDI, Args: []Arg{
			{Label: "count", Span: Span{4, 9}}}}},
		{"print msg", Instruction{Opcode: cpu.OP_PRINT, Args: []Arg{
			{Label: "msg", Span: Span{6, 9}}}}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		line, diag := parseText(t, entry.text)
		assert.Nil(diag, entry.text)
		assert.Equal(entry.line, line, entry.text)
	}
}

func TestParseLineEveryOpcode(t *testing.T) {
	assert := assert.New(t)

	for _, def := range cpu.Definitions() {
		text := def.Mnemonic
		for range def.Operands {
			text += " $01"
		}

		line, diag := parseText(t, text)
		assert.Nil(diag, text)
		in, ok := line.(Instruction)
		if assert.True(ok, text) {
			assert.Equal(def.Opcode, in.Opcode, text)
			assert.Len(in.Args, len(def.Operands), text)
			assert.Equal(def.Len(), in.Size(), text)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	table := [](struct {
		text  string
		span  Span
		msg   string
		notes []string
	}){
		{".foo", Span{1, 4}, "invalid directive name 'foo'", []string{"the only directive is '.byte'"}},
		{".", Span{1, 2}, "unexpected end of line, expected ident", nil},
		{". $01", Span{2, 5}, "unexpected literal $01 token, expected ident", nil},
		{".foo: nop", Span{6, 9}, "unexpected token ident 'nop', expected end of line after label", nil},
		{".byte", Span{5, 6}, "unexpected end of line, expected literal", nil},
		{".byte foo", Span{6, 9}, "unexpected ident 'foo' token, expected literal", nil},
		{".byte $01 $02", Span{10, 13}, "unexpected token literal $02, expected end of line", nil},
		{"$05", Span{0, 3}, "unexpected literal $05 token at start of line", []string{"expected ident or '.'"}},
		{": nop", Span{0, 1}, "unexpected ':' token at start of line", []string{"expected ident or '.'"}},
		{"[", Span{0, 1}, "unexpected '[' token at start of line", []string{"expected ident or '.'"}},
		{"halt", Span{0, 4}, "unknown instruction 'halt'", nil},
		{"LDI $01", Span{0, 3}, "unknown instruction 'LDI'", []string{"mnemonics are lower case: 'ldi'"}},
		{"ldi", Span{3, 4}, "unexpected end of line, expected literal or label", nil},
		{"ldi $01 $02", Span{8, 11}, "unexpected token literal $02, expected end of line", nil},
		{"nop $01", Span{4, 7}, "unexpected token literal $01, expected end of line", nil},
		{"shr ,", Span{4, 5}, "unexpected token ',', expected end of line", nil},
		{"ldi , $01", Span{4, 5}, "unexpected ',' token, expected literal or label", nil},
		{"mov $01,, $02", Span{8, 9}, "unexpected ',' token, expected literal or label", nil},
		{"mov $01", Span{7, 8}, "unexpected end of line, expected literal or label", nil},
		{"ld [$05", Span{7, 8}, "unexpected end of line, expected ']'", nil},
		{"ld [$05 $06]", Span{8, 11}, "unexpected literal $06 token, expected ']'", nil},
		{"ld []", Span{4, 5}, "unexpected ']' token, expected literal or label", nil},
		{"ldi [$05]", Span{4, 9}, "unexpected brackets around a value operand", []string{"brackets mark address operands"}},
		{"sti [$01] [$02]", Span{4, 9}, "unexpected brackets around a value operand", []string{"brackets mark address operands"}},
	}

	for _, entry := range table {
		assert := assert.New(t)

		line, diag := parseText(t, entry.text)
		assert.Nil(line, entry.text)
		if !assert.NotNil(diag, entry.text) {
			continue
		}
		assert.Equal(entry.msg, diag.Msg, entry.text)
		assert.Equal(&entry.span, diag.Span, entry.text)
		assert.Equal(entry.notes, diag.Notes, entry.text)
	}
}

func TestLineSize(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Label("x").Size())
	assert.Equal(1, Directive{Kind: DIRECTIVE_BYTE, Value: 9}.Size())
	assert.Equal(3, Instruction{Opcode: cpu.OP_MOV}.Size())

	assert.Equal("Label(x)", Label("x").String())
	assert.Equal("Directive(Byte(255))", Directive{Value: 255}.String())
	assert.Equal("Instruction(stop)", Instruction{Opcode: cpu.OP_STOP}.String())
	assert.Equal("Instruction(sti Value(1), Label(out))", Instruction{Opcode: cpu.OP_STI, Args: []Arg{
		{Value: 1}, {Label: "out"}}}.String())
}
