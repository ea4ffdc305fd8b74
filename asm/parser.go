// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"slices"
	"strings"

	"github.com/ezrec/acc8/cpu"
)

// cursor walks the tokens of a single line.
type cursor struct {
	tokens []Spanned[Token]
	pos    int
}

// peek returns true if the next token is of the given kind.
func (c *cursor) peek(kind TokenKind) bool {
	return c.pos < len(c.tokens) && c.tokens[c.pos].Data.Kind == kind
}

// endSpan is the one byte span just past the previous token.
func (c *cursor) endSpan() Span {
	hi := 0
	if c.pos > 0 {
		hi = c.tokens[c.pos-1].Span.Hi
	}
	return NewSpan(hi, hi+1)
}

// expect consumes the next token, which must be one of kinds.
func (c *cursor) expect(expected string, kinds ...TokenKind) (tok Spanned[Token], diag *Diag) {
	if c.pos >= len(c.tokens) {
		diag = SpanError(c.endSpan(), f("unexpected end of line, expected %v", expected))
		return
	}

	tok = c.tokens[c.pos]
	if !slices.Contains(kinds, tok.Data.Kind) {
		diag = SpanError(tok.Span, f("unexpected %v token, expected %v", tok.Data, expected))
		return
	}

	c.pos++
	return
}

// expectEOL makes sure all tokens have been consumed.
func (c *cursor) expectEOL(after string) (diag *Diag) {
	if c.pos < len(c.tokens) {
		tok := c.tokens[c.pos]
		diag = SpanError(tok.Span, f("unexpected token %v, expected end of line%v", tok.Data, after))
	}
	return
}

// ParseLine parses the tokens of a single line. Empty lines return a nil
// Line. If the line is ill-formed, the first error is returned.
func ParseLine(tokens []Spanned[Token]) (line Line, diag *Diag) {
	if len(tokens) == 0 {
		return
	}

	c := &cursor{tokens: tokens, pos: 1}

	first := tokens[0]
	switch first.Data.Kind {
	case TOKEN_DOT:
		// A label or a directive; either way an ident is next.
		var name Spanned[Token]
		name, diag = c.expect(f("ident"), TOKEN_IDENT)
		if diag != nil {
			return
		}

		if c.peek(TOKEN_COLON) {
			c.pos++
			diag = c.expectEOL(f(" after label"))
			if diag != nil {
				return
			}
			line = Label(name.Data.Ident)
			return
		}

		line, diag = parseDirective(name, c)
	case TOKEN_IDENT:
		line, diag = parseInstruction(first, c)
	default:
		diag = SpanError(first.Span, f("unexpected %v token at start of line", first.Data)).
			AddNote(f("expected ident or '.'"))
	}

	if diag != nil {
		line = nil
	}

	return
}

// parseDirective parses the rest of a directive line named by name.
func parseDirective(name Spanned[Token], c *cursor) (line Line, diag *Diag) {
	switch name.Data.Ident {
	case "byte":
		var lit Spanned[Token]
		lit, diag = c.expect(f("literal"), TOKEN_LITERAL)
		if diag != nil {
			return
		}
		diag = c.expectEOL("")
		if diag != nil {
			return
		}
		line = Directive{Kind: DIRECTIVE_BYTE, Value: lit.Data.Value}
	default:
		diag = SpanError(name.Span, f("invalid directive name '%v'", name.Data.Ident)).
			AddNote(f("the only directive is '.byte'"))
	}

	return
}

// parseInstruction parses the operands of the instruction named by name.
func parseInstruction(name Spanned[Token], c *cursor) (line Line, diag *Diag) {
	mnemonic := name.Data.Ident

	def, ok := cpu.Lookup(mnemonic)
	if !ok {
		diag = SpanError(name.Span, f("unknown instruction '%v'", mnemonic))
		if _, ok := cpu.Lookup(strings.ToLower(mnemonic)); ok {
			diag.AddNote(f("mnemonics are lower case: '%v'", strings.ToLower(mnemonic)))
		}
		return
	}

	in := Instruction{Opcode: def.Opcode}
	for n, kind := range def.Operands {
		if n > 0 && c.peek(TOKEN_COMMA) {
			c.pos++
		}

		var arg Arg
		arg, diag = parseArg(kind, c)
		if diag != nil {
			return
		}
		in.Args = append(in.Args, arg)
	}

	diag = c.expectEOL("")
	if diag != nil {
		return
	}

	line = in
	return
}

// parseArg parses a single operand: a literal or a label, optionally in
// brackets when it is an address.
func parseArg(kind cpu.Operand, c *cursor) (arg Arg, diag *Diag) {
	expected := f("literal or label")

	var open Spanned[Token]
	bracketed := c.peek(TOKEN_BRACKET_OPEN)
	if bracketed {
		open = c.tokens[c.pos]
		c.pos++
	}

	tok, diag := c.expect(expected, TOKEN_LITERAL, TOKEN_IDENT)
	if diag != nil {
		return
	}

	arg.Span = tok.Span
	if tok.Data.Kind == TOKEN_IDENT {
		arg.Label = tok.Data.Ident
	} else {
		arg.Value = tok.Data.Value
	}

	if !bracketed {
		return
	}

	closing, diag := c.expect("']'", TOKEN_BRACKET_CLOSE)
	if diag != nil {
		return
	}

	arg.Bracketed = true
	arg.Span = NewSpan(open.Span.Lo, closing.Span.Hi)

	if kind != cpu.OPERAND_ADDRESS {
		diag = SpanError(arg.Span, f("unexpected brackets around a %v operand", kind)).
			AddNote(f("brackets mark address operands"))
	}

	return
}
