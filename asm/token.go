// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
)

// TokenKind is the type of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_DOT           = TokenKind(0) // '.'
	TOKEN_COLON         = TokenKind(1) // ':'
	TOKEN_COMMA         = TokenKind(2) // ','
	TOKEN_BRACKET_OPEN  = TokenKind(3) // '['
	TOKEN_BRACKET_CLOSE = TokenKind(4) // ']'
	TOKEN_IDENT         = TokenKind(5) // ident
	TOKEN_LITERAL       = TokenKind(6) // literal
)

// Token is a single lexical element of a line.
type Token struct {
	Kind  TokenKind
	Ident string // Name, for TOKEN_IDENT.
	Value uint8  // Value, for TOKEN_LITERAL.
}

// String returns the token as it is named in diagnostics.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_IDENT:
		return fmt.Sprintf("ident '%v'", tok.Ident)
	case TOKEN_LITERAL:
		return fmt.Sprintf("literal $%02X", tok.Value)
	default:
		return tok.Kind.String()
	}
}
