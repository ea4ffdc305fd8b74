// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// singleMap maps single character tokens.
var singleMap = map[rune]TokenKind{
	'.': TOKEN_DOT,
	':': TOKEN_COLON,
	',': TOKEN_COMMA,
	'[': TOKEN_BRACKET_OPEN,
	']': TOKEN_BRACKET_CLOSE,
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// scan returns the byte offset of the first rune at or after pos that does
// not satisfy accept.
func scan(line string, pos int, accept func(rune) bool) int {
	for pos < len(line) {
		r, width := utf8.DecodeRuneInString(line[pos:])
		if !accept(r) {
			break
		}
		pos += width
	}
	return pos
}

// literal converts the hex digits of a literal spanning [start, end).
func literal(line string, start, end int) (value uint8, diag *Diag) {
	digits := line[start+1 : end]
	span := NewSpan(start, end)

	if len(digits) == 0 {
		diag = SpanError(span, f("empty literal")).
			AddNote(f("a literal needs at least one hexadecimal digit after '$'"))
		return
	}

	v64, err := strconv.ParseUint(digits, 16, 8)
	if errors.Is(err, strconv.ErrRange) {
		diag = SpanError(span, f("this literal's value overflows a byte")).
			AddNote(f("only values between 0 and 255 (`$FF`) are allowed")).
			AddNote(f("numbers are specified in hexadecimal"))
		return
	}

	value = uint8(v64)
	return
}

// Tokenize converts a line into a list of tokens.
//
// A ';' starts a comment that runs to the end of the line. If the line is
// ill-formed, the first error is returned.
func Tokenize(line string) (tokens []Spanned[Token], diag *Diag) {
	pos := 0

	for pos < len(line) {
		r, width := utf8.DecodeRuneInString(line[pos:])
		start := pos
		end := pos + width

		var tok Token

		kind, single := singleMap[r]
		switch {
		case single:
			tok = Token{Kind: kind}
		case r == '$':
			end = scan(line, end, isHexDigit)
			var value uint8
			value, diag = literal(line, start, end)
			if diag != nil {
				tokens = nil
				return
			}
			tok = Token{Kind: TOKEN_LITERAL, Value: value}
		case isIdentStart(r):
			end = scan(line, end, isIdentChar)
			tok = Token{Kind: TOKEN_IDENT, Ident: line[start:end]}
		case unicode.IsSpace(r):
			pos = end
			continue
		case r == ';':
			return
		default:
			diag = SpanError(NewSpan(start, end), f("invalid token start character"))
			tokens = nil
			return
		}

		tokens = append(tokens, Spanned[Token]{Data: tok, Span: NewSpan(start, end)})
		pos = end
	}

	return
}
