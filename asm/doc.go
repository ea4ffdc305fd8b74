// Package asm implements the assembler for the acc8 system.
//
// Source text is processed one line at a time. Each line is split into
// tokens, and the tokens are parsed into a label declaration, a directive,
// or an instruction. Every token and every parsed line remembers the byte
// range (Span) it was read from, so errors can be reported with the
// offending source underlined.
//
//	.start:
//	    ldi $05      ; load 5
//	    st [count]
//	    jz end
//	.count:
//	    .byte $00
//
// A second pass resolves labels to byte offsets and encodes the program as
// the byte image the cpu package executes.
package asm
