// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"iter"
	"log"
	"strings"
)

// Program is the result of parsing a source file.
type Program struct {
	Lines  []Spanned[Line] // Parsed lines, in source order. Spans are offsets into Source.
	Source string          // Source text the program was parsed from.
}

// sourceLine is a line of source text and where it starts.
type sourceLine struct {
	LineNo int    // 0-based line number.
	Start  int    // Byte offset of the line in the source.
	Text   string // Line text, without the line terminator.
}

// sourceLines splits the source into lines, recording the offset of each.
func sourceLines(source string) iter.Seq[sourceLine] {
	return func(yield func(sourceLine) bool) {
		start := 0
		for lineno := 0; start < len(source); lineno++ {
			end := strings.IndexByte(source[start:], '\n')
			next := start + end + 1
			if end < 0 {
				end = len(source) - start
				next = len(source)
			}
			text := strings.TrimSuffix(source[start:start+end], "\r")
			if !yield(sourceLine{LineNo: lineno, Start: start, Text: text}) {
				return
			}
			start = next
		}
	}
}

// Locate finds the line holding the source offset.
func (prog *Program) Locate(offset int) (lineNo int, text string, start int) {
	for sl := range sourceLines(prog.Source) {
		if offset < sl.Start {
			break
		}
		lineNo, text, start = sl.LineNo, sl.Text, sl.Start
	}
	return
}

// Listing writes the parsed lines with their spans, one per line.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, line := range prog.Lines {
		_, err = fmt.Fprintln(w, line)
		if err != nil {
			return
		}
	}
	return
}

// Assembler parses source text into a Program.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// Parse parses an input stream into a Program.
//
// Every line is parsed, and every error is collected. If any line failed
// the returned error is a Diagnostics holding all of them, and no program
// is returned. Blank and comment-only lines are not represented in the
// program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	return asm.ParseString(string(data))
}

// ParseString parses source text into a Program.
func (asm *Assembler) ParseString(source string) (prog *Program, err error) {
	var diags Diagnostics

	prog = &Program{Source: source}

	for sl := range sourceLines(source) {
		if asm.Verbose {
			log.Printf("%v: %v", sl.LineNo+1, sl.Text)
		}

		tokens, diag := Tokenize(sl.Text)
		if diag != nil {
			diags.Add(sl.LineNo, sl.Text, diag)
			continue
		}

		line, diag := ParseLine(tokens)
		if diag != nil {
			diags.Add(sl.LineNo, sl.Text, diag)
			continue
		}

		if line == nil {
			continue
		}

		prog.Lines = append(prog.Lines, Spanned[Line]{
			Data: line,
			Span: NewSpan(sl.Start, sl.Start+len(sl.Text)),
		})
	}

	if len(diags) != 0 {
		prog = nil
		err = diags
	}

	return
}

// Parse parses source text with a default Assembler.
func Parse(source string) (*Program, error) {
	asm := &Assembler{}
	return asm.ParseString(source)
}
