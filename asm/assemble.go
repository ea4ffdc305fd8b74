// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"iter"
	"slices"

	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/internal"
)

// Layout is the address assignment of a program.
type Layout struct {
	Offsets []int          // Address of each program line.
	Labels  map[string]int // Address of each label.
	Size    int            // Total encoded size in bytes.
}

// report records a diag for the program line at index n.
func (prog *Program) report(diags *Diagnostics, n int, diag *Diag) {
	lineNo, text, _ := prog.Locate(prog.Lines[n].Span.Lo)
	diags.Add(lineNo, text, diag)
}

// lineSpan is the span of the n'th program line, relative to its line.
func (prog *Program) lineSpan(n int) Span {
	_, _, start := prog.Locate(prog.Lines[n].Span.Lo)
	return prog.Lines[n].Span.Shift(-start)
}

// Layout assigns an address to every line and label. Labels may be
// referenced before they are declared, but may only be declared once.
func (prog *Program) Layout() (layout Layout, err error) {
	var diags Diagnostics

	layout.Labels = make(map[string]int)
	layout.Offsets = make([]int, len(prog.Lines))
	declared := make(map[string]int)

	overflowed := false
	for n, line := range prog.Lines {
		layout.Offsets[n] = layout.Size

		if label, ok := line.Data.(Label); ok {
			name := string(label)
			first, dup := declared[name]
			if dup {
				firstNo, _, _ := prog.Locate(prog.Lines[first].Span.Lo)
				prog.report(&diags, n, SpanError(prog.lineSpan(n), f("label '%v' is declared twice", name)).
					AddNote(f("first declared on line %d", firstNo+1)))
				continue
			}
			declared[name] = n
			layout.Labels[name] = layout.Size
		}

		layout.Size += line.Data.Size()
		if layout.Size > cpu.MEMORY_SIZE && !overflowed {
			overflowed = true
			prog.report(&diags, n, SpanError(prog.lineSpan(n), f("program does not fit in memory")).
				AddNote(f("memory holds %d bytes", cpu.MEMORY_SIZE)))
		}
	}

	if len(diags) != 0 {
		err = diags
	}

	return
}

// resolve returns the byte value of an argument.
func (layout *Layout) resolve(arg Arg) (value uint8, diag *Diag) {
	if !arg.IsLabel() {
		value = arg.Value
		return
	}

	addr, ok := layout.Labels[arg.Label]
	if !ok {
		diag = SpanError(arg.Span, f("label '%v' is not declared", arg.Label))
		return
	}

	if addr >= cpu.MEMORY_SIZE {
		diag = SpanError(arg.Span, f("label '%v' is at the end of memory", arg.Label)).
			AddNote(f("address 0x%x does not fit in a byte", addr))
		return
	}

	value = uint8(addr)
	return
}

// encode returns the bytes of a single line.
func encode(line Line, args []uint8) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		switch data := line.(type) {
		case Directive:
			yield(data.Value)
		case Instruction:
			if !yield(byte(data.Opcode)) {
				return
			}
			for _, arg := range args {
				if !yield(arg) {
					return
				}
			}
		}
	}
}

// Assemble resolves the labels of the program and encodes it as a memory
// image: the concatenation of every line's bytes, in program order. A byte
// directive contributes its byte, a label nothing. Errors from the layout
// and from label resolution are reported together.
func (prog *Program) Assemble() (image []byte, err error) {
	var diags Diagnostics

	layout, err := prog.Layout()
	if err != nil {
		diags = append(diags, err.(Diagnostics)...)
	}

	seqs := make([]iter.Seq[byte], 0, len(prog.Lines))

	for n, line := range prog.Lines {
		var args []uint8
		if in, ok := line.Data.(Instruction); ok {
			for _, arg := range in.Args {
				value, diag := layout.resolve(arg)
				if diag != nil {
					prog.report(&diags, n, diag)
					continue
				}
				args = append(args, value)
			}
		}
		seqs = append(seqs, encode(line.Data, args))
	}

	if len(diags) != 0 {
		err = diags
		return
	}

	image = slices.Collect(internal.IterSeqConcat(seqs...))
	if image == nil {
		image = []byte{}
	}

	return
}

// Debug locates the program line that encodes an address.
type Debug struct {
	Line   *Spanned[Line] // Line encoding the address; nil if none.
	LineNo int            // 0-based source line number of Line.
	Index  int            // Byte index of the address within the line.
}

// Debug finds the line encoding the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	layout, err := prog.Layout()
	if err != nil {
		return
	}

	for n := range prog.Lines {
		line := &prog.Lines[n]
		start := layout.Offsets[n]
		if addr >= start && addr < start+line.Data.Size() {
			dbg.Line = line
			dbg.LineNo, _, _ = prog.Locate(line.Span.Lo)
			dbg.Index = addr - start
			break
		}
	}

	return
}
