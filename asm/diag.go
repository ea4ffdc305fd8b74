// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Pens used when coloring diagnostics.
var (
	penError  = []color.Attribute{color.FgRed, color.Bold}
	penStrong = []color.Attribute{color.FgWhite, color.Bold}
	penGutter = []color.Attribute{color.FgBlue, color.Bold}
	penNote   = []color.Attribute{color.FgWhite}
)

// Diag is an error message paired with an optional span and any number of
// additional notes.
type Diag struct {
	Msg   string
	Span  *Span
	Notes []string
}

// Error creates a diag with the given message.
func Error(msg string) *Diag {
	return &Diag{Msg: msg}
}

// SpanError creates a diag with the given message, anchored at span.
func SpanError(span Span, msg string) *Diag {
	return &Diag{Msg: msg, Span: &span}
}

// AddNote appends a note to the diag.
func (d *Diag) AddNote(msg string) *Diag {
	d.Notes = append(d.Notes, msg)
	return d
}

// Error returns the message, without source context.
func (d *Diag) Error() string {
	return d.Msg
}

// Emit writes the diag to w, uncolored.
//
// line must be the line the span points into, and lineNo is its 0-based
// line number.
func (d *Diag) Emit(w io.Writer, line string, lineNo int) {
	Emitter{W: w}.Emit(d, line, lineNo)
}

// Emitter renders diagnostics.
type Emitter struct {
	W     io.Writer // Destination of the report.
	Color bool      // If set, ANSI styles are used.
}

func (em Emitter) paint(pen []color.Attribute, text string) string {
	c := color.New(pen...)
	if em.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(text)
}

// Emit renders a diag as a report: the message, the source line with the
// span underlined, and the notes.
func (em Emitter) Emit(d *Diag, line string, lineNo int) {
	fmt.Fprintf(em.W, "%v: %v\n", em.paint(penError, f("error")), em.paint(penStrong, d.Msg))

	num := strconv.Itoa(lineNo + 1)
	pad := strings.Repeat(" ", len(num))

	// Span offsets are bytes, and so is the indent.
	if d.Span != nil {
		fmt.Fprintf(em.W, "%v %v %v\n", em.paint(penGutter, num), em.paint(penGutter, "|"), line)
		fmt.Fprintf(em.W, "%v %v %v%v\n",
			pad,
			em.paint(penGutter, "|"),
			strings.Repeat(" ", d.Span.Lo),
			em.paint(penError, strings.Repeat("^", d.Span.Len())))
	}

	for _, note := range d.Notes {
		fmt.Fprintf(em.W, "%v %v %v\n", pad, em.paint(penStrong, f("= note:")), em.paint(penNote, note))
	}

	fmt.Fprintln(em.W)
}

// Report is a diag located in a source file.
type Report struct {
	LineNo int    // 0-based line number.
	Line   string // Text of the line.
	*Diag
}

// Error returns the 1-based line number and the message.
func (r Report) Error() string {
	return f("line %d: %v", r.LineNo+1, r.Diag.Msg)
}

// Unwrap returns the diag.
func (r Report) Unwrap() error {
	return r.Diag
}

// Diagnostics collects every report of an assembler pass.
type Diagnostics []Report

// Add records a diag for a line.
func (ds *Diagnostics) Add(lineNo int, line string, d *Diag) {
	*ds = append(*ds, Report{LineNo: lineNo, Line: line, Diag: d})
}

// Error summarizes the collected reports.
func (ds Diagnostics) Error() string {
	if len(ds) == 1 {
		return ds[0].Error()
	}
	return f("%d errors, first: %v", len(ds), ds[0].Error())
}

// Unwrap returns every report.
func (ds Diagnostics) Unwrap() []error {
	errs := make([]error, len(ds))
	for n, r := range ds {
		errs[n] = r
	}
	return errs
}

// Emit renders every report, in order.
func (ds Diagnostics) Emit(em Emitter) {
	for _, r := range ds {
		em.Emit(r.Diag, r.Line, r.LineNo)
	}
}
