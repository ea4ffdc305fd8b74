// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator hosts an acc8 machine: it loads the program image,
// routes print output, limits run time and maps the program counter back
// to source lines.
package emulator

import (
	"log"

	"github.com/ezrec/acc8/asm"
	"github.com/ezrec/acc8/cpu"
	"github.com/ezrec/acc8/io"
)

// Emulator state. Machine + IO channels.
type Emulator struct {
	Verbose      bool         // If set, enables verbose logging.
	*cpu.Machine              // Reference to the machine simulation.
	Program      *asm.Program // Source listing of the image, if known.

	Rom  io.Rom  // Program image loaded at reset.
	Tape io.Tape // Print output channel.

	MaxTicks int // If non-zero, the maximum number of instructions per run.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Machine: &cpu.Machine{},
	}

	emu.Machine.Output = &emu.Tape

	return
}

// Assemble encodes a program into the rom, and keeps the program as the
// source listing.
func (emu *Emulator) Assemble(prog *asm.Program) (err error) {
	image, err := prog.Assemble()
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Rom.Data = image

	return
}

// Reset reloads memory from the rom, clears the registers and rewinds the
// channels.
func (emu *Emulator) Reset() (err error) {
	if emu.Verbose {
		log.Printf("emulator: reset, %d byte image", len(emu.Rom.Data))
	}

	for _, channel := range []io.Channel{&emu.Rom, &emu.Tape} {
		channel.Rewind()
	}

	emu.Machine.Output = &emu.Tape

	return emu.Machine.Load(emu.Rom.Data)
}

// LineNo returns the 1-based source line encoding addr, or 0 if unknown.
func (emu *Emulator) LineNo(addr uint8) int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(int(addr))
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo + 1
}

// Tick performs a single instruction of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	pc := emu.Machine.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: emu.LineNo(pc), Err: err}
		}
	}()

	if emu.MaxTicks > 0 && emu.Machine.Ticks >= emu.MaxTicks {
		err = ErrTickLimit
		return
	}

	return emu.Machine.Step()
}

// Run ticks until a stop instruction, an error, or the tick limit.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Printf("emulator: stopped after %d ticks\n%v", emu.Machine.Ticks, emu.Machine)
	}

	return
}
