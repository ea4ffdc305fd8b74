// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Check runs a Starlark script against the machine state. The script sees
// the predeclared values pc, acc, ticks, memory (a frozen list of 256 ints)
// and output (the text printed since reset). The check fails if the script
// fails, usually through fail():
//
//	acc == 5 or fail("acc is %d" % acc)
//	output == "HI\n" or fail("printed %r" % output)
func (emu *Emulator) Check(name string, script string) (err error) {
	memory := make([]starlark.Value, len(emu.Machine.Memory))
	for n, b := range emu.Machine.Memory {
		memory[n] = starlark.MakeInt(int(b))
	}
	list := starlark.NewList(memory)
	list.Freeze()

	predeclared := starlark.StringDict{
		"pc":     starlark.MakeInt(int(emu.Machine.Pc)),
		"acc":    starlark.MakeInt(int(emu.Machine.Acc)),
		"ticks":  starlark.MakeInt(emu.Machine.Ticks),
		"memory": list,
		"output": starlark.String(emu.Tape.Text()),
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}

	opts := syntax.FileOptions{
		TopLevelControl: true,
		While:           true,
	}

	_, err = starlark.ExecFileOptions(&opts, thread, name, script, predeclared)
	if err != nil {
		err = &ErrCheck{Name: name, Err: err}
		return
	}

	if emu.Verbose {
		log.Printf("emulator: check %v passed", name)
	}

	return
}
