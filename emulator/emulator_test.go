// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/acc8/asm"
	"github.com/ezrec/acc8/cpu"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Nil(emu.Program)
}

func doRun(emu *Emulator, program []string, t *testing.T) (output string, err error) {
	assert := assert.New(t)

	prog, err := asm.Parse(strings.Join(program, "\n"))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	err = emu.Assemble(prog)
	assert.NoError(err)

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	output = emu.Tape.Text()
	return
}

var helloProgram = []string{
	"; count down, then greet",
	"  ldi $03",
	".loop:",
	"  subi $01",
	"  jz done",
	"  jmp loop",
	".done:",
	"  print [msg]",
	"  stop",
	".msg:",
	"  .byte $02",
	"  .byte $48",
	"  .byte $49",
}

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	tape_output := &bytes.Buffer{}
	emu.Tape.Output = tape_output

	output, err := doRun(emu, helloProgram, t)
	assert.NoError(err)
	assert.Equal("HI\n", output)
	assert.Equal("HI\n", tape_output.String())
	assert.Equal(uint8(0), emu.Acc)
	assert.Equal(uint8(10), emu.Pc)
	assert.Equal(11, emu.Ticks)

	// A second run from reset is identical.
	assert.NoError(emu.Reset())
	assert.Equal("", emu.Tape.Text())
	assert.NoError(emu.Run())
	assert.Equal("HI\n", emu.Tape.Text())
	assert.Equal(uint8(10), emu.Pc)
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, err := doRun(emu, helloProgram, t)
	assert.NoError(err)

	assert.Equal(2, emu.LineNo(0))
	assert.Equal(4, emu.LineNo(2))
	assert.Equal(5, emu.LineNo(5))
	assert.Equal(9, emu.LineNo(10))
	assert.Equal(0, emu.LineNo(200))

	emu.Program = nil
	assert.Equal(0, emu.LineNo(0))
}

func TestEmulatorUnknownOpcode(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, err := doRun(emu, []string{"ldi $01", ".byte $60"}, t)

	var runtime *ErrRuntime
	if assert.True(errors.As(err, &runtime)) {
		assert.Equal(uint8(2), runtime.Pc)
		assert.Equal(2, runtime.LineNo)
	}
	assert.True(errors.Is(err, cpu.ErrOpcode{}))
	assert.Equal(cpu.ErrOpcode{Opcode: 0x60, Pc: 2}, errors.Unwrap(err))
	assert.Contains(err.Error(), "line 2 pc 0x02")
}

func TestEmulatorRomOnly(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = []byte{0x11, 0x05, 0x60}
	assert.NoError(emu.Reset())

	err := emu.Run()
	assert.Error(err)
	assert.Equal("pc 0x02 unknown instruction 0x60 in position 0x02", err.Error())
	assert.Equal(uint8(5), emu.Acc)
}

func TestEmulatorTickLimit(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.MaxTicks = 100

	_, err := doRun(emu, []string{".spin:", "jmp spin"}, t)
	assert.True(errors.Is(err, ErrTickLimit))
	assert.Equal(100, emu.Ticks)
}

func TestEmulatorResetImageSize(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	emu.Rom.Data = make([]byte, cpu.MEMORY_SIZE+1)
	assert.True(errors.Is(emu.Reset(), cpu.ErrImageSize))
}

func TestEmulatorCheck(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	_, err := doRun(emu, helloProgram, t)
	assert.NoError(err)

	err = emu.Check("pass.star", strings.Join([]string{
		`acc == 0 or fail("acc is %d" % acc)`,
		`pc == 10 or fail("pc is %d" % pc)`,
		`output == "HI\n" or fail("output is %r" % output)`,
		`memory[11] == 2 or fail("length")`,
		`len(memory) == 256 or fail("memory size")`,
		`if ticks != 11:`,
		`    fail("ticks is %d" % ticks)`,
	}, "\n"))
	assert.NoError(err)

	err = emu.Check("fail.star", `pc == 3 or fail("pc is %d" % pc)`)
	var check *ErrCheck
	if assert.True(errors.As(err, &check)) {
		assert.Equal("fail.star", check.Name)
	}
	assert.Contains(err.Error(), "pc is 10")

	err = emu.Check("syntax.star", `acc ==`)
	assert.Error(err)

	err = emu.Check("frozen.star", `memory[0] = 1`)
	assert.Error(err)
}
