// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/acc8/asm"
	"github.com/ezrec/acc8/emulator"
)

// options are the command line settings of the virtual machine.
type options struct {
	maxTicks    int
	check       string
	disassemble bool
	verbose     bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "vm <program>",
		Short: "The acc8 virtual machine",
		Long: `Vm loads a raw memory image of at most 256 bytes at address 0 and
runs it until a stop instruction. Text from print instructions is
written to standard output.

An unknown opcode halts the machine with a message naming the byte
and its address.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 0, "stop after this many instructions (0: no limit)")
	cmd.Flags().StringVarP(&opts.check, "check", "c", "", "starlark script to check the final machine state")
	cmd.Flags().BoolVarP(&opts.disassemble, "disassemble", "d", false, "print the program listing, do not execute")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(program string, opts *options) (err error) {
	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.MaxTicks = opts.maxTicks

	err = emu.Rom.LoadFile(program)
	if err != nil {
		return
	}

	if opts.disassemble {
		for addr, text := range asm.Disassemble(emu.Rom.Data) {
			fmt.Printf("%02x: %v\n", addr, text)
		}
		return
	}

	emu.Tape.Output = os.Stdout

	err = emu.Reset()
	if err != nil {
		return
	}

	err = emu.Run()
	if err != nil {
		return
	}

	if len(opts.check) != 0 {
		var script []byte
		script, err = os.ReadFile(opts.check)
		if err != nil {
			return
		}
		err = emu.Check(opts.check, string(script))
	}

	return
}
