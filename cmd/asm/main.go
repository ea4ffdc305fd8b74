// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/acc8/asm"
)

// options are the command line settings of the assembler.
type options struct {
	output  string
	list    bool
	verbose bool
}

func main() {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "asm <input>",
		Short: "The acc8 assembler",
		Long: `Asm assembles acc8 source text into a memory image of at most
256 bytes, which can be run with the vm command.

Every line of the source is checked, and all errors are reported
before the assembler gives up.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return assemble(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "image file to write (default: input with .bin extension)")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "print the parsed lines")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose mode")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// report renders diagnostics to stdout, colored on terminals, and replaces
// them with a short summary.
func report(err error, summary error) error {
	var diags asm.Diagnostics
	if !errors.As(err, &diags) {
		return err
	}

	em := asm.Emitter{
		W:     os.Stdout,
		Color: term.IsTerminal(int(os.Stdout.Fd())),
	}
	diags.Emit(em)

	return summary
}

func assemble(input string, opts *options) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: opts.verbose}
	prog, err := assembler.Parse(inf)
	if err != nil {
		return report(err, asm.ErrParse)
	}

	if opts.list {
		err = prog.Listing(os.Stdout)
		if err != nil {
			return
		}
	}

	image, err := prog.Assemble()
	if err != nil {
		return report(err, asm.ErrAssemble)
	}

	output := opts.output
	if len(output) == 0 {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}

	return os.WriteFile(output, image, 0o644)
}
