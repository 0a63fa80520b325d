// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/tricolore/config"
	"github.com/ezrec/tricolore/cpu"
	"github.com/ezrec/tricolore/emulator"
)

var rootCmd = &cobra.Command{
	Use:   "tcasm [input [output]]",
	Short: "Tricolore assembler",
	Long: `Tcasm translates Tricolore assembly statements into a stream of
32-bit little-endian instruction words.

The input and output default to stdin and stdout; a path of '-' also
selects them. Assembly stops at the first error, and a partially
written output file is removed.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: assemble,

	SilenceErrors: true,
}

var (
	configFile string
	defines    []string
	listing    bool
	verbose    bool
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "machine configuration (.star)")
	rootCmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "predefine NAME=$VALUE")
	rootCmd.Flags().BoolVarP(&listing, "listing", "l", false, "print a listing to stderr")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
}

func assemble(cmd *cobra.Command, args []string) (err error) {
	cmd.SilenceUsage = true

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg := config.Default()
	if len(configFile) != 0 {
		cfg, err = config.Load(configFile)
		if err != nil {
			return fmt.Errorf("%v: %w", configFile, err)
		}
	}

	asm := emulator.NewEmulator(cfg).Assembler()
	asm.Verbose = verbose
	for _, define := range defines {
		name, value, ok := strings.Cut(define, "=")
		if !ok {
			return fmt.Errorf("-D %v: expected NAME=$VALUE", define)
		}
		asm.Predefine(name, value)
	}

	inName := "-"
	if len(args) > 0 {
		inName = args[0]
	}
	outName := "-"
	if len(args) > 1 {
		outName = args[1]
	}

	var input io.Reader = os.Stdin
	if inName != "-" {
		var inf *os.File
		inf, err = os.Open(inName)
		if err != nil {
			return
		}
		defer inf.Close()
		input = inf
	}

	// The deferred cleanup must see the final named err.
	var output io.Writer = os.Stdout
	if outName != "-" {
		var ouf *os.File
		ouf, err = os.Create(outName)
		if err != nil {
			return
		}
		defer func() {
			cerr := ouf.Close()
			if err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(outName)
			}
		}()
		output = ouf
	}

	if listing {
		var prog *cpu.Program
		prog, err = asm.Parse(input)
		if err != nil {
			return fmt.Errorf("%v: %w", inName, err)
		}
		fmt.Fprint(os.Stderr, prog.Listing(cfg.Start))
		_, err = output.Write(prog.Binary())
		return
	}

	var count int
	count, err = asm.Assemble(input, output)
	if err != nil {
		return fmt.Errorf("%v: %w", inName, err)
	}

	logrus.WithField("words", count).Debug("tcasm: done")

	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := rootCmd.Execute()
	if err != nil {
		logrus.Fatalf("%v: %v", os.Args[0], err)
	}
}
