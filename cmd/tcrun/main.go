// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/tricolore/config"
	"github.com/ezrec/tricolore/emulator"
)

var rootCmd = &cobra.Command{
	Use:   "tcrun",
	Short: "Tricolore emulator",
	Long: `Tcrun resets a Tricolore machine, loads a binary instruction stream
at the start address (or the bootstrap, if none is given), and runs
until PC becomes zero.`,
	Args: cobra.NoArgs,
	RunE: run,

	SilenceErrors: true,
}

var (
	configFile  string
	programFile string
	maxTicks    int
	verbose     bool
	dump        bool
)

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "machine configuration (.star)")
	rootCmd.Flags().StringVarP(&programFile, "program", "p", "", "binary program to load")
	rootCmd.Flags().IntVarP(&maxTicks, "max-ticks", "n", 0, "stop after this many cycles (0 for no limit)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
	rootCmd.Flags().BoolVarP(&dump, "dump", "d", false, "dump registers when stopped")
}

func run(cmd *cobra.Command, args []string) (err error) {
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

	if cmd.Flags().Changed("max-ticks") {
		cfg.MaxTicks = maxTicks
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = verbose

	if len(programFile) != 0 {
		var inf *os.File
		inf, err = os.Open(programFile)
		if err != nil {
			return
		}
		err = emu.LoadBinary(inf)
		inf.Close()
		if err != nil {
			return fmt.Errorf("%v: %w", programFile, err)
		}
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = emu.Run(ctx)

	if dump {
		dumpRegisters(os.Stderr, emu)
	}

	logrus.WithField("ticks", emu.Cpu.Ticks).Debug("tcrun: stopped")

	return
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	err := rootCmd.Execute()
	if err != nil {
		logrus.Fatalf("%v: %v", os.Args[0], err)
	}
}
