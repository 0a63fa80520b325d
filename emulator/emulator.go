// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"errors"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/tricolore/config"
	"github.com/ezrec/tricolore/cpu"
	"github.com/ezrec/tricolore/internal"
	tio "github.com/ezrec/tricolore/io"
)

// Emulator state. CPU + program image + screen.
type Emulator struct {
	Verbose  bool           // If set, enables verbose logging.
	*cpu.Cpu                // Reference to the CPU simulation.
	Config   *config.Config // Machine layout.
	Program  *cpu.Program   // Listing of the loaded program, if assembled.
	Rom      *tio.Rom       // Image copied into memory on reset.
	Screen   tio.Screen     // Renderer view of screen memory.
}

// NewEmulator creates a new emulator. A nil configuration uses the defaults.
func NewEmulator(cfg *config.Config) (emu *Emulator) {
	if cfg == nil {
		cfg = config.Default()
	}

	emu = &Emulator{
		Cpu:    cpu.NewCpu(cfg.RegisterBase),
		Config: cfg,
	}

	base := int(cfg.ScreenBase)
	emu.Screen.Data = emu.Cpu.Memory[base : base+tio.SCREEN_SIZE]

	return
}

// Defines returns an iterator over all of the assembler defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		emu.Cpu.Registers.Defines(),
		emu.Config.Defines(),
	)
}

// Assembler returns an assembler using this machine's defines.
func (emu *Emulator) Assembler() (asm *cpu.Assembler) {
	asm = &cpu.Assembler{Verbose: emu.Verbose}
	for name, value := range emu.Defines() {
		asm.Predefine(name, value)
	}
	return
}

// Bootstrap returns the boot image: the configured boot source, or
// a single word move of zero to PC, which halts.
func (emu *Emulator) Bootstrap() (rom *tio.Rom, err error) {
	if len(emu.Config.Boot) != 0 {
		var prog *cpu.Program
		prog, err = emu.Assembler().Parse(strings.NewReader(emu.Config.Boot))
		if err != nil {
			return
		}
		rom = tio.NewRom(emu.Config.Start, slices.Collect(prog.Words())...)
		return
	}

	pc, _ := emu.Cpu.Registers.Lookup(cpu.REG_PC)
	word, err := cpu.Encode(cpu.Instruction{
		Operation: cpu.OP_MOV,
		Size:      cpu.SIZE_WORD,
		Condition: cpu.COND_ALWAYS,
		Mode:      cpu.MODE_IMM_REG,
		Reg:       pc.Index,
		Operand:   0x0000,
	})
	if err != nil {
		return
	}

	rom = tio.NewRom(emu.Config.Start, word)
	return
}

// Load sets an assembled program to run from the start address.
func (emu *Emulator) Load(prog *cpu.Program) {
	emu.Program = prog
	emu.Rom = tio.NewRom(emu.Config.Start, slices.Collect(prog.Words())...)
}

// LoadBinary sets a binary instruction stream to run from the start address.
func (emu *Emulator) LoadBinary(input io.Reader) (err error) {
	tape := &tio.Tape{Input: input}
	words, err := tape.ReadAll()
	if err != nil {
		return
	}

	emu.Program = nil
	emu.Rom = tio.NewRom(emu.Config.Start, words...)
	return
}

// Reset the machine: clear memory, copy in the program image (or the
// bootstrap, if no program is loaded), and point PC at the start address.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	rom := emu.Rom
	if rom == nil {
		rom, err = emu.Bootstrap()
		if err != nil {
			return
		}
	}

	emu.Cpu.Reset(emu.Config.Start)
	for addr, value := range rom.Receive() {
		emu.Cpu.Memory[addr] = value
	}

	if emu.Verbose {
		logrus.WithFields(logrus.Fields{
			"base":  rom.Base,
			"bytes": len(rom.Data),
		}).Info("emulator: reset")
	}

	return
}

// LineNo returns the source line number for the executing instruction,
// or 0 if it is not known.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Config.Start, emu.Cpu.Pc())
	if dbg.Statement == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Cpu.State() == cpu.STATE_HALTED {
		done = true
		return
	}

	if emu.Config.MaxTicks > 0 && emu.Cpu.Ticks >= emu.Config.MaxTicks {
		err = ErrTickLimit
		return
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
		done = true
	}

	return
}

// Run ticks until the processor halts. The context is checked once
// per cycle, so cancelling it stops the run.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		if ctx_err := ctx.Err(); ctx_err != nil {
			err = &ErrRuntime{Pc: emu.Cpu.Pc(), LineNo: emu.LineNo(), Err: ctx_err}
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
