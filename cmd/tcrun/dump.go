package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/ezrec/tricolore/cpu"
	"github.com/ezrec/tricolore/emulator"
)

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	flagColor = color.New(color.FgGreen)
	dimColor  = color.New(color.Faint)
)

// dumpRegisters prints the named registers, then the status flags.
func dumpRegisters(w io.Writer, emu *emulator.Emulator) {
	for _, reg := range emu.Cpu.Registers.Named {
		addr := emu.Cpu.RegisterAddress(reg.Index)
		var value string
		switch reg.Width {
		case 1:
			value = fmt.Sprintf("$%02X", emu.Cpu.Memory[addr])
		default:
			value = fmt.Sprintf("$%04X", emu.Cpu.Read16(addr))
		}
		fmt.Fprintf(w, "%s %s\n", nameColor.Sprintf("%-4s", reg.Name), value)
	}

	sr := emu.Cpu.Sr()
	for _, flag := range []struct {
		mask uint8
		name string
	}{
		{cpu.SR_ZERO, "Z"},
		{cpu.SR_NEGATIVE, "N"},
		{cpu.SR_OVERFLOW, "V"},
		{cpu.SR_CARRY, "C"},
	} {
		if sr&flag.mask != 0 {
			flagColor.Fprint(w, flag.name)
		} else {
			dimColor.Fprint(w, "-")
		}
	}
	fmt.Fprintf(w, " ticks %d\n", emu.Cpu.Ticks)
}
