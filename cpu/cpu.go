// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"

	"github.com/ezrec/tricolore/internal"
	"github.com/sirupsen/logrus"
)

// State of the processor.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
)

// Cpu is the simulation context for the processor.
//
// Registers are not separate storage: the register page is a region of
// Memory, so every register is also reachable by its memory address.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory    [MEMORY_SIZE]byte // Program, data, and register page.
	Base      uint16            // Address of the register page.
	Registers Registers         // Named registers in the register page.

	Ticks int // Cycles executed since reset.

	pc uint16 // Address of the PC register.
	sr uint16 // Address of the SR register.
}

// NewCpu creates a new CPU with its register page at base.
func NewCpu(base uint16) (cpu *Cpu) {
	cpu = &Cpu{
		Base:      base,
		Registers: newRegisters(),
	}

	pc, _ := cpu.Registers.Lookup(REG_PC)
	sr, _ := cpu.Registers.Lookup(REG_SR)
	cpu.pc = cpu.RegisterAddress(pc.Index)
	cpu.sr = cpu.RegisterAddress(sr.Index)

	return
}

// Reset clears memory and statistics, and points PC at start.
func (cpu *Cpu) Reset(start uint16) {
	if cpu.Verbose {
		logrus.WithField("start", fmt.Sprintf("%04X", start)).Info("cpu: reset")
	}

	clear(cpu.Memory[:])
	cpu.Ticks = 0
	cpu.SetPc(start)
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		cpu.Registers.Defines(),
		func(yield func(string, string) bool) {
			yield("REGISTERS", fmt.Sprintf("$%04X", cpu.Base))
		},
	)
}

// RegisterAddress returns the memory address of a register index.
func (cpu *Cpu) RegisterAddress(index int) uint16 {
	return cpu.Base + uint16(index)
}

// Read16 reads a little-endian word. The high byte wraps at the end of memory.
func (cpu *Cpu) Read16(addr uint16) uint16 {
	return uint16(cpu.Memory[addr]) | (uint16(cpu.Memory[addr+1]) << 8)
}

// Write16 writes a little-endian word. The high byte wraps at the end of memory.
func (cpu *Cpu) Write16(addr uint16, value uint16) {
	cpu.Memory[addr] = uint8(value)
	cpu.Memory[addr+1] = uint8(value >> 8)
}

// Load copies data into memory at addr, wrapping at the end of memory.
func (cpu *Cpu) Load(addr uint16, data []byte) {
	for n, b := range data {
		cpu.Memory[addr+uint16(n)] = b
	}
}

// Pc returns the program counter.
func (cpu *Cpu) Pc() uint16 {
	return cpu.Read16(cpu.pc)
}

// SetPc sets the program counter.
func (cpu *Cpu) SetPc(pc uint16) {
	cpu.Write16(cpu.pc, pc)
}

// Sr returns the status register.
func (cpu *Cpu) Sr() uint8 {
	return cpu.Memory[cpu.sr]
}

// SetSr sets the status register.
func (cpu *Cpu) SetSr(sr uint8) {
	cpu.Memory[cpu.sr] = sr
}

// Reg returns the byte in register index.
func (cpu *Cpu) Reg(index int) uint8 {
	return cpu.Memory[cpu.RegisterAddress(index)]
}

// SetReg sets the byte in register index.
func (cpu *Cpu) SetReg(index int, value uint8) {
	cpu.Memory[cpu.RegisterAddress(index)] = value
}

// State returns RUNNING, or HALTED once PC is zero.
func (cpu *Cpu) State() State {
	if cpu.Pc() == 0 {
		return STATE_HALTED
	}
	return STATE_RUNNING
}

// String returns the named register state as a string.
func (cpu *Cpu) String() (text string) {
	for _, reg := range cpu.Registers.Named {
		addr := cpu.RegisterAddress(reg.Index)
		var strval string
		switch reg.Width {
		case 1:
			strval = fmt.Sprintf("%02X", cpu.Memory[addr])
		case 2:
			strval = fmt.Sprintf("%04X", cpu.Read16(addr))
		default:
			for n := reg.Width - 1; n >= 0; n-- {
				strval += fmt.Sprintf("%02X", cpu.Memory[addr+uint16(n)])
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg.Name, strval)
	}
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)

	return
}

// FetchCode fetches and decodes the instruction at the program counter.
func (cpu *Cpu) FetchCode() (ins Instruction, err error) {
	pc := cpu.Pc()
	if pc == 0 {
		err = ErrHalted
		return
	}

	var data [INSTRUCTION_SIZE]byte
	for n := range data {
		data[n] = cpu.Memory[pc+uint16(n)]
	}
	ins = Decode(binary.LittleEndian.Uint32(data[:]))

	return
}

// Tick executes a single CPU instruction cycle.
// PC advances past the instruction before it executes, so an
// instruction that writes PC is a jump.
func (cpu *Cpu) Tick() (err error) {
	pc := cpu.Pc()

	ins, err := cpu.FetchCode()
	if err != nil {
		return
	}

	cpu.SetPc(pc + INSTRUCTION_SIZE)

	executed := cpu.Execute(ins)
	cpu.Ticks++

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"pc":       fmt.Sprintf("%04X", pc),
			"ins":      ins.String(),
			"executed": executed,
			"sr":       fmt.Sprintf("%04b", cpu.Sr()&SR_FLAGS),
		}).Info("cpu: tick")
	}

	return
}

// ok evaluates an instruction condition against the status register.
func (cpu *Cpu) ok(cond Condition) bool {
	sr := cpu.Sr()

	switch cond {
	case COND_GT:
		return (sr & (SR_NEGATIVE | SR_ZERO)) == 0
	case COND_LT:
		return (sr & SR_NEGATIVE) != 0
	case COND_EQ:
		return (sr & SR_ZERO) != 0
	default:
		return true
	}
}

// target resolves the address of P, which supplies the prior value and
// receives the result.
func (cpu *Cpu) target(ins Instruction, turn int) uint16 {
	if ins.Mode == MODE_REG_MEM {
		return uint16(ins.Operand) + uint16(turn)
	}
	return cpu.RegisterAddress(ins.Reg + turn)
}

// argument resolves Q, the right hand side of the operation.
func (cpu *Cpu) argument(ins Instruction, turn int) uint8 {
	switch ins.Mode {
	case MODE_REG_REG:
		if ins.Indirect() {
			pointer := cpu.Read16(cpu.RegisterAddress(int(ins.Hi())))
			return cpu.Memory[pointer+uint16(turn)]
		}
		return cpu.Memory[cpu.RegisterAddress(int(ins.Hi())+turn)]
	case MODE_REG_MEM:
		return cpu.Memory[cpu.RegisterAddress(ins.Reg+turn)]
	case MODE_MEM_REG:
		return cpu.Memory[uint16(ins.Operand)+uint16(turn)]
	default: // MODE_IMM_REG
		if turn == 0 {
			return ins.Lo()
		}
		return ins.Hi()
	}
}

// Execute executes a single decoded instruction, returning false if its
// condition did not hold.
//
// Flags are recomputed from the result, unless the instruction wrote
// the status register itself.
func (cpu *Cpu) Execute(ins Instruction) (executed bool) {
	if !cpu.ok(ins.Condition) {
		return
	}

	zero := true
	var last uint8
	var carry, overflow bool
	var wrote_sr bool

	for turn := range ins.Turns() {
		addr := cpu.target(ins, turn)
		p := cpu.Memory[addr]
		q := cpu.argument(ins, turn)

		last, carry, overflow = cpu.doAlu(ins.Operation, p, q)
		cpu.Memory[addr] = last

		zero = zero && last == 0
		wrote_sr = wrote_sr || addr == cpu.sr
	}

	if !wrote_sr {
		cpu.SetSr((cpu.Sr() &^ SR_FLAGS) | flags(last, zero, carry, overflow))
	}

	executed = true
	return
}
