package cpu

import (
	"fmt"
	"iter"
)

// Named registers, in allocation order.
const (
	REG_ZERO = "ZERO"
	REG_PC   = "PC"
	REG_XX   = "XX" // Macro scratch.
	REG_SR   = "SR"
	REG_SP   = "SP"
)

// Status register flags.
const (
	SR_CARRY    = 0b0001
	SR_OVERFLOW = 0b0010
	SR_NEGATIVE = 0b0100
	SR_ZERO     = 0b1000

	SR_FLAGS = SR_CARRY | SR_OVERFLOW | SR_NEGATIVE | SR_ZERO
)

// Register is a named slot in the register page.
type Register struct {
	Name  string
	Index int // Offset from the register page base.
	Width int // Bytes.
}

// Registers is a sequential allocator of named registers.
type Registers struct {
	Named []Register
	next  int
}

// Allocate reserves width bytes for a named register, immediately after
// the previously allocated one.
func (regs *Registers) Allocate(name string, width int) (reg Register, err error) {
	if width < 1 || regs.next+width > ARENA_REGISTER_SIZE {
		err = ErrRegisterFull
		return
	}

	reg = Register{Name: name, Index: regs.next, Width: width}
	regs.next += width
	regs.Named = append(regs.Named, reg)

	return
}

// Lookup finds a register by name.
func (regs *Registers) Lookup(name string) (reg Register, ok bool) {
	for _, reg = range regs.Named {
		if reg.Name == name {
			ok = true
			return
		}
	}

	reg = Register{}
	return
}

// Allocated returns the number of register page bytes in use.
func (regs *Registers) Allocated() int {
	return regs.next
}

// Defines yields assembler equates for each named register.
func (regs *Registers) Defines() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, reg := range regs.Named {
			if !yield(reg.Name, fmt.Sprintf("$%02X", reg.Index)) {
				return
			}
		}
	}
}

// newRegisters allocates the architectural registers.
func newRegisters() (regs Registers) {
	for _, def := range []struct {
		name  string
		width int
	}{
		{REG_ZERO, 2},
		{REG_PC, 2},
		{REG_XX, 2},
		{REG_SR, 1},
		{REG_SP, 1},
	} {
		_, err := regs.Allocate(def.name, def.width)
		if err != nil {
			panic(err)
		}
	}

	return
}
