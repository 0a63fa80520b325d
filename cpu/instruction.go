// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"fmt"
)

// Operation is an ALU operation.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation,Condition,Mode,Size
const (
	OP_MOV = Operation(0) // MOV
	OP_HUH = Operation(1) // HUH
	OP_ADC = Operation(2) // ADC
	OP_SBC = Operation(3) // SBC
	OP_AND = Operation(4) // AND
	OP_ORR = Operation(5) // ORR
	OP_XOR = Operation(6) // XOR
	OP_ROT = Operation(7) // ROT
)

// Condition gates execution of a whole instruction.
type Condition int

const (
	COND_ALWAYS = Condition(0) // AL
	COND_GT     = Condition(1) // GT
	COND_LT     = Condition(2) // LT
	COND_EQ     = Condition(3) // EQ
)

// Mode selects which operand locations participate.
type Mode int

const (
	MODE_REG_REG = Mode(0) // REG_REG
	MODE_REG_MEM = Mode(1) // REG_MEM
	MODE_MEM_REG = Mode(2) // MEM_REG
	MODE_IMM_REG = Mode(3) // IMM_REG
)

// Size is the operand width.
type Size int

const (
	SIZE_BYTE = Size(0) // B
	SIZE_WORD = Size(1) // W
)

// Instruction word bit layout.
const (
	OPERATION_SHIFT = 0
	OPERATION_BITS  = 3
	SIZE_SHIFT      = 3
	SIZE_BITS       = 1
	CONDITION_SHIFT = 4
	CONDITION_BITS  = 2
	MODE_SHIFT      = 6
	MODE_BITS       = 2
	REG_SHIFT       = 8
	REG_BITS        = 8
	OPERAND_SHIFT   = 16
	OPERAND_BITS    = 16

	INSTRUCTION_SIZE = 4 // Bytes per instruction word.

	// INDIRECT is the flag in the low operand byte of a REG_REG instruction
	// selecting indirect addressing through the register named in the high byte.
	INDIRECT = 0x01
)

// Instruction is the structured form of a 32-bit instruction word.
type Instruction struct {
	Operation Operation
	Size      Size
	Condition Condition
	Mode      Mode
	Reg       int // Register index.
	Operand   int // 16-bit address, or lo/hi byte pair.
}

// field extracts a bit field from a word.
func field(word uint32, shift, bits int) int {
	return int((word >> shift) & ((1 << bits) - 1))
}

// pack checks that value fits in the bit field, and places it.
func pack(name string, value, shift, bits int) (word uint32, err error) {
	if value < 0 || value >= (1<<bits) {
		err = ErrField{Field: name, Value: value}
		return
	}

	word = uint32(value) << shift
	return
}

// Encode packs an instruction into its 32-bit word.
func Encode(ins Instruction) (word uint32, err error) {
	fields := []struct {
		name  string
		value int
		shift int
		bits  int
	}{
		{"operation", int(ins.Operation), OPERATION_SHIFT, OPERATION_BITS},
		{"size", int(ins.Size), SIZE_SHIFT, SIZE_BITS},
		{"condition", int(ins.Condition), CONDITION_SHIFT, CONDITION_BITS},
		{"mode", int(ins.Mode), MODE_SHIFT, MODE_BITS},
		{"reg", ins.Reg, REG_SHIFT, REG_BITS},
		{"operand", ins.Operand, OPERAND_SHIFT, OPERAND_BITS},
	}

	for _, fld := range fields {
		var bits uint32
		bits, err = pack(fld.name, fld.value, fld.shift, fld.bits)
		if err != nil {
			word = 0
			return
		}
		word |= bits
	}

	return
}

// Decode unpacks a 32-bit word. Every word decodes.
func Decode(word uint32) (ins Instruction) {
	ins = Instruction{
		Operation: Operation(field(word, OPERATION_SHIFT, OPERATION_BITS)),
		Size:      Size(field(word, SIZE_SHIFT, SIZE_BITS)),
		Condition: Condition(field(word, CONDITION_SHIFT, CONDITION_BITS)),
		Mode:      Mode(field(word, MODE_SHIFT, MODE_BITS)),
		Reg:       field(word, REG_SHIFT, REG_BITS),
		Operand:   field(word, OPERAND_SHIFT, OPERAND_BITS),
	}

	return
}

// DecodeBytes decodes a little-endian instruction from the first four bytes of data.
func DecodeBytes(data []byte) Instruction {
	return Decode(binary.LittleEndian.Uint32(data[:INSTRUCTION_SIZE]))
}

// Bytes returns the little-endian wire form of the instruction.
func (ins Instruction) Bytes() (data [INSTRUCTION_SIZE]byte, err error) {
	word, err := Encode(ins)
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint32(data[:], word)
	return
}

// Lo returns the low byte of the operand.
func (ins Instruction) Lo() uint8 {
	return uint8(ins.Operand)
}

// Hi returns the high byte of the operand.
func (ins Instruction) Hi() uint8 {
	return uint8(ins.Operand >> 8)
}

// Indirect is true for a REG_REG instruction reading through a register pointer.
func (ins Instruction) Indirect() bool {
	return ins.Mode == MODE_REG_REG && (ins.Lo()&INDIRECT) != 0
}

// Turns returns the number of byte-wide passes the instruction performs.
func (ins Instruction) Turns() int {
	if ins.Size == SIZE_WORD {
		return 2
	}
	return 1
}

// String returns the assembly language form of the instruction.
//
// Any instruction the parser produces assembles back to itself. Decoded
// words outside that set do not: a byte immediate above $FF is printed
// with four digits (which selects word size), and low operand bits of a
// register-to-register instruction other than INDIRECT are not shown.
func (ins Instruction) String() (out string) {
	if ins.Condition != COND_ALWAYS {
		out = fmt.Sprintf("?%v ", ins.Condition)
	}

	out += ins.Operation.String()
	if ins.Size == SIZE_WORD {
		out += "W"
	}

	switch ins.Mode {
	case MODE_REG_REG:
		marker := ""
		if ins.Indirect() {
			marker = "*"
		}
		out += fmt.Sprintf(" $%02X, %s$%02X", ins.Reg, marker, ins.Hi())
	case MODE_REG_MEM:
		out += fmt.Sprintf(" $%04X, $%02X", ins.Operand, ins.Reg)
	case MODE_MEM_REG:
		out += fmt.Sprintf(" $%02X, $%04X", ins.Reg, ins.Operand)
	case MODE_IMM_REG:
		if ins.Size == SIZE_WORD {
			out += fmt.Sprintf(" $%02X, #$%04X", ins.Reg, ins.Operand)
		} else {
			out += fmt.Sprintf(" $%02X, #$%02X", ins.Reg, ins.Operand)
		}
	default:
		out += fmt.Sprintf(" $%02X, ?%04X", ins.Reg, ins.Operand)
	}

	return
}
