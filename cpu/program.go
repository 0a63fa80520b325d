package cpu

import (
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// Statement is one assembled instruction and its source line.
type Statement struct {
	LineNo      int
	Instruction Instruction
	Word        uint32
}

// Program is an assembled sequence of statements.
type Program struct {
	Statements []Statement
}

// Debug locates the statement executing at a given address.
type Debug struct {
	*Statement
	Index int
}

// Debug returns the statement at address pc, for a program loaded at base.
func (prog *Program) Debug(base, pc uint16) (dbg Debug) {
	offset := int(pc - base)
	if offset%INSTRUCTION_SIZE != 0 {
		return
	}

	index := offset / INSTRUCTION_SIZE
	if index < len(prog.Statements) {
		dbg = Debug{
			Statement: &prog.Statements[index],
			Index:     index,
		}
	}

	return
}

// Words returns an iterator over the instruction words.
func (prog *Program) Words() iter.Seq[uint32] {
	return func(yield func(word uint32) bool) {
		for _, stmt := range prog.Statements {
			if !yield(stmt.Word) {
				return
			}
		}
	}
}

// Binary returns the little-endian instruction stream.
func (prog *Program) Binary() (data []byte) {
	for word := range prog.Words() {
		data = binary.LittleEndian.AppendUint32(data, word)
	}

	return
}

// Listing returns the program as address, word, and source form.
func (prog *Program) Listing(base uint16) (text string) {
	var sb strings.Builder

	for n, stmt := range prog.Statements {
		addr := base + uint16(n*INSTRUCTION_SIZE)
		fmt.Fprintf(&sb, "%04X: %08X  %v\n", addr, stmt.Word, stmt.Instruction)
	}

	text = sb.String()
	return
}
