// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/sirupsen/logrus"

	tio "github.com/ezrec/tricolore/io"
)

// Predefined system equates
var sysEquate = map[string]string{
	"SCREEN":    fmt.Sprintf("$%04X", ARENA_SCREEN),
	"START":     fmt.Sprintf("$%04X", ARENA_START),
	"STACK":     fmt.Sprintf("$%04X", ARENA_STACK),
	"REGISTERS": fmt.Sprintf("$%04X", ARENA_REGISTERS),
}

func init() {
	regs := newRegisters()
	for name, value := range regs.Defines() {
		sysEquate[name] = value
	}
}

// Assembler is a single pass assembler. Each statement is fully self
// contained, so every instruction is encoded as soon as it is parsed.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of symbolic operands to literals.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
// The value must be a $hex literal.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// reset the equate table for a new translation unit.
func (asm *Assembler) reset() {
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
}

// Statements returns an iterator over the assembled statements of an
// input stream. Iteration ends after the first error.
func (asm *Assembler) Statements(input io.Reader) iter.Seq2[Statement, error] {
	return func(yield func(Statement, error) bool) {
		asm.reset()

		ps := NewParser(input)
		ps.Equate = asm.Equate

		for {
			done, err := ps.AtEnd()
			if err != nil {
				yield(Statement{}, err)
				return
			}
			if done {
				return
			}

			lineno := ps.LineNo()
			ins, err := ps.Next()
			if err != nil {
				yield(Statement{}, err)
				return
			}

			word, err := Encode(ins)
			if err != nil {
				yield(Statement{}, ErrSyntax{LineNo: lineno, Column: ps.Column(), Err: err})
				return
			}

			if asm.Verbose {
				logrus.WithFields(logrus.Fields{
					"line": lineno,
					"word": fmt.Sprintf("%08X", word),
				}).Infof("asm: %v", ins)
			}

			if !yield(Statement{LineNo: lineno, Instruction: ins, Word: word}, nil) {
				return
			}
		}
	}
}

// Assemble translates an input stream into an instruction word stream,
// returning the number of words written. Assembly stops at the first
// error; output written before it is not a valid program.
func (asm *Assembler) Assemble(input io.Reader, output io.Writer) (count int, err error) {
	tape := &tio.Tape{Output: output}

	for stmt, serr := range asm.Statements(input) {
		if serr != nil {
			err = serr
			return
		}
		err = tape.Send(stmt.Word)
		if err != nil {
			return
		}
		count++
	}

	return
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	prog = &Program{}

	for stmt, serr := range asm.Statements(input) {
		if serr != nil {
			err = serr
			prog = nil
			return
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	return
}
