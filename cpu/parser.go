// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const eof = -1

// conditionMap maps condition prefixes.
var conditionMap = map[string]Condition{
	"AL": COND_ALWAYS,
	"GT": COND_GT,
	"LT": COND_LT,
	"EQ": COND_EQ,
}

// operationMap maps mnemonics.
var operationMap = map[string]Operation{
	"MOV": OP_MOV,
	"HUH": OP_HUH,
	"ADC": OP_ADC,
	"SBC": OP_SBC,
	"AND": OP_AND,
	"ORR": OP_ORR,
	"XOR": OP_XOR,
	"ROT": OP_ROT,
}

// position in the source text.
type position struct {
	line   int
	column int
}

// Parser reads assembly statements one character at a time, with a
// single character of pushback.
type Parser struct {
	Equate map[string]string // Symbolic operand values.

	reader *bufio.Reader
	err    error // First read error, other than io.EOF.

	pos      position
	prior    position
	pushed   int
	unreaded bool
}

// NewParser creates a parser over an input stream.
func NewParser(input io.Reader) (ps *Parser) {
	ps = &Parser{
		reader: bufio.NewReader(input),
		pos:    position{line: 1},
	}
	return
}

// LineNo returns the current line.
func (ps *Parser) LineNo() int {
	return ps.pos.line
}

// Column returns the current column.
func (ps *Parser) Column() int {
	return ps.pos.column
}

// readChar returns the next character, or eof.
func (ps *Parser) readChar() (c int) {
	if ps.unreaded {
		ps.unreaded = false
		c = ps.pushed
	} else {
		b, err := ps.reader.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) && ps.err == nil {
				ps.err = err
			}
			c = eof
		} else {
			c = int(b)
		}
	}

	ps.prior = ps.pos
	switch c {
	case eof:
	case '\n':
		ps.pos.line++
		ps.pos.column = 0
	default:
		ps.pos.column++
	}

	return
}

// unread pushes back the character last read.
func (ps *Parser) unread(c int) {
	ps.pushed = c
	ps.unreaded = true
	ps.pos = ps.prior
}

func isWhitespace(c int) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// readNonWhitespace returns the next character that is not whitespace.
func (ps *Parser) readNonWhitespace() (c int) {
	c = ps.readChar()
	for isWhitespace(c) {
		c = ps.readChar()
	}
	return
}

// upper returns the upper case form of a character.
func upper(c int) byte {
	if c >= 'a' && c <= 'z' {
		return byte(c - 'a' + 'A')
	}
	if c == eof {
		return 0
	}
	return byte(c)
}

// AtEnd skips whitespace, and reports if only whitespace remained.
func (ps *Parser) AtEnd() (done bool, err error) {
	c := ps.readNonWhitespace()
	if ps.err != nil {
		err = ps.err
		return
	}
	if c == eof {
		done = true
		return
	}
	ps.unread(c)
	return
}

// readCondition reads the optional ?XX condition prefix.
func (ps *Parser) readCondition() (cond Condition, err error) {
	code := "AL"

	c := ps.readNonWhitespace()
	if c == '?' {
		code = string([]byte{upper(ps.readChar()), upper(ps.readChar())})
	} else {
		ps.unread(c)
	}

	cond, ok := conditionMap[code]
	if !ok {
		err = ErrBadCondition
		return
	}

	return
}

// readMnemonic reads a three letter mnemonic.
func (ps *Parser) readMnemonic() (op Operation, err error) {
	mnemonic := string([]byte{
		upper(ps.readNonWhitespace()),
		upper(ps.readChar()),
		upper(ps.readChar()),
	})

	op, ok := operationMap[mnemonic]
	if !ok {
		err = ErrBadMnemonic
		return
	}

	return
}

// readSize reads the optional size suffix.
func (ps *Parser) readSize() (size Size) {
	c := ps.readChar()
	switch c {
	case 'W', 'w':
		size = SIZE_WORD
	case 'B', 'b':
		size = SIZE_BYTE
	default:
		ps.unread(c)
	}
	return
}

func hexValue(c int) (value int, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return
}

func isSymbolStart(c int) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSymbol(c int) bool {
	return isSymbolStart(c) || (c >= '0' && c <= '9')
}

// parseLiteral parses the text of a $hex literal.
func parseLiteral(text string) (value int, digits int, err error) {
	if !strings.HasPrefix(text, "$") {
		err = ErrExpectedNumber
		return
	}

	for _, r := range text[1:] {
		nibble, ok := hexValue(int(r))
		if !ok {
			err = ErrExpectedNumber
			return
		}
		value = (value << 4) | nibble
		digits++
		if digits > 4 {
			err = ErrField{Field: "literal", Value: value}
			return
		}
	}

	if digits == 0 {
		err = ErrDigitsMissing
	}

	return
}

// readNumber reads a $hex literal, or a symbol naming one. The digit
// count distinguishes register indices (up to 2 digits) from memory
// addresses.
func (ps *Parser) readNumber() (value int, digits int, err error) {
	c := ps.readNonWhitespace()

	if isSymbolStart(c) {
		var name []byte
		for isSymbol(c) {
			name = append(name, byte(c))
			c = ps.readChar()
		}
		ps.unread(c)

		literal, ok := ps.Equate[string(name)]
		if !ok {
			literal, ok = ps.Equate[strings.ToUpper(string(name))]
		}
		if !ok {
			err = ErrSymbol(name)
			return
		}

		return parseLiteral(literal)
	}

	if c != '$' {
		ps.unread(c)
		err = ErrExpectedNumber
		return
	}

	for {
		c = ps.readChar()
		nibble, ok := hexValue(c)
		if !ok {
			break
		}
		value = (value << 4) | nibble
		digits++
		if digits > 4 {
			err = ErrField{Field: "literal", Value: value}
			return
		}
	}
	ps.unread(c)

	if digits == 0 {
		err = ErrDigitsMissing
	}

	return
}

// Next reads one statement. Errors are wrapped in ErrSyntax, except
// for read errors of the underlying stream.
func (ps *Parser) Next() (ins Instruction, err error) {
	defer func() {
		if ps.err != nil {
			ins = Instruction{}
			err = ps.err
			return
		}
		if err != nil {
			ins = Instruction{}
			err = ErrSyntax{LineNo: ps.pos.line, Column: ps.pos.column, Err: err}
		}
	}()

	ins.Condition, err = ps.readCondition()
	if err != nil {
		return
	}

	ins.Operation, err = ps.readMnemonic()
	if err != nil {
		return
	}

	ins.Size = ps.readSize()

	c := ps.readNonWhitespace()
	if c == '#' {
		err = ModeImmediateTarget
		return
	}
	ps.unread(c)

	dst, dst_digits, err := ps.readNumber()
	if err != nil {
		return
	}

	dst_memory := dst_digits > 2
	if dst_memory {
		ins.Mode = MODE_REG_MEM // dest is memory
		ins.Operand = dst
	} else {
		ins.Reg = dst
	}

	c = ps.readNonWhitespace()
	if c != ',' {
		err = ErrExpectedComma
		return
	}

	c = ps.readNonWhitespace()
	switch c {
	case '#':
		if dst_memory {
			err = ModeImmediateToMemory
			return
		}
		var arg, digits int
		arg, digits, err = ps.readNumber()
		if err != nil {
			return
		}
		ins.Mode = MODE_IMM_REG
		ins.Operand = arg
		if digits > 2 {
			ins.Size = SIZE_WORD
		}
	case '*':
		if dst_memory {
			err = ModeIndirectToMemory
			return
		}
		var arg, digits int
		arg, digits, err = ps.readNumber()
		if err != nil {
			return
		}
		if digits > 2 {
			err = ModeMemoryIndirect
			return
		}
		ins.Mode = MODE_REG_REG
		ins.Operand = (arg << 8) | INDIRECT
	default:
		ps.unread(c)
		var arg, digits int
		arg, digits, err = ps.readNumber()
		if err != nil {
			return
		}
		switch {
		case digits > 2 && dst_memory:
			err = ModeMemoryToMemory
			return
		case digits > 2:
			ins.Mode = MODE_MEM_REG
			ins.Operand = arg
		case dst_memory:
			ins.Reg = arg // MODE_REG_MEM
		default:
			ins.Mode = MODE_REG_REG
			ins.Operand = arg << 8
		}
	}

	return
}
