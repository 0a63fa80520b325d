package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestParser_Next(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		ins  Instruction
	}){
		{"MOV $02, #$1234",
			Instruction{Operation: OP_MOV, Size: SIZE_WORD, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x1234}},
		{"MOV $02, #$12",
			Instruction{Operation: OP_MOV, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x12}},
		{"MOVW $02, #$12",
			Instruction{Operation: OP_MOV, Size: SIZE_WORD, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x12}},
		{"MOVB $02, $04",
			Instruction{Operation: OP_MOV, Mode: MODE_REG_REG, Reg: 2, Operand: 0x0400}},
		{"?GT ADC $01, $02",
			Instruction{Operation: OP_ADC, Condition: COND_GT, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0200}},
		{"?lt sbc $01,$02",
			Instruction{Operation: OP_SBC, Condition: COND_LT, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0200}},
		{"?AL XOR $01, $02",
			Instruction{Operation: OP_XOR, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0200}},
		{"MOV $0010, $03",
			Instruction{Operation: OP_MOV, Mode: MODE_REG_MEM, Reg: 3, Operand: 0x0010}},
		{"  ?EQ ANDW $03 ,  $0010",
			Instruction{Operation: OP_AND, Size: SIZE_WORD, Condition: COND_EQ, Mode: MODE_MEM_REG, Reg: 3, Operand: 0x0010}},
		{"ORR $01, *$04",
			Instruction{Operation: OP_ORR, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0401}},
		{"ROT $6, #$19",
			Instruction{Operation: OP_ROT, Mode: MODE_IMM_REG, Reg: 6, Operand: 0x19}},
		{"HUH $00, $00",
			Instruction{Operation: OP_HUH, Mode: MODE_REG_REG}},
	}

	for _, entry := range table {
		ps := NewParser(strings.NewReader(entry.text))
		ins, err := ps.Next()
		assert.NoError(err, entry.text)
		assert.Equal(entry.ins, ins, entry.text)

		done, err := ps.AtEnd()
		assert.NoError(err, entry.text)
		assert.True(done, entry.text)
	}
}

func TestParser_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		err  error
	}){
		{"MOV #$01, $02", ErrUnsupportedMode},
		{"MOV *$01, $02", ErrExpectedNumber},
		{"MOV $01, 02", ErrExpectedNumber},
		{"MOV $0010, $0020", ErrUnsupportedMode},
		{"MOV $0010, #$01", ErrUnsupportedMode},
		{"MOV $0010, *$01", ErrUnsupportedMode},
		{"MOV $01, *$0010", ErrUnsupportedMode},
		{"?XX MOV $01, $02", ErrBadCondition},
		{"?", ErrBadCondition},
		{"FOO $01, $02", ErrBadMnemonic},
		{"MO", ErrBadMnemonic},
		{"MOV $01 $02", ErrExpectedComma},
		{"MOV $01", ErrExpectedComma},
		{"MOV $, $02", ErrDigitsMissing},
		{"MOV $01, #$", ErrDigitsMissing},
		{"MOV $12345, $02", ErrOutOfRange},
		{"MOV $01, #$10000", ErrOutOfRange},
		{"MOV NOPE, $02", ErrSymbolUnknown},
	}

	for _, entry := range table {
		ps := NewParser(strings.NewReader(entry.text))
		ins, err := ps.Next()
		assert.ErrorIs(err, entry.err, entry.text)
		assert.Equal(Instruction{}, ins, entry.text)

		var syntax ErrSyntax
		if assert.ErrorAs(err, &syntax, entry.text) {
			assert.Equal(1, syntax.LineNo, entry.text)
		}
	}
}

func TestParser_Modes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		mode ErrModeUnsupported
	}){
		{"MOV #$01, $02", ModeImmediateTarget},
		{"MOV #$0010, $02", ModeImmediateTarget},
		{"MOV $0010, $0020", ModeMemoryToMemory},
		{"MOV $0010, #$01", ModeImmediateToMemory},
		{"MOV $0010, *$01", ModeIndirectToMemory},
		{"MOV $01, *$0010", ModeMemoryIndirect},
	}

	for _, entry := range table {
		_, err := NewParser(strings.NewReader(entry.text)).Next()
		var mode ErrModeUnsupported
		if assert.ErrorAs(err, &mode, entry.text) {
			assert.Equal(entry.mode, mode, entry.text)
		}
	}
}

func TestParser_Equate(t *testing.T) {
	assert := assert.New(t)

	ps := NewParser(strings.NewReader("movw pc, #TARGET\nMOV Buffer, SR"))
	ps.Equate = map[string]string{
		"PC":     "$02",
		"SR":     "$06",
		"TARGET": "$0800",
		"Buffer": "$0400",
	}

	ins, err := ps.Next()
	assert.NoError(err)
	assert.Equal(Instruction{Operation: OP_MOV, Size: SIZE_WORD, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x0800}, ins)
	assert.Equal(1, ps.LineNo())

	ins, err = ps.Next()
	assert.NoError(err)
	assert.Equal(Instruction{Operation: OP_MOV, Mode: MODE_REG_MEM, Reg: 6, Operand: 0x0400}, ins)
	assert.Equal(2, ps.LineNo())

	done, err := ps.AtEnd()
	assert.NoError(err)
	assert.True(done)
}

func TestParser_EquateBad(t *testing.T) {
	assert := assert.New(t)

	ps := NewParser(strings.NewReader("MOV BAD, $02"))
	ps.Equate = map[string]string{"BAD": "0x10"}

	_, err := ps.Next()
	assert.ErrorIs(err, ErrExpectedNumber)
}

func TestParser_ReadError(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	ps := NewParser(iotest.ErrReader(boom))

	_, err := ps.AtEnd()
	assert.ErrorIs(err, boom)

	_, err = ps.Next()
	assert.ErrorIs(err, boom)
	assert.NotErrorIs(err, ErrBadMnemonic)
}

func TestParser_Position(t *testing.T) {
	assert := assert.New(t)

	ps := NewParser(strings.NewReader("MOV $01, $02\n\n  MOV $01 $02"))

	_, err := ps.Next()
	assert.NoError(err)

	_, err = ps.Next()
	var syntax ErrSyntax
	if assert.ErrorAs(err, &syntax) {
		assert.Equal(3, syntax.LineNo)
		assert.ErrorIs(syntax, ErrExpectedComma)
	}
}

func TestParser_DigitCount(t *testing.T) {
	assert := assert.New(t)

	check := func(text string, value int, memory bool) {
		ins, err := NewParser(strings.NewReader(fmt.Sprintf("MOV %s, $01", text))).Next()
		if !assert.NoError(err, text) {
			return
		}
		if memory {
			assert.Equal(MODE_REG_MEM, ins.Mode, text)
			assert.Equal(value, ins.Operand, text)
			assert.Equal(1, ins.Reg, text)
		} else {
			assert.Equal(MODE_REG_REG, ins.Mode, text)
			assert.Equal(value, ins.Reg, text)
			assert.Equal(0x0100, ins.Operand, text)
		}
	}

	for value := range 0x100 {
		if value < 0x10 {
			check(fmt.Sprintf("$%X", value), value, false)
		}
		check(fmt.Sprintf("$%02X", value), value, false)
		check(fmt.Sprintf("$%02x", value), value, false)
	}

	for value := 0; value < 0x1_0000; value += 0x0107 {
		if value < 0x1000 {
			check(fmt.Sprintf("$%03X", value), value, true)
		}
		check(fmt.Sprintf("$%04X", value), value, true)
	}
	check("$FFFF", 0xffff, true)
	check("$000", 0, true)
}
