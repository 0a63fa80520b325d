package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction_Encode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		ins  Instruction
		word uint32
	}){
		{"mov_imm_word",
			Instruction{Operation: OP_MOV, Size: SIZE_WORD, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x1234},
			0x1234_02c8},
		{"adc_gt_reg",
			Instruction{Operation: OP_ADC, Condition: COND_GT, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0200},
			0x0200_0112},
		{"mov_reg_mem",
			Instruction{Operation: OP_MOV, Mode: MODE_REG_MEM, Reg: 3, Operand: 0x0010},
			0x0010_0340},
		{"mov_mem_reg",
			Instruction{Operation: OP_MOV, Mode: MODE_MEM_REG, Reg: 3, Operand: 0x0010},
			0x0010_0380},
		{"mov_indirect",
			Instruction{Operation: OP_MOV, Mode: MODE_REG_REG, Reg: 1, Operand: 0x0400 | INDIRECT},
			0x0401_0100},
		{"rot_eq_word",
			Instruction{Operation: OP_ROT, Size: SIZE_WORD, Condition: COND_EQ, Mode: MODE_IMM_REG, Reg: 0xff, Operand: 0xffff},
			0xffff_ffff},
	}

	for _, entry := range table {
		word, err := Encode(entry.ins)
		assert.NoError(err, entry.name)
		assert.Equal(entry.word, word, entry.name)

		assert.Equal(entry.ins, Decode(word), entry.name)

		data, err := entry.ins.Bytes()
		assert.NoError(err, entry.name)
		assert.Equal(uint8(word), data[0], entry.name)
		assert.Equal(uint8(word>>24), data[3], entry.name)
		assert.Equal(entry.ins, DecodeBytes(data[:]), entry.name)
	}
}

func TestInstruction_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		ins   Instruction
		field string
	}){
		{"operation", Instruction{Operation: Operation(8)}, "operation"},
		{"size", Instruction{Size: Size(2)}, "size"},
		{"condition", Instruction{Condition: Condition(-1)}, "condition"},
		{"mode", Instruction{Mode: Mode(4)}, "mode"},
		{"reg_wide", Instruction{Reg: 0x100}, "reg"},
		{"reg_negative", Instruction{Reg: -1}, "reg"},
		{"operand_wide", Instruction{Operand: 0x1_0000}, "operand"},
	}

	for _, entry := range table {
		word, err := Encode(entry.ins)
		assert.ErrorIs(err, ErrOutOfRange, entry.name)
		assert.Equal(uint32(0), word, entry.name)

		var field_err ErrField
		if assert.ErrorAs(err, &field_err, entry.name) {
			assert.Equal(entry.field, field_err.Field, entry.name)
		}

		_, err = entry.ins.Bytes()
		assert.ErrorIs(err, ErrOutOfRange, entry.name)
	}
}

func TestInstruction_Accessors(t *testing.T) {
	assert := assert.New(t)

	ins := Instruction{Mode: MODE_REG_REG, Reg: 1, Operand: 0x0401}
	assert.Equal(uint8(0x01), ins.Lo())
	assert.Equal(uint8(0x04), ins.Hi())
	assert.True(ins.Indirect())
	assert.Equal(1, ins.Turns())

	ins.Mode = MODE_IMM_REG
	assert.False(ins.Indirect())

	ins.Size = SIZE_WORD
	assert.Equal(2, ins.Turns())
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		ins  Instruction
		text string
	}){
		{Instruction{Operation: OP_MOV, Size: SIZE_WORD, Mode: MODE_IMM_REG, Reg: 2, Operand: 0x1234}, "MOVW $02, #$1234"},
		{Instruction{Operation: OP_ADC, Condition: COND_GT, Reg: 1, Operand: 0x0200}, "?GT ADC $01, $02"},
		{Instruction{Operation: OP_MOV, Mode: MODE_REG_MEM, Reg: 3, Operand: 0x0010}, "MOV $0010, $03"},
		{Instruction{Operation: OP_SBC, Condition: COND_LT, Mode: MODE_MEM_REG, Reg: 3, Operand: 0x0010}, "?LT SBC $03, $0010"},
		{Instruction{Operation: OP_ORR, Condition: COND_EQ, Reg: 1, Operand: 0x0401}, "?EQ ORR $01, *$04"},
		{Instruction{Operation: OP_ROT, Mode: MODE_IMM_REG, Reg: 6, Operand: 0x19}, "ROT $06, #$19"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.ins.String())
	}
}

func FuzzCodec(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(0x1234_02c8))
	f.Add(uint32(0xffff_ffff))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		ins := Decode(word)
		encoded, err := Encode(ins)
		assert.NoError(err)
		assert.Equal(word, encoded)
	})
}

func FuzzReparse(f *testing.F) {
	f.Add(uint8(OP_MOV), uint8(COND_ALWAYS), uint8(SIZE_WORD), uint8(MODE_IMM_REG), uint8(2), uint16(0x1234))
	f.Add(uint8(OP_ADC), uint8(COND_GT), uint8(SIZE_BYTE), uint8(MODE_REG_REG), uint8(1), uint16(0x0201))
	f.Add(uint8(OP_ROT), uint8(COND_EQ), uint8(SIZE_BYTE), uint8(MODE_MEM_REG), uint8(0xff), uint16(0xffff))

	f.Fuzz(func(t *testing.T, op, cond, size, mode, reg uint8, operand uint16) {
		assert := assert.New(t)

		ins := Instruction{
			Operation: Operation(op % 8),
			Condition: Condition(cond % 4),
			Size:      Size(size % 2),
			Mode:      Mode(mode % 4),
			Reg:       int(reg),
			Operand:   int(operand),
		}

		// Restrict to the forms the parser can produce.
		switch ins.Mode {
		case MODE_REG_REG:
			ins.Operand &= 0xff00 | INDIRECT
		case MODE_IMM_REG:
			if ins.Operand > 0xff {
				ins.Size = SIZE_WORD
			}
		}

		text := ins.String()
		again, err := NewParser(strings.NewReader(text)).Next()
		assert.NoError(err, text)
		assert.Equal(ins, again, text)
	})
}
