package cpu

// ROT argument bits.
const (
	ROT_COUNT_MASK = 0b0_0111 // Bit positions to move.
	ROT_RIGHT      = 0b0_1000 // Rotate towards bit 0.
	ROT_SHIFT      = 0b1_0000 // Shift with zero fill instead of rotating.
)

// doAlu performs one byte-wide operation of P with Q.
// Each turn is independent: no carry passes between the bytes of a word.
func (cp *Cpu) doAlu(op Operation, p, q uint8) (output uint8, carry, overflow bool) {
	switch op {
	case OP_MOV, OP_HUH: // reserved executes as mov
		output = q
	case OP_ADC:
		sum := int(p) + int(q)
		output = uint8(sum)
		carry = sum > 0xff
		overflow = (^(p ^ q) & (p ^ output) & 0x80) != 0
	case OP_SBC:
		diff := int(p) - int(q)
		output = uint8(diff)
		carry = diff < 0 // borrow
		overflow = ((p ^ q) & (p ^ output) & 0x80) != 0
	case OP_AND:
		output = p & q
	case OP_ORR:
		output = p | q
	case OP_XOR:
		output = p ^ q
	case OP_ROT:
		output, carry = rotate(p, q)
	}

	return
}

// rotate moves the bits of p as directed by the argument q.
// carry is the last bit moved out of the byte.
func rotate(p, q uint8) (output uint8, carry bool) {
	count := q & ROT_COUNT_MASK
	if count == 0 {
		output = p
		return
	}

	right := (q & ROT_RIGHT) != 0
	shift := (q & ROT_SHIFT) != 0

	if right {
		carry = ((p >> (count - 1)) & 1) != 0
		output = p >> count
		if !shift {
			output |= p << (8 - count)
		}
	} else {
		carry = ((p >> (8 - count)) & 1) != 0
		output = p << count
		if !shift {
			output |= p >> (8 - count)
		}
	}

	return
}

// flags computes the status register flag bits for a completed operation.
func flags(last uint8, zero, carry, overflow bool) (sr uint8) {
	if carry {
		sr |= SR_CARRY
	}
	if overflow {
		sr |= SR_OVERFLOW
	}
	if (last & 0x80) != 0 {
		sr |= SR_NEGATIVE
	}
	if zero {
		sr |= SR_ZERO
	}

	return
}
