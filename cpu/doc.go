// Package cpu implements the processor and assembler for the Tricolore system.
//
// An instruction is a single 32-bit word holding an operation, a size
// (byte, or word performed as two byte-wide turns), a condition gated on the
// status register, an addressing mode, a register index, and a 16-bit operand.
//
// The processor has no register file of its own. Named registers (ZERO, PC,
// XX, SR, SP) are allocated in a page of the 64K memory image, so operand
// resolution treats registers and memory alike. Execution halts when PC is 0.
//
// The assembler reads one statement at a time, infers the addressing mode
// from the digit count of each $hex operand, and emits each word as soon as
// it is encoded.
package cpu
