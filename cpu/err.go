package cpu

import (
	"errors"

	"github.com/ezrec/tricolore/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted       = errors.New(f("halted"))
	ErrRegisterFull = errors.New(f("register page full"))

	// Codec errors
	ErrOutOfRange = errors.New(f("out of range"))

	// Assembler errors
	ErrBadCondition    = errors.New(f("bad condition"))
	ErrBadMnemonic     = errors.New(f("bad mnemonic"))
	ErrExpectedComma   = errors.New(f("expected ','"))
	ErrExpectedNumber  = errors.New(f("expected '$'"))
	ErrDigitsMissing   = errors.New(f("digits missing"))
	ErrSymbolUnknown   = errors.New(f("symbol unknown"))
	ErrUnsupportedMode = errors.New(f("unsupported mode"))
)

// ErrField is returned by Encode when a field value exceeds its bit width.
type ErrField struct {
	Field string
	Value int
}

func (err ErrField) Error() string {
	return f("%v %d out of range", err.Field, err.Value)
}

func (err ErrField) Is(target error) bool {
	return target == ErrOutOfRange
}

// ErrModeUnsupported names an operand combination the encoding cannot represent.
type ErrModeUnsupported string

func (err ErrModeUnsupported) Error() string {
	return f("unsupported mode: %v", string(err))
}

func (err ErrModeUnsupported) Is(target error) bool {
	return target == ErrUnsupportedMode
}

const (
	ModeImmediateTarget   = ErrModeUnsupported("immediate-destination")
	ModeImmediateToMemory = ErrModeUnsupported("immediate-to-memory")
	ModeMemoryToMemory    = ErrModeUnsupported("memory-to-memory")
	ModeIndirectToMemory  = ErrModeUnsupported("indirect-to-memory")
	ModeMemoryIndirect    = ErrModeUnsupported("indirect-through-memory")
)

// ErrSymbol is an unknown symbolic operand.
type ErrSymbol string

func (err ErrSymbol) Error() string {
	return f("'%v' is not a known symbol", string(err))
}

func (err ErrSymbol) Is(target error) bool {
	return target == ErrSymbolUnknown
}

// ErrSyntax locates an assembler error in the source text.
type ErrSyntax struct {
	LineNo int
	Column int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d col %d %v", err.LineNo, err.Column, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
