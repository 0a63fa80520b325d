package emulator

import (
	"errors"

	"github.com/ezrec/tricolore/translate"
)

var f = translate.From

var (
	ErrTickLimit = errors.New(f("tick limit reached"))
)

// ErrRuntime indicates the location where execution stopped.
type ErrRuntime struct {
	Pc     uint16
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo != 0 {
		return f("pc %04X line %d %v", err.Pc, err.LineNo, err.Err)
	}
	return f("pc %04X %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
