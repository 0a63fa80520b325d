package io

import (
	"errors"

	"github.com/ezrec/tricolore/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapePartial = errors.New(f("partial instruction word"))
	ErrTapeOutput  = errors.New(f("tape has no output"))
)
