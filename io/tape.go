package io

import (
	"encoding/binary"
	"errors"
	"io"
	"iter"
	"slices"
)

// WORD_SIZE is the size in bytes of one word on the tape.
const WORD_SIZE = 4

// Tape provides the binary instruction stream: a headerless sequence of
// little-endian 32-bit words.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	err error
}

// Rewind clears any error from a previous Receive.
func (tc *Tape) Rewind() {
	tc.err = nil
}

// Err returns the error that ended the last Receive, if any.
// A clean end of input is not an error.
func (tc *Tape) Err() error {
	return tc.err
}

// Receive returns an iterator that yields words from the input stream.
// A trailing partial word ends iteration with ErrTapePartial.
func (tc *Tape) Receive() iter.Seq[uint32] {
	return func(yield func(word uint32) bool) {
		var data [WORD_SIZE]byte
		for {
			_, err := io.ReadFull(tc.Input, data[:])
			switch {
			case err == nil:
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, io.ErrUnexpectedEOF):
				tc.err = ErrTapePartial
				return
			default:
				tc.err = err
				return
			}
			if !yield(binary.LittleEndian.Uint32(data[:])) {
				return
			}
		}
	}
}

// ReadAll reads every word from the input stream.
func (tc *Tape) ReadAll() (words []uint32, err error) {
	tc.Rewind()
	words = slices.Collect(tc.Receive())
	err = tc.Err()
	return
}

// Send writes a word to the output stream.
func (tc *Tape) Send(word uint32) (err error) {
	if tc.Output == nil {
		err = ErrTapeOutput
		return
	}

	var data [WORD_SIZE]byte
	binary.LittleEndian.PutUint32(data[:], word)
	_, err = tc.Output.Write(data[:])

	return
}
