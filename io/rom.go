package io

import (
	"encoding/binary"
	"iter"
)

// Rom is a byte image that is copied into memory at Base.
type Rom struct {
	Base uint16
	Data []byte
}

// NewRom creates an image from instruction words.
func NewRom(base uint16, words ...uint32) (rc *Rom) {
	rc = &Rom{
		Base: base,
		Data: make([]byte, 0, len(words)*WORD_SIZE),
	}

	for _, word := range words {
		rc.Data = binary.LittleEndian.AppendUint32(rc.Data, word)
	}

	return
}

// Receive returns an iterator of the address and value of each byte.
// Addresses wrap at the end of the 16-bit address space.
func (rc *Rom) Receive() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, value byte) bool) {
		for n, value := range rc.Data {
			if !yield(rc.Base+uint16(n), value) {
				return
			}
		}
	}
}

// Words returns an iterator of the complete instruction words in the image.
func (rc *Rom) Words() iter.Seq[uint32] {
	return func(yield func(word uint32) bool) {
		for n := 0; n+WORD_SIZE <= len(rc.Data); n += WORD_SIZE {
			if !yield(binary.LittleEndian.Uint32(rc.Data[n:])) {
				return
			}
		}
	}
}
