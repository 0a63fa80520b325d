package io

import (
	"encoding/binary"
	"slices"
)

// Screen memory layout, relative to the start of the screen region.
const (
	SCREEN_ROWS    = 30    // Tile rows.
	SCREEN_COLUMNS = 30    // Tile columns.
	SCREEN_STRIDE  = 32    // Bytes per tile row.
	SCREEN_BORDER  = 30    // Column of the per-row palette selector word.
	SCREEN_PALETTE = 0x3c0 // Palette words.
	SCREEN_MONO    = 0x400 // Monochrome sprite banks.
	SCREEN_INDEXED = 0x600 // Indexed colour sprite banks.
	SCREEN_SIZE    = 0x800

	SPRITE_ROWS      = 8
	SPRITE_BANK_SIZE = 16 * SPRITE_ROWS // 16 sprites per bank.
	SPRITE_BANKS     = 4
)

// Cell is a decoded tile map entry.
type Cell struct {
	Indexed bool   // Indexed colour (2 bits per pixel), else monochrome.
	Bank    int    // Sprite bank.
	Sprite  int    // Sprite within the bank.
	Palette uint16 // Four 4-bit colour indices.
}

// Screen is a read-only view of the screen region of memory.
type Screen struct {
	Data []byte // At least SCREEN_SIZE bytes.
}

func (sc *Screen) word(offset int) uint16 {
	return binary.LittleEndian.Uint16(sc.Data[offset:])
}

// Tile returns the raw tile map byte.
func (sc *Screen) Tile(row, col int) uint8 {
	return sc.Data[row*SCREEN_STRIDE+col]
}

// Border returns the palette selector word of a row.
func (sc *Screen) Border(row int) uint16 {
	return sc.word(row*SCREEN_STRIDE + SCREEN_BORDER)
}

// Palette returns a palette word.
func (sc *Screen) Palette(n int) uint16 {
	return sc.word(SCREEN_PALETTE + n*2)
}

// Cell decodes a tile map entry.
//
// The top two bits of the tile select a nibble of the row's border word,
// which is the palette index. A zero selector means monochrome.
func (sc *Screen) Cell(row, col int) (cell Cell) {
	tile := sc.Tile(row, col)
	selector := int(tile >> 6)

	cell = Cell{
		Indexed: selector != 0,
		Bank:    int(tile>>4) & 0b11,
		Sprite:  int(tile) & 0b1111,
	}

	palette := int(sc.Border(row)>>(4*selector)) & 0b1111
	cell.Palette = sc.Palette(palette)

	return
}

// SpriteRow returns one row of sprite bits.
// Sprites are laid out four across, with rows interleaved every 4 bytes.
func (sc *Screen) SpriteRow(indexed bool, bank, sprite, row int) uint8 {
	base := SCREEN_MONO
	if indexed {
		base = SCREEN_INDEXED
	}

	sprite_x := sprite & 0b0011
	sprite_y := (sprite & 0b1100) >> 2

	offset := base + bank*SPRITE_BANK_SIZE + sprite_y*SPRITE_ROWS*4 + row*4 + sprite_x
	return sc.Data[offset]
}

// Snapshot returns a copy of the screen region.
func (sc *Screen) Snapshot() []byte {
	return slices.Clone(sc.Data[:SCREEN_SIZE])
}
