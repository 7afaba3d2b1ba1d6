// Package seg14 provides the 14-segment font used by the alphanum4 display.
//
// Bit assignments follow the Adafruit 0.54" alphanumeric backpack wiring.
package seg14

import "fmt"

// Segment bit positions within a Mask.
const (
	SegA  uint8 = iota // Top
	SegB               // Upper right
	SegC               // Lower right
	SegD               // Bottom
	SegE               // Lower left
	SegF               // Upper left
	SegG1              // Middle left
	SegG2              // Middle right
	SegH               // Upper left diagonal
	SegJ               // Upper center
	SegK               // Upper right diagonal
	SegL               // Lower left diagonal
	SegM               // Lower center
	SegN               // Lower right diagonal
	DotBit             // Decimal point
)

// Bits is the number of bits a Mask carries, including the unused top bit.
const Bits = 16

// Mask is the set of lit segments of one character cell.
type Mask uint16

// Has reports whether the given segment bit is lit.
func (m Mask) Has(bit uint8) bool {
	return bit < Bits && m&(1<<bit) != 0
}

// WithDot returns m with the decimal point turned on or off.
func (m Mask) WithDot(on bool) Mask {
	if on {
		return m | 1<<DotBit
	}
	return m &^ (1 << DotBit)
}

// String returns the mask as a binary literal.
func (m Mask) String() string {
	return fmt.Sprintf("0b%016b", uint16(m))
}

// numberFont maps the digits 0-9 to segment masks.
var numberFont = [10]Mask{
	0b0000110000111111, // 0
	0b0000000000000110, // 1
	0b0000000011011011, // 2
	0b0000000010001111, // 3
	0b0000000011100110, // 4
	0b0010000001101001, // 5
	0b0000000011111101, // 6
	0b0000000000000111, // 7
	0b0000000011111111, // 8
	0b0000000011101111, // 9
}

// asciiFont maps every byte value to a segment mask. Entries past 0x7F are
// blank.
var asciiFont = [256]Mask{
	// 0x00-0x0F light a single segment each, for wiring checks.
	0b0000000000000001,
	0b0000000000000010,
	0b0000000000000100,
	0b0000000000001000,
	0b0000000000010000,
	0b0000000000100000,
	0b0000000001000000,
	0b0000000010000000,
	0b0000000100000000,
	0b0000001000000000,
	0b0000010000000000,
	0b0000100000000000,
	0b0001000000000000,
	0b0010000000000000,
	0b0100000000000000,
	0b1000000000000000,
	0, 0, 0, 0, 0, 0, 0, 0,
	0b0001001011001001,
	0b0001010111000000,
	0b0001001011111001,
	0b0000000011100011,
	0b0000010100110000,
	0b0001001011001000,
	0b0011101000000000,
	0b0001011100000000,
	0b0000000000000000, // ' '
	0b0000000000000110, // !
	0b0000001000100000, // "
	0b0001001011001110, // #
	0b0001001011101101, // $
	0b0000110000100100, // %
	0b0010001101011101, // &
	0b0000010000000000, // '
	0b0010010000000000, // (
	0b0000100100000000, // )
	0b0011111111000000, // *
	0b0001001011000000, // +
	0b0000100000000000, // ,
	0b0000000011000000, // -
	0b0100000000000000, // .
	0b0000110000000000, // /
	0b0000110000111111, // 0
	0b0000000000000110, // 1
	0b0000000011011011, // 2
	0b0000000010001111, // 3
	0b0000000011100110, // 4
	0b0010000001101001, // 5
	0b0000000011111101, // 6
	0b0000000000000111, // 7
	0b0000000011111111, // 8
	0b0000000011101111, // 9
	0b0001001000000000, // :
	0b0000101000000000, // ;
	0b0010010000000000, // <
	0b0000000011001000, // =
	0b0000100100000000, // >
	0b0001000010000011, // ?
	0b0000001010111011, // @
	0b0000000011110111, // A
	0b0001001010001111, // B
	0b0000000000111001, // C
	0b0001001000001111, // D
	0b0000000011111001, // E
	0b0000000001110001, // F
	0b0000000010111101, // G
	0b0000000011110110, // H
	0b0001001000001001, // I
	0b0000000000011110, // J
	0b0010010001110000, // K
	0b0000000000111000, // L
	0b0000010100110110, // M
	0b0010000100110110, // N
	0b0000000000111111, // O
	0b0000000011110011, // P
	0b0010000000111111, // Q
	0b0010000011110011, // R
	0b0000000011101101, // S
	0b0001001000000001, // T
	0b0000000000111110, // U
	0b0000110000110000, // V
	0b0010100000110110, // W
	0b0010110100000000, // X
	0b0001010100000000, // Y
	0b0000110000001001, // Z
	0b0000000000111001, // [
	0b0010000100000000, // \
	0b0000000000001111, // ]
	0b0000110000000011, // ^
	0b0000000000001000, // _
	0b0000000100000000, // `
	0b0001000001011000, // a
	0b0010000001111000, // b
	0b0000000011011000, // c
	0b0000100010001110, // d
	0b0000100001011000, // e
	0b0000000001110001, // f
	0b0000010010001110, // g
	0b0001000001110000, // h
	0b0001000000000000, // i
	0b0000000000001110, // j
	0b0011011000000000, // k
	0b0000000000110000, // l
	0b0001000011010100, // m
	0b0001000001010000, // n
	0b0000000011011100, // o
	0b0000000101110000, // p
	0b0000010010000110, // q
	0b0000000001010000, // r
	0b0010000010001000, // s
	0b0000000001111000, // t
	0b0000000000011100, // u
	0b0010000000000100, // v
	0b0010100000010100, // w
	0b0010100011000000, // x
	0b0010000000001100, // y
	0b0000100001001000, // z
	0b0000100101001001, // {
	0b0001001000000000, // |
	0b0010010010001001, // }
	0b0000010100100000, // ~
	0b0011111111111111, // DEL
}

// Digit returns the mask for the digit v.
//
// v must be in 0-9; anything else is a programming error and panics.
func Digit(v uint8) Mask {
	if int(v) >= len(numberFont) {
		panic(fmt.Sprintf("seg14: digit %d out of range", v))
	}
	return numberFont[v]
}

// Char returns the mask for the ASCII byte b. Bytes without a glyph return
// an empty mask.
func Char(b byte) Mask {
	return asciiFont[b]
}
