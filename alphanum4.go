// Package alphanum4 drives a 4 character, 14-segment alphanumeric LED
// backpack.
//
// See the examples for how to use this package.
package alphanum4

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"periph.io/x/devices/v3/alphanum4/ht16k33"
	"periph.io/x/devices/v3/alphanum4/seg14"
)

// Len is the number of character cells on the display.
const Len = 4

// Buffer is the staged display RAM the characters are written into.
//
// UpdateLED must only stage the change; Commit transmits it. ht16k33.Dev
// implements Buffer.
type Buffer interface {
	UpdateLED(loc ht16k33.LEDLocation, on bool)
	Commit() error
}

// WordBuffer is a Buffer that can stage a whole character cell at once.
// Word i covers RAM rows 2*i (bits 0-7) and 2*i+1 (bits 8-15).
type WordBuffer interface {
	Buffer
	UpdateWord(i uint8, w uint16)
}

// Index is the position of a character cell, left to right.
type Index uint8

const (
	First Index = iota
	Second
	Third
	Fourth
)

// IndexOf converts i to an Index. It panics if i is not in 0-3.
func IndexOf(i int) Index {
	if i < 0 || i >= Len {
		panic(fmt.Sprintf("alphanum4: invalid index %d", i))
	}
	return Index(i)
}

func (i Index) check() {
	if i >= Len {
		panic(fmt.Sprintf("alphanum4: invalid index %d", uint8(i)))
	}
}

// Display writes characters, dots and numbers into a Buffer.
//
// Nothing is shown until Commit is called. A Display is not safe for
// concurrent use.
type Display struct {
	buf   Buffer
	clock clockwork.Clock
}

// New returns a Display writing into buf.
func New(buf Buffer) *Display {
	return &Display{
		buf:   buf,
		clock: clockwork.NewRealClock(),
	}
}

// SetDigit writes the digit v (0-9) at index i. It panics if v >= 10.
func (d *Display) SetDigit(i Index, v uint8) {
	d.SetMask(i, seg14.Digit(v))
}

// SetChar writes the ASCII character c at index i. Characters without a
// glyph are shown blank.
func (d *Display) SetChar(i Index, c byte) {
	d.SetMask(i, seg14.Char(c))
}

// SetDot turns the decimal point at index i on or off. The other segments
// are left untouched.
func (d *Display) SetDot(i Index, on bool) {
	i.check()
	d.setBit(i, seg14.DotBit, on)
}

// Clear turns off every segment at index i, including the dot.
func (d *Display) Clear(i Index) {
	d.SetMask(i, 0)
}

// ClearAll blanks the whole display.
func (d *Display) ClearAll() {
	for i := First; i < Len; i++ {
		d.Clear(i)
	}
}

// SetMask writes the raw segment mask m at index i.
func (d *Display) SetMask(i Index, m seg14.Mask) {
	i.check()
	if w, ok := d.buf.(WordBuffer); ok {
		w.UpdateWord(uint8(i), uint16(m))
		return
	}
	for bit := uint8(0); bit < seg14.Bits; bit++ {
		d.setBit(i, bit, m.Has(bit))
	}
}

// Commit transmits the staged characters to the display.
func (d *Display) Commit() error {
	return d.buf.Commit()
}

// String returns a string representation of the display.
func (d *Display) String() string {
	return fmt.Sprintf("alphanum4.Display{%v}", d.buf)
}
