package alphanum4

import (
	"fmt"

	"periph.io/x/devices/v3/alphanum4/ht16k33"
	"periph.io/x/devices/v3/alphanum4/seg14"
)

// locate returns the RAM location of segment bit of the cell at index i.
//
// Each cell owns two consecutive RAM rows: bits 0-7 live in row 2*i and bits
// 8-15 in row 2*i+1, one common line per bit.
func locate(i Index, bit uint8) ht16k33.LEDLocation {
	if bit >= seg14.Bits {
		panic(fmt.Sprintf("alphanum4: segment bit %d out of range", bit))
	}
	row := uint8(i) * 2
	if bit >= 8 {
		row++
	}
	return ht16k33.LEDLocation{
		Row:    row,
		Common: 1 << (bit % 8),
	}
}

// setBit stages a single segment.
func (d *Display) setBit(i Index, bit uint8, on bool) {
	d.buf.UpdateLED(locate(i, bit), on)
}
