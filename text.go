package alphanum4

import (
	"errors"

	"periph.io/x/devices/v3/alphanum4/seg14"
)

// ErrTooLong is returned by WriteString when the text needs more cells than
// are available.
var ErrTooLong = errors.New("alphanum4: text too long")

// WriteString writes s left-aligned in the cells from start to the last one
// and blanks the cells after it.
//
// A '.' following a character lights that character's dot, so "12.5" takes
// three cells. A '.' with no character before it takes a blank cell of its
// own. s is treated as bytes; bytes without a glyph are shown blank.
//
// If s does not fit, ErrTooLong is returned and nothing is written.
func (d *Display) WriteString(start Index, s string) error {
	start.check()
	cells := textMasks(s)
	if len(cells) > Len-int(start) {
		return ErrTooLong
	}
	pos := start
	for _, m := range cells {
		d.SetMask(pos, m)
		pos++
	}
	for ; pos < Len; pos++ {
		d.Clear(pos)
	}
	return nil
}

// textMasks converts s into one mask per cell, folding dots into the
// preceding character.
func textMasks(s string) []seg14.Mask {
	masks := make([]seg14.Mask, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			masks = append(masks, seg14.Mask(0).WithDot(true))
			continue
		}
		m := seg14.Char(s[i])
		if i+1 < len(s) && s[i+1] == '.' {
			m = m.WithDot(true)
			i++
		}
		masks = append(masks, m)
	}
	return masks
}
