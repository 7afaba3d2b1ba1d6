package alphanum4

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientDigits is returned by SetFloat when the integer part of the
// value does not fit in the cells available, even without fractional digits.
var ErrInsufficientDigits = errors.New("alphanum4: insufficient digits to display value")

// MaxBase is the largest base SetFloat accepts; the number font only has
// glyphs for 0-9.
const MaxBase = 10

// SetFloat writes value right-aligned in the cells from start to the last
// one.
//
// fractionalDigits is the precision wanted after the decimal point; it is
// reduced as needed for the integer part to fit. Rounding is half away from
// zero and trailing fractional zeros are kept, so 2.0 with two fractional
// digits reads "2.00". Cells left of the number, down to start, are blanked.
//
// base must be in 2-10; anything else panics. ErrInsufficientDigits is
// returned, with nothing written, when the number cannot be shown. NaN and
// infinities are never shown.
func (d *Display) SetFloat(start Index, value float64, fractionalDigits, base uint8) error {
	start.check()
	if base < 2 || base > MaxBase {
		panic(fmt.Sprintf("alphanum4: unsupported base %d", base))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ErrInsufficientDigits
	}

	available := Len - int(start)
	negative := value < 0
	if negative {
		// The sign takes a cell.
		available--
		value = -value
	}
	if available == 0 {
		return ErrInsufficientDigits
	}

	// The fractional digits and the units digit must fit.
	frac := int(fractionalDigits)
	if frac >= available {
		frac = available - 1
	}

	b := float64(base)
	limit := math.Pow(b, float64(available))
	scaled := scaleRound(value, math.Pow(b, float64(frac)))
	for scaled >= limit {
		if frac == 0 {
			return ErrInsufficientDigits
		}
		frac--
		scaled = scaleRound(value, math.Pow(b, float64(frac)))
	}

	n := uint64(scaled)
	pos := Len - 1
	for i := 0; n != 0 || i <= frac; i++ {
		at := Index(pos)
		d.SetDigit(at, uint8(n%uint64(base)))
		if frac != 0 && i == frac {
			d.SetDot(at, true)
		}
		pos--
		n /= uint64(base)
	}

	if negative {
		d.SetChar(Index(pos), '-')
		pos--
	}

	for ; pos >= int(start); pos-- {
		d.Clear(Index(pos))
	}
	return nil
}

// scaleRound returns v*factor rounded half up to an integer.
func scaleRound(v, factor float64) float64 {
	return math.Floor(v*factor + 0.5)
}
