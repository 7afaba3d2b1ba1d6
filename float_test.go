package alphanum4

import (
	"errors"
	"math"
	"testing"

	"periph.io/x/devices/v3/alphanum4/seg14"
)

// digits builds the expected cells from a string such as " 0.00".
func digits(t *testing.T, s string) [Len]seg14.Mask {
	t.Helper()
	m := textMasks(s)
	if len(m) != Len {
		t.Fatalf("digits(%q) has %d cells, want %d", s, len(m), Len)
	}
	var out [Len]seg14.Mask
	copy(out[:], m)
	return out
}

func TestSetFloat(t *testing.T) {
	tests := []struct {
		name  string
		start Index
		value float64
		frac  uint8
		base  uint8
		want  string
	}{
		{"zero keeps fractional zeros", First, 0, 2, 10, " 0.00"},
		{"zero without fraction", First, 0, 0, 10, "   0"},
		{"negative fits whole display", First, -3.14, 2, 10, "-3.14"},
		{"positive fits", First, 3.14159, 3, 10, "3.142"},
		{"trailing zeros kept", First, 2, 2, 10, " 2.00"},
		{"integer", First, 42, 0, 10, "  42"},
		{"four digit integer", First, 9999, 2, 10, "9999"},
		{"precision shrinks", First, 123.456, 3, 10, "123.5"},
		{"precision shrinks to integer", First, 1234.5, 2, 10, "1235"},
		{"rounding carries into new digit", First, 999.96, 2, 10, "1000"},
		{"round half up", First, 1.25, 1, 10, "  1.3"},
		{"round half up to integer", First, 0.5, 0, 10, "   1"},
		{"small negative", First, -0.5, 1, 10, " -0.5"},
		{"negative rounds away from zero", First, -2.5, 0, 10, "  -3"},
		{"fraction clamped to available cells", First, 0.001, 6, 10, "0.001"},
		{"last cell only", Fourth, 7, 2, 10, "   7"},
		{"binary", First, 5, 0, 2, " 101"},
		{"binary fraction", First, 2.5, 1, 2, " 10.1"},
		{"octal", First, 64, 0, 8, " 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newBitDisplay()
			if err := d.SetFloat(tt.start, tt.value, tt.frac, tt.base); err != nil {
				t.Fatalf("SetFloat(%d, %v, %d, %d) = %v", tt.start, tt.value, tt.frac, tt.base, err)
			}
			want := digits(t, tt.want)
			if got := buf.masks(); got != want {
				t.Errorf("SetFloat(%d, %v, %d, %d) =\n%s\nwant %q\n%s",
					tt.start, tt.value, tt.frac, tt.base,
					seg14.RenderRow(got[:]), tt.want, seg14.RenderRow(want[:]))
			}
		})
	}
}

func TestSetFloatAfterChar(t *testing.T) {
	d, buf := newBitDisplay()
	d.SetChar(First, 'X')
	if err := d.SetFloat(Second, -3.14, 2, 10); err != nil {
		t.Fatalf("SetFloat() = %v", err)
	}
	if got, want := buf.masks(), digits(t, "X-3.1"); got != want {
		t.Errorf("masks =\n%s\nwant\n%s", seg14.RenderRow(got[:]), seg14.RenderRow(want[:]))
	}
}

func TestSetFloatBlanksDownToStart(t *testing.T) {
	d, buf := newBitDisplay()
	for i := First; i < Len; i++ {
		d.SetChar(i, '8')
		d.SetDot(i, true)
	}
	if err := d.SetFloat(Second, 5, 0, 10); err != nil {
		t.Fatalf("SetFloat() = %v", err)
	}
	want := [Len]seg14.Mask{seg14.Char('8').WithDot(true), 0, 0, seg14.Digit(5)}
	if got := buf.masks(); got != want {
		t.Errorf("masks =\n%s\nwant\n%s", seg14.RenderRow(got[:]), seg14.RenderRow(want[:]))
	}
}

func TestSetFloatInsufficientDigits(t *testing.T) {
	tests := []struct {
		name  string
		start Index
		value float64
		frac  uint8
	}{
		{"five digit integer", First, 12345, 0},
		{"five digit integer with fraction", First, 12345.6, 3},
		{"negative four digit integer", First, -1000, 1},
		{"rounding overflows", First, 9999.5, 0},
		{"negative on last cell", Fourth, -1, 0},
		{"two digits on last cell", Fourth, 10, 0},
		{"huge", First, 1e300, 2},
		{"NaN", First, math.NaN(), 2},
		{"infinity", First, math.Inf(1), 0},
		{"negative infinity", First, math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, buf := newBitDisplay()
			if err := d.WriteString(First, "ABCD"); err != nil {
				t.Fatalf("WriteString() = %v", err)
			}
			before := buf.ram
			buf.updates = 0

			err := d.SetFloat(tt.start, tt.value, tt.frac, 10)
			if !errors.Is(err, ErrInsufficientDigits) {
				t.Errorf("SetFloat(%d, %v, %d, 10) = %v, want %v", tt.start, tt.value, tt.frac, err, ErrInsufficientDigits)
			}
			if buf.updates != 0 || buf.ram != before {
				t.Errorf("failed SetFloat made %d updates", buf.updates)
			}
		})
	}
}

func TestSetFloatInvalidBasePanics(t *testing.T) {
	for _, base := range []uint8{0, 1, 11, 16} {
		func() {
			d, _ := newBitDisplay()
			defer func() {
				if recover() == nil {
					t.Errorf("SetFloat with base %d did not panic", base)
				}
			}()
			_ = d.SetFloat(First, 1, 0, base)
		}()
	}
}

func TestScaleRound(t *testing.T) {
	tests := []struct {
		v, factor, want float64
	}{
		{3.14, 100, 314},
		{1.25, 10, 13},
		{0.5, 1, 1},
		{0.49, 1, 0},
		{2, 0.1, 0},
		{5, 0.1, 1},
	}
	for _, tt := range tests {
		if got := scaleRound(tt.v, tt.factor); got != tt.want {
			t.Errorf("scaleRound(%v, %v) = %v, want %v", tt.v, tt.factor, got, tt.want)
		}
	}
}
