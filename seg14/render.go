package seg14

import "strings"

const (
	cellWidth  = 6
	cellHeight = 5
)

type cell [cellHeight][cellWidth]byte

// glyph draws m into a cell. The last column holds the decimal point.
func (m Mask) glyph() cell {
	var c cell
	for y := range c {
		for x := range c[y] {
			c[y][x] = ' '
		}
	}
	put := func(bit uint8, y, x int, ch byte) {
		if m.Has(bit) {
			c[y][x] = ch
		}
	}
	for x := 1; x <= 3; x++ {
		put(SegA, 0, x, '-')
		put(SegD, 4, x, '-')
	}
	put(SegF, 1, 0, '|')
	put(SegH, 1, 1, '\\')
	put(SegJ, 1, 2, '|')
	put(SegK, 1, 3, '/')
	put(SegB, 1, 4, '|')
	put(SegG1, 2, 1, '-')
	put(SegG2, 2, 3, '-')
	put(SegE, 3, 0, '|')
	put(SegL, 3, 1, '/')
	put(SegM, 3, 2, '|')
	put(SegN, 3, 3, '\\')
	put(SegC, 3, 4, '|')
	put(DotBit, 4, 5, '.')
	return c
}

// Render returns a five line ASCII-art picture of m.
func (m Mask) Render() string {
	return RenderRow([]Mask{m})
}

// RenderRow returns a five line ASCII-art picture of masks laid out left to
// right. Trailing spaces are trimmed from each line.
func RenderRow(masks []Mask) string {
	cells := make([]cell, len(masks))
	for i, m := range masks {
		cells[i] = m.glyph()
	}
	lines := make([]string, cellHeight)
	var b strings.Builder
	for y := range lines {
		b.Reset()
		for _, c := range cells {
			b.Write(c[y][:])
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(lines, "\n")
}
