// Package seg14 provides the 14-segment font used by the alphanum4 display.
//
// Each character cell of the backpack has fourteen segments plus a decimal
// point. A cell is described by a 16-bit Mask where bit i lights one segment:
//
//	  ---A---
//	 |\  |  /|
//	 F H J K B
//	 |  \|/  |
//	  -G1 G2-
//	 |  /|\  |
//	 E L M N C
//	 |/  |  \|
//	  ---D---  DP
//
//	Bit:  0 1 2 3 4 5 6  7  8 9 10 11 12 13 14
//	Seg:  A B C D E F G1 G2 H J K  L  M  N  DP
//
// Bit 15 is not wired.
//
// This package provides:
//
// - Mask: a segment mask and helpers to test and toggle bits
// - Digit: the number font (0-9)
// - Char: the ASCII font (unsupported bytes render blank)
// - Render and RenderRow: ASCII-art pictures of masks, handy in logs
//
// Example usage:
//
//	m := seg14.Char('A').WithDot(true)
//	fmt.Println(m.Render())
package seg14
