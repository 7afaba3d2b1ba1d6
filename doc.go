// Package alphanum4 drives a 4 character, 14-segment alphanumeric LED
// backpack built around an HT16K33 controller.
//
// The package turns digits, ASCII characters, decimal points, strings and
// floating point numbers into segment bits. It writes them into a Buffer,
// the staged display RAM of the controller. Nothing reaches the display until
// Commit is called.
//
// # Hardware Connection
//
// Connect the backpack to your system via I²C:
//
//	Backpack Pin → System Pin
//	GND          → GND
//	VCC          → 3.3V or 5V (logic)
//	V+           → 5V (LEDs)
//	SCL          → I²C Clock (SCL)
//	SDA          → I²C Data (SDA)
//
// The default address is 0x70; the A0-A2 jumpers select 0x70-0x77.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/alphanum4"
//		"periph.io/x/devices/v3/alphanum4/ht16k33"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ht16k33.NewI2C(bus, ht16k33.DefaultAddr, nil)
//		defer dev.Halt()
//
//		disp := alphanum4.New(dev)
//
//		// Individual digits and characters
//		disp.SetDigit(alphanum4.First, 1)
//		disp.SetChar(alphanum4.Second, 'A')
//		disp.SetDot(alphanum4.Second, true)
//
//		// A number over the whole display: "-3.14"
//		disp.SetFloat(alphanum4.First, -3.14, 2, 10)
//
//		// A character in front of a number: "X-3.1"
//		disp.SetChar(alphanum4.First, 'X')
//		disp.SetFloat(alphanum4.Second, -3.14, 2, 10)
//
//		disp.Commit()
//	}
//
// # Cell Layout
//
// Each cell owns two consecutive bytes of the controller RAM. Segment bits
// 0-7 of cell i live in row 2*i and bits 8-15 in row 2*i+1; within a row,
// bit b selects common line b%8. The segment bits are described in package
// seg14.
//
// # Numbers
//
// SetFloat right-aligns a number in the cells from a start index to the
// last cell. The precision requested is reduced until the integer part
// fits. If even the integer part and the sign do not fit,
// ErrInsufficientDigits is returned and the display is left untouched.
// Bases 2 to 10 are supported.
//
// # Performance
//
// When the Buffer also implements WordBuffer, as ht16k33.Dev does, a cell is
// staged with a single 16-bit write. Otherwise each of the 16 bits is staged
// on its own.
package alphanum4
