// Package ht16k33 controls a Holtek HT16K33 LED controller via I²C.
//
// The HT16K33 holds a 16 byte display RAM. Each byte is one row address and
// each bit within it selects one common line, so a single LED is addressed
// by an LEDLocation. Updates are staged in an in-memory copy of the RAM and
// only reach the device when Commit is called.
//
// Datasheet:
// https://www.holtek.com/webapi/116711/HT16K33Av102.pdf
package ht16k33

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// DefaultAddr is the I²C address of a backpack with no address jumpers set.
const DefaultAddr uint16 = 0x70

// RAMSize is the size of the display RAM in bytes.
const RAMSize = 16

// MaxBrightness is the highest dimming level.
const MaxBrightness = 15

// MaxHz is the fastest I²C clock the controller supports.
const MaxHz = 400 * physic.KiloHertz

const (
	cmdRAM        = 0x00 // Display data address pointer
	cmdSystem     = 0x20 // System setup, bit 0 turns the oscillator on
	cmdDisplay    = 0x80 // Display setup, bit 0 on, bits 1-2 blink
	cmdBrightness = 0xE0 // Dimming set, low nibble is the level
)

var (
	errHalted     = errors.New("ht16k33: halted")
	errBrightness = errors.New("ht16k33: brightness must be between 0 and 15")
	errBlink      = errors.New("ht16k33: invalid blink rate")
	errSpeed      = errors.New("ht16k33: bus speed must be at most 400kHz")
)

// BlinkRate selects the hardware blink frequency.
type BlinkRate byte

const (
	BlinkOff    BlinkRate = 0x00
	Blink2Hz    BlinkRate = 0x01
	Blink1Hz    BlinkRate = 0x02
	BlinkHalfHz BlinkRate = 0x03
)

func (b BlinkRate) String() string {
	switch b {
	case BlinkOff:
		return "off"
	case Blink2Hz:
		return "2Hz"
	case Blink1Hz:
		return "1Hz"
	case BlinkHalfHz:
		return "0.5Hz"
	default:
		return fmt.Sprintf("BlinkRate(%d)", byte(b))
	}
}

// LEDLocation addresses a single LED in the display RAM.
type LEDLocation struct {
	Row    uint8 // RAM address, 0-15
	Common uint8 // Single bit selecting the common line
}

// Opts is the configuration for the HT16K33.
type Opts struct {
	Brightness uint8     // Dimming level 0-15 (default: 15 when Opts is nil)
	Blink      BlinkRate // Blink rate (default: off)

	// Optional bus clock; zero leaves the bus speed untouched.
	Hz physic.Frequency
}

// Dev is the device handle for the HT16K33.
type Dev struct {
	c    conn.Conn
	addr uint16

	ram        [RAMSize]byte
	brightness uint8
	blink      BlinkRate
	on         bool

	halted bool
}

// NewI2C returns a device connected on the I²C bus at addr.
//
// addr 0 selects DefaultAddr. opts can be nil to use defaults (full
// brightness, no blink). The oscillator is started, the display RAM is
// cleared and the display is turned on.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Brightness: MaxBrightness}
	}
	if opts.Brightness > MaxBrightness {
		return nil, errBrightness
	}
	if opts.Blink > BlinkHalfHz {
		return nil, errBlink
	}
	if opts.Hz > MaxHz {
		return nil, errSpeed
	}
	if addr == 0 {
		addr = DefaultAddr
	}
	if opts.Hz != 0 {
		if err := b.SetSpeed(opts.Hz); err != nil {
			return nil, fmt.Errorf("ht16k33: failed to set bus speed: %w", err)
		}
	}

	d := &Dev{
		c:          &i2c.Dev{Bus: b, Addr: addr},
		addr:       addr,
		brightness: opts.Brightness,
		blink:      opts.Blink,
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init sends the power-up sequence.
func (d *Dev) init() error {
	if err := d.sendCommand(cmdSystem | 0x01); err != nil {
		return fmt.Errorf("ht16k33: failed to start oscillator: %w", err)
	}
	if err := d.Commit(); err != nil {
		return err
	}
	if err := d.DisplayOn(true); err != nil {
		return err
	}
	return d.SetBrightness(d.brightness)
}

// sendCommand sends a single command byte.
func (d *Dev) sendCommand(cmd byte) error {
	return d.c.Tx([]byte{cmd}, nil)
}

// UpdateLED stages a single LED on or off. The bus is not touched.
func (d *Dev) UpdateLED(loc LEDLocation, on bool) {
	if loc.Row >= RAMSize {
		panic(fmt.Sprintf("ht16k33: row %d out of range", loc.Row))
	}
	if on {
		d.ram[loc.Row] |= loc.Common
	} else {
		d.ram[loc.Row] &^= loc.Common
	}
}

// LED reports whether the LED at loc is staged on.
func (d *Dev) LED(loc LEDLocation) bool {
	if loc.Row >= RAMSize {
		panic(fmt.Sprintf("ht16k33: row %d out of range", loc.Row))
	}
	return d.ram[loc.Row]&loc.Common != 0
}

// UpdateWord stages the 16 bit word made of RAM rows 2*i (low byte) and
// 2*i+1 (high byte).
func (d *Dev) UpdateWord(i uint8, w uint16) {
	if int(i)*2 >= RAMSize {
		panic(fmt.Sprintf("ht16k33: word %d out of range", i))
	}
	d.ram[2*i] = byte(w)
	d.ram[2*i+1] = byte(w >> 8)
}

// Word returns the staged word i, see UpdateWord.
func (d *Dev) Word(i uint8) uint16 {
	if int(i)*2 >= RAMSize {
		panic(fmt.Sprintf("ht16k33: word %d out of range", i))
	}
	return uint16(d.ram[2*i]) | uint16(d.ram[2*i+1])<<8
}

// Buffer returns a copy of the staged display RAM.
func (d *Dev) Buffer() [RAMSize]byte {
	return d.ram
}

// Clear turns off every staged LED. Call Commit to show it.
func (d *Dev) Clear() {
	d.ram = [RAMSize]byte{}
}

// Commit writes the staged display RAM to the device.
func (d *Dev) Commit() error {
	if d.halted {
		return errHalted
	}
	w := make([]byte, 0, 1+RAMSize)
	w = append(w, cmdRAM)
	w = append(w, d.ram[:]...)
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("ht16k33: failed to write display RAM: %w", err)
	}
	return nil
}

// SetBrightness sets the dimming level (0-15).
func (d *Dev) SetBrightness(level uint8) error {
	if d.halted {
		return errHalted
	}
	if level > MaxBrightness {
		return errBrightness
	}
	if err := d.sendCommand(cmdBrightness | level); err != nil {
		return fmt.Errorf("ht16k33: failed to set brightness: %w", err)
	}
	d.brightness = level
	return nil
}

// SetBlink sets the blink rate. The display is turned on.
func (d *Dev) SetBlink(rate BlinkRate) error {
	if d.halted {
		return errHalted
	}
	if rate > BlinkHalfHz {
		return errBlink
	}
	d.blink = rate
	return d.DisplayOn(true)
}

// DisplayOn turns the display on or off. The display RAM is kept.
func (d *Dev) DisplayOn(on bool) error {
	if d.halted {
		return errHalted
	}
	cmd := byte(cmdDisplay)
	if on {
		cmd |= 0x01 | byte(d.blink)<<1
	}
	if err := d.sendCommand(cmd); err != nil {
		return fmt.Errorf("ht16k33: failed to set display state: %w", err)
	}
	d.on = on
	return nil
}

// Halt turns the display and the oscillator off.
// After calling Halt, the device will not accept further commands.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	if err := d.DisplayOn(false); err != nil {
		return err
	}
	d.halted = true
	return d.sendCommand(cmdSystem)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht16k33.Dev{0x%02X}", d.addr)
}

var _ conn.Resource = &Dev{}
