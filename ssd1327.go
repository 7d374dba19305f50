// Package ssd1327 controls a SSD1327 grayscale OLED display via I²C.
//
// The SSD1327 is a 4-bit grayscale OLED controller driving up to 128×128
// pixels. Pixels are buffered in memory and sent to the panel with Flush.
//
// See the examples for how to use this package.
package ssd1327

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1327/image4bit"
)

// dataChunk is the number of GDDRAM bytes carried per data transaction.
const dataChunk = 8

// DefaultOpts is the recommended default options: a 128×128 panel at the
// factory I²C address.
var DefaultOpts = Opts{
	W:    0x7F,
	H:    0x7F,
	Addr: 0x3C,
}

// Opts is the configuration for the SSD1327 display.
type Opts struct {
	// W and H are the panel geometry as the controller addresses it: the last
	// pixel column and row, so 0x7F for a 128×128 panel. 0 selects the
	// default.
	W int
	H int

	// Addr is the 7-bit I²C address of the display. 0 selects the default
	// 0x3C.
	Addr uint16
}

// Dev is the device handle for the SSD1327 display.
//
// Dev performs no locking; callers sharing a Dev across goroutines must
// serialize access themselves.
type Dev struct {
	// Communication. An i2c.Dev binding the bus and the slave address; every
	// method call below performs at most one transaction per write.
	c conn.Conn

	// Display geometry. halfWidth is the last byte column: two horizontally
	// adjacent pixels share one GDDRAM byte.
	halfWidth byte
	height    byte

	// Framebuffer, sized for the controller's full 128×128 GDDRAM. Smaller
	// panels map into the top-left corner. Mutated only through SetPixel and
	// Draw; transferred with Flush.
	fb *image4bit.HorizontalNibble
}

// NewI2C returns a Dev object that communicates over I²C to a SSD1327
// display controller and runs the panel power-up sequence.
//
// opts can be nil to use defaults (address 0x3C, 128×128 panel). The
// initialization commands are sent best effort: the SSD1327 has no readback
// channel, so there is no way to confirm a command was applied and per-step
// failures are discarded.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	w := opts.W
	if w == 0 {
		w = DefaultOpts.W
	}
	h := opts.H
	if h == 0 {
		h = DefaultOpts.H
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}

	if w < 1 || w > 0x7F {
		return nil, fmt.Errorf("ssd1327: invalid width %d; must be between 1 and 127", w)
	}
	if h < 1 || h > 0x7F {
		return nil, fmt.Errorf("ssd1327: invalid height %d; must be between 1 and 127", h)
	}

	d := &Dev{
		c:         &i2c.Dev{Bus: b, Addr: addr},
		halfWidth: byte(w / 2),
		height:    byte(h),
		fb:        image4bit.NewHorizontalNibble(image.Rect(0, 0, 128, 128)),
	}
	d.init()
	return d, nil
}

// init sends the power-up sequence: unlock the command interface, power the
// panel down, program the addressing window, contrast, remap, timing and
// supply registers, then power back on. Command order matters; the values
// follow the SSD1327 datasheet recommended flow.
func (d *Dev) init() {
	seq := []Command{
		CommandUnlock,
		DisplayOff,
		ColumnAddress(0x00, d.halfWidth),
		RowAddress(0x00, d.height),
		ContrastControl(0x7F),
		Remap(0x51),
		DisplayStartLine(0x00),
		DisplayOffset(0x00),
		DisplayModeNormal,
		MUXRatio(0x7E),
		PhaseLength(0x51),
		LinearLUT,
		FrontClockDivider(0x00),
		SelectInternalVDD,
		SecondPreChargePeriod(0x04),
		VCOMH(0x05),
		PreChargeVoltage(0x05),
		FunctionSelectionB(0x60),
		DisplayOn,
	}
	for _, c := range seq {
		// No readback channel; sent best effort.
		_ = d.SendCommand(c)
	}
}

// SendCommand encodes cmd and writes it to the controller in a single
// transaction. The transport error, if any, is returned unmodified.
func (d *Dev) SendCommand(cmd Command) error {
	buf, n := cmd.encode()
	return d.c.Tx(buf[:n], nil)
}

// SendData writes one 8 byte chunk of pixel data to the current GDDRAM
// window, prefixed with the 0x40 data control byte, in a single 9 byte
// transaction.
//
// data must be exactly 8 bytes; any other length returns an error before any
// bus traffic.
func (d *Dev) SendData(data []byte) error {
	if len(data) != dataChunk {
		return fmt.Errorf("ssd1327: invalid data length %d; must be exactly %d bytes", len(data), dataChunk)
	}
	var buf [1 + dataChunk]byte
	buf[0] = ctrlData
	copy(buf[1:], data)
	return d.c.Tx(buf[:], nil)
}

// SetPixel sets the gray level of a single pixel in the framebuffer.
// Coordinates outside the 128×128 GDDRAM are ignored. No bus traffic happens
// until Flush.
func (d *Dev) SetPixel(x, y int, g image4bit.Gray4) {
	d.fb.SetGray4(x, y, g)
}

// Draw implements display.Drawer.
//
// Draw only paints the in-memory framebuffer; pixels outside the 128×128
// GDDRAM are clipped. Call Flush to transfer the result to the panel.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.fb.Rect)
	if r.Empty() {
		return nil
	}
	draw.Draw(d.fb, r, src, sp, draw.Src)
	return nil
}

// Flush transfers the entire framebuffer to the panel.
//
// It re-programs the full-frame column and row windows, then streams the
// framebuffer row-major in 8 byte chunks. When a chunk write fails, Flush
// keeps sending the remaining chunks so the controller's address pointer
// ends at a known position, and returns the last error observed.
func (d *Dev) Flush() error {
	_ = d.SendCommand(ColumnAddress(0x00, d.halfWidth))
	_ = d.SendCommand(RowAddress(0x00, d.height))
	var err error
	for off := 0; off < len(d.fb.Pix); off += dataChunk {
		if e := d.SendData(d.fb.Pix[off : off+dataChunk]); e != nil {
			err = e
		}
	}
	return err
}

// ColorModel implements display.Drawer.
//
// It is the 4-bit grayscale model implemented by image4bit.Gray4.
func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

// Bounds implements display.Drawer. It spans the controller's full 128×128
// GDDRAM.
func (d *Dev) Bounds() image.Rectangle {
	return d.fb.Rect
}

// SetContrast selects 1 of 256 contrast steps (reset value is 0x7F).
func (d *Dev) SetContrast(level byte) error {
	return d.SendCommand(ContrastControl(level))
}

// Invert displays GDDRAM content with inverted gray levels.
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.SendCommand(DisplayModeInverse)
	}
	return d.SendCommand(DisplayModeNormal)
}

// Halt implements conn.Resource. It turns the panel off; sending any command
// sequence starting with DisplayOn re-enables it.
func (d *Dev) Halt() error {
	return d.SendCommand(DisplayOff)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1327.Dev{%dx%d}", (int(d.halfWidth)+1)*2, int(d.height)+1)
}

var _ display.Drawer = &Dev{}
