// Package ssd1327 controls a SSD1327 grayscale OLED display via I²C.
//
// The SSD1327 is a 4-bit grayscale OLED controller driving up to 128×128
// pixels, commonly found on 1.5" 128×128 modules. This driver implements the
// display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 4-bit grayscale with 16 intensity levels (0-15)
// - Up to 128×128 pixels, two horizontally adjacent pixels per GDDRAM byte
// - Adjustable contrast (0-255)
// - Display inversion and all-on/all-off test modes
// - I²C interface with in-band command/data markers (no D/C pin)
//
// # Hardware Connection
//
// Connect the SSD1327 display to your system via I²C:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on display)
//	SCL         → I²C Clock (SCL)
//	SDA         → I²C Data (SDA)
//
// The factory slave address is 0x3C; some modules strap 0x3D.
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"image"
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/ssd1327"
//		"periph.io/x/devices/v3/ssd1327/image4bit"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//
//		// Open the first available I²C bus
//		bus, err := i2creg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer bus.Close()
//
//		// Create the device with defaults (address 0x3C, 128×128)
//		dev, err := ssd1327.NewI2C(bus, nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		// Draw a gradient into the framebuffer
//		img := image4bit.NewHorizontalNibble(dev.Bounds())
//		for y := 0; y < 128; y++ {
//			for x := 0; x < 128; x++ {
//				img.SetGray4(x, y, image4bit.Gray4{Y: byte(x / 8)})
//			}
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//
//		// Transfer the framebuffer to the panel
//		if err := dev.Flush(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Drawing Model
//
// Draw and SetPixel only update the in-memory framebuffer; no bus traffic
// happens until Flush, which transfers the full frame. There are no partial
// updates: every Flush re-programs the addressing window and streams all
// 8192 framebuffer bytes in 8 byte chunks. On a 100kHz bus a full frame
// takes roughly 800ms; run Flush from a background goroutine if that
// latency matters.
//
// Coordinates outside the 128×128 GDDRAM are clipped, not rejected, so
// sources larger than the panel can be drawn directly.
//
// # Command Access
//
// The full SSD1327 command set is exported as Command values; SendCommand
// issues one in a single transaction:
//
//	dev.SendCommand(ssd1327.DisplayModeAllOn)
//	dev.SendCommand(ssd1327.ContrastControl(0x40))
//
// Parameter bytes are passed to the controller verbatim; the device is the
// authority on acceptable ranges.
//
// # Grayscale Colors
//
// The display supports 16 grayscale levels (0-15). Use the Gray4 color type:
//
//	// Black (0)
//	black := image4bit.Gray4{Y: 0}
//
//	// Mid-gray (8)
//	gray := image4bit.Gray4{Y: 8}
//
//	// White (15)
//	white := image4bit.Gray4{Y: 15}
//
// Standard Go colors are automatically converted to Gray4 grayscale.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.crystalfontz.com/controllers/SolomonSystech/SSD1327/
package ssd1327
