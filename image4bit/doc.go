// Package image4bit implements the 4-bit grayscale framebuffer format used
// by the SSD1327 display controller.
//
// The SSD1327 GDDRAM packs two horizontally adjacent pixels into one byte:
// the high nibble holds the pixel at even x, the low nibble the pixel at
// odd x.
//
// Memory layout example for a 4-pixel row:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A     0x3C
//	        (0x5A = high nibble: 5, low nibble: A=10)
//	        (0x3C = high nibble: 3, low nibble: C=12)
//
// This package provides:
//
// - Gray4: a color type representing 4-bit grayscale (0-15)
// - Gray4Model: a color model converting standard Go colors to Gray4
// - HorizontalNibble: a draw.Image implementation in GDDRAM byte order
//
// Example usage:
//
//	// Create a 128×128 image
//	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, 128, 128))
//
//	// Set a pixel to gray level 8
//	img.SetGray4(10, 20, image4bit.Gray4{Y: 8})
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image4bit.White), image.Point{}, draw.Src)
package image4bit
