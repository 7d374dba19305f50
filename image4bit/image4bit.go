package image4bit

import (
	"image"
	"image/color"
)

// Gray4 is a 4-bit grayscale color with 16 intensity levels. Only the lower
// 4 bits of Y are used.
type Gray4 struct {
	Y uint8
}

// Black and White are the two extreme gray levels.
var (
	Black = Gray4{Y: 0}
	White = Gray4{Y: 15}
)

// RGBA implements color.Color. The 4-bit gray value is replicated across the
// 16-bit channels, so 0x0 maps to 0x0000 and 0xF maps to 0xFFFF.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// Gray4Model converts colors to Gray4 using the standard luminance weights.
var Gray4Model = color.ModelFunc(func(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return Gray4{Y: g.Y & 0x0F}
	}
	r, g, b, _ := c.RGBA()
	// ITU-R 601 luma, 16-bit channels scaled down to 4 bits.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(y >> 12)}
})

// HorizontalNibble is a 4-bit grayscale image stored in SSD1327 GDDRAM byte
// order: two pixels per byte, high nibble at even x, low nibble at odd x.
type HorizontalNibble struct {
	// Pix holds the packed pixels, row-major.
	Pix []byte
	// Stride is the number of bytes per row.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

// NewHorizontalNibble returns an initialized (all black) HorizontalNibble
// with the specified bounds. The width must be even, since a byte cannot be
// split across two rows.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalNibble{Rect: r}
	}
	if w%2 != 0 {
		panic("image4bit: width must be even")
	}
	stride := w / 2
	return &HorizontalNibble{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *HorizontalNibble) ColorModel() color.Model {
	return Gray4Model
}

// Bounds implements image.Image.
func (p *HorizontalNibble) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the gray level of the pixel at (x, y). Coordinates outside
// the bounds read as black.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	offset, shift := p.pixOffset(x, y)
	return Gray4{Y: (p.Pix[offset] >> shift) & 0x0F}
}

// Set implements draw.Image. c is converted through Gray4Model.
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the gray level of the pixel at (x, y), leaving the sibling
// nibble untouched. Coordinates outside the bounds are ignored.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, shift := p.pixOffset(x, y)
	p.Pix[offset] = p.Pix[offset]&^(0x0F<<shift) | (c.Y&0x0F)<<shift
}

// pixOffset returns the byte offset and nibble shift for the pixel at
// (x, y): shift 4 (high nibble) at even x, shift 0 (low nibble) at odd x.
func (p *HorizontalNibble) pixOffset(x, y int) (offset int, shift uint) {
	offset = (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	shift = uint(4 * (1 - (x-p.Rect.Min.X)&1))
	return
}

var _ image.Image = &HorizontalNibble{}
