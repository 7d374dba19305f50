package image4bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestGray4RGBA(t *testing.T) {
	tests := []struct {
		name string
		gray Gray4
		want uint32
	}{
		{"black", Gray4{Y: 0}, 0x0000},
		{"dark gray", Gray4{Y: 5}, 0x5555},
		{"mid gray", Gray4{Y: 8}, 0x8888},
		{"white", Gray4{Y: 15}, 0xFFFF},
		{"high bits ignored", Gray4{Y: 0x5F}, 0xFFFF}, // only the lower 4 bits count
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.gray.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%#x, %#x, %#x, %#x), want (%#x, %#x, %#x, 0xffff)",
					r, g, b, a, tt.want, tt.want, tt.want)
			}
		})
	}
}

func TestGray4ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint8
	}{
		{"gray4 passthrough", Gray4{Y: 7}, 7},
		{"gray4 masked", Gray4{Y: 0xF5}, 5},
		{"black", color.Black, 0},
		{"white", color.White, 15},
		{"gray rgb", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gray4Model.Convert(tt.input).(Gray4)
			if got.Y != tt.want {
				t.Errorf("Gray4Model.Convert(%v).Y = %d, want %d", tt.input, got.Y, tt.want)
			}
		})
	}
}

func TestNewHorizontalNibble(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"128x128", image.Rect(0, 0, 128, 128), false, 64, 8192},
		{"128x96", image.Rect(0, 0, 128, 96), false, 64, 6144},
		{"4x2", image.Rect(0, 0, 4, 2), false, 2, 4},
		{"offset rect", image.Rect(10, 20, 14, 22), false, 2, 4},
		{"odd width panics", image.Rect(0, 0, 5, 2), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := NewHorizontalNibble(tt.rect)
			if tt.wantPanic {
				return
			}
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestHorizontalNibblePacking(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 1))

	img.SetGray4(0, 0, Gray4{Y: 5})
	img.SetGray4(1, 0, Gray4{Y: 10})
	img.SetGray4(2, 0, Gray4{Y: 3})
	img.SetGray4(3, 0, Gray4{Y: 12})

	// High nibble = even x, low nibble = odd x.
	if img.Pix[0] != 0x5A {
		t.Errorf("Pix[0] = %#02x, want 0x5a", img.Pix[0])
	}
	if img.Pix[1] != 0x3C {
		t.Errorf("Pix[1] = %#02x, want 0x3c", img.Pix[1])
	}
}

func TestHorizontalNibbleSiblingNibbleUntouched(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0xA7

	// Writing the even pixel must keep the odd pixel's low nibble.
	img.SetGray4(0, 0, Gray4{Y: 3})
	if img.Pix[0] != 0x37 {
		t.Errorf("after even write Pix[0] = %#02x, want 0x37", img.Pix[0])
	}

	// Writing the odd pixel must keep the even pixel's high nibble.
	img.SetGray4(1, 0, Gray4{Y: 9})
	if img.Pix[0] != 0x39 {
		t.Errorf("after odd write Pix[0] = %#02x, want 0x39", img.Pix[0])
	}
}

func TestHorizontalNibbleIdempotentWrite(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 1))
	img.SetGray4(2, 0, Gray4{Y: 11})
	once := img.Pix[1]
	img.SetGray4(2, 0, Gray4{Y: 11})
	if img.Pix[1] != once {
		t.Errorf("second identical write changed Pix[1] from %#02x to %#02x", once, img.Pix[1])
	}
}

func TestHorizontalNibbleSetGet(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 16, 2))

	for level := uint8(0); level < 16; level++ {
		img.SetGray4(int(level), 0, Gray4{Y: level})
		img.SetGray4(int(level), 1, Gray4{Y: 15 - level})
	}
	for level := uint8(0); level < 16; level++ {
		if got := img.Gray4At(int(level), 0); got.Y != level {
			t.Errorf("Gray4At(%d, 0).Y = %d, want %d", level, got.Y, level)
		}
		if got := img.Gray4At(int(level), 1); got.Y != 15-level {
			t.Errorf("Gray4At(%d, 1).Y = %d, want %d", level, got.Y, 15-level)
		}
	}
}

func TestHorizontalNibbleAt(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 2))
	img.SetGray4(0, 0, Gray4{Y: 7})

	c := img.At(0, 0)
	g, ok := c.(Gray4)
	if !ok {
		t.Fatalf("At(0, 0) returned %T, want Gray4", c)
	}
	if g.Y != 7 {
		t.Errorf("At(0, 0).Y = %d, want 7", g.Y)
	}
}

func TestHorizontalNibbleSet(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, Gray4{Y: 9})
	if got := img.Gray4At(0, 0); got.Y != 9 {
		t.Errorf("after Set(0, 0, Gray4{9}), Gray4At(0, 0).Y = %d, want 9", got.Y)
	}

	img.Set(1, 0, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	if got := img.Gray4At(1, 0); got.Y != 15 {
		t.Errorf("after Set(1, 0, white), Gray4At(1, 0).Y = %d, want 15", got.Y)
	}
}

func TestHorizontalNibbleOutOfBounds(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 4))
	img.SetGray4(-1, 0, Gray4{Y: 15})
	img.SetGray4(0, -1, Gray4{Y: 15})
	img.SetGray4(4, 0, Gray4{Y: 15})
	img.SetGray4(0, 4, Gray4{Y: 15})

	for _, b := range img.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds writes modified the buffer: %#v", img.Pix)
		}
	}

	if got := img.Gray4At(4, 0); got.Y != 0 {
		t.Errorf("Gray4At(4, 0).Y = %d, want 0 (out of bounds)", got.Y)
	}
}

func TestHorizontalNibbleOffsetRect(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(100, 50, 104, 52))

	img.SetGray4(100, 50, Gray4{Y: 11})
	if got := img.Gray4At(100, 50); got.Y != 11 {
		t.Errorf("Gray4At(100, 50).Y = %d, want 11", got.Y)
	}
	if img.Pix[0]>>4 != 11 {
		t.Errorf("Pix[0]>>4 = %d, want 11", img.Pix[0]>>4)
	}
}

func TestHorizontalNibblePixOffset(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
		shift  uint
	}{
		{0, 0, 0, 4},
		{1, 0, 0, 0},
		{2, 0, 1, 4},
		{3, 0, 1, 0},
		{0, 1, 4, 4},
		{1, 1, 4, 0},
	}

	for _, tt := range tests {
		offset, shift := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || shift != tt.shift {
			t.Errorf("pixOffset(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, offset, shift, tt.offset, tt.shift)
		}
	}
}

func TestHorizontalNibbleDrawDraw(t *testing.T) {
	// The type must compose with image/draw.
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 8))
	draw.Draw(img, image.Rect(0, 0, 2, 1), image.NewUniform(White), image.Point{}, draw.Src)

	if img.Pix[0] != 0xFF {
		t.Errorf("Pix[0] = %#02x, want 0xff", img.Pix[0])
	}
	if img.Pix[1] != 0x00 {
		t.Errorf("Pix[1] = %#02x, want 0x00", img.Pix[1])
	}
}

func TestHorizontalNibbleColorModel(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 4))
	if img.ColorModel() != Gray4Model {
		t.Error("ColorModel() did not return Gray4Model")
	}
	if img.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
}
