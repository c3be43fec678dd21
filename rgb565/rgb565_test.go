package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestRGB565RGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       RGB565
		r, g, b uint32
	}{
		{"black", RGB565{V: 0x0000}, 0x0000, 0x0000, 0x0000},
		{"white", RGB565{V: 0xFFFF}, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", RGB565{V: 0xF800}, 0xFFFF, 0x0000, 0x0000},
		{"green", RGB565{V: 0x07E0}, 0x0000, 0xFFFF, 0x0000},
		{"blue", RGB565{V: 0x001F}, 0x0000, 0x0000, 0xFFFF},
		{"gray", RGB565{V: 0x8410}, 0x8484, 0x8282, 0x8484},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.r || g != tt.g || b != tt.b || a != 0xFFFF {
				t.Errorf("RGBA() = (%04x, %04x, %04x, %04x), want (%04x, %04x, %04x, ffff)",
					r, g, b, a, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRGB565ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint16
	}{
		{"rgb565 passthrough", RGB565{V: 0x1234}, 0x1234},
		{"black", color.Black, 0x0000},
		{"white", color.White, 0xFFFF},
		{"red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, 0xF800},
		{"green", color.RGBA{0x00, 0xFF, 0x00, 0xFF}, 0x07E0},
		{"blue", color.RGBA{0x00, 0x00, 0xFF, 0xFF}, 0x001F},
		{"mid gray", color.RGBA{0x80, 0x80, 0x80, 0xFF}, 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RGB565Model.Convert(tt.input).(RGB565)
			if result.V != tt.want {
				t.Errorf("RGB565Model.Convert(%v).V = 0x%04X, want 0x%04X", tt.input, result.V, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"240x320", image.Rect(0, 0, 240, 320), 480, 153600},
		{"4x2", image.Rect(0, 0, 4, 2), 8, 16},
		{"offset rect", image.Rect(10, 20, 14, 22), 8, 16},
		{"empty", image.Rect(0, 0, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := New(tt.rect)
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
			if img.Bounds() != tt.rect {
				t.Errorf("Bounds() = %v, want %v", img.Bounds(), tt.rect)
			}
		})
	}
}

func TestSetAndAt(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 2))

	img.SetRGB565(1, 0, RGB565{V: 0xF800})
	img.Set(2, 1, color.RGBA{0x00, 0xFF, 0x00, 0xFF})

	if got := img.RGB565At(1, 0); got.V != 0xF800 {
		t.Errorf("RGB565At(1, 0) = 0x%04X, want 0xF800", got.V)
	}
	if got := img.RGB565At(2, 1); got.V != 0x07E0 {
		t.Errorf("RGB565At(2, 1) = 0x%04X, want 0x07E0", got.V)
	}
	if got := img.RGB565At(0, 0); got.V != 0 {
		t.Errorf("untouched pixel = 0x%04X, want 0", got.V)
	}

	// Big-endian packing: MSB first in Pix.
	off := img.PixOffset(1, 0)
	if img.Pix[off] != 0xF8 || img.Pix[off+1] != 0x00 {
		t.Errorf("Pix[%d:%d] = % X, want F8 00", off, off+2, img.Pix[off:off+2])
	}
}

func TestOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 2, 2))

	// Out-of-bounds writes are dropped, reads return zero.
	img.SetRGB565(5, 5, RGB565{V: 0xFFFF})
	img.Set(-1, 0, color.White)
	for _, b := range img.Pix {
		if b != 0 {
			t.Fatalf("out-of-bounds Set modified Pix: % X", img.Pix)
		}
	}
	if got := img.RGB565At(5, 5); got.V != 0 {
		t.Errorf("out-of-bounds At = 0x%04X, want 0", got.V)
	}
}

func TestOffsetRect(t *testing.T) {
	img := New(image.Rect(10, 20, 14, 22))
	img.SetRGB565(10, 20, RGB565{V: 0x1234})
	if got := img.RGB565At(10, 20); got.V != 0x1234 {
		t.Errorf("RGB565At(10, 20) = 0x%04X, want 0x1234", got.V)
	}
	if off := img.PixOffset(10, 20); off != 0 {
		t.Errorf("PixOffset(10, 20) = %d, want 0", off)
	}
}

func TestDrawInterop(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4))
	draw.Draw(img, image.Rect(0, 0, 2, 4), image.NewUniform(color.White), image.Point{}, draw.Src)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint16(0)
			if x < 2 {
				want = 0xFFFF
			}
			if got := img.RGB565At(x, y); got.V != want {
				t.Errorf("pixel (%d, %d) = 0x%04X, want 0x%04X", x, y, got.V, want)
			}
		}
	}
}
