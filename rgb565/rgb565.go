// Package rgb565 provides the 16-bit 5-6-5 pixel format used by the ILI9341 display.
//
// Each pixel occupies two bytes, most significant byte first, matching
// the order the controller expects over its 16bpp interface. This
// package provides the RGB565 color type and a big-endian packed Image
// implementation.
package rgb565

import (
	"image"
	"image/color"
)

// RGB565 represents a packed 5-6-5 color: 5 bits red, 6 bits green,
// 5 bits blue.
type RGB565 struct {
	V uint16
}

// RGBA converts the RGB565 color to standard 16-bit-per-channel RGBA.
// Channel values replicate their high bits so full intensity maps to
// 0xFFFF exactly.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r8 := uint32(c.V>>11)<<3 | uint32(c.V>>13)
	g8 := uint32(c.V>>5&0x3F)<<2 | uint32(c.V>>9&0x03)
	b8 := uint32(c.V&0x1F)<<3 | uint32(c.V>>2&0x07)
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// toRGB565 converts any color.Color to RGB565.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565{V: uint16(r>>11)<<11 | uint16(g>>10)<<5 | uint16(b>>11)}
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 image. Pixels are stored two bytes each,
// most significant byte first, row by row.
type Image struct {
	Pix    []byte          // Pixel data (2 bytes per pixel, big-endian)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// New creates a new RGB565 image with the specified bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	stride := w * 2
	return &Image{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return RGB565Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the RGB565 color of the pixel at (x, y).
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565{}
	}
	offset := p.PixOffset(x, y)
	return RGB565{V: uint16(p.Pix[offset])<<8 | uint16(p.Pix[offset+1])}
}

// Set sets the color of the pixel at (x, y).
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, RGB565Model.Convert(c).(RGB565))
}

// SetRGB565 sets the RGB565 color of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset := p.PixOffset(x, y)
	p.Pix[offset] = byte(c.V >> 8)
	p.Pix[offset+1] = byte(c.V)
}

// PixOffset returns the byte offset of the first byte of the pixel at
// (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*2
}
