package ili9341

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"iter"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/ili9341/rgb565"
)

// PixelFormat16bpp is the COLMOD value for 16-bit 5-6-5 pixels on both
// the RGB and MCU interfaces. It is the format Dev drives the panel in.
var PixelFormat16bpp = NewPixelFormat(0x55)

// Opts is the configuration for the ILI9341 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 240, must be ≤240)
	H int // Height (default: 320, must be ≤320)

	// Rotated flips the panel 180°.
	Rotated bool

	// RST is the optional hardware reset pin. When nil the driver falls
	// back to a software reset during initialization.
	RST gpio.PinIO
}

// Dev is the device handle for an ILI9341 panel.
//
// It layers frame management on top of the raw Controller command set
// and implements the image.Image drawing contract periph.io display
// tools expect. The underlying Controller stays accessible for callers
// that need commands Dev does not surface.
type Dev struct {
	ctrl *Controller
	rst  gpio.PinIO

	// Display geometry
	rect image.Rectangle

	// Pixel buffers
	buffer []byte        // Current frame, 2 bytes per pixel
	next   *rgb565.Image // For lazy double buffering
	lastDm rgb565.Image  // Last displayed frame for differential updates

	// State
	halted bool
}

// NewSPI creates an ILI9341 device connected via 4-wire SPI.
//
// The SPI port is configured for 10MHz, Mode0, 8-bit transfers. The dc
// (Data/Command) pin must be configured as an output.
//
// opts can be nil to use defaults (240x320 portrait).
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	bus, err := NewSPIBus(p, dc)
	if err != nil {
		return nil, err
	}
	return New(bus, opts)
}

// New creates an ILI9341 device on an already-connected Bus. Use it for
// transports other than 4-wire SPI (parallel GPIO, memory-mapped FMC).
func New(bus Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{W: 240, H: 320}
	}
	if opts.W <= 0 || opts.W > 240 {
		return nil, errors.New("ili9341: width must be between 1 and 240")
	}
	if opts.H <= 0 || opts.H > 320 {
		return nil, errors.New("ili9341: height must be between 1 and 320")
	}

	d := &Dev{
		ctrl:   NewController(bus),
		rst:    opts.RST,
		rect:   image.Rect(0, 0, opts.W, opts.H),
		buffer: make([]byte, opts.W*opts.H*2),
	}
	if err := d.init(opts); err != nil {
		return nil, err
	}
	return d, nil
}

// Controller returns the raw command encoder driving the panel.
func (d *Dev) Controller() *Controller {
	return d.ctrl
}

// init resets the panel and brings it out of sleep.
func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		// Hardware reset: datasheet wants ≥10µs low, then 120ms before
		// commands are accepted.
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ili9341: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ili9341: failed to pull RST high: %w", err)
		}
		time.Sleep(120 * time.Millisecond)
	} else {
		if err := d.ctrl.SoftwareReset(); err != nil {
			return err
		}
		time.Sleep(120 * time.Millisecond)
	}

	madctl := MADCtlMX | MADCtlBGR
	if opts.Rotated {
		madctl = MADCtlMY | MADCtlBGR
	}
	if err := d.ctrl.MemoryAccessControl(NewMemoryAccessControl(madctl)); err != nil {
		return err
	}
	if err := d.ctrl.PixelFormatSet(PixelFormat16bpp); err != nil {
		return err
	}
	if err := d.ctrl.SleepOut(); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	if err := d.ctrl.NormalDisplayModeOn(); err != nil {
		return err
	}

	// Clear display RAM before switching the panel on, so power-on
	// garbage never reaches the glass.
	if err := d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), d.buffer); err != nil {
		return err
	}
	return d.ctrl.Display(true)
}

// writeRect writes pixel data to a rectangular region of the display.
func (d *Dev) writeRect(x, y, width, height int, pixels []byte) error {
	if err := d.ctrl.ColumnAddressSet(uint16(x), uint16(x+width-1)); err != nil {
		return err
	}
	if err := d.ctrl.PageAddressSet(uint16(y), uint16(y+height-1)); err != nil {
		return err
	}
	if err := d.ctrl.MemoryWriteStart(); err != nil {
		return err
	}
	return d.ctrl.WriteMemory(pixelWords(pixels))
}

// pixelWords streams big-endian packed RGB565 bytes as pixel words, one
// pixel per word.
func pixelWords(pix []byte) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for i := 0; i+1 < len(pix); i += 2 {
			if !yield(uint32(pix[i])<<8 | uint32(pix[i+1])) {
				return
			}
		}
	}
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.RGB565Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in big-endian RGB565
// format. The data must be exactly d.Bounds().Dx() * d.Bounds().Dy() * 2
// bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ili9341: halted")
	}
	if len(pixels) != len(d.buffer) {
		return 0, errors.New("ili9341: invalid buffer size")
	}
	if err := d.writeFullFrame(pixels); err != nil {
		return 0, err
	}
	copy(d.buffer, pixels)
	if d.next != nil {
		copy(d.lastDm.Pix, pixels)
		copy(d.next.Pix, pixels)
	}
	return len(pixels), nil
}

// Draw draws an image onto the display with differential update
// optimization. Only the minimal bounding rectangle of changed pixels
// is transferred to the panel.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ili9341: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: full-frame RGB565 source needs no conversion.
	if srcImg, ok := src.(*rgb565.Image); ok {
		zeroPoint := image.Point{}
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			if err := d.writeFullFrame(srcImg.Pix); err != nil {
				return err
			}
			copy(d.buffer, srcImg.Pix)
			if d.next != nil {
				copy(d.lastDm.Pix, srcImg.Pix)
				copy(d.next.Pix, srcImg.Pix)
			}
			return nil
		}
	}

	// Slow path: render into the double buffer and send the diff.
	if d.next == nil {
		d.next = rgb565.New(d.rect)
		d.lastDm = rgb565.Image{
			Pix:    make([]byte, len(d.buffer)),
			Stride: d.next.Stride,
			Rect:   d.rect,
		}
		copy(d.next.Pix, d.buffer)
		copy(d.lastDm.Pix, d.buffer)
	}

	draw.Draw(d.next, dst, src, sp, draw.Src)

	minCol, maxCol, minRow, maxRow := d.calculateDiff()
	if minCol > maxCol {
		// No changes
		return nil
	}

	changedData := d.extractRegion(minCol, maxCol, minRow, maxRow)
	if err := d.writeRect(minCol, minRow, maxCol-minCol+1, maxRow-minRow+1, changedData); err != nil {
		return err
	}

	copy(d.buffer, d.next.Pix)
	copy(d.lastDm.Pix, d.next.Pix)
	return nil
}

// calculateDiff compares the last displayed and next buffers to find
// the minimal changed region. minCol > maxCol means no changes.
func (d *Dev) calculateDiff() (minCol, maxCol, minRow, maxRow int) {
	width := d.rect.Dx()
	height := d.rect.Dy()
	stride := width * 2

	minRow = height
	maxRow = -1
	minCol = width
	maxCol = -1

	for y := 0; y < height; y++ {
		rowStart := y * stride
		rowEnd := rowStart + stride

		if !bytes.Equal(d.lastDm.Pix[rowStart:rowEnd], d.next.Pix[rowStart:rowEnd]) {
			if y < minRow {
				minRow = y
			}
			if y > maxRow {
				maxRow = y
			}

			for x := 0; x < width; x++ {
				off := rowStart + x*2
				if d.lastDm.Pix[off] != d.next.Pix[off] || d.lastDm.Pix[off+1] != d.next.Pix[off+1] {
					if x < minCol {
						minCol = x
					}
					if x > maxCol {
						maxCol = x
					}
				}
			}
		}
	}
	return
}

// extractRegion extracts the pixel data for a rectangular region of the
// next buffer.
func (d *Dev) extractRegion(minCol, maxCol, minRow, maxRow int) []byte {
	width := maxCol - minCol + 1
	stride := d.rect.Dx() * 2
	byteWidth := width * 2

	result := make([]byte, byteWidth*(maxRow-minRow+1))
	dstIdx := 0
	for y := minRow; y <= maxRow; y++ {
		srcStart := y*stride + minCol*2
		copy(result[dstIdx:], d.next.Pix[srcStart:srcStart+byteWidth])
		dstIdx += byteWidth
	}
	return result
}

// writeFullFrame writes the entire frame buffer to the display.
func (d *Dev) writeFullFrame(pixels []byte) error {
	return d.writeRect(0, 0, d.rect.Dx(), d.rect.Dy(), pixels)
}

// SetBrightness sets the backlight brightness (0-255) via the display
// brightness register.
func (d *Dev) SetBrightness(brightness byte) error {
	if d.halted {
		return errors.New("ili9341: halted")
	}
	return d.ctrl.WriteDisplayBrightness(brightness)
}

// Invert inverts the display colors.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ili9341: halted")
	}
	return d.ctrl.DisplayInversion(invert)
}

// ScrollVertical configures the vertical scroll region: tfa and bfa are
// the top and bottom fixed areas in lines, vsa the scrolling area
// between them. Follow with ScrollTo to move the scroll position.
func (d *Dev) ScrollVertical(tfa, vsa, bfa uint16) error {
	if d.halted {
		return errors.New("ili9341: halted")
	}
	return d.ctrl.VerticalScrollingDefinition(tfa, vsa, bfa)
}

// ScrollTo sets the line shown at the top of the scroll area.
func (d *Dev) ScrollTo(line uint16) error {
	if d.halted {
		return errors.New("ili9341: halted")
	}
	return d.ctrl.VerticalScrollingStartAddress(line)
}

// StopScroll leaves scroll mode and returns to normal display
// addressing.
func (d *Dev) StopScroll() error {
	if d.halted {
		return errors.New("ili9341: halted")
	}
	return d.ctrl.NormalDisplayModeOn()
}

// Halt blanks the panel and puts it to sleep. After calling Halt the
// device does not accept further drawing until re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	if err := d.ctrl.Display(false); err != nil {
		return err
	}
	return d.ctrl.EnterSleepMode()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ili9341.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
