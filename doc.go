// Package ili9341 controls an ILI9341 TFT display controller.
//
// The ILI9341 drives 240x320 RGB panels and is controlled through a
// single-byte command set followed by parameter bytes. This package is
// built in two layers:
//
// # Controller
//
// Controller is a faithful encoder of the level 1 command set: one
// method per command, each translating its arguments into the exact
// parameter frame the chip expects and handing it to a Bus. It keeps no
// state, performs no validation of parameter values and never retries;
// transport errors surface to the caller unchanged.
//
// Bus is the transport contract. A concrete implementation clocks the
// frames onto the wire; this package ships SPIBus for the common 4-wire
// serial interface (SPI plus a Data/Command pin), and any other
// transport (parallel GPIO, memory-mapped FMC) can be plugged in by
// implementing the four Bus operations.
//
// # Dev
//
// Dev layers frame management on top of Controller: initialization,
// RGB565 frame buffering with differential updates, hardware vertical
// scrolling, brightness and inversion. It follows the periph.io
// display driver conventions.
//
// # Hardware Connection
//
// Connect the display via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCK         → SPI Clock (SCLK)
//	SDI/MOSI    → SPI Data out (MOSI)
//	SDO/MISO    → SPI Data in (MISO, only needed for register reads)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RESET       → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"image"
//
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/ili9341"
//		"periph.io/x/devices/v3/ili9341/rgb565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//
//		spiPort, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := ili9341.NewSPI(spiPort, dcPin, nil)
//		defer dev.Halt()
//
//		img := rgb565.New(dev.Bounds())
//		for y := 0; y < 320; y++ {
//			for x := 0; x < 240; x++ {
//				img.SetRGB565(x, y, rgb565.RGB565{V: uint16(x) << 8})
//			}
//		}
//		dev.Draw(dev.Bounds(), img, image.Point{})
//	}
//
// # Raw Command Access
//
// The full command set is reachable through dev.Controller(), or by
// constructing a Controller directly on a Bus when no frame management
// is wanted:
//
//	ctrl := ili9341.NewController(bus)
//	ctrl.SleepOut()
//	id, _ := ctrl.ReadDisplayIdentification()
//
// Bulk pixel transfers are a separate streaming channel: issue
// MemoryWriteStart (or MemoryWriteContinue), then stream words with
// WriteMemory. Reads mirror this with MemoryReadStart and ReadMemory.
//
// # Register Reads
//
// Multi-byte registers are returned as opaque snapshot types holding
// the raw bytes (DisplayIdentification, DisplayStatus, ...). Bit-field
// accessors on the snapshots are not implemented yet.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341
