package ili9341

import (
	"encoding/binary"
	"errors"
	"iter"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

var errNoDCPin = errors.New("ili9341: dc pin is required")

// memChunk is the byte size of one bulk pixel transfer. Streaming in
// fixed chunks keeps the memory footprint constant regardless of frame
// size.
const memChunk = 4096

// SPIBus drives the panel over 4-wire serial (SPI plus a Data/Command
// pin) and implements Bus.
//
// Frame layout on the wire: the opcode byte is clocked out with D/C
// low, parameter and pixel bytes with D/C high. Pixel words are sent
// assuming the 16-bit interface pixel format: the low 16 bits of each
// word, most significant byte first. Reads clock out zero bytes while
// the panel drives the response.
//
// An SPIBus is a lightweight handle over fixed pins; copying it copies
// bus access, not a synchronized resource.
type SPIBus struct {
	c  conn.Conn
	dc gpio.PinOut
}

// NewSPIBus connects to the panel on the given SPI port.
//
// The port is configured for 10MHz, Mode0, 8-bit transfers. The dc
// (Data/Command) pin must be configured as an output.
func NewSPIBus(p spi.Port, dc gpio.PinOut) (*SPIBus, error) {
	if dc == nil {
		return nil, errNoDCPin
	}
	c, err := p.Connect(10*1000*1000, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return &SPIBus{c: c, dc: dc}, nil
}

// WriteParameters implements Bus.
func (s *SPIBus) WriteParameters(command byte, data []byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := s.c.Tx([]byte{command}, nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(data, nil)
}

// ReadParameters implements Bus.
func (s *SPIBus) ReadParameters(command byte, data []byte) error {
	if err := s.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := s.c.Tx([]byte{command}, nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	return s.c.Tx(make([]byte, len(data)), data)
}

// WriteMemory implements Bus. The pixel sequence is consumed exactly
// once and flushed in memChunk-sized transfers.
func (s *SPIBus) WriteMemory(pixels iter.Seq[uint32]) error {
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	buf := make([]byte, 0, memChunk)
	for px := range pixels {
		buf = binary.BigEndian.AppendUint16(buf, uint16(px))
		if len(buf) == memChunk {
			if err := s.c.Tx(buf, nil); err != nil {
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) == 0 {
		return nil
	}
	return s.c.Tx(buf, nil)
}

// ReadMemory implements Bus.
func (s *SPIBus) ReadMemory(words []uint32) error {
	if len(words) == 0 {
		return nil
	}
	if err := s.dc.Out(gpio.High); err != nil {
		return err
	}
	buf := make([]byte, 2*len(words))
	if err := s.c.Tx(make([]byte, len(buf)), buf); err != nil {
		return err
	}
	for i := range words {
		words[i] = uint32(binary.BigEndian.Uint16(buf[2*i:]))
	}
	return nil
}
