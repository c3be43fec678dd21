package ili9341

import (
	"iter"
	"slices"
	"testing"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

// newSPIBusPlayback wires an SPIBus to a playback port expecting the
// given transfers.
func newSPIBusPlayback(t *testing.T, ops []conntest.IO) (*SPIBus, *spitest.Playback, *gpiotest.Pin) {
	t.Helper()
	port := &spitest.Playback{
		Playback: conntest.Playback{Ops: ops, DontPanic: true},
	}
	dc := &gpiotest.Pin{N: "DC", Num: 25}
	bus, err := NewSPIBus(port, dc)
	if err != nil {
		t.Fatalf("NewSPIBus() error = %v", err)
	}
	return bus, port, dc
}

func TestSPIBusRequiresDCPin(t *testing.T) {
	port := &spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	if _, err := NewSPIBus(port, nil); err == nil {
		t.Error("NewSPIBus(port, nil) should fail")
	}
}

func TestSPIBusWriteParameters(t *testing.T) {
	t.Run("bare command", func(t *testing.T) {
		bus, port, dc := newSPIBusPlayback(t, []conntest.IO{
			{W: []byte{0x11}},
		})
		if err := bus.WriteParameters(0x11, nil); err != nil {
			t.Fatalf("WriteParameters() error = %v", err)
		}
		if dc.L != gpio.Low {
			t.Error("D/C must stay low for a bare command")
		}
		if err := port.Close(); err != nil {
			t.Fatalf("unconsumed transfers: %v", err)
		}
	})

	t.Run("with parameters", func(t *testing.T) {
		bus, port, dc := newSPIBusPlayback(t, []conntest.IO{
			{W: []byte{0x2A}},
			{W: []byte{0x00, 0x10, 0x00, 0xEF}},
		})
		if err := bus.WriteParameters(0x2A, []byte{0x00, 0x10, 0x00, 0xEF}); err != nil {
			t.Fatalf("WriteParameters() error = %v", err)
		}
		if dc.L != gpio.High {
			t.Error("D/C must be high while parameter bytes are clocked")
		}
		if err := port.Close(); err != nil {
			t.Fatalf("unconsumed transfers: %v", err)
		}
	})
}

func TestSPIBusReadParameters(t *testing.T) {
	bus, port, dc := newSPIBusPlayback(t, []conntest.IO{
		{W: []byte{0x04}},
		{W: []byte{0x00, 0x00, 0x00}, R: []byte{0x54, 0x80, 0x66}},
	})

	buf := make([]byte, 3)
	if err := bus.ReadParameters(0x04, buf); err != nil {
		t.Fatalf("ReadParameters() error = %v", err)
	}
	if want := []byte{0x54, 0x80, 0x66}; !slices.Equal(buf, want) {
		t.Errorf("read bytes = % X, want % X", buf, want)
	}
	if dc.L != gpio.High {
		t.Error("D/C must be high while response bytes are clocked")
	}
	if err := port.Close(); err != nil {
		t.Fatalf("unconsumed transfers: %v", err)
	}
}

func TestSPIBusWriteMemory(t *testing.T) {
	// Each pixel word is serialized as its low 16 bits, MSB first.
	bus, port, dc := newSPIBusPlayback(t, []conntest.IO{
		{W: []byte{0xF8, 0x00, 0x07, 0xE0, 0x00, 0x1F}},
	})

	pixels := []uint32{0xF800, 0x07E0, 0x001F}
	err := bus.WriteMemory(func(yield func(uint32) bool) {
		for _, px := range pixels {
			if !yield(px) {
				return
			}
		}
	})
	if err != nil {
		t.Fatalf("WriteMemory() error = %v", err)
	}
	if dc.L != gpio.High {
		t.Error("D/C must be high for pixel data")
	}
	if err := port.Close(); err != nil {
		t.Fatalf("unconsumed transfers: %v", err)
	}
}

func TestSPIBusWriteMemoryChunking(t *testing.T) {
	// A stream larger than one chunk is flushed in memChunk-sized
	// transfers plus a final partial one.
	words := memChunk/2 + 3
	full := make([]byte, memChunk)
	tail := make([]byte, 6)
	bus, port, _ := newSPIBusPlayback(t, []conntest.IO{
		{W: full},
		{W: tail},
	})

	var seq iter.Seq[uint32] = func(yield func(uint32) bool) {
		for i := 0; i < words; i++ {
			if !yield(0) {
				return
			}
		}
	}
	if err := bus.WriteMemory(seq); err != nil {
		t.Fatalf("WriteMemory() error = %v", err)
	}
	if err := port.Close(); err != nil {
		t.Fatalf("unconsumed transfers: %v", err)
	}
}

func TestSPIBusReadMemory(t *testing.T) {
	bus, port, _ := newSPIBusPlayback(t, []conntest.IO{
		{W: []byte{0x00, 0x00, 0x00, 0x00}, R: []byte{0x12, 0x34, 0xAB, 0xCD}},
	})

	words := make([]uint32, 2)
	if err := bus.ReadMemory(words); err != nil {
		t.Fatalf("ReadMemory() error = %v", err)
	}
	if want := []uint32{0x1234, 0xABCD}; !slices.Equal(words, want) {
		t.Errorf("words = %04X, want %04X", words, want)
	}
	if err := port.Close(); err != nil {
		t.Fatalf("unconsumed transfers: %v", err)
	}
}

func TestSPIBusEmptyBulkTransfers(t *testing.T) {
	bus, port, _ := newSPIBusPlayback(t, nil)
	if err := bus.WriteMemory(func(func(uint32) bool) {}); err != nil {
		t.Errorf("empty WriteMemory() error = %v", err)
	}
	if err := bus.ReadMemory(nil); err != nil {
		t.Errorf("empty ReadMemory() error = %v", err)
	}
	if err := port.Close(); err != nil {
		t.Fatalf("unexpected transfers: %v", err)
	}
}
