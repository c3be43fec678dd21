package ili9341

import "iter"

// Bus is the transport contract between the Controller and the panel.
//
// It abstracts the physical interface (4-wire SPI, 8/9/16/18-bit MPU
// parallel, memory-mapped FMC) behind four transactions. Implementations
// must block until the transaction completes and must never partially
// complete from the caller's point of view; any transport failure is
// returned as-is and the Controller passes it through unmodified.
//
// None of the operations are safe for concurrent use. The Controller
// assumes a single exclusive owner, which is the norm for firmware
// control loops; integrators needing sharing must wrap the Bus in their
// own synchronization layer.
type Bus interface {
	// WriteParameters transmits a command opcode followed by zero or more
	// data bytes as a single logical transaction. A nil or empty data
	// slice is the common bare-command strobe.
	WriteParameters(command byte, data []byte) error

	// ReadParameters transmits the command opcode and clocks back exactly
	// len(data) bytes into data, in order.
	ReadParameters(command byte, data []byte) error

	// WriteMemory streams pixel words to display RAM. The sequence is
	// finite and single-pass; it may be produced lazily so a full frame
	// never has to be materialized in memory. No command framing is
	// implied: the caller must have issued MemoryWriteStart or
	// MemoryWriteContinue beforehand.
	WriteMemory(pixels iter.Seq[uint32]) error

	// ReadMemory fills words with len(words) pixel words from display
	// RAM. As with WriteMemory, the caller frames the transfer with
	// MemoryReadStart or MemoryReadContinue.
	ReadMemory(words []uint32) error
}
