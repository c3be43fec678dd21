package ili9341

// Register snapshot types. Each holds the raw bytes of one readable
// controller register, sized exactly to that register's read-response
// length. The zero value is the all-zero snapshot and values are cheap
// to copy. Decoding the individual bit fields into named accessors is
// future work; until then Raw exposes the bytes verbatim.

// DisplayIdentification is the raw 3-byte response of Read Display
// Identification Information (0x04).
type DisplayIdentification struct {
	raw [3]byte
}

// Raw returns the snapshot bytes as read from the panel.
func (d DisplayIdentification) Raw() [3]byte { return d.raw }

// DisplayStatus is the raw 4-byte response of Read Display Status (0x09).
type DisplayStatus struct {
	raw [4]byte
}

// Raw returns the snapshot bytes as read from the panel.
func (d DisplayStatus) Raw() [4]byte { return d.raw }

// DisplayPowerMode is the raw response of Read Display Power Mode (0x0A).
type DisplayPowerMode struct {
	raw [1]byte
}

// Raw returns the snapshot byte as read from the panel.
func (d DisplayPowerMode) Raw() byte { return d.raw[0] }

// MADCtl is the raw response of Read Display MADCTL (0x0B).
type MADCtl struct {
	raw [1]byte
}

// Raw returns the snapshot byte as read from the panel.
func (m MADCtl) Raw() byte { return m.raw[0] }

// PixelFormat is the COLMOD interface pixel format value, either read
// from the panel (0x0C) or written to it (0x3A).
type PixelFormat struct {
	raw [1]byte
}

// NewPixelFormat builds a PixelFormat holding the given raw value.
func NewPixelFormat(v byte) PixelFormat { return PixelFormat{raw: [1]byte{v}} }

// Raw returns the raw format byte.
func (p PixelFormat) Raw() byte { return p.raw[0] }

// ImageFormat is the raw response of Read Display Image Format (0x0D).
type ImageFormat struct {
	raw [1]byte
}

// Raw returns the snapshot byte as read from the panel.
func (i ImageFormat) Raw() byte { return i.raw[0] }

// SignalMode is the raw response of Read Display Signal Mode (0x0E).
type SignalMode struct {
	raw [1]byte
}

// Raw returns the snapshot byte as read from the panel.
func (s SignalMode) Raw() byte { return s.raw[0] }

// SelfDiagnosticResult is the raw response of Read Display
// Self-Diagnostic Result (0x0F).
type SelfDiagnosticResult struct {
	raw [1]byte
}

// Raw returns the snapshot byte as read from the panel.
func (s SelfDiagnosticResult) Raw() byte { return s.raw[0] }

// MemoryAccessControl is the MADCTL value written with command 0x36.
// Build it by combining the MADCtl* bit masks.
type MemoryAccessControl struct {
	raw [1]byte
}

// NewMemoryAccessControl builds a MemoryAccessControl holding the given
// raw value.
func NewMemoryAccessControl(v byte) MemoryAccessControl {
	return MemoryAccessControl{raw: [1]byte{v}}
}

// Raw returns the raw MADCTL byte.
func (m MemoryAccessControl) Raw() byte { return m.raw[0] }

// CtrlDisplay is the CTRL Display value, either read from the panel
// (0x54) or written to it (0x53).
type CtrlDisplay struct {
	raw [1]byte
}

// NewCtrlDisplay builds a CtrlDisplay holding the given raw value.
func NewCtrlDisplay(v byte) CtrlDisplay { return CtrlDisplay{raw: [1]byte{v}} }

// Raw returns the raw CTRL Display byte.
func (c CtrlDisplay) Raw() byte { return c.raw[0] }
