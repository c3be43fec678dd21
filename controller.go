package ili9341

import (
	"encoding/binary"
	"iter"
)

// TearingEffect selects the state of the tearing-effect output line.
type TearingEffect int

// The tearing-effect line is either off, pulsed on V-blank only, or
// pulsed on both H-blank and V-blank. There is no fourth state.
const (
	TearingEffectOff TearingEffect = iota
	TearingEffectVBlank
	TearingEffectHAndVBlank
)

// Controller encodes the ILI9341 command set onto a Bus.
//
// It owns exactly one Bus for its lifetime and keeps no other state: in
// particular it does not mirror the panel's operating mode (sleep,
// idle, partial, inversion, tearing). A local mirror would silently
// diverge from the hardware after a reset or a failed transaction, so
// callers that need mode tracking must keep it themselves.
//
// Every method is synchronous and performs exactly the documented bus
// transactions, in program order, with no validation of parameter
// values, no retries and no batching. Bus errors are returned to the
// caller untouched. Copying a Controller copies bus access, not a
// shared synchronized resource; concurrent use of the copies is
// unsupported.
type Controller struct {
	bus Bus
}

// NewController returns a Controller driving the given bus.
func NewController(bus Bus) *Controller {
	return &Controller{bus: bus}
}

func (c *Controller) writeCommand(command byte) error {
	return c.bus.WriteParameters(command, nil)
}

// put16 appends v to b most-significant byte first.
func put16(b []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(b, v)
}

// Nop issues No Operation (0x00).
func (c *Controller) Nop() error {
	return c.writeCommand(cmdNOP)
}

// SoftwareReset issues Software Reset (0x01). The panel needs its
// datasheet-specified settling time before the next command; waiting is
// the caller's responsibility.
func (c *Controller) SoftwareReset() error {
	return c.writeCommand(cmdSWRESET)
}

// ReadDisplayIdentification reads the 3-byte identification register
// (0x04).
func (c *Controller) ReadDisplayIdentification() (DisplayIdentification, error) {
	var result DisplayIdentification
	err := c.bus.ReadParameters(cmdRDDIDIF, result.raw[:])
	return result, err
}

// ReadDisplayStatus reads the 4-byte status register (0x09).
func (c *Controller) ReadDisplayStatus() (DisplayStatus, error) {
	var result DisplayStatus
	err := c.bus.ReadParameters(cmdRDDST, result.raw[:])
	return result, err
}

// ReadDisplayPowerMode reads the power mode register (0x0A).
func (c *Controller) ReadDisplayPowerMode() (DisplayPowerMode, error) {
	var result DisplayPowerMode
	err := c.bus.ReadParameters(cmdRDDPM, result.raw[:])
	return result, err
}

// ReadDisplayMADCtl reads the MADCTL register (0x0B).
func (c *Controller) ReadDisplayMADCtl() (MADCtl, error) {
	var result MADCtl
	err := c.bus.ReadParameters(cmdRDDMADCTL, result.raw[:])
	return result, err
}

// ReadPixelFormat reads the interface pixel format register (0x0C).
func (c *Controller) ReadPixelFormat() (PixelFormat, error) {
	var result PixelFormat
	err := c.bus.ReadParameters(cmdRDDCOLMOD, result.raw[:])
	return result, err
}

// ReadImageFormat reads the image format register (0x0D).
func (c *Controller) ReadImageFormat() (ImageFormat, error) {
	var result ImageFormat
	err := c.bus.ReadParameters(cmdRDDIM, result.raw[:])
	return result, err
}

// ReadSignalMode reads the signal mode register (0x0E).
func (c *Controller) ReadSignalMode() (SignalMode, error) {
	var result SignalMode
	err := c.bus.ReadParameters(cmdRDDSM, result.raw[:])
	return result, err
}

// ReadSelfDiagnosticResult reads the self-diagnostic register (0x0F).
func (c *Controller) ReadSelfDiagnosticResult() (SelfDiagnosticResult, error) {
	var result SelfDiagnosticResult
	err := c.bus.ReadParameters(cmdRDDSDR, result.raw[:])
	return result, err
}

// EnterSleepMode issues Enter Sleep Mode (0x10).
func (c *Controller) EnterSleepMode() error {
	return c.writeCommand(cmdSLPIN)
}

// SleepOut issues Sleep Out (0x11).
func (c *Controller) SleepOut() error {
	return c.writeCommand(cmdSLPOUT)
}

// PartialModeOn issues Partial Mode ON (0x12).
func (c *Controller) PartialModeOn() error {
	return c.writeCommand(cmdPTLON)
}

// NormalDisplayModeOn issues Normal Display Mode ON (0x13).
func (c *Controller) NormalDisplayModeOn() error {
	return c.writeCommand(cmdNORON)
}

// DisplayInversion switches display inversion off (0x20) or on (0x21).
func (c *Controller) DisplayInversion(on bool) error {
	if on {
		return c.writeCommand(cmdINVON)
	}
	return c.writeCommand(cmdINVOFF)
}

// GammaSet selects the gamma curve (0x26).
func (c *Controller) GammaSet(gc byte) error {
	return c.bus.WriteParameters(cmdGAMSET, []byte{gc})
}

// Display switches the display off (0x28) or on (0x29).
func (c *Controller) Display(on bool) error {
	if on {
		return c.writeCommand(cmdDISON)
	}
	return c.writeCommand(cmdDISOFF)
}

// ColumnAddressSet sets the addressable column range (0x2A), start and
// end inclusive.
func (c *Controller) ColumnAddressSet(sc, ec uint16) error {
	return c.bus.WriteParameters(cmdCASET, put16(put16(make([]byte, 0, 4), sc), ec))
}

// PageAddressSet sets the addressable page (row) range (0x2B), start
// and end inclusive.
func (c *Controller) PageAddressSet(sp, ep uint16) error {
	return c.bus.WriteParameters(cmdPASET, put16(put16(make([]byte, 0, 4), sp), ep))
}

// MemoryWriteStart issues Memory Write (0x2C), resetting the RAM write
// pointer to the start of the address window. Follow it with
// WriteMemory to stream pixel data.
func (c *Controller) MemoryWriteStart() error {
	return c.writeCommand(cmdRAMWR)
}

// ColorSet writes the 128-byte color lookup table (0x2D). The table is
// forwarded verbatim; no other length exists for this command.
func (c *Controller) ColorSet(data [128]byte) error {
	return c.bus.WriteParameters(cmdRGBSET, data[:])
}

// MemoryReadStart issues Memory Read (0x2E), resetting the RAM read
// pointer to the start of the address window. Follow it with ReadMemory.
func (c *Controller) MemoryReadStart() error {
	return c.writeCommand(cmdRAMRD)
}

// PartialArea sets the partial display area rows (0x30), start and end
// inclusive.
func (c *Controller) PartialArea(sr, er uint16) error {
	return c.bus.WriteParameters(cmdPLTAR, put16(put16(make([]byte, 0, 4), sr), er))
}

// VerticalScrollingDefinition configures the scroll region (0x33): top
// fixed area, vertical scrolling area and bottom fixed area, in lines.
func (c *Controller) VerticalScrollingDefinition(tfa, vsa, bfa uint16) error {
	return c.bus.WriteParameters(cmdVSCRDEF, put16(put16(put16(make([]byte, 0, 6), tfa), vsa), bfa))
}

// TearingEffectMode sets the tearing-effect line state. Off is its own
// bare command (0x34); the two on states share 0x35 and are told apart
// by the single parameter byte.
func (c *Controller) TearingEffectMode(mode TearingEffect) error {
	switch mode {
	case TearingEffectVBlank:
		return c.bus.WriteParameters(cmdTEON, []byte{0})
	case TearingEffectHAndVBlank:
		return c.bus.WriteParameters(cmdTEON, []byte{1})
	default:
		return c.writeCommand(cmdTEOFF)
	}
}

// MemoryAccessControl writes the MADCTL register (0x36).
func (c *Controller) MemoryAccessControl(value MemoryAccessControl) error {
	return c.bus.WriteParameters(cmdMADCTL, value.raw[:])
}

// VerticalScrollingStartAddress sets the line displayed at the top of
// the scroll area (0x37).
func (c *Controller) VerticalScrollingStartAddress(vsp uint16) error {
	return c.bus.WriteParameters(cmdVSCRSADD, put16(make([]byte, 0, 2), vsp))
}

// IdleMode switches idle mode off (0x38) or on (0x39).
func (c *Controller) IdleMode(on bool) error {
	if on {
		return c.writeCommand(cmdIDMON)
	}
	return c.writeCommand(cmdIDMOFF)
}

// PixelFormatSet writes the COLMOD interface pixel format (0x3A).
func (c *Controller) PixelFormatSet(value PixelFormat) error {
	return c.bus.WriteParameters(cmdCOLMOD, value.raw[:])
}

// MemoryWriteContinue issues Memory Write Continue (0x3C), resuming a
// RAM write at the current pointer instead of the window start.
func (c *Controller) MemoryWriteContinue() error {
	return c.writeCommand(cmdRAMWRC)
}

// WriteMemory streams pixel words to display RAM. It is raw
// passthrough with no command framing: issue MemoryWriteStart or
// MemoryWriteContinue first.
func (c *Controller) WriteMemory(pixels iter.Seq[uint32]) error {
	return c.bus.WriteMemory(pixels)
}

// MemoryReadContinue issues Memory Read Continue (0x3E).
func (c *Controller) MemoryReadContinue() error {
	return c.writeCommand(cmdRAMRDC)
}

// ReadMemory fills words from display RAM. As with WriteMemory the
// caller frames the transfer, via MemoryReadStart or MemoryReadContinue.
func (c *Controller) ReadMemory(words []uint32) error {
	return c.bus.ReadMemory(words)
}

// SetTearScanline sets the scanline at which the tearing-effect line
// fires (0x44).
func (c *Controller) SetTearScanline(sts uint16) error {
	return c.bus.WriteParameters(cmdTESLWR, put16(make([]byte, 0, 2), sts))
}

// GetScanline reads the current scanline (0x45).
func (c *Controller) GetScanline() (uint16, error) {
	var result [2]byte
	if err := c.bus.ReadParameters(cmdTESLRD, result[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(result[:]), nil
}

// WriteDisplayBrightness sets the display brightness value (0x51).
func (c *Controller) WriteDisplayBrightness(dbv byte) error {
	return c.bus.WriteParameters(cmdWRDISBV, []byte{dbv})
}

// ReadDisplayBrightness reads the display brightness value (0x52).
func (c *Controller) ReadDisplayBrightness() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDDISBV, result[:])
	return result[0], err
}

// WriteCtrlDisplay writes the CTRL Display register (0x53).
func (c *Controller) WriteCtrlDisplay(value CtrlDisplay) error {
	return c.bus.WriteParameters(cmdWRCTRLD, value.raw[:])
}

// ReadCtrlDisplay reads the CTRL Display register (0x54).
func (c *Controller) ReadCtrlDisplay() (CtrlDisplay, error) {
	var result CtrlDisplay
	err := c.bus.ReadParameters(cmdRDCTRLD, result.raw[:])
	return result, err
}

// WriteCABC sets the content-adaptive brightness control mode (0x55).
func (c *Controller) WriteCABC(mode byte) error {
	return c.bus.WriteParameters(cmdWRCABC, []byte{mode})
}

// ReadCABC reads the content-adaptive brightness control mode (0x56).
func (c *Controller) ReadCABC() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDCABC, result[:])
	return result[0], err
}

// WriteCABCMinimumBrightness sets the CABC minimum brightness (0x5E).
func (c *Controller) WriteCABCMinimumBrightness(cmb byte) error {
	return c.bus.WriteParameters(cmdWRCABCMB, []byte{cmb})
}

// ReadCABCMinimumBrightness reads the CABC minimum brightness (0x5F).
func (c *Controller) ReadCABCMinimumBrightness() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDCABCMB, result[:])
	return result[0], err
}

// ReadID1 reads the manufacturer ID byte (0xDA).
func (c *Controller) ReadID1() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDID1, result[:])
	return result[0], err
}

// ReadID2 reads the driver version ID byte (0xDB).
func (c *Controller) ReadID2() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDID2, result[:])
	return result[0], err
}

// ReadID3 reads the driver ID byte (0xDC).
func (c *Controller) ReadID3() (byte, error) {
	var result [1]byte
	err := c.bus.ReadParameters(cmdRDID3, result[:])
	return result[0], err
}
