package ili9341

// ILI9341 level 1 command set (datasheet pp. 83-88). The extended
// (level 2 / vendor) command set at 0xB0 and above is not supported.
const (
	cmdNOP     = 0x00 // No Operation
	cmdSWRESET = 0x01 // Software Reset

	cmdRDDIDIF   = 0x04 // Read Display Identification Information
	cmdRDDST     = 0x09 // Read Display Status
	cmdRDDPM     = 0x0A // Read Display Power Mode
	cmdRDDMADCTL = 0x0B // Read Display MADCTL
	cmdRDDCOLMOD = 0x0C // Read Display Pixel Format
	cmdRDDIM     = 0x0D // Read Display Image Format
	cmdRDDSM     = 0x0E // Read Display Signal Mode
	cmdRDDSDR    = 0x0F // Read Display Self-Diagnostic Result

	cmdSLPIN  = 0x10 // Enter Sleep Mode
	cmdSLPOUT = 0x11 // Sleep Out
	cmdPTLON  = 0x12 // Partial Mode ON
	cmdNORON  = 0x13 // Normal Display Mode ON

	cmdINVOFF = 0x20 // Display Inversion OFF
	cmdINVON  = 0x21 // Display Inversion ON
	cmdGAMSET = 0x26 // Gamma Set
	cmdDISOFF = 0x28 // Display OFF
	cmdDISON  = 0x29 // Display ON

	cmdCASET  = 0x2A // Column Address Set
	cmdPASET  = 0x2B // Page Address Set
	cmdRAMWR  = 0x2C // Memory Write
	cmdRGBSET = 0x2D // Color Set
	cmdRAMRD  = 0x2E // Memory Read

	cmdPLTAR    = 0x30 // Partial Area
	cmdVSCRDEF  = 0x33 // Vertical Scrolling Definition
	cmdTEOFF    = 0x34 // Tearing Effect Line OFF
	cmdTEON     = 0x35 // Tearing Effect Line ON
	cmdMADCTL   = 0x36 // Memory Access Control
	cmdVSCRSADD = 0x37 // Vertical Scrolling Start Address
	cmdIDMOFF   = 0x38 // Idle Mode OFF
	cmdIDMON    = 0x39 // Idle Mode ON
	cmdCOLMOD   = 0x3A // COLMOD: Interface Pixel Format
	cmdRAMWRC   = 0x3C // Memory Write Continue
	cmdRAMRDC   = 0x3E // Memory Read Continue

	cmdTESLWR = 0x44 // Set Tear Scanline
	cmdTESLRD = 0x45 // Get Scanline

	cmdWRDISBV  = 0x51 // Write Display Brightness Value
	cmdRDDISBV  = 0x52 // Read Display Brightness Value
	cmdWRCTRLD  = 0x53 // Write CTRL Display Value
	cmdRDCTRLD  = 0x54 // Read CTRL Display Value
	cmdWRCABC   = 0x55 // Write Content Adaptive Brightness Control Value
	cmdRDCABC   = 0x56 // Read Content Adaptive Brightness Control Value
	cmdWRCABCMB = 0x5E // Write CABC Minimum Brightness
	cmdRDCABCMB = 0x5F // Read CABC Minimum Brightness

	cmdRDID1 = 0xDA // Read ID1
	cmdRDID2 = 0xDB // Read ID2
	cmdRDID3 = 0xDC // Read ID3
)

// Memory Access Control (MADCTL) bit masks, for building the value
// written with Controller.MemoryAccessControl.
const (
	MADCtlMY  byte = 0x80 // Row address order: bottom to top
	MADCtlMX  byte = 0x40 // Column address order: right to left
	MADCtlMV  byte = 0x20 // Row/column exchange
	MADCtlML  byte = 0x10 // Vertical refresh order: bottom to top
	MADCtlBGR byte = 0x08 // Blue-Green-Red pixel order
	MADCtlMH  byte = 0x04 // Horizontal refresh order: right to left
)
