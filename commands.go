package ssd1327

// Control bytes prefixing every I²C transaction. The SSD1327 interprets the
// rest of the transaction as commands after 0x00 and as GDDRAM data after
// 0x40.
const (
	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// Command is a single entry of the SSD1327 command set. The zero value is not
// a valid command; use the exported values and constructor functions below.
//
// Commands carry zero, one or two parameter bytes. Parameter values are sent
// to the controller verbatim; the device itself rejects out-of-range values,
// so no range checking happens here.
type Command struct {
	opcode byte
	args   [2]byte
	n      int // encoded length, control byte included (2 to 4)
}

// encode returns the wire form of the command: the 0x00 control byte, the
// opcode and the parameter bytes, plus the number of bytes to send.
func (c Command) encode() ([4]byte, int) {
	return [4]byte{ctrlCommand, c.opcode, c.args[0], c.args[1]}, c.n
}

// Commands without parameters.
var (
	// DisplayModeNormal shows GDDRAM content as-is (0xA4).
	DisplayModeNormal = Command{opcode: 0xA4, n: 2}
	// DisplayModeAllOn lights every pixel regardless of GDDRAM (0xA5).
	DisplayModeAllOn = Command{opcode: 0xA5, n: 2}
	// DisplayModeAllOff blanks every pixel regardless of GDDRAM (0xA6).
	DisplayModeAllOff = Command{opcode: 0xA6, n: 2}
	// DisplayModeInverse shows GDDRAM content with inverted gray levels (0xA7).
	DisplayModeInverse = Command{opcode: 0xA7, n: 2}
	// DisplayOn turns the panel on (0xAF).
	DisplayOn = Command{opcode: 0xAF, n: 2}
	// DisplayOff turns the panel off, entering sleep mode (0xAE).
	DisplayOff = Command{opcode: 0xAE, n: 2}
	// LinearLUT selects the default linear grayscale lookup table (0xB9).
	LinearLUT = Command{opcode: 0xB9, n: 2}
	// SelectExternalVDD powers the logic from the external VDD pin (0xAB 0x00).
	SelectExternalVDD = Command{opcode: 0xAB, args: [2]byte{0x00}, n: 3}
	// SelectInternalVDD powers the logic from the internal regulator, the
	// reset default (0xAB 0x01).
	SelectInternalVDD = Command{opcode: 0xAB, args: [2]byte{0x01}, n: 3}
	// CommandUnlock unlocks the MCU command interface, the reset default
	// (0xFD 0x12).
	CommandUnlock = Command{opcode: 0xFD, args: [2]byte{0x00, 0x12}, n: 4}
	// CommandLock locks the MCU command interface; only CommandUnlock is
	// accepted afterwards (0xFD 0x16).
	CommandLock = Command{opcode: 0xFD, args: [2]byte{0x00, 0x16}, n: 4}
)

// ColumnAddress sets the column window for GDDRAM access (0x15). start and
// end are byte columns, two pixels each, 0x00 to 0x3F.
func ColumnAddress(start, end byte) Command {
	return Command{opcode: 0x15, args: [2]byte{start, end}, n: 4}
}

// RowAddress sets the row window for GDDRAM access (0x75). start and end are
// 0x00 to 0x7F.
func RowAddress(start, end byte) Command {
	return Command{opcode: 0x75, args: [2]byte{start, end}, n: 4}
}

// ContrastControl selects 1 of 256 contrast steps (0x81). Reset value is
// 0x7F.
func ContrastControl(level byte) Command {
	return Command{opcode: 0x81, args: [2]byte{level}, n: 3}
}

// Remap configures GDDRAM address remapping (0xA0): column remap, nibble
// remap, address increment direction, COM remap and COM split odd/even.
func Remap(mode byte) Command {
	return Command{opcode: 0xA0, args: [2]byte{mode}, n: 3}
}

// DisplayStartLine shifts the display vertically by the given RAM row, 0 to
// 127 (0xA1).
func DisplayStartLine(line byte) Command {
	return Command{opcode: 0xA1, args: [2]byte{line}, n: 3}
}

// DisplayOffset sets the vertical COM offset, 0 to 127 (0xA2).
func DisplayOffset(offset byte) Command {
	return Command{opcode: 0xA2, args: [2]byte{offset}, n: 3}
}

// MUXRatio sets the multiplex ratio, 16MUX to 128MUX (0xA8).
func MUXRatio(ratio byte) Command {
	return Command{opcode: 0xA8, args: [2]byte{ratio}, n: 3}
}

// FunctionSelectionA selects external (0x00) or internal (0x01) VDD (0xAB).
// SelectExternalVDD and SelectInternalVDD cover the two defined values.
func FunctionSelectionA(value byte) Command {
	return Command{opcode: 0xAB, args: [2]byte{value}, n: 3}
}

// PhaseLength sets the reset and pre-charge phase lengths in DCLKs (0xB1).
func PhaseLength(value byte) Command {
	return Command{opcode: 0xB1, args: [2]byte{value}, n: 3}
}

// FrontClockDivider sets the front clock divide ratio and oscillator
// frequency (0xB3).
func FrontClockDivider(value byte) Command {
	return Command{opcode: 0xB3, args: [2]byte{value}, n: 3}
}

// GPIO configures the controller's GPIO pin: HiZ, input enabled, output low
// or output high (0xB5).
func GPIO(mode byte) Command {
	return Command{opcode: 0xB5, args: [2]byte{mode}, n: 3}
}

// SecondPreChargePeriod sets the second pre-charge period, 1 to 15 DCLKs
// (0xB6).
func SecondPreChargePeriod(period byte) Command {
	return Command{opcode: 0xB6, args: [2]byte{period}, n: 3}
}

// PreChargeVoltage sets the pre-charge voltage level (0xBC).
func PreChargeVoltage(level byte) Command {
	return Command{opcode: 0xBC, args: [2]byte{level}, n: 3}
}

// VCOMH sets the COM deselect voltage level (0xBE).
func VCOMH(level byte) Command {
	return Command{opcode: 0xBE, args: [2]byte{level}, n: 3}
}

// FunctionSelectionB enables the second pre-charge and selects internal or
// external VSL (0xD5).
func FunctionSelectionB(value byte) Command {
	return Command{opcode: 0xD5, args: [2]byte{value}, n: 3}
}

// SetCommandLock sets the MCU protection status (0xFD): 0x12 unlocks, 0x16
// locks. CommandUnlock and CommandLock cover the two defined values.
func SetCommandLock(status byte) Command {
	return Command{opcode: 0xFD, args: [2]byte{status}, n: 3}
}
