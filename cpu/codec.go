package cpu

// Architectural widths and masks.
const (
	REG_COUNT  = 16    // General-purpose registers.
	REG_MASK   = 0xF   // Register value width (4 bits).
	PC_MASK    = 0xFFF // Program counter width (12 bits, nibble units).
	DATA_MASK  = 0xFF  // Data address width (8 bits).
	MEM_SIZE   = 4096  // Memory size in bytes.
	FETCH_STEP = 4     // Nibbles per instruction word.

	JAL_TARGET_MASK = 0x7FF // Linking jumps target an 11-bit region.
)

// Link register triple. JAL spreads the 12-bit return address across
// r1:r2:r3, high nibble first; JR reassembles it from the same triple.
const (
	REG_LINK_HI  = Reg(1)
	REG_LINK_MID = Reg(2)
	REG_LINK_LO  = Reg(3)
)

// Reg is a register index (0..15).
type Reg uint8

// Code is a raw 16-bit instruction word.
type Code uint16

// Opcode returns the major opcode from the top four bits.
func (code Code) Opcode() uint8 {
	return uint8(code>>12) & 0xF
}

// RType extracts the register-register ALU fields.
func (code Code) RType() (rd, rs, rt Reg) {
	rd = Reg((code >> 8) & 0xF)
	rs = Reg((code >> 4) & 0xF)
	rt = Reg(code & 0xF)
	return
}

// IType extracts the immediate ALU fields.
func (code Code) IType() (rd, rs Reg, imm4 uint8) {
	rd = Reg((code >> 8) & 0xF)
	rs = Reg((code >> 4) & 0xF)
	imm4 = uint8(code & 0xF)
	return
}

// MType extracts the memory access fields. rn is the data register:
// the destination of a load, the source of a store. It is never a
// generic "rd" - stores read it, they do not write it.
func (code Code) MType() (rn, base Reg, offset4 uint8) {
	rn = Reg((code >> 8) & 0xF)
	base = Reg((code >> 4) & 0xF)
	offset4 = uint8(code & 0xF)
	return
}

// BType extracts the branch fields. offset8 is a signed byte offset
// relative to the branch's own address.
func (code Code) BType() (cond uint8, offset8 uint8) {
	cond = uint8((code >> 8) & 0xF)
	offset8 = uint8(code & 0xFF)
	return
}

// JType extracts the 12-bit jump target, already in nibble units.
func (code Code) JType() (target12 uint16) {
	return uint16(code) & 0xFFF
}

// ExtFunct returns the sub-opcode of an EXT (major 0x7) instruction.
func (code Code) ExtFunct() uint8 {
	return uint8(code & 0xF)
}

// LinkBit reports bit 11 of the raw word. For major opcode 0xF it
// selects JAL over J. Only the raw-word position is authoritative;
// the same bit is also bit 11 of the decoded target field, which once
// hid a decode defect.
func (code Code) LinkBit() bool {
	return (code>>11)&1 != 0
}

// SignExtend4 interprets bit 3 of a 4-bit field as the sign.
func SignExtend4(value uint8) int {
	value &= 0xF
	if value&0x8 != 0 {
		return int(value) - 0x10
	}
	return int(value)
}

// SignExtend8 interprets bit 7 of an 8-bit field as the sign.
func SignExtend8(value uint8) int {
	if value&0x80 != 0 {
		return int(value) - 0x100
	}
	return int(value)
}
