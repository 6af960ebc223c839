package cpu

import (
	"fmt"
)

// Format is an instruction encoding format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // r
	FORMAT_I = Format(1) // i
	FORMAT_M = Format(2) // m
	FORMAT_B = Format(3) // b
	FORMAT_J = Format(4) // j
)

// Op is an architectural operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_ADD  = Op(0)  // add
	OP_SUB  = Op(1)  // sub
	OP_AND  = Op(2)  // and
	OP_OR   = Op(3)  // or
	OP_XOR  = Op(4)  // xor
	OP_SLT  = Op(5)  // slt
	OP_SHF  = Op(6)  // shf
	OP_ADC  = Op(7)  // adc
	OP_SBB  = Op(8)  // sbb
	OP_NEG  = Op(9)  // neg
	OP_JR   = Op(10) // jr
	OP_HLT  = Op(11) // hlt
	OP_ADDI = Op(12) // addi
	OP_ANDI = Op(13) // andi
	OP_ORI  = Op(14) // ori
	OP_SLTI = Op(15) // slti
	OP_LW   = Op(16) // lw
	OP_SW   = Op(17) // sw
	OP_BEQ  = Op(18) // beq
	OP_BNE  = Op(19) // bne
	OP_BCS  = Op(20) // bcs
	OP_BCC  = Op(21) // bcc
	OP_J    = Op(22) // j
	OP_JAL  = Op(23) // jal
)

// Fault is the kind of fault a step can raise.
type Fault int

//go:generate go tool stringer -linecomment -type=Fault
const (
	FAULT_NONE    = Fault(0) // none
	FAULT_ILLEGAL = Fault(1) // illegal
)

// makeWord assembles the common [major:4][a:4][b:4][c:4] layout.
func makeWord(major, a, b, c uint16) Code {
	return Code(major<<12 | (a&0xF)<<8 | (b&0xF)<<4 | c&0xF)
}

// MakeCodeR builds a register-register ALU word (ADD..SLT).
func MakeCodeR(op Op, rd, rs, rt Reg) Code {
	var major uint16
	switch op {
	case OP_ADD:
		major = 0x0
	case OP_SUB:
		major = 0x1
	case OP_AND:
		major = 0x2
	case OP_OR:
		major = 0x3
	case OP_XOR:
		major = 0x4
	case OP_SLT:
		major = 0x5
	default:
		panic("not an r-type op")
	}
	return makeWord(major, uint16(rd), uint16(rs), uint16(rt))
}

// MakeCodeI builds an immediate ALU word (ADDI..SLTI).
func MakeCodeI(op Op, rd, rs Reg, imm4 uint8) Code {
	var major uint16
	switch op {
	case OP_ADDI:
		major = 0x8
	case OP_ANDI:
		major = 0x9
	case OP_ORI:
		major = 0xA
	case OP_SLTI:
		major = 0xB
	default:
		panic("not an i-type op")
	}
	return makeWord(major, uint16(rd), uint16(rs), uint16(imm4))
}

// MakeCodeShf builds a shift word. amount is clamped to 0..7.
func MakeCodeShf(rd, rs Reg, right bool, amount uint8) Code {
	imm4 := uint16(amount & 0x7)
	if right {
		imm4 |= 0x8
	}
	return makeWord(0x6, uint16(rd), uint16(rs), imm4)
}

// MakeCodeExt builds a funct-coded extended word (ADC, SBB, NEG).
func MakeCodeExt(op Op, rd, rs Reg) Code {
	var funct uint16
	switch op {
	case OP_ADC:
		funct = 0x0
	case OP_SBB:
		funct = 0x1
	case OP_NEG:
		funct = 0x2
	default:
		panic("not an ext op")
	}
	return makeWord(0x7, uint16(rd), uint16(rs), funct)
}

// MakeCodeJr builds the jump-register (return) word.
func MakeCodeJr() Code {
	return makeWord(0x7, 0, 0, 0x3)
}

// MakeCodeHlt builds the halt word.
func MakeCodeHlt() Code {
	return makeWord(0x7, 0, 0, 0x4)
}

// MakeCodeMem builds a memory access word (LW, SW). offset is a
// signed nibble offset in -8..7.
func MakeCodeMem(op Op, rn, base Reg, offset int) Code {
	var major uint16
	switch op {
	case OP_LW:
		major = 0xC
	case OP_SW:
		major = 0xD
	default:
		panic("not a memory op")
	}
	return makeWord(major, uint16(rn), uint16(base), uint16(offset)&0xF)
}

// MakeCodeBranch builds a branch word (BEQ..BCC). offset is a signed
// byte offset in -128..127, relative to the branch's own address.
func MakeCodeBranch(op Op, offset int) Code {
	var cond uint16
	switch op {
	case OP_BEQ:
		cond = 0x0
	case OP_BNE:
		cond = 0x1
	case OP_BCS:
		cond = 0x2
	case OP_BCC:
		cond = 0x3
	default:
		panic("not a branch op")
	}
	return Code(0xE<<12 | cond<<8 | uint16(offset)&0xFF)
}

// MakeCodeJump builds a plain jump word. target is in nibble units.
// Bit 11 of the target region doubles as the link bit, so a plain
// jump can only encode targets below 0x800.
func MakeCodeJump(target uint16) Code {
	return Code(0xF<<12 | target&JAL_TARGET_MASK)
}

// MakeCodeJal builds a linking jump word. target is in nibble units,
// masked to the 11-bit linking target region.
func MakeCodeJal(target uint16) Code {
	return Code(0xF<<12 | 0x800 | target&JAL_TARGET_MASK)
}

// String returns the assembly representation of the word, or a data
// directive when the word is not a defined instruction.
func (code Code) String() (out string) {
	inst, err := Decode(code)
	if err != nil {
		return fmt.Sprintf("dw 0x%04x", uint16(code))
	}
	return inst.String()
}
