package cpu

import (
	"fmt"
)

// Inst is a decoded instruction. There is one concrete type per
// encoding format, so a field name never changes meaning with the
// format the way a generic "rd" would.
type Inst interface {
	fmt.Stringer

	// Format returns the encoding format tag of the instruction.
	Format() Format
}

// InstR is a register-register ALU instruction.
type InstR struct {
	Op         Op
	Rd, Rs, Rt Reg
}

// InstI is an immediate ALU instruction. For SHF, bit 3 of Imm4 is
// the direction (set = right) and the low three bits the amount.
type InstI struct {
	Op     Op
	Rd, Rs Reg
	Imm4   uint8
}

// InstExt is a funct-coded extended instruction (R layout, major
// 0x7). ADC and SBB are destructive: Rd is both an operand and the
// destination.
type InstExt struct {
	Op     Op
	Rd, Rs Reg
}

// InstM is a memory access. Rn is the data register: the destination
// of LW, the source of SW. Base names the high register of the
// address pair.
type InstM struct {
	Op       Op
	Rn, Base Reg
	Offset4  uint8
}

// InstB is a conditional branch. Offset8 is a signed byte offset
// relative to the branch's own address.
type InstB struct {
	Op      Op
	Offset8 uint8
}

// InstJ is a jump. Link comes from bit 11 of the raw word; Target is
// in nibble units and is never rescaled.
type InstJ struct {
	Op     Op
	Link   bool
	Target uint16
}

func (InstR) Format() Format   { return FORMAT_R }
func (InstI) Format() Format   { return FORMAT_I }
func (InstExt) Format() Format { return FORMAT_R }
func (InstM) Format() Format   { return FORMAT_M }
func (InstB) Format() Format   { return FORMAT_B }
func (InstJ) Format() Format   { return FORMAT_J }

func (inst InstR) String() string {
	return fmt.Sprintf("%v r%d, r%d, r%d", inst.Op, inst.Rd, inst.Rs, inst.Rt)
}

func (inst InstI) String() string {
	if inst.Op == OP_SHF {
		dir := "l"
		if inst.Imm4&0x8 != 0 {
			dir = "r"
		}
		return fmt.Sprintf("%v%v r%d, r%d, #%d", inst.Op, dir, inst.Rd, inst.Rs, inst.Imm4&0x7)
	}
	return fmt.Sprintf("%v r%d, r%d, #%d", inst.Op, inst.Rd, inst.Rs, inst.Imm4)
}

func (inst InstExt) String() string {
	switch inst.Op {
	case OP_JR, OP_HLT:
		return inst.Op.String()
	}
	return fmt.Sprintf("%v r%d, r%d", inst.Op, inst.Rd, inst.Rs)
}

func (inst InstM) String() string {
	return fmt.Sprintf("%v r%d, %d(r%d)", inst.Op, inst.Rn, SignExtend4(inst.Offset4), inst.Base)
}

func (inst InstB) String() string {
	return fmt.Sprintf("%v %d", inst.Op, SignExtend8(inst.Offset8))
}

func (inst InstJ) String() string {
	return fmt.Sprintf("%v 0x%03x", inst.Op, inst.Target)
}

var rTypeOps = [...]Op{OP_ADD, OP_SUB, OP_AND, OP_OR, OP_XOR, OP_SLT}
var iTypeOps = [...]Op{OP_ADDI, OP_ANDI, OP_ORI, OP_SLTI}
var branchOps = [...]Op{OP_BEQ, OP_BNE, OP_BCS, OP_BCC}
var extOps = [...]Op{OP_ADC, OP_SBB, OP_NEG, OP_JR, OP_HLT}

// Decode classifies a raw word into its format variant. Words outside
// the defined set (unknown EXT functs, unknown branch conditions)
// decode to an ErrOpcode; nothing is executed here.
func Decode(code Code) (inst Inst, err error) {
	switch major := code.Opcode(); {
	case major <= 0x5:
		rd, rs, rt := code.RType()
		inst = InstR{Op: rTypeOps[major], Rd: rd, Rs: rs, Rt: rt}
	case major == 0x6:
		rd, rs, imm4 := code.IType()
		inst = InstI{Op: OP_SHF, Rd: rd, Rs: rs, Imm4: imm4}
	case major == 0x7:
		funct := code.ExtFunct()
		if int(funct) >= len(extOps) {
			err = ErrOpcode(code)
			return
		}
		rd, rs, _ := code.RType()
		inst = InstExt{Op: extOps[funct], Rd: rd, Rs: rs}
	case major <= 0xB:
		rd, rs, imm4 := code.IType()
		inst = InstI{Op: iTypeOps[major-0x8], Rd: rd, Rs: rs, Imm4: imm4}
	case major == 0xC:
		rn, base, offset4 := code.MType()
		inst = InstM{Op: OP_LW, Rn: rn, Base: base, Offset4: offset4}
	case major == 0xD:
		rn, base, offset4 := code.MType()
		inst = InstM{Op: OP_SW, Rn: rn, Base: base, Offset4: offset4}
	case major == 0xE:
		cond, offset8 := code.BType()
		if int(cond) >= len(branchOps) {
			err = ErrOpcode(code)
			return
		}
		inst = InstB{Op: branchOps[cond], Offset8: offset8}
	default: // 0xF
		inst = InstJ{Op: OP_J, Target: code.JType()}
		if code.LinkBit() {
			inst = InstJ{Op: OP_JAL, Link: true, Target: code.JType()}
		}
	}

	return
}
