package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgramBytes(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	prog.Add(Code(0xA105), Code(0x0211))

	// Big-endian, two bytes per word.
	assert.Equal([]byte{0xA1, 0x05, 0x02, 0x11}, prog.Bytes())
}

func TestProgramWords(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	prog.Add(Code(0xA105), Code(0x0211), Code(0x7004))

	var pcs []uint16
	for pc, code := range prog.Words() {
		pcs = append(pcs, pc)
		assert.Equal(prog.Codes[len(pcs)-1], code)
	}

	// One word per fetch step, in nibble units.
	assert.Equal([]uint16{0x0, 0x4, 0x8}, pcs)
}

func TestMakeCodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		want Inst
	}){
		{"r", MakeCodeR(OP_SUB, 3, 1, 2), InstR{Op: OP_SUB, Rd: 3, Rs: 1, Rt: 2}},
		{"i", MakeCodeI(OP_SLTI, 2, 1, 0x8), InstI{Op: OP_SLTI, Rd: 2, Rs: 1, Imm4: 0x8}},
		{"ext", MakeCodeExt(OP_SBB, 6, 4), InstExt{Op: OP_SBB, Rd: 6, Rs: 4}},
		{"jr", MakeCodeJr(), InstExt{Op: OP_JR, Rd: 0, Rs: 0}},
		{"hlt", MakeCodeHlt(), InstExt{Op: OP_HLT, Rd: 0, Rs: 0}},
		{"sw", MakeCodeMem(OP_SW, 6, 4, -1), InstM{Op: OP_SW, Rn: 6, Base: 4, Offset4: 0xF}},
		{"branch", MakeCodeBranch(OP_BCC, -2), InstB{Op: OP_BCC, Offset8: 0xFE}},
		{"j", MakeCodeJump(0x123), InstJ{Op: OP_J, Target: 0x123}},
		{"shf", MakeCodeShf(2, 1, true, 3), InstI{Op: OP_SHF, Rd: 2, Rs: 1, Imm4: 0xB}},
	}

	for _, entry := range table {
		inst, err := Decode(entry.code)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, inst, entry.name)
	}
}
