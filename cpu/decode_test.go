package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFormats(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
		want Inst
	}){
		{"add", 0x0123, InstR{Op: OP_ADD, Rd: 1, Rs: 2, Rt: 3}},
		{"slt", 0x5FED, InstR{Op: OP_SLT, Rd: 0xF, Rs: 0xE, Rt: 0xD}},
		{"shf", 0x6129, InstI{Op: OP_SHF, Rd: 1, Rs: 2, Imm4: 9}},
		{"adc", 0x7450, InstExt{Op: OP_ADC, Rd: 4, Rs: 5}},
		{"sbb", 0x7451, InstExt{Op: OP_SBB, Rd: 4, Rs: 5}},
		{"neg", 0x7452, InstExt{Op: OP_NEG, Rd: 4, Rs: 5}},
		{"jr", 0x7003, InstExt{Op: OP_JR, Rd: 0, Rs: 0}},
		{"hlt", 0x7004, InstExt{Op: OP_HLT, Rd: 0, Rs: 0}},
		{"addi", 0x8345, InstI{Op: OP_ADDI, Rd: 3, Rs: 4, Imm4: 5}},
		{"ori", 0xA105, InstI{Op: OP_ORI, Rd: 1, Rs: 0, Imm4: 5}},
		{"lw", 0xC2E1, InstM{Op: OP_LW, Rn: 2, Base: 0xE, Offset4: 1}},
		{"sw", 0xD2E1, InstM{Op: OP_SW, Rn: 2, Base: 0xE, Offset4: 1}},
		{"beq", 0xE002, InstB{Op: OP_BEQ, Offset8: 2}},
		{"bcc", 0xE3FE, InstB{Op: OP_BCC, Offset8: 0xFE}},
		{"j", 0xF010, InstJ{Op: OP_J, Target: 0x010}},
		{"jal", 0xF810, InstJ{Op: OP_JAL, Link: true, Target: 0x810}},
	}

	for _, entry := range table {
		inst, err := Decode(entry.code)
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, inst, entry.name)
	}
}

func TestDecodeIllegal(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code Code
	}){
		{"ext funct 5", 0x7005},
		{"ext funct 15", 0x7A0F},
		{"branch cond 4", 0xE400},
		{"branch cond 15", 0xEFFE},
	}

	for _, entry := range table {
		inst, err := Decode(entry.code)
		assert.Nil(inst, entry.name)
		assert.ErrorIs(err, ErrOpcode(0), entry.name)
		assert.Equal(ErrOpcode(entry.code), err, entry.name)
	}
}

func TestDecodeNeverExecutes(t *testing.T) {
	assert := assert.New(t)

	// Decoding must not touch machine state; only Execute does.
	cpu := NewCpu()
	_, err := Decode(MakeCodeI(OP_ORI, 1, 0, 5))
	assert.NoError(err)
	assert.Equal(uint8(0), cpu.Reg[1])
	assert.Equal(uint16(0), cpu.Pc)
}

func TestInstString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add r1, r2, r3", Code(0x0123).String())
	assert.Equal("lw r2, 1(r14)", Code(0xC2E1).String())
	assert.Equal("sw r2, -1(r14)", Code(0xD2EF).String())
	assert.Equal("beq 2", Code(0xE002).String())
	assert.Equal("j 0x010", Code(0xF010).String())
	assert.Equal("jal 0x810", Code(0xF810).String())
	assert.Equal("hlt", Code(0x7004).String())
	assert.Equal("dw 0x7005", Code(0x7005).String())
}
