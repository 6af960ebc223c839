package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FuzzStep feeds arbitrary instruction words through the machine and
// checks the totality invariants: register 0 stays zero, values stay
// within register width, the PC stays within its 12-bit range, and
// the only failure mode is an illegal-instruction fault that leaves
// the PC untouched.
func FuzzStep(f *testing.F) {
	f.Add(uint16(0x0000), uint8(0))
	f.Add(uint16(0x7005), uint8(0xFF))
	f.Add(uint16(0xFFFF), uint8(0x5A))
	f.Add(uint16(0xE4FE), uint8(0x81))
	f.Add(uint16(0xD2E1), uint8(0x13))

	f.Fuzz(func(t *testing.T, word uint16, seed uint8) {
		assert := assert.New(t)

		cpu := NewCpu()
		err := cpu.Reset(nil, 0)
		assert.NoError(err)

		for n := range cpu.Reg {
			cpu.Reg[n] = (seed + uint8(n)) & REG_MASK
		}
		cpu.Reg[0] = 0
		cpu.FlagC = seed&1 != 0
		cpu.FlagZ = seed&2 != 0

		cpu.Memory[0] = byte(word >> 8)
		cpu.Memory[1] = byte(word)

		res, err := cpu.Step()
		if err != nil {
			assert.ErrorIs(err, ErrOpcode(0))
			assert.True(res.Halted)
			assert.Equal(FAULT_ILLEGAL, res.Fault)
			assert.Equal(uint16(0), cpu.Pc)
		}

		assert.Equal(uint8(0), cpu.Reg[0])
		for n, value := range cpu.Reg {
			assert.LessOrEqual(value, uint8(REG_MASK), "r%d", n)
		}
		assert.LessOrEqual(cpu.Pc, uint16(PC_MASK))
	})
}
