package cpu

import (
	"fmt"
	"iter"
	"log"
)

// StepResult reports the outcome of a Step or Run call.
type StepResult struct {
	Halted bool   // Machine halted (HLT or fault).
	Fault  Fault  // FAULT_NONE unless the step faulted.
	Pc     uint16 // Address of the instruction the result refers to.
	Code   Code   // Raw word fetched at Pc, if any.
}

// Cpu is the architectural state of one RISC-4 machine. Instances
// are fully independent; there is no shared or global state.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Reg    [REG_COUNT]uint8 // Register file. Reg[0] reads as zero.
	Pc     uint16           // Program counter, nibble units.
	FlagC  bool             // Carry flag.
	FlagZ  bool             // Zero flag.
	Memory []byte           // Flat memory, two nibble addresses per byte.
	Halted bool             // Set by HLT or by a fault.

	Steps int // Retired instruction counter.
}

// NewCpu creates a machine with the default memory size.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Memory: make([]byte, MEM_SIZE),
	}

	return
}

// Reset clears registers, flags, memory and counters, loads an
// optional binary image at address 0, and sets the entry point.
// Precondition violations surface here, never during execution.
func (cpu *Cpu) Reset(image []byte, entry uint16) (err error) {
	if entry > PC_MASK {
		return ErrEntryRange
	}
	if len(image) > len(cpu.Memory) {
		return ErrImageSize
	}

	if cpu.Verbose {
		log.Printf("cpu: reset entry=0x%03x image=%d bytes", entry, len(image))
	}

	clear(cpu.Reg[:])
	clear(cpu.Memory)
	cpu.FlagC = false
	cpu.FlagZ = false
	cpu.Halted = false
	cpu.Steps = 0
	cpu.Pc = entry
	copy(cpu.Memory, image)

	return
}

// Load places a binary image at a byte base address without
// disturbing the rest of the machine state.
func (cpu *Cpu) Load(image []byte, base int) (err error) {
	if base < 0 || base > len(cpu.Memory) {
		return ErrBaseRange
	}
	if len(image) > len(cpu.Memory)-base {
		return ErrImageSize
	}

	copy(cpu.Memory[base:], image)

	return
}

// Fetch reads the instruction word at the current PC. The PC counts
// nibbles; words are stored big-endian, two bytes per word.
func (cpu *Cpu) Fetch() (code Code) {
	addr := int(cpu.Pc&PC_MASK) / 2
	hi := cpu.Memory[addr%len(cpu.Memory)]
	lo := cpu.Memory[(addr+1)%len(cpu.Memory)]

	return Code(uint16(hi)<<8 | uint16(lo))
}

// Step executes one instruction: fetch at PC, decode, execute. The
// PC advances by the fetch step only when the instruction did not
// redirect control itself. On a fault the architectural state,
// including the PC, is exactly as it was before the step.
func (cpu *Cpu) Step() (res StepResult, err error) {
	res.Pc = cpu.Pc
	res.Halted = cpu.Halted
	if cpu.Halted {
		return
	}

	code := cpu.Fetch()
	res.Code = code

	inst, err := Decode(code)
	if err == nil {
		if cpu.Verbose {
			log.Printf("cpu: %03x: %v", cpu.Pc, inst)
		}

		var redirect bool
		redirect, err = cpu.Execute(inst)
		if err == nil {
			cpu.Steps++
			if !redirect && !cpu.Halted {
				cpu.Pc = (cpu.Pc + FETCH_STEP) & PC_MASK
			}
			res.Halted = cpu.Halted
			return
		}
	}

	cpu.Halted = true
	res.Halted = true
	res.Fault = FAULT_ILLEGAL
	err = &ErrFault{Pc: res.Pc, Err: err}

	return
}

// Run steps until halt, fault, or the step budget is exhausted.
func (cpu *Cpu) Run(maxSteps int) (res StepResult, err error) {
	res = StepResult{Pc: cpu.Pc, Halted: cpu.Halted}

	for range maxSteps {
		res, err = cpu.Step()
		if err != nil || res.Halted {
			break
		}
	}

	return
}

// Execute applies one decoded instruction to the machine state. All
// operands, including a destructive destination's prior value, are
// read before any write is committed. redirect reports that the
// instruction assigned the PC itself.
func (cpu *Cpu) Execute(inst Inst) (redirect bool, err error) {
	switch inst := inst.(type) {
	case InstR:
		rs := cpu.Reg[inst.Rs&0xF]
		rt := cpu.Reg[inst.Rt&0xF]
		switch inst.Op {
		case OP_ADD:
			cpu.setArith(inst.Rd, int(rs)+int(rt))
		case OP_SUB:
			cpu.setArith(inst.Rd, int(rs)-int(rt))
		case OP_AND:
			cpu.setLogic(inst.Rd, rs&rt)
		case OP_OR:
			cpu.setLogic(inst.Rd, rs|rt)
		case OP_XOR:
			cpu.setLogic(inst.Rd, rs^rt)
		case OP_SLT:
			var value uint8
			if SignExtend4(rs) < SignExtend4(rt) {
				value = 1
			}
			cpu.setLogic(inst.Rd, value)
		default:
			err = ErrInstUnknown
		}

	case InstI:
		rs := cpu.Reg[inst.Rs&0xF]
		switch inst.Op {
		case OP_SHF:
			cpu.execShift(inst.Rd, rs, inst.Imm4)
		case OP_ADDI:
			cpu.setArith(inst.Rd, int(rs)+SignExtend4(inst.Imm4))
		case OP_ANDI:
			cpu.setLogic(inst.Rd, rs&inst.Imm4)
		case OP_ORI:
			cpu.setLogic(inst.Rd, rs|inst.Imm4)
		case OP_SLTI:
			var value uint8
			if SignExtend4(rs) < SignExtend4(inst.Imm4) {
				value = 1
			}
			cpu.setLogic(inst.Rd, value)
		default:
			err = ErrInstUnknown
		}

	case InstExt:
		switch inst.Op {
		case OP_ADC:
			cpu.setArith(inst.Rd, int(cpu.Reg[inst.Rd&0xF])+int(cpu.Reg[inst.Rs&0xF])+cpu.carry())
		case OP_SBB:
			cpu.setArith(inst.Rd, int(cpu.Reg[inst.Rd&0xF])-int(cpu.Reg[inst.Rs&0xF])-cpu.carry())
		case OP_NEG:
			cpu.setArith(inst.Rd, -int(cpu.Reg[inst.Rs&0xF]))
		case OP_JR:
			target := uint16(cpu.Reg[REG_LINK_HI])<<8 |
				uint16(cpu.Reg[REG_LINK_MID])<<4 |
				uint16(cpu.Reg[REG_LINK_LO])
			cpu.Pc = target & PC_MASK
			redirect = true
		case OP_HLT:
			cpu.Halted = true
		default:
			err = ErrInstUnknown
		}

	case InstM:
		addr := (int(cpu.pair(inst.Base)) + SignExtend4(inst.Offset4)) & DATA_MASK
		switch inst.Op {
		case OP_LW:
			cpu.writeReg(inst.Rn, cpu.Memory[addr]&REG_MASK)
		case OP_SW:
			cpu.Memory[addr] = cpu.Reg[inst.Rn&0xF] & REG_MASK
		default:
			err = ErrInstUnknown
		}

	case InstB:
		var taken bool
		switch inst.Op {
		case OP_BEQ:
			taken = cpu.FlagZ
		case OP_BNE:
			taken = !cpu.FlagZ
		case OP_BCS:
			taken = cpu.FlagC
		case OP_BCC:
			taken = !cpu.FlagC
		default:
			err = ErrInstUnknown
			return
		}
		if taken {
			// Byte offset, scaled x4 into nibble units.
			cpu.Pc = uint16(int(cpu.Pc)+SignExtend8(inst.Offset8)*FETCH_STEP) & PC_MASK
			redirect = true
		}

	case InstJ:
		if inst.Link {
			ret := (cpu.Pc + FETCH_STEP) & PC_MASK
			cpu.writeReg(REG_LINK_HI, uint8(ret>>8))
			cpu.writeReg(REG_LINK_MID, uint8(ret>>4))
			cpu.writeReg(REG_LINK_LO, uint8(ret))
			cpu.Pc = inst.Target & JAL_TARGET_MASK
		} else {
			// Target is already in nibble units; never rescale.
			cpu.Pc = inst.Target & PC_MASK
		}
		redirect = true

	default:
		err = ErrInstUnknown
	}

	return
}

// writeReg commits a register write. Writes to r0 are discarded and
// the value is masked to the register width.
func (cpu *Cpu) writeReg(rd Reg, value uint8) {
	if rd&0xF != 0 {
		cpu.Reg[rd&0xF] = value & REG_MASK
	}
}

// pair reads the 8-bit value spread across a register pair, high
// nibble first. The second index wraps modulo the register count.
func (cpu *Cpu) pair(base Reg) uint8 {
	high := cpu.Reg[base&0xF]
	low := cpu.Reg[(base+1)&0xF]

	return high<<4 | low
}

// carry returns the carry flag as 0 or 1.
func (cpu *Cpu) carry() int {
	if cpu.FlagC {
		return 1
	}
	return 0
}

// setArith commits an arithmetic result: C from the untruncated
// carry/borrow-out, Z from the truncated value.
func (cpu *Cpu) setArith(rd Reg, wide int) {
	cpu.FlagC = wide > int(REG_MASK) || wide < 0
	value := uint8(wide) & REG_MASK
	cpu.FlagZ = value == 0
	cpu.writeReg(rd, value)
}

// setLogic commits a logical result: C is always cleared.
func (cpu *Cpu) setLogic(rd Reg, value uint8) {
	value &= REG_MASK
	cpu.FlagC = false
	cpu.FlagZ = value == 0
	cpu.writeReg(rd, value)
}

// execShift implements SHF. Bit 3 of imm4 selects the direction (set
// is right), the low three bits the amount. A zero amount passes the
// value through and clears carry; amounts past the register width
// shift out to zero.
func (cpu *Cpu) execShift(rd Reg, rs uint8, imm4 uint8) {
	right := imm4&0x8 != 0
	amount := imm4 & 0x7

	var value uint8
	switch {
	case amount == 0:
		cpu.FlagC = false
		value = rs
	case right:
		cpu.FlagC = (rs>>(amount-1))&1 != 0
		value = rs >> amount
	default:
		cpu.FlagC = amount <= 4 && (rs>>(4-amount))&1 != 0
		value = (rs << amount) & REG_MASK
	}

	cpu.FlagZ = value == 0
	cpu.writeReg(rd, value)
}

// State yields the architectural state as name/value pairs: r0..r15,
// pc, the flags as 0/1, and the retired-step counter.
func (cpu *Cpu) State() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for n, value := range cpu.Reg {
			if !yield(fmt.Sprintf("r%d", n), int(value)) {
				return
			}
		}
		flag := func(set bool) (value int) {
			if set {
				value = 1
			}
			return
		}
		if !yield("pc", int(cpu.Pc)) {
			return
		}
		if !yield("c", flag(cpu.FlagC)) {
			return
		}
		if !yield("z", flag(cpu.FlagZ)) {
			return
		}
		yield("steps", cpu.Steps)
	}
}

// String renders the machine state, four registers per line, with
// the conventional r14:r15 stack-pointer pair decoded.
func (cpu *Cpu) String() (text string) {
	for n := 0; n < REG_COUNT; n += 4 {
		text += fmt.Sprintf("r%-2d: %X  r%-2d: %X  r%-2d: %X  r%-2d: %X\n",
			n, cpu.Reg[n], n+1, cpu.Reg[n+1], n+2, cpu.Reg[n+2], n+3, cpu.Reg[n+3])
	}
	text += fmt.Sprintf(" pc: 0x%03X  c: %v  z: %v  sp: 0x%02X\n",
		cpu.Pc, cpu.FlagC, cpu.FlagZ, cpu.pair(14))

	return
}
