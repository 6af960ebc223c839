package cpu

import (
	"iter"
)

// Program is an ordered list of instruction words forming a binary
// image. Word n loads at byte offset 2n, nibble address 4n.
type Program struct {
	Codes []Code
}

// Add appends instruction words.
func (prog *Program) Add(codes ...Code) {
	prog.Codes = append(prog.Codes, codes...)
}

// Bytes renders the big-endian binary image consumed by Cpu.Reset
// and Cpu.Load.
func (prog *Program) Bytes() (image []byte) {
	image = make([]byte, 0, len(prog.Codes)*2)
	for _, code := range prog.Codes {
		image = append(image, byte(code>>8), byte(code))
	}

	return
}

// Words iterates (nibble address, word) pairs in load order.
func (prog *Program) Words() iter.Seq2[uint16, Code] {
	return func(yield func(pc uint16, code Code) bool) {
		for n, code := range prog.Codes {
			if !yield(uint16(n*FETCH_STEP)&PC_MASK, code) {
				return
			}
		}
	}
}
