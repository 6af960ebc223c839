package cpu

import (
	"errors"

	"github.com/jking323/risc-4/translate"
)

var f = translate.From

var (
	// Reset/load precondition errors
	ErrEntryRange = errors.New(f("entry point out of range"))
	ErrImageSize  = errors.New(f("image does not fit memory"))
	ErrBaseRange  = errors.New(f("load base out of range"))

	// Execution errors
	ErrInstUnknown = errors.New(f("unknown instruction variant"))
)

// ErrOpcode reports an instruction word outside the defined set.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("illegal instruction 0x%04x", uint16(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrFault locates a fault at the program counter that raised it.
type ErrFault struct {
	Pc  uint16
	Err error
}

func (err *ErrFault) Error() string {
	return f("pc 0x%03x: %v", err.Pc, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
