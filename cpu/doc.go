// Package cpu implements the RISC-4 instruction-set simulator core.
//
// The machine has 16 four-bit general-purpose registers (r0 reads as
// zero and ignores writes), a 12-bit nibble-addressed program counter,
// carry and zero flags, and a flat memory. Instructions are fixed
// 16-bit words in five encoding formats (R, I, M, B, J), fetched
// big-endian at the program counter.
//
// The package splits the core into a pure bit-field codec on raw
// words, a decoder producing one tagged variant per format, an
// execution engine that reads all operands before committing any
// write, and a fetch-execute loop driven through Reset, Step and Run.
// All faults are returned as values; address and PC arithmetic wraps
// by masking rather than faulting.
package cpu
