// Package emulator wraps the simulator core with the conveniences a
// debugging front-end needs: program loading, step budgets, verbose
// tracing, and starlark watchpoint expressions over machine state.
package emulator

import (
	"iter"
	"log"
	"maps"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/jking323/risc-4/cpu"
	"github.com/jking323/risc-4/internal"
)

const (
	DEFAULT_BUDGET = 10000 // Step budget for Run when none is set.
)

// Watch is a named starlark predicate over the machine state.
// Execution pauses when the predicate evaluates true. The expression
// sees r0..r15, pc, c, z, steps and budget as integers.
type Watch struct {
	Name string
	Expr string
}

// Emulator drives a Cpu with a program image, step budgets and
// watchpoints.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the machine simulation.

	Program *cpu.Program // Program image loaded on Reset.
	Watches []Watch      // Watchpoints checked after every step.
	Budget  int          // Steps per Run; DEFAULT_BUDGET if zero.
}

// NewEmulator creates an emulator around a fresh machine.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Reset loads the program image at address 0 and sets the entry
// point.
func (emu *Emulator) Reset(entry uint16) (err error) {
	emu.Cpu.Verbose = emu.Verbose

	return emu.Cpu.Reset(emu.Program.Bytes(), entry)
}

// budget returns the effective step budget.
func (emu *Emulator) budget() int {
	if emu.Budget > 0 {
		return emu.Budget
	}
	return DEFAULT_BUDGET
}

// State yields the machine state plus the emulator counters.
func (emu *Emulator) State() iter.Seq2[string, int] {
	extra := map[string]int{
		"budget": emu.budget(),
	}

	return internal.IterSeq2Concat(emu.Cpu.State(), maps.All(extra))
}

// environ builds the starlark environment from the current state.
func (emu *Emulator) environ() starlark.StringDict {
	pred := starlark.StringDict{}
	for key, value := range emu.State() {
		pred[key] = starlark.MakeInt(value)
	}

	return pred
}

// evalWatch evaluates one watch predicate against the current state.
func (emu *Emulator) evalWatch(watch Watch) (hit bool, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + watch.Expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, watch.Name, prog, emu.environ())
	if err != nil {
		err = &ErrWatch{Name: watch.Name, Err: err}
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = &ErrWatch{Name: watch.Name, Err: ErrWatchExpr(watch.Expr)}
		return
	}
	hit = bool(st_rc.Truth())

	return
}

// Tick performs a single machine step, then evaluates the watches.
// hit names the first watch that matched, if any.
func (emu *Emulator) Tick() (res cpu.StepResult, hit *Watch, err error) {
	emu.Cpu.Verbose = emu.Verbose

	res, err = emu.Cpu.Step()
	if err != nil || res.Halted {
		return
	}

	for n := range emu.Watches {
		var match bool
		match, err = emu.evalWatch(emu.Watches[n])
		if err != nil {
			return
		}
		if match {
			hit = &emu.Watches[n]
			if emu.Verbose {
				log.Printf("emulator: watch %v hit at pc 0x%03x", hit.Name, emu.Cpu.Pc)
			}
			return
		}
	}

	return
}

// Run ticks until halt, fault, watch hit, or budget exhaustion. A
// run that exhausts its budget returns with res.Halted false, no
// watch and no error.
func (emu *Emulator) Run() (res cpu.StepResult, hit *Watch, err error) {
	for range emu.budget() {
		res, hit, err = emu.Tick()
		if err != nil || hit != nil || res.Halted {
			return
		}
	}

	return
}
