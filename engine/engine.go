package engine

import (
	"strings"
	"unicode/utf8"
)

// Engine is one program execution context. The zero value is not usable;
// construct engines with New.
type Engine struct {
	cfg    config
	prog   program
	tape   tape
	ip     int
	input  []rune
	output strings.Builder
	steps  uint64
	status Status
}

// New creates an idle engine with status StatusReady.
// Returns ErrConfiguration if the options describe an unusable tape.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		tape:   newTape(cfg),
		status: StatusReady,
	}, nil
}

// Reset discards the program and all execution state, leaving an idle engine
// with the same tape size and bounds.
func (e *Engine) Reset() {
	e.prog = program{}
	e.tape.reset()
	e.ip = 0
	e.input = nil
	e.output.Reset()
	e.steps = 0
	e.status = StatusReady
}

// Load resets the engine and compiles source, seeding the input buffer with
// input. Characters outside the instruction alphabet are ignored.
//
// On unbalanced brackets Load returns a *ParseError and the status becomes
// StatusParserError. Otherwise the status is StatusRunning, or
// StatusFinished when source contains no instructions.
func (e *Engine) Load(source, input string) error {
	e.Reset()
	prog, err := compile(source)
	if err != nil {
		e.status = StatusParserError
		return err
	}
	e.prog = prog
	e.input = []rune(input)
	if len(prog.code) == 0 {
		e.status = StatusFinished
	} else {
		e.status = StatusRunning
	}
	return nil
}

// AddInput appends s to the input buffer. A waiting engine becomes
// StatusRunning even when s is empty; no instruction executes until the
// next Step or Run, which waits again if the buffer is still empty.
func (e *Engine) AddInput(s string) {
	e.input = append(e.input, []rune(s)...)
	if e.status == StatusWaitingForInput {
		e.status = StatusRunning
	}
}

// Step executes at most n instructions and returns the resulting status.
// A non-positive n executes nothing.
func (e *Engine) Step(n int) Status {
	if n <= 0 {
		return e.status
	}
	return e.exec(n, true)
}

// Run executes until the program finishes, waits for input, or fails.
// It never returns for a program that loops forever without reading input.
func (e *Engine) Run() Status {
	return e.exec(0, false)
}

// exec is the dispatch loop. When bounded is false the budget is ignored.
func (e *Engine) exec(budget int, bounded bool) Status {
	switch {
	case e.status.Terminal():
		return e.status
	case e.status == StatusWaitingForInput && len(e.input) == 0:
		return e.status
	}
	e.status = StatusRunning

	code := e.prog.code
	for taken := 0; !bounded || taken < budget; taken++ {
		if e.ip >= len(code) {
			e.status = StatusFinished
			break
		}

		switch code[e.ip] {
		case opRight:
			e.tape.right()
		case opLeft:
			e.tape.left()
		case opInc:
			if st := e.tape.add(1); st != StatusRunning {
				e.status = st
				return st
			}
		case opDec:
			if st := e.tape.add(-1); st != StatusRunning {
				e.status = st
				return st
			}
		case opOutput:
			e.output.WriteRune(outputRune(e.tape.get()))
		case opInput:
			if len(e.input) == 0 {
				e.status = StatusWaitingForInput
				return e.status
			}
			e.tape.set(int64(e.input[0]))
			e.input = e.input[1:]
		case opOpen:
			if e.tape.get() == 0 {
				e.ip = e.prog.jumps[e.ip]
			}
		case opClose:
			if e.tape.get() != 0 {
				e.ip = e.prog.jumps[e.ip]
			}
		}

		e.ip++
		e.steps++
	}
	return e.status
}

// outputRune maps a cell value to the character '.' writes. Values that are
// valid Unicode scalar values are written as is; anything else (negative,
// surrogate, or beyond U+10FFFF) is reduced modulo 256.
func outputRune(v int64) rune {
	if v >= 0 && v <= utf8.MaxRune && utf8.ValidRune(rune(v)) {
		return rune(v)
	}
	b := v % 256
	if b < 0 {
		b += 256
	}
	return rune(b)
}

// Status returns the current execution status.
func (e *Engine) Status() Status {
	return e.status
}

// Output returns everything written by '.' since the program was loaded.
func (e *Engine) Output() string {
	return e.output.String()
}

// Steps returns the number of instructions executed since the program was
// loaded.
func (e *Engine) Steps() uint64 {
	return e.steps
}

// Cell returns the value under the data pointer.
func (e *Engine) Cell() int64 {
	return e.tape.get()
}

// TapeSize returns the number of cells on the tape.
func (e *Engine) TapeSize() int {
	return len(e.tape.cells)
}

// Bounds returns the inclusive cell value range.
func (e *Engine) Bounds() (minValue, maxValue int64) {
	return e.cfg.minValue, e.cfg.maxValue
}

// ProgramLength returns the number of instructions in the loaded program.
func (e *Engine) ProgramLength() int {
	return len(e.prog.code)
}

// DataPointer returns the index of the current cell.
func (e *Engine) DataPointer() int {
	return e.tape.ptr
}
