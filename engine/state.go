package engine

// State is a read-only snapshot of an engine. It owns its tape window; later
// execution does not change a State already returned.
type State struct {
	Status             Status `json:"status"`
	InstructionPointer int    `json:"instructionPointer"`
	DataPointer        int    `json:"dataPointer"`

	// TapeWindow holds cells [TapeWindowStartIndex,
	// TapeWindowStartIndex+len(TapeWindow)). It is a linear slice of the
	// tape and never wraps.
	TapeWindow           []int64 `json:"tapeWindow"`
	TapeWindowStartIndex int     `json:"tapeWindowStartIndex"`

	Output string `json:"output"`

	// InputBufferLength counts buffered input characters; their content is
	// not echoed.
	InputBufferLength int `json:"inputBufferLength"`

	// NextInstruction is the instruction at InstructionPointer, or
	// EndOfProgram.
	NextInstruction string `json:"nextInstruction"`

	TotalSteps uint64 `json:"totalSteps"`
}

// Cell returns the value of absolute tape index i if it lies inside the
// window.
func (s State) Cell(i int) (int64, bool) {
	off := i - s.TapeWindowStartIndex
	if off < 0 || off >= len(s.TapeWindow) {
		return 0, false
	}
	return s.TapeWindow[off], true
}

// Snapshot returns the engine state with the whole tape.
func (e *Engine) Snapshot() State {
	return e.snapshot(0, len(e.tape.cells))
}

// SnapshotWindow returns the engine state with only the cells within radius
// of the data pointer, clamped to the ends of the tape. A negative radius is
// treated as zero.
func (e *Engine) SnapshotWindow(radius int) State {
	radius = max(radius, 0)
	dp := e.tape.ptr
	n := len(e.tape.cells)
	start := 0
	if dp > radius {
		start = dp - radius
	}
	end := n
	if radius < n-dp-1 {
		end = dp + radius + 1
	}
	return e.snapshot(start, end)
}

func (e *Engine) snapshot(start, end int) State {
	return State{
		Status:               e.status,
		InstructionPointer:   e.ip,
		DataPointer:          e.tape.ptr,
		TapeWindow:           e.tape.window(start, end),
		TapeWindowStartIndex: start,
		Output:               e.output.String(),
		InputBufferLength:    len(e.input),
		NextInstruction:      e.prog.next(e.ip),
		TotalSteps:           e.steps,
	}
}
