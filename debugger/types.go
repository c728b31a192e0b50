package debugger

import "github.com/jonwraymond/brainfaq/engine"

// OperationRecord captures a single session operation for observability
// and debugging.
type OperationRecord struct {
	// Op is the operation name: "load", "step", "run", "add_input",
	// "state", "output" or "reset".
	Op string `json:"op"`

	// Status is the engine status after the operation.
	Status engine.Status `json:"status"`

	// Executed is the number of instructions the operation executed.
	Executed uint64 `json:"executed,omitempty"`

	// Error contains the error message if the operation failed.
	Error string `json:"error,omitempty"`

	// DurationMs is the operation time in milliseconds.
	DurationMs int64 `json:"durationMs"`
}

// LoadParams specifies a program to load.
type LoadParams struct {
	// Code is the program source. Non-instruction characters are ignored.
	Code string `json:"code"`

	// InitialInput seeds the input buffer.
	InitialInput string `json:"initial_input,omitempty"`

	// TapeSize overrides Config.TapeSize when non-zero.
	TapeSize int `json:"tapeSize,omitempty"`

	// MinValue and MaxValue override the configured cell bounds when set.
	MinValue *int64 `json:"minValue,omitempty"`
	MaxValue *int64 `json:"maxValue,omitempty"`
}

// LoadResult describes a loaded program.
type LoadResult struct {
	Status        engine.Status `json:"status"`
	ProgramLength int           `json:"programLength"`
	TapeSize      int           `json:"tapeSize"`
	MinValue      int64         `json:"minValue"`
	MaxValue      int64         `json:"maxValue"`
}

// String returns the confirmation shown to tool clients.
func (r LoadResult) String() string {
	return "Code loaded. Engine reset."
}

// StepResult describes the engine after a Step or Run.
type StepResult struct {
	// Status is the engine status after execution.
	Status engine.Status `json:"status"`

	// Executed is the number of instructions this call executed.
	Executed uint64 `json:"executed"`

	// TotalSteps is the number of instructions executed since load.
	TotalSteps uint64 `json:"totalSteps"`

	// DataPointer and Cell describe the cell under the data pointer.
	DataPointer int   `json:"dataPointer"`
	Cell        int64 `json:"cell"`

	// Output is everything the program has written so far.
	Output string `json:"output"`

	// LimitReached is true when Run stopped at Config.MaxRunSteps while
	// the program was still running.
	LimitReached bool `json:"limitReached,omitempty"`

	// Summary is a human-readable description of the result.
	Summary string `json:"summary"`
}

// String returns the summary.
func (r StepResult) String() string {
	return r.Summary
}
