package exec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonwraymond/tooldiscovery/index"
)

// Result is the outcome of one tool call.
type Result struct {
	// Value is the handler's return value: a string, a debugger result
	// type, or an engine.State.
	Value any

	// ToolID is the ID as the caller gave it.
	ToolID string

	Duration time.Duration

	// Error is the handler or routing error, also returned by RunTool.
	Error error
}

// OK returns true if the result has no error.
func (r Result) OK() bool {
	return r.Error == nil
}

// Text renders Value for a human reader. Strings are returned as is,
// fmt.Stringer values use their String method, and anything else is
// indented JSON.
func (r Result) Text() (string, error) {
	switch v := r.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode %s result: %w", r.ToolID, err)
		}
		return string(data), nil
	}
}

// Structured returns Value when it is a structured result, or nil for plain
// text results.
func (r Result) Structured() any {
	switch r.Value.(type) {
	case nil, string:
		return nil
	default:
		return r.Value
	}
}

// StepResult is the outcome of one step of a chain.
type StepResult struct {
	// StepIndex is the zero-based position in the chain.
	StepIndex int
	ToolID    string
	Args      map[string]any
	Value     any
	Duration  time.Duration
	Error     error

	// Skipped is true if an earlier failure or cancellation ended the
	// chain before this step.
	Skipped bool
}

// OK returns true if the step ran and succeeded.
func (s StepResult) OK() bool {
	return s.Error == nil && !s.Skipped
}

// ToolSummary is an alias to index.Summary for search results.
type ToolSummary = index.Summary
