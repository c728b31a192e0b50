package debugger

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jonwraymond/brainfaq/engine"
)

// StatusLabel returns a human-readable label for s, such as
// "Waiting For Input".
func StatusLabel(s engine.Status) string {
	words := strings.ReplaceAll(strings.ToLower(string(s)), "_", " ")
	return cases.Title(language.English).String(words)
}

// summarize renders a StepResult the way tool clients expect to read it.
func summarize(r StepResult) string {
	var b strings.Builder
	switch r.Status {
	case engine.StatusFinished:
		fmt.Fprintf(&b, "Program Finished in %d steps.\nOutput: %q", r.TotalSteps, r.Output)
	case engine.StatusWaitingForInput:
		fmt.Fprintf(&b, "PAUSED: Waiting for Input at step %d.\nOutput so far: %q", r.TotalSteps, r.Output)
	default:
		fmt.Fprintf(&b, "Status: %s (%s)", r.Status, StatusLabel(r.Status))
	}
	if r.LimitReached {
		fmt.Fprintf(&b, "\nStopped after %d steps: run limit reached.", r.Executed)
	}
	fmt.Fprintf(&b, "\nPointer at [%d]: %d", r.DataPointer, r.Cell)
	return b.String()
}
