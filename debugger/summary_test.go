package debugger

import (
	"testing"

	"github.com/jonwraymond/brainfaq/engine"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status engine.Status
		want   string
	}{
		{engine.StatusReady, "Ready"},
		{engine.StatusWaitingForInput, "Waiting For Input"},
		{engine.StatusOverflowError, "Overflow Error"},
		{engine.StatusParserError, "Parser Error"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%v) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		res  StepResult
		want string
	}{
		{
			name: "finished",
			res:  StepResult{Status: engine.StatusFinished, TotalSteps: 12, Output: "hi\n", DataPointer: 3, Cell: 10},
			want: "Program Finished in 12 steps.\nOutput: \"hi\\n\"\nPointer at [3]: 10",
		},
		{
			name: "waiting",
			res:  StepResult{Status: engine.StatusWaitingForInput, TotalSteps: 4, Output: "a"},
			want: "PAUSED: Waiting for Input at step 4.\nOutput so far: \"a\"\nPointer at [0]: 0",
		},
		{
			name: "underflow",
			res:  StepResult{Status: engine.StatusUnderflowError, Cell: -10},
			want: "Status: UNDERFLOW_ERROR (Underflow Error)\nPointer at [0]: -10",
		},
		{
			name: "limit",
			res:  StepResult{Status: engine.StatusRunning, Executed: 50, LimitReached: true, Cell: 1},
			want: "Status: RUNNING (Running)\nStopped after 50 steps: run limit reached.\nPointer at [0]: 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := summarize(tt.res); got != tt.want {
				t.Errorf("summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
