package engine

import (
	"errors"
	"testing"
)

func TestCompile_Filter(t *testing.T) {
	p, err := compile("a+ b\n-c>é<.,[x]")
	if err != nil {
		t.Fatalf("compile() error = %v", err)
	}
	if got := string(p.code); got != "+-><.,[]" {
		t.Errorf("code = %q, want %q", got, "+-><.,[]")
	}
}

func TestCompile_JumpTable(t *testing.T) {
	p, err := compile("+[>[-]<]")
	if err != nil {
		t.Fatalf("compile() error = %v", err)
	}
	want := []int{-1, 7, -1, 5, -1, 3, -1, 1}
	if len(p.jumps) != len(want) {
		t.Fatalf("len(jumps) = %d, want %d", len(p.jumps), len(want))
	}
	for i := range want {
		if p.jumps[i] != want[i] {
			t.Errorf("jumps[%d] = %d, want %d", i, p.jumps[i], want[i])
		}
	}
}

func TestCompile_AdjacentLoops(t *testing.T) {
	p, err := compile("[][[]]")
	if err != nil {
		t.Fatalf("compile() error = %v", err)
	}
	want := []int{1, 0, 5, 4, 3, 2}
	for i := range want {
		if p.jumps[i] != want[i] {
			t.Errorf("jumps[%d] = %d, want %d", i, p.jumps[i], want[i])
		}
	}
}

func TestCompile_Unbalanced(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		index   int
		bracket byte
	}{
		{"lone open", "[", 0, '['},
		{"lone close", "]", 0, ']'},
		{"close first", "][", 0, ']'},
		{"extra close", "[]]", 2, ']'},
		{"first unmatched open", "[[]", 0, '['},
		{"trailing open", "+++++[>+++++++>++<<-]>.>[", 24, '['},
		{"index counts instructions only", "ab ]", 0, ']'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compile(tt.source)
			if !errors.Is(err, ErrParse) {
				t.Fatalf("compile() error = %v, want ErrParse", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("compile() error type = %T, want *ParseError", err)
			}
			if pe.Index != tt.index || pe.Bracket != tt.bracket {
				t.Errorf("ParseError = {%d %q}, want {%d %q}", pe.Index, pe.Bracket, tt.index, tt.bracket)
			}
		})
	}
}

func TestLoad_ParseErrorSetsStatus(t *testing.T) {
	e := newTestEngine(t)
	mustLoad(t, e, "+++.", "")
	e.Run()

	err := e.Load("[", "pending")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Load() error = %v, want ErrParse", err)
	}
	s := e.Snapshot()
	if s.Status != StatusParserError {
		t.Errorf("Status = %v, want %v", s.Status, StatusParserError)
	}
	if s.Output != "" || s.TotalSteps != 0 || s.InputBufferLength != 0 {
		t.Errorf("failed load kept old state: %+v", s)
	}
	if got := e.Run(); got != StatusParserError {
		t.Errorf("Run() = %v, want %v", got, StatusParserError)
	}
}

func TestParseError_Message(t *testing.T) {
	err := &ParseError{Index: 24, Bracket: '['}
	if got, want := err.Error(), "unmatched '[' at index 24"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
