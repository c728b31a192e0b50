package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jonwraymond/brainfaq/backend/local"
	"github.com/jonwraymond/brainfaq/debugger"
	"github.com/jonwraymond/brainfaq/engine"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func newBackend(t *testing.T) *local.Backend {
	t.Helper()
	s, err := debugger.NewSession(debugger.Config{})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	b := local.New("brainfaq")
	Register(b, s)
	return b
}

func call(t *testing.T, b *local.Backend, tool string, args map[string]any) any {
	t.Helper()
	res, err := b.Execute(context.Background(), tool, args)
	if err != nil {
		t.Fatalf("%s(%v) error = %v", tool, args, err)
	}
	return res
}

func TestDefinitions(t *testing.T) {
	defs := Definitions(nil)
	want := map[string][]any{
		LoadCode:   {"code"},
		Step:       nil,
		Run:        nil,
		AddInput:   {"input"},
		GetState:   nil,
		ReadOutput: nil,
		Reset:      nil,
	}
	if len(defs) != len(want) {
		t.Fatalf("Definitions() returned %d tools, want %d", len(defs), len(want))
	}
	for _, def := range defs {
		required, ok := want[def.Name]
		if !ok {
			t.Errorf("unexpected tool %q", def.Name)
			continue
		}
		if def.Handler == nil {
			t.Errorf("%s has no handler", def.Name)
		}
		if def.Description == "" {
			t.Errorf("%s has no description", def.Name)
		}
		if def.InputSchema["type"] != "object" {
			t.Errorf("%s schema type = %v", def.Name, def.InputSchema["type"])
		}
		got, _ := def.InputSchema["required"].([]any)
		if len(got) != len(required) {
			t.Errorf("%s required = %v, want %v", def.Name, got, required)
		}
	}
}

func TestHelloWorldThroughTools(t *testing.T) {
	b := newBackend(t)

	loaded := call(t, b, LoadCode, map[string]any{"code": helloWorld})
	if s, ok := loaded.(interface{ String() string }); !ok || s.String() != "Code loaded. Engine reset." {
		t.Errorf("load_code = %v", loaded)
	}

	res := call(t, b, Run, nil).(debugger.StepResult)
	if res.Status != engine.StatusFinished {
		t.Fatalf("run status = %s, want FINISHED", res.Status)
	}
	if res.TotalSteps != 906 {
		t.Errorf("TotalSteps = %d, want 906", res.TotalSteps)
	}
	if !strings.HasPrefix(res.Summary, "Program Finished in 906 steps.") {
		t.Errorf("Summary = %q", res.Summary)
	}

	if out := call(t, b, ReadOutput, nil); out != "Hello World!\n" {
		t.Errorf("read_output = %q", out)
	}
}

func TestStepDefaultsToOne(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": "+++"})

	res := call(t, b, Step, map[string]any{}).(debugger.StepResult)
	if res.Executed != 1 || res.Cell != 1 {
		t.Errorf("step = %+v, want one instruction", res)
	}

	res = call(t, b, Step, map[string]any{"count": json.Number("5")}).(debugger.StepResult)
	if res.Status != engine.StatusFinished || res.Executed != 2 {
		t.Errorf("step = %+v, want FINISHED after 2", res)
	}
}

func TestInputRoundTrip(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": ",.", "initial_input": nil})

	res := call(t, b, Run, map[string]any{"limit": nil}).(debugger.StepResult)
	if res.Status != engine.StatusWaitingForInput {
		t.Fatalf("run status = %s, want WAITING_FOR_INPUT", res.Status)
	}

	if got := call(t, b, AddInput, map[string]any{"input": "x"}); got != "Input added. Status: RUNNING" {
		t.Errorf("add_input = %q", got)
	}
	res = call(t, b, Run, map[string]any{"limit": float64(100)}).(debugger.StepResult)
	if res.Status != engine.StatusFinished || res.Output != "x" {
		t.Errorf("run = %+v, want FINISHED with output x", res)
	}
}

func TestAddEmptyInputResumes(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": ","})
	call(t, b, Run, nil)

	if got := call(t, b, AddInput, map[string]any{"input": ""}); got != "Input added. Status: RUNNING" {
		t.Errorf("add_input = %q", got)
	}
	res := call(t, b, Step, nil).(debugger.StepResult)
	if res.Status != engine.StatusWaitingForInput || res.Executed != 0 {
		t.Errorf("step = %+v, want WAITING_FOR_INPUT with nothing executed", res)
	}
}

func TestLoadBounds(t *testing.T) {
	b := newBackend(t)
	res := call(t, b, LoadCode, map[string]any{
		"code":     "+++",
		"tapeSize": float64(4),
		"minValue": float64(-1),
		"maxValue": int64(2),
	}).(debugger.LoadResult)
	if res.TapeSize != 4 || res.MinValue != -1 || res.MaxValue != 2 {
		t.Errorf("load_code = %+v", res)
	}

	run := call(t, b, Run, nil).(debugger.StepResult)
	if run.Status != engine.StatusOverflowError || run.TotalSteps != 2 || run.Cell != 2 {
		t.Errorf("run = %+v, want OVERFLOW_ERROR at cell 2 after 2 steps", run)
	}
}

func TestGetState(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": ">>+", "tapeSize": 10})
	call(t, b, Run, nil)

	st := call(t, b, GetState, map[string]any{"windowRadius": 1}).(engine.State)
	if st.DataPointer != 2 || st.TapeWindowStartIndex != 1 || len(st.TapeWindow) != 3 {
		t.Errorf("get_state = %+v", st)
	}

	full := call(t, b, GetState, nil).(engine.State)
	if len(full.TapeWindow) != 10 {
		t.Errorf("full tape has %d cells, want 10", len(full.TapeWindow))
	}
}

func TestReset(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": "+"})

	if got := call(t, b, Reset, nil); got != "Engine reset. Status: READY" {
		t.Errorf("reset = %q", got)
	}
	if _, err := b.Execute(context.Background(), Step, nil); !errors.Is(err, debugger.ErrNoProgram) {
		t.Errorf("step after reset error = %v, want ErrNoProgram", err)
	}
}

func TestLoadParseError(t *testing.T) {
	b := newBackend(t)
	_, err := b.Execute(context.Background(), LoadCode, map[string]any{"code": "+["})

	var perr *engine.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("load_code error = %v, want *engine.ParseError", err)
	}
	if perr.Index != 1 {
		t.Errorf("ParseError.Index = %d, want 1", perr.Index)
	}
}

func TestInvalidArguments(t *testing.T) {
	b := newBackend(t)
	call(t, b, LoadCode, map[string]any{"code": "+"})

	tests := []struct {
		tool string
		args map[string]any
	}{
		{LoadCode, map[string]any{}},
		{LoadCode, map[string]any{"code": 42}},
		{LoadCode, map[string]any{"code": "+", "tapeSize": 0}},
		{LoadCode, map[string]any{"code": "+", "tapeSize": 1.5}},
		{LoadCode, map[string]any{"code": "+", "minValue": 1, "maxValue": 5}},
		{Step, map[string]any{"count": 0}},
		{Step, map[string]any{"count": "three"}},
		{Step, map[string]any{"count": json.Number("1e400")}},
		{Run, map[string]any{"limit": -1}},
		{AddInput, map[string]any{}},
		{GetState, map[string]any{"windowRadius": -2}},
	}
	for _, tt := range tests {
		if _, err := b.Execute(context.Background(), tt.tool, tt.args); !errors.Is(err, debugger.ErrInvalidArgument) {
			t.Errorf("%s(%v) error = %v, want ErrInvalidArgument", tt.tool, tt.args, err)
		}
	}
}

func TestInt64Arg(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    int64
		present bool
		wantErr bool
	}{
		{"missing", nil, 0, false, false},
		{"int", 7, 7, true, false},
		{"float", float64(-9007199254740991), -9007199254740991, true, false},
		{"fraction", 0.5, 0, false, true},
		{"number", json.Number("12"), 12, true, false},
		{"bad number", json.Number("1.5"), 0, false, true},
		{"bool", true, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}
			if tt.raw != nil {
				args["n"] = tt.raw
			}
			got, present, err := int64Arg(args, "n")
			if (err != nil) != tt.wantErr {
				t.Fatalf("int64Arg() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || present != tt.present {
				t.Errorf("int64Arg() = %d, %v; want %d, %v", got, present, tt.want, tt.present)
			}
		})
	}
}
