package tools

import (
	"context"
	"fmt"

	"github.com/jonwraymond/brainfaq/backend/local"
	"github.com/jonwraymond/brainfaq/debugger"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	LoadCode   = "load_code"
	Step       = "step"
	Run        = "run"
	AddInput   = "add_input"
	GetState   = "get_state"
	ReadOutput = "read_output"
	Reset      = "reset"
)

// Register adds every debugger tool bound to s to b.
func Register(b *local.Backend, s *debugger.Session) {
	for _, def := range Definitions(s) {
		b.RegisterHandler(def.Name, def)
	}
}

// Definitions returns the debugger tools bound to s.
func Definitions(s *debugger.Session) []local.ToolDef {
	return []local.ToolDef{
		{
			Name:        LoadCode,
			Title:       "Load code",
			Description: "Reset the debugger and load new source code.",
			InputSchema: object(map[string]any{
				"code":          prop("string", "Program source. Characters other than the eight instructions are ignored."),
				"initial_input": prop("string", "Characters placed in the input buffer before execution."),
				"tapeSize":      prop("integer", "Size of the memory tape (default: 30000)."),
				"minValue":      prop("integer", "Minimum allowed value for tape cells (default: -9007199254740991)."),
				"maxValue":      prop("integer", "Maximum allowed value for tape cells (default: 9007199254740991)."),
			}, "code"),
			Tags:    []string{"debugger", "load"},
			Summary: "Load a program into a fresh engine.",
			Notes:   "Unmatched brackets fail the load and leave the engine in PARSER_ERROR.",
			Examples: []tooldoc.ToolExample{
				{ID: "hello", Title: "Hello", Args: map[string]any{"code": "++++++++[>++++++++<-]>+."}},
				{ID: "echo", Title: "Echo with input", Args: map[string]any{"code": ",[.,]", "initial_input": "hi"}},
			},
			Handler: loadHandler(s),
		},
		{
			Name:        Step,
			Title:       "Step",
			Description: "Execute a specific number of instructions (default 1), then summarize the current state.",
			InputSchema: object(map[string]any{
				"count": prop("integer", "Number of instructions to execute (at least 1)."),
			}),
			Tags:     []string{"debugger", "execution"},
			Summary:  "Execute a bounded number of instructions.",
			Examples: []tooldoc.ToolExample{{ID: "ten", Title: "Ten instructions", Args: map[string]any{"count": 10}}},
			Handler:  stepHandler(s),
		},
		{
			Name:        Run,
			Title:       "Run",
			Description: "Run the program until it finishes, waits for input, or fails, then summarize the current state.",
			InputSchema: object(map[string]any{
				"limit": prop("integer", "Optional instruction limit. Omit to run until the program stops."),
			}),
			Tags:    []string{"debugger", "execution"},
			Summary: "Run until the program stops.",
			Notes:   "Without a limit a program that never stops runs until the request is canceled or the configured run cap is reached.",
			Handler: runHandler(s),
		},
		{
			Name:        AddInput,
			Title:       "Add input",
			Description: "Append characters to the input buffer. Use when the status is WAITING_FOR_INPUT.",
			InputSchema: object(map[string]any{
				"input": prop("string", "Characters to append."),
			}, "input"),
			Tags:     []string{"debugger", "input"},
			Summary:  "Feed input to a waiting program.",
			Examples: []tooldoc.ToolExample{{ID: "newline", Title: "Newline", Args: map[string]any{"input": "\n"}}},
			Handler:  addInputHandler(s),
		},
		{
			Name:        GetState,
			Title:       "Get state",
			Description: "Get the current state (memory, pointers, output). Without windowRadius the entire tape is returned.",
			InputSchema: object(map[string]any{
				"windowRadius": prop("integer", "Optional radius around the data pointer. When omitted, returns the entire tape."),
			}),
			Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
			Tags:        []string{"debugger", "inspect"},
			Summary:     "Snapshot the engine.",
			Examples:    []tooldoc.ToolExample{{ID: "nearby", Title: "Nearby cells", Args: map[string]any{"windowRadius": 5}}},
			Handler:     stateHandler(s),
		},
		{
			Name:        ReadOutput,
			Title:       "Read output",
			Description: "Get the full output string generated so far.",
			InputSchema: object(map[string]any{}),
			Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
			Tags:        []string{"debugger", "inspect"},
			Handler:     outputHandler(s),
		},
		{
			Name:        Reset,
			Title:       "Reset",
			Description: "Discard the loaded program and clear the engine.",
			InputSchema: object(map[string]any{}),
			Tags:        []string{"debugger"},
			Handler:     resetHandler(s),
		},
	}
}

func loadHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		var (
			p   debugger.LoadParams
			err error
		)
		if p.Code, _, err = stringArg(args, "code", true); err != nil {
			return nil, err
		}
		if p.InitialInput, _, err = stringArg(args, "initial_input", false); err != nil {
			return nil, err
		}
		size, ok, err := intArg(args, "tapeSize")
		if err != nil {
			return nil, err
		}
		if ok && size < 1 {
			return nil, fmt.Errorf("%w: tapeSize must be positive (got %d)", debugger.ErrInvalidArgument, size)
		}
		p.TapeSize = size
		if v, ok, err := int64Arg(args, "minValue"); err != nil {
			return nil, err
		} else if ok {
			p.MinValue = &v
		}
		if v, ok, err := int64Arg(args, "maxValue"); err != nil {
			return nil, err
		} else if ok {
			p.MaxValue = &v
		}

		res, err := s.Load(ctx, p)
		if err != nil {
			return nil, err
		}
		return res, nil
	}
}

func stepHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		count, ok, err := intArg(args, "count")
		if err != nil {
			return nil, err
		}
		if !ok {
			count = 1
		}
		return s.Step(ctx, count)
	}
}

func runHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		limit, ok, err := intArg(args, "limit")
		if err != nil {
			return nil, err
		}
		if !ok {
			return s.Run(ctx, nil)
		}
		return s.Run(ctx, &limit)
	}
}

func addInputHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		input, _, err := stringArg(args, "input", true)
		if err != nil {
			return nil, err
		}
		status, err := s.AddInput(ctx, input)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("Input added. Status: %s", status), nil
	}
}

func stateHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, args map[string]any) (any, error) {
		radius, ok, err := intArg(args, "windowRadius")
		if err != nil {
			return nil, err
		}
		if !ok {
			return s.State(ctx, nil)
		}
		return s.State(ctx, &radius)
	}
}

func outputHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, _ map[string]any) (any, error) {
		return s.Output(ctx)
	}
}

func resetHandler(s *debugger.Session) local.HandlerFunc {
	return func(ctx context.Context, _ map[string]any) (any, error) {
		status, err := s.Reset(ctx)
		if err != nil {
			return nil, err
		}
		return fmt.Sprintf("Engine reset. Status: %s", status), nil
	}
}

func object(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		req := make([]any, len(required))
		for i, r := range required {
			req[i] = r
		}
		schema["required"] = req
	}
	return schema
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}
