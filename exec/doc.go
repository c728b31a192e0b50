// Package exec is the facade over the debugger's tool surface.
//
// An [Exec] binds a debugger.Session to a local backend, registers every
// tool in a tooldiscovery index and documentation store, and executes tools
// by ID through a backend.Aggregator.
//
// # Basic Usage
//
//	session, _ := debugger.NewSession(debugger.Config{})
//	executor, err := exec.New(exec.Options{Session: session})
//
//	_, err = executor.RunTool(ctx, "brainfaq:load_code", map[string]any{"code": ",[.,]"})
//	result, err := executor.RunTool(ctx, "brainfaq:run", nil)
//
// Tool IDs without a namespace resolve to the session's namespace, so
// "run" and "brainfaq:run" are equivalent.
//
// # Search and Documentation
//
//	results, _ := executor.SearchTools(ctx, "input", 5)
//	doc, _ := executor.GetToolDoc(ctx, results[0].ID, tooldoc.DetailFull)
//
// # Chain Execution
//
// A chain runs tools in order against the same session:
//
//	result, steps, err := executor.RunChain(ctx, []exec.Step{
//	    {ToolID: "load_code", Args: map[string]any{"code": "+++."}},
//	    {ToolID: "run"},
//	    {ToolID: "read_output"},
//	})
package exec
