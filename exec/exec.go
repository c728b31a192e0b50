package exec

import (
	"context"
	"fmt"
	"time"

	"github.com/jonwraymond/brainfaq/backend"
	"github.com/jonwraymond/brainfaq/backend/local"
	"github.com/jonwraymond/brainfaq/debugger"
	"github.com/jonwraymond/brainfaq/tools"
	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"
)

// docRegistrar is implemented by stores that accept new documentation.
type docRegistrar interface {
	RegisterDoc(id string, entry tooldoc.DocEntry) error
}

// Exec is the unified facade for debugger tool execution.
// It combines discovery, execution, and result handling into a single API.
//
// Contract:
// - Concurrency: safe for concurrent use; tool calls are serialized by the
// session.
// - Context: RunTool and RunChain pass ctx to the handlers.
// - Errors: unknown tools return backend.ErrToolNotFound; argument errors
// wrap debugger.ErrInvalidArgument.
type Exec struct {
	session    *debugger.Session
	namespace  string
	local      *local.Backend
	registry   *backend.Registry
	aggregator *backend.Aggregator
	index      index.Index
	docs       tooldoc.Store
}

// New creates a new Exec instance with the given options and registers the
// debugger tools in its index and documentation store.
func New(opts Options) (*Exec, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	opts.applyDefaults()

	lb := local.New(opts.Namespace)
	tools.Register(lb, opts.Session)

	registry := backend.NewRegistry()
	if err := registry.Register(lb); err != nil {
		return nil, err
	}

	e := &Exec{
		session:    opts.Session,
		namespace:  opts.Namespace,
		local:      lb,
		registry:   registry,
		aggregator: backend.NewAggregator(registry, backend.WithDefaultBackend(opts.Namespace)),
		index:      opts.Index,
		docs:       opts.Docs,
	}
	if err := e.register(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Exec) register() error {
	registrar, _ := e.docs.(docRegistrar)
	for _, def := range e.local.Definitions() {
		tool := def.Tool(e.namespace)
		if err := e.index.RegisterTool(tool, model.NewLocalBackend(def.Name)); err != nil {
			return fmt.Errorf("register tool %s: %w", def.Name, err)
		}
		if registrar == nil {
			continue
		}
		id := backend.FormatToolID(e.namespace, def.Name)
		if err := registrar.RegisterDoc(id, def.DocEntry()); err != nil {
			return fmt.Errorf("register doc %s: %w", id, err)
		}
	}
	return nil
}

// RunTool executes a single tool by ID and returns the result.
func (e *Exec) RunTool(ctx context.Context, toolID string, args map[string]any) (Result, error) {
	start := time.Now()
	value, err := e.aggregator.Execute(ctx, toolID, args)
	res := Result{
		Value:    value,
		ToolID:   toolID,
		Duration: time.Since(start),
		Error:    err,
	}
	return res, err
}

// RunChain executes a sequence of tools against the session.
// Returns the final result, a slice of step results, and the first error of
// a step that stops the chain.
func (e *Exec) RunChain(ctx context.Context, steps []Step) (Result, []StepResult, error) {
	start := time.Now()
	results := make([]StepResult, len(steps))
	var final Result

	for i, step := range steps {
		results[i] = StepResult{StepIndex: i, ToolID: step.ToolID, Args: step.Args}
		if err := ctx.Err(); err != nil {
			for j := i; j < len(steps); j++ {
				results[j] = StepResult{StepIndex: j, ToolID: steps[j].ToolID, Args: steps[j].Args, Skipped: true}
			}
			return Result{Duration: time.Since(start), Error: err}, results, err
		}

		res, err := e.RunTool(ctx, step.ToolID, step.Args)
		results[i].Value = res.Value
		results[i].Duration = res.Duration
		results[i].Error = err
		final = res

		if err != nil && step.shouldStopOnError() {
			for j := i + 1; j < len(steps); j++ {
				results[j] = StepResult{StepIndex: j, ToolID: steps[j].ToolID, Args: steps[j].Args, Skipped: true}
			}
			err = fmt.Errorf("step %d (%s): %w", i, step.ToolID, err)
			return Result{ToolID: step.ToolID, Duration: time.Since(start), Error: err}, results, err
		}
	}

	final.Duration = time.Since(start)
	return final, results, nil
}

// SearchTools finds tools matching a query.
func (e *Exec) SearchTools(ctx context.Context, query string, limit int) ([]ToolSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.index.Search(query, limit)
}

// GetToolDoc retrieves tool documentation at the specified detail level.
func (e *Exec) GetToolDoc(ctx context.Context, toolID string, level tooldoc.DetailLevel) (tooldoc.ToolDoc, error) {
	if err := ctx.Err(); err != nil {
		return tooldoc.ToolDoc{}, err
	}
	return e.docs.DescribeTool(toolID, level)
}

// ListToolExamples returns up to maxExamples usage examples for a tool.
func (e *Exec) ListToolExamples(ctx context.Context, toolID string, maxExamples int) ([]tooldoc.ToolExample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return e.docs.ListExamples(toolID, maxExamples)
}

// Tools returns every tool served by the executor, sorted by name.
func (e *Exec) Tools(ctx context.Context) ([]model.Tool, error) {
	return e.aggregator.ListAllTools(ctx)
}

// ToolID returns the fully qualified ID of a tool name.
func (e *Exec) ToolID(name string) string {
	return backend.FormatToolID(e.namespace, name)
}

// Start starts the backends.
func (e *Exec) Start(ctx context.Context) error {
	return e.registry.StartAll(ctx)
}

// Close stops the backends.
func (e *Exec) Close() error {
	return e.registry.StopAll()
}

// Session returns the debugger session the tools operate on.
func (e *Exec) Session() *debugger.Session {
	return e.session
}

// Namespace returns the tool namespace.
func (e *Exec) Namespace() string {
	return e.namespace
}

// Index returns the underlying tool index.
func (e *Exec) Index() index.Index {
	return e.index
}

// DocStore returns the underlying documentation store.
func (e *Exec) DocStore() tooldoc.Store {
	return e.docs
}
