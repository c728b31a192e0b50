// Package backend provides the tool-source abstraction the debugger tools
// are served through.
//
// A [Backend] groups tools under a namespace and executes them by name. The
// [Registry] tracks backends and their lifecycle, and the [Aggregator]
// routes canonical tool IDs ("namespace:tool") to the owning backend:
//
//	registry := backend.NewRegistry()
//	_ = registry.Register(debuggerBackend)
//
//	agg := backend.NewAggregator(registry, backend.WithDefaultBackend("brainfaq"))
//	tools, _ := agg.ListAllTools(ctx)
//	result, _ := agg.Execute(ctx, "brainfaq:step", map[string]any{"count": 10})
//
// Bare tool names ("step") resolve against the default backend when one is
// configured.
package backend
