// Package local provides a backend whose tools are Go functions in the same
// process.
package local

import (
	"context"
	"sort"
	"sync"

	"github.com/jonwraymond/brainfaq/backend"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
	"github.com/jonwraymond/toolfoundation/model"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandlerFunc is the function signature for tool handlers.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolDef defines a local tool with its handler and documentation.
type ToolDef struct {
	Name         string
	Title        string
	Description  string
	InputSchema  map[string]any
	OutputSchema map[string]any
	Annotations  *mcp.ToolAnnotations
	Tags         []string
	Handler      HandlerFunc

	// Summary, Notes and Examples feed the documentation store.
	Summary  string
	Notes    string
	Examples []tooldoc.ToolExample
}

// Tool converts the definition to a namespaced tool. Schemas are only set
// when present: a nil map stored in the mcp.Tool's any-typed fields is a
// non-nil schema to the MCP server.
func (d ToolDef) Tool(namespace string) model.Tool {
	tool := mcp.Tool{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Annotations: d.Annotations,
	}
	if d.InputSchema != nil {
		tool.InputSchema = d.InputSchema
	}
	if d.OutputSchema != nil {
		tool.OutputSchema = d.OutputSchema
	}
	return model.Tool{
		Tool:      tool,
		Namespace: namespace,
		Tags:      model.NormalizeTags(d.Tags),
	}
}

// DocEntry converts the definition's documentation fields.
func (d ToolDef) DocEntry() tooldoc.DocEntry {
	summary := d.Summary
	if summary == "" {
		summary = d.Description
	}
	return tooldoc.DocEntry{
		Summary:  summary,
		Notes:    d.Notes,
		Examples: d.Examples,
	}
}

// Backend implements the backend.Backend interface for local tool handlers.
type Backend struct {
	name     string
	enabled  bool
	handlers map[string]ToolDef
	mu       sync.RWMutex
}

// New creates a new local backend.
func New(name string) *Backend {
	return &Backend{
		name:     name,
		enabled:  true,
		handlers: make(map[string]ToolDef),
	}
}

// Kind returns the backend kind.
func (b *Backend) Kind() string {
	return "local"
}

// Name returns the backend instance name.
func (b *Backend) Name() string {
	return b.name
}

// Enabled returns whether the backend is enabled.
func (b *Backend) Enabled() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.enabled
}

// SetEnabled enables or disables the backend.
func (b *Backend) SetEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = enabled
}

// RegisterHandler registers a tool handler, replacing any previous
// definition with the same name.
func (b *Backend) RegisterHandler(name string, def ToolDef) {
	if def.Name == "" {
		def.Name = name
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = def
}

// UnregisterHandler removes a tool handler.
func (b *Backend) UnregisterHandler(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.handlers, name)
}

// Describe returns the definition registered under name.
func (b *Backend) Describe(name string) (ToolDef, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	def, ok := b.handlers[name]
	return def, ok
}

// Definitions returns every registered definition sorted by name.
func (b *Backend) Definitions() []ToolDef {
	b.mu.RLock()
	out := make([]ToolDef, 0, len(b.handlers))
	for _, def := range b.handlers {
		out = append(out, def)
	}
	b.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ListTools returns tools available from this backend, sorted by name.
func (b *Backend) ListTools(_ context.Context) ([]model.Tool, error) {
	defs := b.Definitions()
	out := make([]model.Tool, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.Tool(b.name))
	}
	return out, nil
}

// Execute invokes a tool handler.
func (b *Backend) Execute(ctx context.Context, tool string, args map[string]any) (any, error) {
	b.mu.RLock()
	enabled := b.enabled
	def, ok := b.handlers[tool]
	b.mu.RUnlock()

	if !enabled {
		return nil, backend.ErrBackendDisabled
	}
	if !ok || def.Handler == nil {
		return nil, backend.ErrToolNotFound
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return def.Handler(ctx, args)
}

// Start is a no-op for local backends.
func (b *Backend) Start(_ context.Context) error {
	return nil
}

// Stop is a no-op for local backends.
func (b *Backend) Stop() error {
	return nil
}
