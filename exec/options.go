package exec

import (
	"errors"

	"github.com/jonwraymond/brainfaq/debugger"
	"github.com/jonwraymond/tooldiscovery/index"
	"github.com/jonwraymond/tooldiscovery/search"
	"github.com/jonwraymond/tooldiscovery/tooldoc"
)

// DefaultNamespace is the namespace of the debugger tools.
const DefaultNamespace = "brainfaq"

// Errors returned by Options validation.
var (
	ErrSessionRequired = errors.New("exec: Session is required")
)

// Options configures an Exec instance.
type Options struct {
	// Session is the debugger session the tools operate on.
	// Required.
	Session *debugger.Session

	// Namespace prefixes tool IDs and names the local backend.
	// Default: DefaultNamespace
	Namespace string

	// Index receives the tool registrations.
	// Default: an in-memory index with BM25 search.
	Index index.Index

	// Docs receives the tool documentation. Entries are only registered
	// when the store accepts them (tooldoc.InMemoryStore does).
	// Default: an in-memory store over Index.
	Docs tooldoc.Store
}

// validate checks that required fields are set.
func (o *Options) validate() error {
	if o.Session == nil {
		return ErrSessionRequired
	}
	return nil
}

// applyDefaults sets default values for unset optional fields.
func (o *Options) applyDefaults() {
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Index == nil {
		o.Index = index.NewInMemoryIndex(index.IndexOptions{
			Searcher: search.NewBM25Searcher(search.BM25Config{}),
		})
	}
	if o.Docs == nil {
		o.Docs = tooldoc.NewInMemoryStore(tooldoc.StoreOptions{Index: o.Index})
	}
}

// Step defines a single step in a chain execution.
type Step struct {
	// ToolID is the ID of the tool to execute. A bare name resolves to the
	// executor's namespace.
	ToolID string

	// Args are the arguments to pass to the tool.
	Args map[string]any

	// StopOnError determines whether chain execution should
	// stop if this step fails. Default is true.
	StopOnError *bool
}

// shouldStopOnError returns whether to stop on error for this step.
func (s Step) shouldStopOnError() bool {
	if s.StopOnError == nil {
		return true
	}
	return *s.StopOnError
}
