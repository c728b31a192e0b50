package backend

import (
	"context"
	"errors"

	"github.com/jonwraymond/toolfoundation/model"
)

// Common errors for backend operations.
var (
	ErrBackendNotFound = errors.New("backend not found")
	ErrBackendDisabled = errors.New("backend disabled")
	ErrToolNotFound    = errors.New("tool not found in backend")
)

// Backend defines a source of tools.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: methods must honor cancellation/deadlines.
// - Errors: use ErrBackendDisabled/ErrToolNotFound where applicable; tool
// failures are returned unwrapped so callers can match them with errors.Is.
type Backend interface {
	// Kind returns the backend type (e.g., "local").
	Kind() string

	// Name returns the unique instance name, which is also the namespace of
	// its tools.
	Name() string

	// Enabled returns whether this backend is currently enabled.
	Enabled() bool

	// ListTools returns all tools available from this backend, sorted by
	// name.
	ListTools(ctx context.Context) ([]model.Tool, error)

	// Execute invokes a tool on this backend.
	Execute(ctx context.Context, tool string, args map[string]any) (any, error)

	// Start prepares the backend to serve calls.
	Start(ctx context.Context) error

	// Stop releases resources held by the backend.
	Stop() error
}
