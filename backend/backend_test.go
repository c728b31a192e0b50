package backend

import (
	"context"
	"errors"

	"github.com/jonwraymond/toolfoundation/model"
)

// mockBackend implements Backend for testing.
type mockBackend struct {
	kind     string
	name     string
	enabled  bool
	tools    []model.Tool
	execFn   func(ctx context.Context, tool string, args map[string]any) (any, error)
	startErr error
	stopErr  error
	started  int
	stopped  int
}

func (m *mockBackend) Kind() string  { return m.kind }
func (m *mockBackend) Name() string  { return m.name }
func (m *mockBackend) Enabled() bool { return m.enabled }

func (m *mockBackend) ListTools(_ context.Context) ([]model.Tool, error) {
	return append([]model.Tool(nil), m.tools...), nil
}

func (m *mockBackend) Execute(ctx context.Context, tool string, args map[string]any) (any, error) {
	if m.execFn != nil {
		return m.execFn(ctx, tool, args)
	}
	return nil, ErrToolNotFound
}

func (m *mockBackend) Start(_ context.Context) error {
	m.started++
	return m.startErr
}

func (m *mockBackend) Stop() error {
	m.stopped++
	return m.stopErr
}

var _ Backend = (*mockBackend)(nil)

var errBoom = errors.New("boom")
