package backend

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry errors.
var (
	ErrBackendExists  = errors.New("backend already registered")
	ErrInvalidBackend = errors.New("invalid backend")
)

// entry is a registered backend and whether StartAll has started it.
type entry struct {
	backend Backend
	started bool
}

// Registry tracks backends by name and drives their lifecycle.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Lifecycle: StartAll starts each enabled backend at most once until
// StopAll or Unregister stops it again.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds b under b.Name().
func (r *Registry) Register(b Backend) error {
	if b == nil {
		return fmt.Errorf("%w: nil", ErrInvalidBackend)
	}
	name := b.Name()
	if name == "" || strings.Contains(name, ":") {
		return fmt.Errorf("%w: bad name %q", ErrInvalidBackend, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		return fmt.Errorf("%w: %s", ErrBackendExists, name)
	}
	r.entries[name] = &entry{backend: b}
	return nil
}

// Unregister removes a backend, stopping it first if it was started.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	e, ok := r.entries[name]
	delete(r.entries, name)
	r.mu.Unlock()

	if !ok || !e.started {
		return nil
	}
	return e.backend.Stop()
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.backend, true
}

// Started reports whether the named backend is running.
func (r *Registry) Started(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return ok && e.started
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}

// List returns all backends ordered by name.
func (r *Registry) List() []Backend {
	return r.collect(func(Backend) bool { return true })
}

// ListEnabled returns the enabled backends ordered by name.
func (r *Registry) ListEnabled() []Backend {
	return r.collect(Backend.Enabled)
}

func (r *Registry) collect(keep func(Backend) bool) []Backend {
	var out []Backend
	for _, name := range r.Names() {
		if b, ok := r.Get(name); ok && keep(b) {
			out = append(out, b)
		}
	}
	return out
}

// StartAll starts every enabled backend that is not already running. It
// stops at the first failure; backends started before it stay running.
func (r *Registry) StartAll(ctx context.Context) error {
	for _, name := range r.Names() {
		r.mu.RLock()
		e, ok := r.entries[name]
		pending := ok && !e.started && e.backend.Enabled()
		r.mu.RUnlock()
		if !pending {
			continue
		}

		if err := e.backend.Start(ctx); err != nil {
			return fmt.Errorf("start backend %s: %w", name, err)
		}
		r.mu.Lock()
		e.started = true
		r.mu.Unlock()
	}
	return nil
}

// StopAll stops every running backend and joins their errors.
func (r *Registry) StopAll() error {
	var errs []error
	for _, name := range r.Names() {
		r.mu.Lock()
		e, ok := r.entries[name]
		running := ok && e.started
		if running {
			e.started = false
		}
		r.mu.Unlock()
		if !running {
			continue
		}

		if err := e.backend.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop backend %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}
