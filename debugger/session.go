package debugger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jonwraymond/brainfaq/engine"
)

// Session is one debugger context: a single engine plus its operation trace.
//
// Contract:
// - Concurrency: safe for concurrent use; operations are serialized.
// - Context: operations return ctx.Err() if the context is done before they
// start; Run also checks it between chunks.
// - Errors: invalid arguments return ErrInvalidArgument; operations that need
// a program return ErrNoProgram; parse failures return *engine.ParseError.
// - Ownership: returned results and states are caller-owned snapshots.
type Session struct {
	mu      sync.Mutex
	cfg     Config
	eng     *engine.Engine
	loaded  bool
	history []OperationRecord
}

// NewSession creates a session with an idle engine built from cfg.
// Returns ErrConfiguration if cfg is invalid.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	eng, err := engine.New(cfg.engineOptions(0, nil, nil)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return &Session{cfg: cfg, eng: eng}, nil
}

// Load replaces the engine with one sized by params and loads params.Code.
// On a parse error the new engine is kept in StatusParserError and the
// *engine.ParseError is returned.
func (s *Session) Load(ctx context.Context, params LoadParams) (LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return LoadResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	if params.TapeSize < 0 {
		err := fmt.Errorf("%w: tapeSize must be positive (got %d)", ErrInvalidArgument, params.TapeSize)
		s.record("load", start, 0, err)
		return LoadResult{}, err
	}
	eng, err := engine.New(s.cfg.engineOptions(params.TapeSize, params.MinValue, params.MaxValue)...)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		s.record("load", start, 0, err)
		return LoadResult{}, err
	}

	s.eng = eng
	s.loaded = true
	err = eng.Load(params.Code, params.InitialInput)
	s.record("load", start, 0, err)

	lo, hi := eng.Bounds()
	return LoadResult{
		Status:        eng.Status(),
		ProgramLength: eng.ProgramLength(),
		TapeSize:      eng.TapeSize(),
		MinValue:      lo,
		MaxValue:      hi,
	}, err
}

// Step executes up to count instructions.
func (s *Session) Step(ctx context.Context, count int) (StepResult, error) {
	if err := ctx.Err(); err != nil {
		return StepResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	if err := s.checkLoaded(); err != nil {
		s.record("step", start, 0, err)
		return StepResult{}, err
	}
	if count < 1 {
		err := fmt.Errorf("%w: count must be at least 1 (got %d)", ErrInvalidArgument, count)
		s.record("step", start, 0, err)
		return StepResult{}, err
	}

	before := s.eng.Steps()
	s.eng.Step(count)
	res := s.result(s.eng.Steps()-before, false)
	s.record("step", start, res.Executed, nil)
	return res, nil
}

// Run executes until the program finishes, waits for input, or fails. A
// non-nil limit caps the instructions executed, as does Config.MaxRunSteps.
//
// Without a cap Run does not return for a program that loops forever unless
// ctx is canceled. On cancellation the partial result is returned together
// with ctx.Err().
func (s *Session) Run(ctx context.Context, limit *int) (StepResult, error) {
	if err := ctx.Err(); err != nil {
		return StepResult{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	if err := s.checkLoaded(); err != nil {
		s.record("run", start, 0, err)
		return StepResult{}, err
	}
	if limit != nil && *limit < 1 {
		err := fmt.Errorf("%w: limit must be at least 1 (got %d)", ErrInvalidArgument, *limit)
		s.record("run", start, 0, err)
		return StepResult{}, err
	}

	// remaining < 0 means unbounded.
	remaining := -1
	if limit != nil {
		remaining = *limit
	}
	capped := false
	if s.cfg.MaxRunSteps > 0 && (remaining < 0 || remaining > s.cfg.MaxRunSteps) {
		remaining = s.cfg.MaxRunSteps
		capped = true
	}

	before := s.eng.Steps()
	status := s.eng.Status()
	for {
		if err := ctx.Err(); err != nil {
			res := s.result(s.eng.Steps()-before, false)
			s.record("run", start, res.Executed, err)
			return res, err
		}
		chunk := s.cfg.RunChunk
		if remaining >= 0 && remaining < chunk {
			chunk = remaining
		}
		status = s.eng.Step(chunk)
		if remaining >= 0 {
			remaining -= chunk
		}
		if status != engine.StatusRunning || remaining == 0 {
			break
		}
	}

	res := s.result(s.eng.Steps()-before, capped && status == engine.StatusRunning)
	s.record("run", start, res.Executed, nil)
	return res, nil
}

// AddInput appends text to the input buffer and returns the resulting
// status. It never executes instructions.
func (s *Session) AddInput(ctx context.Context, text string) (engine.Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	if err := s.checkLoaded(); err != nil {
		s.record("add_input", start, 0, err)
		return s.eng.Status(), err
	}
	s.eng.AddInput(text)
	s.record("add_input", start, 0, nil)
	return s.eng.Status(), nil
}

// State returns a snapshot of the engine. A nil radius falls back to
// Config.DefaultWindowRadius, and then to the whole tape.
func (s *Session) State(ctx context.Context, radius *int) (engine.State, error) {
	if err := ctx.Err(); err != nil {
		return engine.State{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	if radius == nil {
		radius = s.cfg.DefaultWindowRadius
	}
	if radius != nil && *radius < 0 {
		err := fmt.Errorf("%w: windowRadius must not be negative (got %d)", ErrInvalidArgument, *radius)
		s.record("state", start, 0, err)
		return engine.State{}, err
	}

	var st engine.State
	if radius == nil {
		st = s.eng.Snapshot()
	} else {
		st = s.eng.SnapshotWindow(*radius)
	}
	s.record("state", start, 0, nil)
	return st, nil
}

// Output returns everything the program has written.
func (s *Session) Output(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	out := s.eng.Output()
	s.record("output", start, 0, nil)
	return out, nil
}

// Reset discards the loaded program, keeping the current tape settings.
func (s *Session) Reset(ctx context.Context) (engine.Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	start := time.Now()

	s.eng.Reset()
	s.loaded = false
	s.record("reset", start, 0, nil)
	return s.eng.Status(), nil
}

// History returns a copy of the retained operation records, oldest first.
func (s *Session) History() []OperationRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]OperationRecord(nil), s.history...)
}

func (s *Session) checkLoaded() error {
	if !s.loaded {
		return ErrNoProgram
	}
	return nil
}

// result builds a StepResult from the current engine. Callers hold s.mu.
func (s *Session) result(executed uint64, limitReached bool) StepResult {
	res := StepResult{
		Status:       s.eng.Status(),
		Executed:     executed,
		TotalSteps:   s.eng.Steps(),
		DataPointer:  s.eng.DataPointer(),
		Cell:         s.eng.Cell(),
		Output:       s.eng.Output(),
		LimitReached: limitReached,
	}
	res.Summary = summarize(res)
	return res
}

// record appends an operation to the trace and logs it. Callers hold s.mu.
func (s *Session) record(op string, start time.Time, executed uint64, err error) {
	rec := OperationRecord{
		Op:         op,
		Status:     s.eng.Status(),
		Executed:   executed,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		rec.Error = err.Error()
	}

	if s.cfg.HistorySize > 0 {
		if len(s.history) >= s.cfg.HistorySize {
			s.history = append(s.history[:0], s.history[len(s.history)-s.cfg.HistorySize+1:]...)
		}
		s.history = append(s.history, rec)
	}

	if s.cfg.Logger != nil {
		if err != nil {
			s.cfg.Logger.Logf("%s failed after %dms: status=%s error=%v", op, rec.DurationMs, rec.Status, err)
		} else {
			s.cfg.Logger.Logf("%s: status=%s executed=%d in %dms", op, rec.Status, executed, rec.DurationMs)
		}
	}
}
