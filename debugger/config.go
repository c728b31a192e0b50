package debugger

import (
	"fmt"
	"strings"

	"github.com/jonwraymond/brainfaq/engine"
)

// Default configuration values.
const (
	DefaultRunChunk    = 1_000_000
	DefaultHistorySize = 64
)

// Config holds the configuration for a debugger session. Per-load
// parameters override the tape settings.
type Config struct {
	// TapeSize is the default number of tape cells.
	// If zero, engine.DefaultTapeSize is used.
	TapeSize int

	// MinValue and MaxValue are the default inclusive cell bounds.
	// If nil, the engine's safe-integer bounds are used.
	MinValue *int64
	MaxValue *int64

	// DefaultWindowRadius is applied by State when the caller gives no
	// radius. If nil, State returns the whole tape.
	DefaultWindowRadius *int

	// RunChunk is the number of instructions Run executes between context
	// checks. Defaults to DefaultRunChunk.
	RunChunk int

	// MaxRunSteps caps the instructions a single Run may execute.
	// Zero means unlimited.
	MaxRunSteps int

	// HistorySize is the number of operation records retained.
	// Defaults to DefaultHistorySize; negative disables the trace.
	HistorySize int

	// Logger is an optional logger for observability.
	Logger Logger
}

// Validate checks numeric fields and that the default tape is usable.
// Returns ErrConfiguration describing every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.TapeSize < 0 {
		problems = append(problems, fmt.Sprintf("TapeSize must not be negative (got %d)", c.TapeSize))
	}
	if c.RunChunk < 0 {
		problems = append(problems, fmt.Sprintf("RunChunk must not be negative (got %d)", c.RunChunk))
	}
	if c.MaxRunSteps < 0 {
		problems = append(problems, fmt.Sprintf("MaxRunSteps must not be negative (got %d)", c.MaxRunSteps))
	}
	if c.DefaultWindowRadius != nil && *c.DefaultWindowRadius < 0 {
		problems = append(problems, fmt.Sprintf("DefaultWindowRadius must not be negative (got %d)", *c.DefaultWindowRadius))
	}
	if len(problems) == 0 {
		if _, err := engine.New(c.engineOptions(0, nil, nil)...); err != nil {
			problems = append(problems, err.Error())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

// applyDefaults sets default values for optional fields.
func (c *Config) applyDefaults() {
	if c.RunChunk == 0 {
		c.RunChunk = DefaultRunChunk
	}
	if c.HistorySize == 0 {
		c.HistorySize = DefaultHistorySize
	}
}

// engineOptions resolves per-load overrides against the configured defaults.
func (c *Config) engineOptions(tapeSize int, minValue, maxValue *int64) []engine.Option {
	var opts []engine.Option

	if tapeSize == 0 {
		tapeSize = c.TapeSize
	}
	if tapeSize != 0 {
		opts = append(opts, engine.WithTapeSize(tapeSize))
	}

	lo, hi := engine.MinSafeInteger, engine.MaxSafeInteger
	if c.MinValue != nil {
		lo = *c.MinValue
	}
	if c.MaxValue != nil {
		hi = *c.MaxValue
	}
	if minValue != nil {
		lo = *minValue
	}
	if maxValue != nil {
		hi = *maxValue
	}
	return append(opts, engine.WithBounds(lo, hi))
}
