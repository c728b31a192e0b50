package engine

import "fmt"

// Defaults applied by New.
const (
	DefaultTapeSize = 30000

	// MaxSafeInteger and MinSafeInteger bound integers that survive a
	// round trip through an IEEE-754 double, which is how JSON clients see
	// cell values.
	MaxSafeInteger int64 = 1<<53 - 1
	MinSafeInteger int64 = -MaxSafeInteger
)

// config holds the construction-time settings of an Engine.
type config struct {
	tapeSize int
	minValue int64
	maxValue int64
}

// Option configures an Engine.
type Option func(*config)

// WithTapeSize sets the number of cells on the tape.
func WithTapeSize(n int) Option {
	return func(c *config) {
		c.tapeSize = n
	}
}

// WithBounds sets the inclusive range every cell value must stay within.
func WithBounds(minValue, maxValue int64) Option {
	return func(c *config) {
		c.minValue = minValue
		c.maxValue = maxValue
	}
}

func defaultConfig() config {
	return config{
		tapeSize: DefaultTapeSize,
		minValue: MinSafeInteger,
		maxValue: MaxSafeInteger,
	}
}

// validate checks that the tape is usable and that zero, the initial value
// of every cell, lies within bounds.
func (c config) validate() error {
	if c.tapeSize < 1 {
		return fmt.Errorf("%w: tape size must be positive, got %d", ErrConfiguration, c.tapeSize)
	}
	if c.minValue > c.maxValue {
		return fmt.Errorf("%w: min value %d exceeds max value %d", ErrConfiguration, c.minValue, c.maxValue)
	}
	if c.minValue > 0 || c.maxValue < 0 {
		return fmt.Errorf("%w: bounds [%d, %d] must include zero", ErrConfiguration, c.minValue, c.maxValue)
	}
	return nil
}
