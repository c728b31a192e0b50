package debugger

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonwraymond/brainfaq/engine"
)

func TestConfig_ValidateZeroValue(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestConfig_ValidateInvalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		mention string
	}{
		{"negative tape", Config{TapeSize: -1}, "TapeSize"},
		{"negative chunk", Config{RunChunk: -1}, "RunChunk"},
		{"negative max run", Config{MaxRunSteps: -5}, "MaxRunSteps"},
		{"negative window", Config{DefaultWindowRadius: ptr(-1)}, "DefaultWindowRadius"},
		{"bounds exclude zero", Config{MinValue: ptr[int64](5)}, "include zero"},
		{"inverted bounds", Config{MinValue: ptr[int64](-1), MaxValue: ptr[int64](-2)}, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, ErrConfiguration) {
				t.Fatalf("Validate() error = %v, want ErrConfiguration", err)
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.mention)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.applyDefaults()
	if cfg.RunChunk != DefaultRunChunk {
		t.Errorf("RunChunk = %d, want %d", cfg.RunChunk, DefaultRunChunk)
	}
	if cfg.HistorySize != DefaultHistorySize {
		t.Errorf("HistorySize = %d, want %d", cfg.HistorySize, DefaultHistorySize)
	}

	cfg = Config{RunChunk: 10, HistorySize: -1}
	cfg.applyDefaults()
	if cfg.RunChunk != 10 || cfg.HistorySize != -1 {
		t.Errorf("applyDefaults overwrote explicit values: %+v", cfg)
	}
}

func TestConfig_EngineOptionsPrecedence(t *testing.T) {
	cfg := Config{TapeSize: 8, MinValue: ptr[int64](-5), MaxValue: ptr[int64](5)}

	e, err := engine.New(cfg.engineOptions(0, nil, nil)...)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if lo, hi := e.Bounds(); e.TapeSize() != 8 || lo != -5 || hi != 5 {
		t.Errorf("config defaults: tape=%d bounds=[%d, %d]", e.TapeSize(), lo, hi)
	}

	e, err = engine.New(cfg.engineOptions(3, ptr[int64](-1), nil)...)
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	if lo, hi := e.Bounds(); e.TapeSize() != 3 || lo != -1 || hi != 5 {
		t.Errorf("overrides: tape=%d bounds=[%d, %d]", e.TapeSize(), lo, hi)
	}
}
