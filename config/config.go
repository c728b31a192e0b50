// Package config loads the server configuration from a CUE file.
//
// A configuration file is a CUE struct validated against a closed schema,
// so misspelled fields are rejected:
//
//	tapeSize:            30000
//	maxValue:            255
//	minValue:            0
//	defaultWindowRadius: 16
//	maxRunSteps:         50_000_000
//	log: {
//		level:   "debug"
//		journal: true
//	}
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/jonwraymond/brainfaq/debugger"
)

// Schema constrains configuration files.
const Schema = `
tapeSize?:            int & >=1
minValue?:            int & <=0
maxValue?:            int & >=0
defaultWindowRadius?: int & >=0
runChunk?:            int & >=1
maxRunSteps?:         int & >=0
historySize?:         int
log?: close({
	level?:   "debug" | "info" | "warn" | "error"
	journal?: bool
	file?:    string
})
`

// File is the decoded configuration file.
type File struct {
	TapeSize            int    `json:"tapeSize"`
	MinValue            *int64 `json:"minValue"`
	MaxValue            *int64 `json:"maxValue"`
	DefaultWindowRadius *int   `json:"defaultWindowRadius"`
	RunChunk            int    `json:"runChunk"`
	MaxRunSteps         int    `json:"maxRunSteps"`
	HistorySize         int    `json:"historySize"`
	Log                 Log    `json:"log"`
}

// Log configures the process logger.
type Log struct {
	// Level is one of "debug", "info", "warn" or "error".
	// Default: "info".
	Level string `json:"level"`

	// Journal also sends records to the systemd journal.
	Journal bool `json:"journal"`

	// File also appends JSON records to the named file.
	File string `json:"file"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return Parse(content, path)
}

// Parse validates and decodes configuration source. filename is used in
// error positions.
func Parse(content []byte, filename string) (File, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString("close({" + Schema + "})")
	if err := schema.Err(); err != nil {
		return File{}, err
	}

	value := ctx.CompileBytes(content, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return File{}, fmt.Errorf("config %s: %w", filename, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return File{}, fmt.Errorf("config %s: %w", filename, err)
	}

	var f File
	if err := unified.Decode(&f); err != nil {
		return File{}, fmt.Errorf("config %s: %w", filename, err)
	}
	return f, nil
}

// Debugger converts the file to a session configuration.
func (f File) Debugger(logger debugger.Logger) debugger.Config {
	return debugger.Config{
		TapeSize:            f.TapeSize,
		MinValue:            f.MinValue,
		MaxValue:            f.MaxValue,
		DefaultWindowRadius: f.DefaultWindowRadius,
		RunChunk:            f.RunChunk,
		MaxRunSteps:         f.MaxRunSteps,
		HistorySize:         f.HistorySize,
		Logger:              logger,
	}
}

// SlogLevel parses Level. An empty level is slog.LevelInfo.
func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
