package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for error classification.
var (
	// ErrParse indicates that source text could not be compiled, such as
	// unbalanced brackets.
	ErrParse = errors.New("parse error")

	// ErrConfiguration indicates invalid engine options.
	ErrConfiguration = errors.New("configuration error")
)

// ParseError reports an unmatched bracket found while loading a program.
type ParseError struct {
	// Index is the position of the offending bracket in the filtered
	// program (comments and whitespace removed).
	Index int

	// Bracket is the unmatched character, '[' or ']'.
	Bracket byte
}

// Error returns a message naming the unmatched bracket and its index.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unmatched '%c' at index %d", e.Bracket, e.Index)
}

// Is reports whether this error matches the target.
// ParseError matches ErrParse to allow sentinel-style error checking.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
