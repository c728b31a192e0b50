package debugger

import "errors"

// Sentinel errors for error classification.
var (
	// ErrConfiguration indicates an invalid session configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidArgument indicates an operation argument outside its
	// allowed range, such as a non-positive step count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoProgram indicates an operation that needs a loaded program was
	// called before Load or after Reset.
	ErrNoProgram = errors.New("no program loaded")
)
