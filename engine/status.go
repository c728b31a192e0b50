package engine

// Status is the execution state of an engine. Exactly one status is current
// at any time, and it alone decides whether stepping may proceed.
type Status string

// Execution statuses.
const (
	StatusReady           Status = "READY"
	StatusRunning         Status = "RUNNING"
	StatusWaitingForInput Status = "WAITING_FOR_INPUT"
	StatusFinished        Status = "FINISHED"
	StatusParserError     Status = "PARSER_ERROR"
	StatusOverflowError   Status = "OVERFLOW_ERROR"
	StatusUnderflowError  Status = "UNDERFLOW_ERROR"
)

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// Terminal reports whether no further instruction can execute until a new
// program is loaded.
func (s Status) Terminal() bool {
	return s == StatusFinished || s.IsError()
}

// IsError reports whether s is one of the error statuses.
func (s Status) IsError() bool {
	switch s {
	case StatusParserError, StatusOverflowError, StatusUnderflowError:
		return true
	default:
		return false
	}
}
