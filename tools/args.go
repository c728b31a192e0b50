package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/jonwraymond/brainfaq/debugger"
)

// stringArg returns args[key] as a string. present is false when the key is
// missing or null.
func stringArg(args map[string]any, key string, required bool) (value string, present bool, err error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		if required {
			return "", false, fmt.Errorf("%w: %s is required", debugger.ErrInvalidArgument, key)
		}
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %s must be a string (got %T)", debugger.ErrInvalidArgument, key, raw)
	}
	return s, true, nil
}

// int64Arg returns args[key] as an int64. present is false when the key is
// missing or null.
func int64Arg(args map[string]any, key string) (value int64, present bool, err error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}

	switch v := raw.(type) {
	case int:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, false, fmt.Errorf("%w: %s must be an integer (got %v)", debugger.ErrInvalidArgument, key, v)
		}
		return int64(v), true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s must be an integer (got %s)", debugger.ErrInvalidArgument, key, v)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("%w: %s must be a number (got %T)", debugger.ErrInvalidArgument, key, raw)
	}
}

// intArg is int64Arg restricted to the int range.
func intArg(args map[string]any, key string) (value int, present bool, err error) {
	n, present, err := int64Arg(args, key)
	if err != nil || !present {
		return 0, present, err
	}
	if n > math.MaxInt || n < math.MinInt {
		return 0, false, fmt.Errorf("%w: %s is out of range (got %d)", debugger.ErrInvalidArgument, key, n)
	}
	return int(n), true, nil
}
