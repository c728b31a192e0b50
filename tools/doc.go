// Package tools defines the debugger's tool surface: one local.ToolDef per
// operation of a debugger.Session, with input schemas, documentation and
// handlers that decode loosely typed arguments.
//
// Handlers receive arguments as decoded JSON. Numbers may arrive as float64,
// json.Number or any Go integer type; non-integral or out-of-range values are
// rejected with debugger.ErrInvalidArgument.
package tools
