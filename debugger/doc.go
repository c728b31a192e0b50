// Package debugger wraps an [engine.Engine] in a session that external
// callers, such as MCP tool handlers, can drive one operation at a time.
//
// A [Session] owns exactly one engine. Every operation takes the session
// lock, so concurrent callers are serialized as the engine requires. Loading
// a program replaces the engine, which lets each load choose its own tape
// size and cell bounds.
//
// # Operations
//
// The session exposes the debugger operations:
//
//   - [Session.Load]: reset and compile a program, seeding input
//   - [Session.Step]: execute a fixed number of instructions
//   - [Session.Run]: execute until the program stops, with an optional limit
//   - [Session.AddInput]: append to the input buffer
//   - [Session.State]: snapshot the engine with an optional tape window
//   - [Session.Output]: the accumulated output
//   - [Session.Reset]: discard the program
//
// # Unbounded runs
//
// [Session.Run] without a limit executes in chunks of [Config.RunChunk]
// instructions and checks the context between chunks, so a client can
// cancel a program that never halts. [Config.MaxRunSteps] optionally caps
// how many instructions a single Run may execute.
//
// # Operation trace
//
// Every operation is recorded in an [OperationRecord] containing the
// operation name, resulting status, instructions executed, error text and
// duration. [Session.History] returns the most recent records.
package debugger
