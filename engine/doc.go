// Package engine implements a resumable interpreter for the eight-instruction
// tape language (> < + - . , [ ]).
//
// An [Engine] owns one loaded program and all of its execution state: the
// circular tape of bounded integer cells, the data and instruction pointers,
// the input and output character streams, and the step counter. Execution is
// cooperative and synchronous; callers advance it with [Engine.Step] (a
// finite instruction budget) or [Engine.Run] (no budget) and inspect it
// between calls with [Engine.Snapshot] or [Engine.SnapshotWindow].
//
// # Loading
//
// [Engine.Load] discards every character outside the instruction alphabet,
// resets all state, and precomputes a bidirectional jump table for brackets.
// Unbalanced brackets yield a [*ParseError] and the terminal status
// [StatusParserError].
//
// # Stopping conditions
//
// Stepping stops when the budget is spent, when the instruction pointer runs
// past the program ([StatusFinished]), when ',' finds no buffered input
// ([StatusWaitingForInput]), or when '+' or '-' would move a cell outside the
// configured bounds ([StatusOverflowError], [StatusUnderflowError]). Error
// statuses and [StatusFinished] are terminal; stepping a terminal engine is a
// no-op. A waiting engine resumes at the same ',' once [Engine.AddInput]
// supplies characters. A new or reset engine holds an empty program, so its
// first step finishes it.
//
// # Step accounting
//
// Every executed instruction counts as one step, including a bracket that
// jumps. A '+' or '-' that fails its bounds check and a ',' that suspends are
// not counted.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access; see the debugger package.
//
// [Engine.Run] does not return for a program that never finishes or waits
// for input. Use [Engine.Step] with a finite budget to keep control.
package engine
