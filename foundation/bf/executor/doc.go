// File: doc.go
// Title: Executor Package Documentation
// Description: Documents the tape executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial executor implementation

/*
Package executor runs parsed programs against a fixed-length byte tape.

Semantics per instruction:

  - MoveRight/MoveLeft shift the pointer by one. Leaving [0, length) halts
    the run with POINTER_OUT_OF_RANGE; the pointer never wraps or clamps.
  - Increment/Decrement use wrapping byte arithmetic.
  - WriteByte emits the current cell as one raw byte.
  - ReadByte consumes one byte of input. End of input is handled by the
    configured EOFPolicy.
  - Loop repeats its body while the current cell is nonzero.

Output is buffered. It is flushed before every read, so interactive
prompts appear, and at the end of the run, including failed runs.

Runaway programs are stopped by Options.StepLimit or by cancelling the
context passed to Execute; the context is polled at loop iterations.

Usage:

	tape, err := executor.NewTape(executor.DefaultTapeLength, 0)
	if err != nil {
		return err
	}
	exec := executor.New(executor.Options{Input: os.Stdin, Output: os.Stdout})
	if err := exec.Execute(ctx, program, tape); err != nil {
		return err
	}
*/
package executor
