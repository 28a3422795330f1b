// File: tape.go
// Title: Byte Tape
// Description: Fixed-length zero-initialized tape of byte cells with a
//              bounds-checked pointer. Exposes read-only copies for
//              diagnostics and tracing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tape implementation

package executor

import (
	bfierror "github.com/msto63/bfi/foundation/core/error"
)

// DefaultTapeLength is the conventional number of cells
const DefaultTapeLength = 30000

// Tape is the memory of a single run. It is not safe for concurrent use.
type Tape struct {
	cells []byte
	ptr   int
}

// NewTape creates a zeroed tape of length cells with the pointer at start
func NewTape(length, start int) (*Tape, error) {
	if length <= 0 {
		return nil, bfierror.Newf("tape length must be positive, got %d", length).
			WithCode(bfierror.CodeInvalidConfig).
			WithDetail("tape_length", length)
	}
	if start < 0 || start >= length {
		return nil, bfierror.Newf("start offset %d outside tape of length %d", start, length).
			WithCode(bfierror.CodeInvalidConfig).
			WithDetails(map[string]interface{}{
				"start_offset": start,
				"tape_length":  length,
			})
	}
	return &Tape{cells: make([]byte, length), ptr: start}, nil
}

// Len returns the number of cells
func (t *Tape) Len() int {
	return len(t.cells)
}

// Pointer returns the current cell index
func (t *Tape) Pointer() int {
	return t.ptr
}

// Cell returns the value of the current cell
func (t *Tape) Cell() byte {
	return t.cells[t.ptr]
}

// Cells returns a copy of all cells
func (t *Tape) Cells() []byte {
	out := make([]byte, len(t.cells))
	copy(out, t.cells)
	return out
}

// Window returns a copy of the cells within radius of the pointer, clipped
// to the tape, and the index of the first returned cell.
func (t *Tape) Window(radius int) ([]byte, int) {
	if radius < 0 {
		radius = 0
	}
	lo := t.ptr - radius
	if lo < 0 {
		lo = 0
	}
	hi := t.ptr + radius + 1
	if hi > len(t.cells) {
		hi = len(t.cells)
	}
	out := make([]byte, hi-lo)
	copy(out, t.cells[lo:hi])
	return out, lo
}

// move shifts the pointer by delta. It reports false, leaving the pointer
// unchanged, if the target is outside the tape.
func (t *Tape) move(delta int) (int, bool) {
	target := t.ptr + delta
	if target < 0 || target >= len(t.cells) {
		return target, false
	}
	t.ptr = target
	return target, true
}
