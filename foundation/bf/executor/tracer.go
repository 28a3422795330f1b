// File: tracer.go
// Title: Execution Tracing
// Description: Step events emitted by the executor and a bounded Recorder
//              that keeps the first steps of a run together with a window
//              of cells around the pointer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tracer and recorder

package executor

import (
	"fmt"

	"github.com/msto63/bfi/foundation/bf/ast"
)

// StepEvent describes one executed step. Loop steps are emitted each time
// a loop tests its cell.
type StepEvent struct {
	Step    int64
	Op      ast.Op
	Pos     ast.Position
	Pointer int
	Cell    byte

	tape *Tape
}

// String returns a compact one-line form of the event
func (e StepEvent) String() string {
	return fmt.Sprintf("#%d %s @%s ptr=%d cell=%d", e.Step, e.Op, e.Pos, e.Pointer, e.Cell)
}

// Window returns the cells around the pointer at the time of the event.
// Only valid during the Tracer callback.
func (e StepEvent) Window(radius int) ([]byte, int) {
	if e.tape == nil {
		return nil, 0
	}
	return e.tape.Window(radius)
}

// Tracer receives one event per executed step
type Tracer interface {
	Step(event StepEvent)
}

// TracerFunc adapts a function to the Tracer interface
type TracerFunc func(event StepEvent)

// Step calls f(event)
func (f TracerFunc) Step(event StepEvent) {
	f(event)
}

// Frame is a recorded step with its cell window
type Frame struct {
	StepEvent
	Cells       []byte
	CellsOffset int
}

// Recorder keeps the first Limit steps of a run
type Recorder struct {
	limit  int
	radius int
	frames []Frame
	total  int64
}

// Recorder defaults
const (
	DefaultRecorderLimit  = 10000
	DefaultRecorderRadius = 8
)

// NewRecorder creates a recorder keeping at most limit frames with radius
// cells on each side of the pointer. Non-positive values select defaults.
func NewRecorder(limit, radius int) *Recorder {
	if limit <= 0 {
		limit = DefaultRecorderLimit
	}
	if radius <= 0 {
		radius = DefaultRecorderRadius
	}
	return &Recorder{limit: limit, radius: radius}
}

// Step implements Tracer
func (r *Recorder) Step(event StepEvent) {
	r.total++
	if len(r.frames) >= r.limit {
		return
	}
	cells, offset := event.Window(r.radius)
	event.tape = nil
	r.frames = append(r.frames, Frame{StepEvent: event, Cells: cells, CellsOffset: offset})
}

// Frames returns the recorded frames
func (r *Recorder) Frames() []Frame {
	return r.frames
}

// Total returns the number of steps seen, recorded or not
func (r *Recorder) Total() int64 {
	return r.total
}

// Truncated reports whether steps were dropped
func (r *Recorder) Truncated() bool {
	return r.total > int64(len(r.frames))
}

// Radius returns the cell window radius
func (r *Recorder) Radius() int {
	return r.radius
}
