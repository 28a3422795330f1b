// File: executor.go
// Title: Instruction Tree Executor
// Description: Walks a parsed program against a byte tape. Moves are
//              bounds-checked, cell arithmetic wraps, output is buffered and
//              flushed before every read and at the end of the run. Step
//              limits and context cancellation stop runaway programs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial executor implementation

package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/msto63/bfi/foundation/bf/ast"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
)

// EOFPolicy selects what ReadByte does at end of input
type EOFPolicy int

const (
	EOFError     EOFPolicy = iota // fail with INPUT_EXHAUSTED
	EOFZero                       // store 0
	EOFUnchanged                  // leave the cell as is
)

// String returns the configuration name of the policy
func (p EOFPolicy) String() string {
	switch p {
	case EOFError:
		return "error"
	case EOFZero:
		return "zero"
	case EOFUnchanged:
		return "unchanged"
	default:
		return fmt.Sprintf("EOFPolicy(%d)", int(p))
	}
}

// ParseEOFPolicy parses "error", "zero" or "unchanged". The empty string
// selects EOFError.
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return EOFError, nil
	case "zero", "0":
		return EOFZero, nil
	case "unchanged", "keep":
		return EOFUnchanged, nil
	default:
		return EOFError, bfierror.Newf("unknown EOF policy %q", s).
			WithCode(bfierror.CodeInvalidConfig).
			WithDetail("eof", s)
	}
}

// cancelCheckMask sets how often loop iterations poll the context
const cancelCheckMask = 0x3FF

// Options configures executor behavior
type Options struct {
	Input     io.Reader // nil behaves as empty input
	Output    io.Writer // nil discards output
	EOF       EOFPolicy
	StepLimit int64 // 0 means unlimited
	Tracer    Tracer
	Logger    *bfilog.Logger
}

// Stats summarizes a finished run
type Stats struct {
	Steps       int64
	OutputBytes int64
	Pointer     int
	Duration    time.Duration
}

// Executor runs programs. It holds no per-run state and may be reused
// sequentially for different tapes.
type Executor struct {
	options Options
	logger  *bfilog.Logger
}

// New creates a new executor with the given options
func New(opts Options) *Executor {
	logger := opts.Logger
	if logger == nil {
		logger = bfilog.NewNop()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &Executor{
		options: opts,
		logger:  logger.WithField("component", "executor"),
	}
}

// Execute runs program on tape
func (e *Executor) Execute(ctx context.Context, program ast.Program, tape *Tape) error {
	_, err := e.Run(ctx, program, tape)
	return err
}

// Run runs program on tape and returns statistics. Stats are filled in
// even when the run fails.
func (e *Executor) Run(ctx context.Context, program ast.Program, tape *Tape) (Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if tape == nil {
		return Stats{}, bfierror.New("tape is required").
			WithCode(bfierror.CodeInvalidInput).
			WithOperation("executor.Run")
	}

	m := &machine{
		ctx:    ctx,
		tape:   tape,
		out:    bufio.NewWriter(e.options.Output),
		eof:    e.options.EOF,
		limit:  e.options.StepLimit,
		tracer: e.options.Tracer,
	}
	if e.options.Input != nil {
		if br, ok := e.options.Input.(io.ByteReader); ok {
			m.in = br
		} else {
			m.in = bufio.NewReader(e.options.Input)
		}
	}

	e.logger.Debug("execution started", bfilog.Fields{
		"instructions": len(program),
		"tape_length":  tape.Len(),
		"pointer":      tape.Pointer(),
		"step_limit":   m.limit,
		"eof":          m.eof.String(),
	})

	timer := e.logger.StartTimer("execution")
	start := time.Now()

	err := m.checkContext()
	if err == nil {
		err = m.run(program)
	}
	if flushErr := m.out.Flush(); flushErr != nil && err == nil {
		err = bfierror.Wrap(flushErr, "write output").
			WithCode(bfierror.CodeIO).
			WithOperation("executor.Run")
	}

	stats := Stats{
		Steps:       m.steps,
		OutputBytes: m.written,
		Pointer:     tape.Pointer(),
		Duration:    time.Since(start),
	}

	timer.WithField("steps", stats.Steps).WithField("output_bytes", stats.OutputBytes)
	if err != nil {
		// program failures are results, not executor faults
		timer.WithField("success", false).
			WithField("error_code", string(bfierror.GetCode(err))).
			Stop()
		return stats, err
	}
	timer.Stop()
	return stats, nil
}

// machine is the state of one run
type machine struct {
	ctx    context.Context
	tape   *Tape
	in     io.ByteReader
	out    *bufio.Writer
	eof    EOFPolicy
	limit  int64
	tracer Tracer

	steps      int64
	written    int64
	iterations uint64
}

func (m *machine) run(program ast.Program) error {
	for i := range program {
		if err := m.exec(&program[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *machine) exec(ins *ast.Instruction) error {
	if ins.Op == ast.OpLoop {
		return m.loop(ins)
	}

	if err := m.step(ins); err != nil {
		return err
	}

	t := m.tape
	switch ins.Op {
	case ast.OpMoveRight:
		if target, ok := t.move(1); !ok {
			return m.outOfRange(ins, target)
		}
	case ast.OpMoveLeft:
		if target, ok := t.move(-1); !ok {
			return m.outOfRange(ins, target)
		}
	case ast.OpIncrement:
		t.cells[t.ptr]++
	case ast.OpDecrement:
		t.cells[t.ptr]--
	case ast.OpWriteByte:
		if err := m.out.WriteByte(t.cells[t.ptr]); err != nil {
			return m.ioError(ins, err, "write output")
		}
		m.written++
	case ast.OpReadByte:
		if err := m.read(ins); err != nil {
			return err
		}
	default:
		return bfierror.Newf("unknown instruction %s", ins.Op).
			WithCode(bfierror.CodeInternal).
			WithOperation("executor.exec")
	}

	m.trace(ins)
	return nil
}

func (m *machine) loop(ins *ast.Instruction) error {
	for {
		if err := m.step(ins); err != nil {
			return err
		}
		m.trace(ins)
		if m.tape.Cell() == 0 {
			return nil
		}

		m.iterations++
		if m.iterations&cancelCheckMask == 0 {
			if err := m.checkContext(); err != nil {
				return err
			}
		}

		if err := m.run(ins.Body); err != nil {
			return err
		}
	}
}

// step counts one executed step and enforces the step limit
func (m *machine) step(ins *ast.Instruction) error {
	if m.limit > 0 && m.steps >= m.limit {
		return bfierror.Newf("step limit of %d exceeded", m.limit).
			WithCode(bfierror.CodeStepLimit).
			WithDetails(m.where(ins)).
			WithDetail("limit", m.limit).
			WithOperation("executor.Run")
	}
	m.steps++
	return nil
}

func (m *machine) read(ins *ast.Instruction) error {
	if err := m.out.Flush(); err != nil {
		return m.ioError(ins, err, "write output")
	}

	if m.in == nil {
		return m.endOfInput(ins)
	}
	b, err := m.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return m.endOfInput(ins)
		}
		return m.ioError(ins, err, "read input")
	}
	m.tape.cells[m.tape.ptr] = b
	return nil
}

func (m *machine) endOfInput(ins *ast.Instruction) error {
	switch m.eof {
	case EOFZero:
		m.tape.cells[m.tape.ptr] = 0
		return nil
	case EOFUnchanged:
		return nil
	default:
		return bfierror.New("input exhausted").
			WithCode(bfierror.CodeInputExhausted).
			WithDetails(m.where(ins)).
			WithOperation("executor.Run")
	}
}

func (m *machine) checkContext() error {
	if err := m.ctx.Err(); err != nil {
		return bfierror.Wrap(err, "execution cancelled").
			WithCode(bfierror.CodeCancelled).
			WithDetail("step", m.steps).
			WithDetail("pointer", m.tape.Pointer()).
			WithOperation("executor.Run")
	}
	return nil
}

func (m *machine) outOfRange(ins *ast.Instruction, target int) error {
	return bfierror.Newf("pointer moved to %d, outside tape [0, %d)", target, m.tape.Len()).
		WithCode(bfierror.CodePointerOutOfRange).
		WithDetails(m.where(ins)).
		WithDetail("pointer", target).
		WithDetail("tape_length", m.tape.Len()).
		WithOperation("executor.Run")
}

func (m *machine) ioError(ins *ast.Instruction, err error, message string) error {
	return bfierror.Wrap(err, message).
		WithCode(bfierror.CodeIO).
		WithDetails(m.where(ins)).
		WithOperation("executor.Run")
}

func (m *machine) where(ins *ast.Instruction) map[string]interface{} {
	return map[string]interface{}{
		"step":    m.steps,
		"pointer": m.tape.Pointer(),
		"line":    ins.Pos.Line,
		"column":  ins.Pos.Column,
		"op":      ins.Op.String(),
	}
}

func (m *machine) trace(ins *ast.Instruction) {
	if m.tracer == nil {
		return
	}
	m.tracer.Step(StepEvent{
		Step:    m.steps,
		Op:      ins.Op,
		Pos:     ins.Pos,
		Pointer: m.tape.ptr,
		Cell:    m.tape.cells[m.tape.ptr],
		tape:    m.tape,
	})
}
