// File: engine.go
// Title: bfi High-Level Engine Interface
// Description: Integrates filter, parser and executor behind a single
//              Engine. Assigns a run ID to every run, applies the run
//              timeout and tape configuration and logs compile and run
//              events.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial engine implementation

package bf

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/bfi/foundation/bf/ast"
	"github.com/msto63/bfi/foundation/bf/executor"
	"github.com/msto63/bfi/foundation/bf/parser"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
)

// Engine compiles and runs programs
type Engine struct {
	parser  *parser.Parser
	logger  *bfilog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	Logger          *bfilog.Logger
	TapeLength      int // 0 selects executor.DefaultTapeLength
	StartOffset     int
	EOF             executor.EOFPolicy
	StepLimit       int64         // 0 means unlimited
	Timeout         time.Duration // 0 means no timeout
	MaxSourceLength int           // 0 means unlimited
	Tracer          executor.Tracer
}

// Result describes a run. It is returned even when the run fails, as long
// as a run ID was assigned.
type Result struct {
	RunID       string
	Steps       int64
	OutputBytes int64
	Duration    time.Duration
	Pointer     int
	Tape        *executor.Tape
}

// New creates a new engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = bfilog.NewNop()
	}
	if opts.TapeLength == 0 {
		opts.TapeLength = executor.DefaultTapeLength
	}
	if opts.StepLimit < 0 {
		return nil, bfierror.Newf("step limit must not be negative, got %d", opts.StepLimit).
			WithCode(bfierror.CodeInvalidConfig).
			WithOperation("bf.New")
	}
	// validates length and start offset
	if _, err := executor.NewTape(opts.TapeLength, opts.StartOffset); err != nil {
		return nil, bfierror.Wrap(err, "invalid tape configuration").WithOperation("bf.New")
	}

	logger := opts.Logger.WithField("component", "engine")
	engine := &Engine{
		parser: parser.New(parser.Options{
			Logger:          opts.Logger,
			MaxSourceLength: opts.MaxSourceLength,
		}),
		logger:  logger,
		options: opts,
	}

	logger.Debug("engine initialized", bfilog.Fields{
		"tape_length":  opts.TapeLength,
		"start_offset": opts.StartOffset,
		"eof":          opts.EOF.String(),
		"step_limit":   opts.StepLimit,
		"timeout":      opts.Timeout.String(),
	})
	return engine, nil
}

// Compile filters and parses source
func (e *Engine) Compile(source string) (ast.Program, error) {
	_, program, err := e.parser.Parse(source)
	return program, err
}

// Tokens returns the command tokens of source
func (e *Engine) Tokens(source string) []parser.Token {
	return parser.Filter(source)
}

// Run compiles and executes source with a fresh tape
func (e *Engine) Run(ctx context.Context, source string, in io.Reader, out io.Writer) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	logger := e.logger.WithRunID(result.RunID)

	program, err := e.Compile(source)
	if err != nil {
		logger.Debug("compile failed", bfilog.Fields{"error_code": string(bfierror.GetCode(err))})
		return result, err
	}
	logger.Debug("program compiled", bfilog.Fields{"instructions": len(program)})

	err = e.execute(ctx, logger, program, in, out, result)
	return result, err
}

// Execute runs an already compiled program with a fresh tape
func (e *Engine) Execute(ctx context.Context, program ast.Program, in io.Reader, out io.Writer) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	err := e.execute(ctx, e.logger.WithRunID(result.RunID), program, in, out, result)
	return result, err
}

func (e *Engine) execute(ctx context.Context, logger *bfilog.Logger, program ast.Program,
	in io.Reader, out io.Writer, result *Result) error {

	if ctx == nil {
		ctx = context.Background()
	}
	if e.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.options.Timeout)
		defer cancel()
	}

	tape, err := executor.NewTape(e.options.TapeLength, e.options.StartOffset)
	if err != nil {
		return err
	}
	result.Tape = tape

	exec := executor.New(executor.Options{
		Input:     in,
		Output:    out,
		EOF:       e.options.EOF,
		StepLimit: e.options.StepLimit,
		Tracer:    e.options.Tracer,
		Logger:    logger,
	})

	stats, err := exec.Run(ctx, program, tape)
	result.Steps = stats.Steps
	result.OutputBytes = stats.OutputBytes
	result.Duration = stats.Duration
	result.Pointer = stats.Pointer

	fields := bfilog.Fields{
		"steps":        stats.Steps,
		"output_bytes": stats.OutputBytes,
		"pointer":      stats.Pointer,
		"duration_ms":  stats.Duration.Milliseconds(),
	}
	if err != nil {
		fields["error_code"] = string(bfierror.GetCode(err))
		logger.Debug("run failed", fields)
		return err
	}
	logger.Info("run completed", fields)
	return nil
}

// Options returns the engine configuration
func (e *Engine) Options() Options {
	return e.options
}
