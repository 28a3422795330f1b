package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf"
	"github.com/msto63/bfi/foundation/bf/executor"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	bfilog "github.com/msto63/bfi/foundation/core/log"
	"github.com/msto63/bfi/internal/history"
	"github.com/msto63/bfi/pkg/core/config"
)

// interpreterFlags override the [interpreter] config section
type interpreterFlags struct {
	tapeLength int
	start      int
	eof        string
	maxSteps   int64
	timeout    time.Duration
	input      string
}

func (f *interpreterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.IntVar(&f.tapeLength, "tape-length", executor.DefaultTapeLength, "number of tape cells")
	fl.IntVar(&f.start, "start", 0, "initial pointer position")
	fl.StringVar(&f.eof, "eof", "error", "end-of-input policy: error, zero, unchanged")
	fl.Int64Var(&f.maxSteps, "max-steps", 0, "abort after this many steps (0 = unlimited)")
	fl.DurationVar(&f.timeout, "timeout", 0, "abort after this duration (0 = none)")
	fl.StringVarP(&f.input, "input", "i", "", "read program input from this file instead of stdin")
}

// apply copies explicitly set flags over the configuration
func (f *interpreterFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("tape-length") {
		cfg.Interpreter.TapeLength = f.tapeLength
	}
	if fl.Changed("start") {
		cfg.Interpreter.StartOffset = f.start
	}
	if fl.Changed("eof") {
		cfg.Interpreter.EOF = f.eof
	}
	if fl.Changed("max-steps") {
		cfg.Interpreter.MaxSteps = f.maxSteps
	}
	if fl.Changed("timeout") {
		cfg.Interpreter.Timeout.Duration = f.timeout
	}
}

// openInput returns the program input stream
func (f *interpreterFlags) openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	if f.input == "" {
		return cmd.InOrStdin(), func() {}, nil
	}
	file, err := os.Open(f.input)
	if err != nil {
		code := bfierror.CodeIO
		if os.IsNotExist(err) {
			code = bfierror.CodeNotFound
		}
		return nil, nil, bfierror.Wrap(err, "failed to open input").
			WithCode(code).
			WithDetail("path", f.input)
	}
	return file, func() { file.Close() }, nil
}

func engineOptions(cfg *config.Config, logger *bfilog.Logger) bf.Options {
	return bf.Options{
		Logger:          logger,
		TapeLength:      cfg.Interpreter.TapeLength,
		StartOffset:     cfg.Interpreter.StartOffset,
		EOF:             cfg.EOFPolicy(),
		StepLimit:       cfg.Interpreter.MaxSteps,
		Timeout:         cfg.Interpreter.Timeout.Duration,
		MaxSourceLength: cfg.Interpreter.MaxSourceBytes,
	}
}

func newRunCmd(app *App) *cobra.Command {
	var (
		flags     interpreterFlags
		noHistory bool
	)

	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run a program",
		Long: `Run a program file. Program input is read from stdin (or --input),
output is written to stdout as raw bytes.

Flags override the [interpreter] section of the configuration. Ctrl+C
cancels the run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runProgram(cmd, args[0], &flags, noHistory)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record this run in the history")
	return cmd
}

func (a *App) runProgram(cmd *cobra.Command, path string, flags *interpreterFlags, noHistory bool) error {
	flags.apply(cmd, a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	source, err := readSource(path)
	if err != nil {
		return err
	}

	engine, err := bf.New(engineOptions(a.cfg, a.logger))
	if err != nil {
		return err
	}

	in, closeInput, err := flags.openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	started := time.Now()
	result, runErr := engine.Run(ctx, source, in, cmd.OutOrStdout())

	if a.cfg.History.Enabled && !noHistory {
		a.recordRun(path, source, started, result, runErr)
	}

	return withSource(runErr, path, source)
}

// recordRun stores the run in the history. Failures are logged, the run
// result is not affected.
func (a *App) recordRun(path, source string, started time.Time, result *bf.Result, runErr error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: a.cfg.History.Path})
	if err != nil {
		a.logger.LogError("history unavailable", err)
		return
	}
	defer store.Close()

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	run := &history.Run{
		ID:          result.RunID,
		StartedAt:   started,
		SourcePath:  path,
		SourceHash:  history.HashSource(source),
		Status:      history.StatusOK,
		Steps:       result.Steps,
		OutputBytes: result.OutputBytes,
		Duration:    result.Duration,
	}
	if runErr != nil {
		run.Status = history.StatusFailed
		run.ErrorCode = string(bfierror.GetCode(runErr))
	}

	if err := store.Record(ctx, run); err != nil {
		a.logger.LogError("failed to record run", err)
		return
	}
	a.logger.Debug("run recorded", bfilog.Fields{"run_id": run.ID, "history": a.cfg.History.Path})
}
