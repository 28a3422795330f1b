package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf"
	"github.com/msto63/bfi/foundation/bf/executor"
	bfierror "github.com/msto63/bfi/foundation/core/error"
	"github.com/msto63/bfi/internal/tui/traceviewer"
)

func newTraceCmd(app *App) *cobra.Command {
	var (
		flags  interpreterFlags
		limit  int
		radius int
		plain  bool
	)

	cmd := &cobra.Command{
		Use:   "trace <file>",
		Short: "Run a program and browse its execution steps",
		Long: `Run a program with step recording and open the recorded steps in an
interactive viewer. Program output is captured, not printed. Program
input is read completely before the viewer starts; from a terminal the
program sees end of input, so pass --input or pipe it.

Use --plain to print the recorded steps instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.traceProgram(cmd, args[0], &flags, limit, radius, plain)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", executor.DefaultRecorderLimit, "maximum number of steps to record")
	cmd.Flags().IntVar(&radius, "radius", executor.DefaultRecorderRadius, "tape cells shown on each side of the pointer")
	cmd.Flags().BoolVar(&plain, "plain", false, "print steps as text instead of starting the viewer")
	return cmd
}

func (a *App) traceProgram(cmd *cobra.Command, path string, flags *interpreterFlags, limit, radius int, plain bool) error {
	flags.apply(cmd, a.cfg)
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	source, err := readSource(path)
	if err != nil {
		return err
	}

	recorder := executor.NewRecorder(limit, radius)
	opts := engineOptions(a.cfg, a.logger)
	opts.Tracer = recorder

	engine, err := bf.New(opts)
	if err != nil {
		return err
	}

	// structural errors are reported before any UI starts
	program, err := engine.Compile(source)
	if err != nil {
		return withSource(err, path, source)
	}

	in, closeInput, err := flags.openInput(cmd)
	if err != nil {
		return err
	}
	defer closeInput()

	if !plain {
		// the viewer owns the terminal, so the program cannot share stdin with it
		if in, err = prefetchInput(in); err != nil {
			return err
		}
	}

	load := func(ctx context.Context) traceviewer.Trace {
		var output bytes.Buffer
		_, runErr := engine.Execute(ctx, program, in, &output)
		return traceviewer.Trace{
			Frames:    recorder.Frames(),
			Total:     recorder.Total(),
			Truncated: recorder.Truncated(),
			Output:    output.Bytes(),
			Err:       runErr,
		}
	}

	if plain {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		trace := load(ctx)
		writePlainTrace(cmd, trace)
		return withSource(trace.Err, path, source)
	}

	return traceviewer.Run(traceviewer.Config{
		Title:  path,
		Source: source,
		Load:   load,
	})
}

// prefetchInput reads piped or file input completely. A terminal yields
// empty input; interactive programs need --input or a pipe.
func prefetchInput(r io.Reader) (io.Reader, error) {
	if f, ok := r.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return bytes.NewReader(nil), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, bfierror.Wrap(err, "failed to read program input").
			WithCode(bfierror.CodeIO).
			WithOperation("trace")
	}
	return bytes.NewReader(data), nil
}

func writePlainTrace(cmd *cobra.Command, trace traceviewer.Trace) {
	out := cmd.OutOrStdout()
	for _, f := range trace.Frames {
		fmt.Fprintf(out, "%s cells@%d=%v\n", f.StepEvent, f.CellsOffset, f.Cells)
	}

	status := "ok"
	if trace.Err != nil {
		status = string(bfierror.GetCode(trace.Err))
	}
	fmt.Fprintf(out, "steps: %d recorded: %d truncated: %t status: %s\n",
		trace.Total, len(trace.Frames), trace.Truncated, status)
	fmt.Fprintf(out, "output: %q\n", trace.Output)
}
