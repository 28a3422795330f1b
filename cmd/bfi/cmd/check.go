package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf/ast"
	"github.com/msto63/bfi/foundation/bf/parser"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check a program for unmatched brackets",
		Long: `Filter and parse a program without running it. Prints token and
instruction counts and the maximum loop nesting depth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readSource(path)
			if err != nil {
				return err
			}

			p := parser.New(parser.Options{
				Logger:          app.logger,
				MaxSourceLength: app.cfg.Interpreter.MaxSourceBytes,
			})
			tokens, program, err := p.Parse(source)
			if err != nil {
				return withSource(err, path, source)
			}

			stats := ast.Count(program)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: OK\n", path)
			fmt.Fprintf(out, "  tokens        %d\n", len(tokens))
			fmt.Fprintf(out, "  instructions  %d (leaves %d, loops %d)\n",
				stats.Leaves+stats.Loops, stats.Leaves, stats.Loops)
			fmt.Fprintf(out, "  max depth     %d\n", stats.MaxDepth)
			return nil
		},
	}
}
