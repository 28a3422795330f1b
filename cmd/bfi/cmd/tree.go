package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf/ast"
	"github.com/msto63/bfi/foundation/bf/parser"
)

func newTreeCmd(app *App) *cobra.Command {
	var canonical bool

	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Print the instruction tree of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readSource(path)
			if err != nil {
				return err
			}

			program, err := parser.ParseSource(source)
			if err != nil {
				return withSource(err, path, source)
			}

			out := cmd.OutOrStdout()
			switch {
			case canonical:
				fmt.Fprintln(out, ast.Source(program))
			case len(program) == 0:
				fmt.Fprintln(out, "(empty program)")
			default:
				fmt.Fprint(out, ast.Dump(program))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&canonical, "canonical", false, "print the command-only source instead of the tree")
	return cmd
}
