package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf/parser"
)

func newTokensCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, tok := range parser.Filter(source) {
				fmt.Fprintf(out, "%6d  %-9s %-10s %c\n", i, tok.Pos, tok.Kind, tok.Kind.Symbol())
			}
			return nil
		},
	}
}
