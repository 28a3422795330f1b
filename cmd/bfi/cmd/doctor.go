package cmd

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/bfi/foundation/bf"
	"github.com/msto63/bfi/internal/history"
	"github.com/msto63/bfi/pkg/core/health"
	"github.com/msto63/bfi/pkg/core/version"
)

// selfTest adds 2 and 5 and prints the sum as a raw byte
const selfTest = "++>+++++[<+>-]<."

func newDoctorCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, history database and interpreter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			report := app.healthRegistry().Check(ctx)
			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				writeReport(cmd, report)
			}

			if report.Status == health.StatusUnhealthy {
				return fmt.Errorf("%d checks failed", countStatus(report, health.StatusUnhealthy))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (a *App) healthRegistry() *health.Registry {
	registry := health.NewRegistry(version.Interpreter)

	registry.RegisterFunc("config", func(ctx context.Context) health.CheckResult {
		if err := a.cfg.Validate(); err != nil {
			return health.Unhealthy("%v", err)
		}
		source := a.cfg.Source
		if source == "" {
			source = "built-in defaults"
		}
		res := health.Healthy("loaded from %s", source)
		res.Details = map[string]interface{}{
			"tape_length":  a.cfg.Interpreter.TapeLength,
			"start_offset": a.cfg.Interpreter.StartOffset,
			"eof":          a.cfg.Interpreter.EOF,
		}
		return res
	})

	registry.RegisterFunc("history", func(ctx context.Context) health.CheckResult {
		if !a.cfg.History.Enabled {
			return health.Degraded("history disabled")
		}
		store, err := history.NewSQLiteStore(history.SQLiteConfig{Path: a.cfg.History.Path})
		if err != nil {
			return health.Unhealthy("%v", err)
		}
		defer store.Close()

		stats, err := store.Stats(ctx)
		if err != nil {
			return health.Unhealthy("%v", err)
		}
		res := health.Healthy("%d runs in %s", stats.TotalRuns, a.cfg.History.Path)
		res.Details = map[string]interface{}{"path": a.cfg.History.Path}
		return res
	})

	registry.RegisterFunc("interpreter", func(ctx context.Context) health.CheckResult {
		engine, err := bf.New(engineOptions(a.cfg, a.logger))
		if err != nil {
			return health.Unhealthy("%v", err)
		}
		var out bytes.Buffer
		result, err := engine.Run(ctx, selfTest, strings.NewReader(""), &out)
		if err != nil {
			return health.Unhealthy("self test failed: %v", err)
		}
		if !bytes.Equal(out.Bytes(), []byte{7}) {
			return health.Unhealthy("self test printed %v, want [7]", out.Bytes())
		}
		return health.Healthy("self test passed in %d steps", result.Steps)
	})

	return registry
}

func writeReport(cmd *cobra.Command, report *health.Report) {
	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	styles := map[health.Status]lipgloss.Style{
		health.StatusHealthy:   r.NewStyle().Foreground(lipgloss.Color("#10B981")),
		health.StatusDegraded:  r.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		health.StatusUnhealthy: r.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	}

	out := cmd.OutOrStdout()
	for _, c := range report.Checks {
		fmt.Fprintf(out, "%-12s %s  %s\n", c.Name, styles[c.Status].Render(fmt.Sprintf("%-9s", c.Status)), c.Message)
	}
	fmt.Fprintln(out, report.String())
}

func countStatus(report *health.Report, status health.Status) int {
	n := 0
	for _, c := range report.Checks {
		if c.Status == status {
			n++
		}
	}
	return n
}
