package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	bfierror "github.com/msto63/bfi/foundation/core/error"
	"github.com/msto63/bfi/internal/history"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
		Long: `Inspect the run history. Every run started with 'bfi run' is recorded
unless history is disabled in the configuration or --no-history is given.`,
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryStatsCmd(app),
		newHistoryPruneCmd(app),
	)
	return cmd
}

// openStore opens the configured history database
func (a *App) openStore() (history.Store, error) {
	if a.cfg.History.Path == "" {
		return nil, bfierror.New("history path is not configured").
			WithCode(bfierror.CodeInvalidConfig).
			WithDetail("key", "history.path")
	}
	return history.NewSQLiteStore(history.SQLiteConfig{Path: a.cfg.History.Path})
}

func newHistoryListCmd(app *App) *cobra.Command {
	var (
		filter history.Filter
		status string
		since  time.Duration
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch history.Status(status) {
			case "", history.StatusOK, history.StatusFailed:
				filter.Status = history.Status(status)
			default:
				return bfierror.Newf("unknown status %q (use ok or failed)", status).
					WithCode(bfierror.CodeInvalidInput)
			}
			if since > 0 {
				filter.Since = time.Now().Add(-since)
			}
			// runs are recorded with absolute paths
			if filter.SourcePath != "" {
				if abs, err := filepath.Abs(filter.SourcePath); err == nil {
					filter.SourcePath = abs
				}
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), runs)
			}
			writeRunTable(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&filter.Limit, "limit", "n", 20, "maximum number of runs")
	fl.StringVar(&status, "status", "", "only runs with this status (ok, failed)")
	fl.StringVar(&filter.SourcePath, "path", "", "only runs of this source path")
	fl.DurationVar(&since, "since", 0, "only runs started within this duration")
	fl.BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func writeRunTable(w io.Writer, runs []*history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "no runs recorded")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSTATUS\tSTEPS\tOUTPUT\tDURATION\tSOURCE")
	for _, r := range runs {
		status := string(r.Status)
		if r.ErrorCode != "" {
			status += " (" + r.ErrorCode + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			status,
			r.Steps,
			r.OutputBytes,
			r.Duration.Round(time.Microsecond),
			r.SourcePath,
		)
	}
	tw.Flush()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func newHistoryStatsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show run statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), stats)
			}
			writeStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func writeStats(w io.Writer, stats *history.Stats) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Runs:\t%d\n", stats.TotalRuns)
	fmt.Fprintf(tw, "Succeeded:\t%d\n", stats.Succeeded)
	fmt.Fprintf(tw, "Failed:\t%d\n", stats.Failed)
	fmt.Fprintf(tw, "Total steps:\t%d\n", stats.TotalSteps)
	fmt.Fprintf(tw, "Avg duration:\t%s\n", stats.AvgDuration.Round(time.Microsecond))
	if !stats.LastRun.IsZero() {
		fmt.Fprintf(tw, "Last run:\t%s\n", stats.LastRun.Local().Format(time.RFC3339))
	}

	codes := make([]string, 0, len(stats.ByErrorCode))
	for code := range stats.ByErrorCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(tw, "  %s:\t%d\n", code, stats.ByErrorCode[code])
	}
	tw.Flush()
}

func newHistoryPruneCmd(app *App) *cobra.Command {
	var (
		olderThan time.Duration
		vacuum    bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old runs",
		Long: `Delete runs older than --older-than. Defaults to the configured
history.retention_days.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("older-than") {
				olderThan = app.cfg.Retention()
			}
			if olderThan <= 0 {
				return bfierror.New("retention must be positive").
					WithCode(bfierror.CodeInvalidInput).
					WithDetail("older_than", olderThan.String())
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			deleted, err := store.Prune(ctx, olderThan)
			if err != nil {
				return err
			}
			if vacuum {
				if err := store.Vacuum(ctx); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d runs older than %s\n", deleted, olderThan)
			return nil
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "delete runs older than this duration")
	cmd.Flags().BoolVar(&vacuum, "vacuum", false, "compact the database afterwards")
	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
