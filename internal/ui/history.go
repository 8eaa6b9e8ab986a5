package ui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/history"
)

// kindOrder is the display order for per-kind counts.
var kindOrder = []clock.Kind{clock.KindOK, clock.KindParse, clock.KindValue, clock.KindLogic}

// historyEntryJSON is the --json rendering of a stored evaluation.
type historyEntryJSON struct {
	ID        int64     `json:"id"`
	Input     string    `json:"input"`
	Output    string    `json:"output"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *App) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent evaluations",
		Long: `List recently evaluated expressions, newest first.

Both successful results and errors are recorded. Use --limit to change
how many entries are shown (defaults to [history] limit in the config).`,
		Example: `  clockcalc history
  clockcalc history --limit 5
  clockcalc history clear`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				limit = a.config.History.Limit
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := context.Background()
			entries, err := a.repo.ListRecent(ctx, limit)
			if err != nil {
				return fmt.Errorf("listing history: %w", err)
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return writeJSON(w, historyJSON(entries))
			}

			if len(entries) == 0 {
				_, _ = fmt.Fprintln(w, "No evaluations recorded yet.")
				return nil
			}

			counts, err := a.repo.CountByKind(ctx)
			if err != nil {
				return fmt.Errorf("counting history: %w", err)
			}

			printHistory(w, entries, termWidth())
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, formatMuted(summarizeCounts(counts)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to show")
	cmd.AddCommand(a.historyClearCmd())
	return cmd
}

func (a *App) historyClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			n, err := a.repo.Clear(context.Background())
			if err != nil {
				return fmt.Errorf("clearing history: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d %s.\n", n, pluralize(int(n), "evaluation"))
			return nil
		},
	}
}

// printHistory prints one line per entry, aligned on the input column.
func printHistory(w io.Writer, entries []*history.Entry, width int) {
	inputW := 0
	for _, e := range entries {
		if n := len(e.Input); n > inputW {
			inputW = n
		}
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-*s → %s",
			formatMuted(e.CreatedAt.Local().Format("2006-01-02 15:04")),
			inputW,
			e.Input,
			formatKind(e.Kind, e.Output),
		)
		_, _ = fmt.Fprintln(w, fitWidth(line, width))
	}
}

// summarizeCounts renders e.g. "12 evaluations: 10 ok, 2 parse".
func summarizeCounts(counts map[clock.Kind]int) string {
	total := 0
	var parts []string
	for _, k := range kindOrder {
		n := counts[k]
		total += n
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, k))
		}
	}
	if total == 0 {
		return "0 evaluations"
	}
	return fmt.Sprintf("%d %s: %s", total, pluralize(total, "evaluation"), strings.Join(parts, ", "))
}

func historyJSON(entries []*history.Entry) []historyEntryJSON {
	out := make([]historyEntryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryJSON{
			ID:        e.ID,
			Input:     e.Input,
			Output:    e.Output,
			Kind:      string(e.Kind),
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
