package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// sampleExpressions mixes sums and spans with inputs that are rejected.
var sampleExpressions = []string{
	"2pm+3:30",
	"1:30pm+6:45am",
	"3:pm+6:45am",
	"1+:45am",
	"12AM-12PM",
	"16:30 + 17",
	"12pm - 3pm",
	"4:30am + 7:15AM",
	"6 - 7:30",
	"0:00 + 00:pm",
	":45 - :15pm",
	"16pm + 22am",
}

func (a *App) examplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Evaluate a set of sample expressions",
		Long: `Evaluate a fixed list of sample expressions and print each result.

Some inputs are rejected on purpose.
Examples are not recorded in the history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			results := make([]clock.Result, 0, len(sampleExpressions))
			for _, expr := range sampleExpressions {
				results = append(results, clock.Evaluate(expr))
			}

			if a.jsonOut {
				out := make([]jsonResult, 0, len(results))
				for _, res := range results {
					out = append(out, toJSONResult(res))
				}
				return writeJSON(w, out)
			}

			inputW := 0
			for _, expr := range sampleExpressions {
				if len(expr) > inputW {
					inputW = len(expr)
				}
			}
			for i, res := range results {
				line := fmt.Sprintf("%s %-*s → %s", formatMuted(fmt.Sprintf("%2d.", i+1)), inputW, res.Input, formatResult(res))
				_, _ = fmt.Fprintln(w, fitWidth(line, termWidth()))
			}
			return nil
		},
	}
}
