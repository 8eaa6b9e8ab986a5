package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/clockcalc/internal/llm"
)

// maxRetries is how many times an unusable reply is sent back to the model.
const maxRetries = 2

func (a *App) askCmd() *cobra.Command {
	var modelFlag string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Answer a time question written in plain language",
		Long: `Use an LLM to rewrite a question as a clock expression, then evaluate it.

The model only produces the expression; the answer is always computed
locally, so it is exactly what 'clockcalc <expression>' would print.

Examples:
  clockcalc ask "what time is it 3 and a half hours after 2pm?"
  clockcalc ask "how long from 9:15am to 5pm"
  clockcalc ask "45 minutes after half past ten at night" --model gpt-4o`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")

			// Use config default for model if not overridden
			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}

			client, err := a.newClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}

			tr, res, err := llm.NewTranslator(client).WithClock(a.now).WithRetries(maxRetries).Ask(context.Background(), question)
			if err != nil {
				return fmt.Errorf("asking: %w", err)
			}

			if err := a.record(res); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if a.jsonOut {
				return a.printResult(w, res)
			}

			_, _ = fmt.Fprintf(w, "%s %s\n", formatMuted("Expression:"), formatHeader(tr.Expression))
			if tr.Explanation != "" {
				_, _ = fmt.Fprintf(w, "%s %s\n", formatMuted("Reading:   "), tr.Explanation)
			}
			return a.printResult(w, res)
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (overrides config)")
	return cmd
}
