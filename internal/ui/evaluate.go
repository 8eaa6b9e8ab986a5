package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/history"
)

// jsonResult is the --json rendering of one evaluation.
type jsonResult struct {
	Input  string `json:"input"`
	OK     bool   `json:"ok"`
	Kind   string `json:"kind"`
	Output string `json:"output"`
}

// evaluate computes input, records it and prints the outcome.
// Evaluation errors are output, not failures: only storage errors are returned.
func (a *App) evaluate(w io.Writer, input string) error {
	res := clock.Evaluate(input)
	if err := a.record(res); err != nil {
		return err
	}
	return a.printResult(w, res)
}

func (a *App) record(res clock.Result) error {
	if !a.recording() {
		return nil
	}
	if err := a.ensureRepo(); err != nil {
		return err
	}
	if err := history.Record(context.Background(), a.repo, res, a.now); err != nil {
		return fmt.Errorf("recording evaluation: %w", err)
	}
	return nil
}

func (a *App) printResult(w io.Writer, res clock.Result) error {
	if a.jsonOut {
		return writeJSON(w, toJSONResult(res))
	}
	_, err := fmt.Fprintln(w, formatResult(res))
	return err
}

func toJSONResult(res clock.Result) jsonResult {
	return jsonResult{
		Input:  res.Input,
		OK:     res.OK(),
		Kind:   string(res.Kind()),
		Output: res.String(),
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
