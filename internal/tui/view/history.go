package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HistoryRow is one evaluation shown in the history panel.
type HistoryRow struct {
	Input  string
	Output string
	OK     bool
}

// HistoryStyles styles the parts of a history row.
type HistoryStyles struct {
	Input  lipgloss.Style
	Arrow  lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Empty  lipgloss.Style
}

// HistoryLines renders at most maxRows rows, each fitted to width.
func HistoryLines(rows []HistoryRow, width, maxRows int, styles HistoryStyles) []string {
	if maxRows <= 0 || width <= 0 {
		return nil
	}
	if len(rows) == 0 {
		return []string{Fit(styles.Empty.Render("No evaluations yet"), width)}
	}

	inputW := 0
	for _, r := range rows {
		if w := lipgloss.Width(r.Input); w > inputW {
			inputW = w
		}
	}
	// Long inputs must not push the output off screen.
	if limit := width / 2; inputW > limit {
		inputW = limit
	}

	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		input := Fit(r.Input, inputW)
		input += strings.Repeat(" ", inputW-lipgloss.Width(input))
		out := styles.Output.Render(r.Output)
		if !r.OK {
			out = styles.Error.Render(r.Output)
		}
		line := fmt.Sprintf("%s %s %s", styles.Input.Render(input), styles.Arrow.Render("→"), out)
		lines = append(lines, Fit(line, width))
	}
	return lines
}
