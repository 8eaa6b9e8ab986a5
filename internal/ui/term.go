package ui

import (
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// Color definitions for consistent styling across the UI.
var (
	// Results: bold green
	colorResult = color.New(color.FgGreen, color.Bold)

	// Parse and range errors: red
	colorError = color.New(color.FgRed)

	// Logic errors: yellow, the input was well formed but meaningless
	colorLogic = color.New(color.FgYellow)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatResult colors res by outcome.
func formatResult(res clock.Result) string {
	return formatKind(res.Kind(), res.String())
}

// formatKind colors s for an outcome of kind k.
func formatKind(k clock.Kind, s string) string {
	switch k {
	case clock.KindOK:
		return colorResult.Sprint(s)
	case clock.KindLogic:
		return colorLogic.Sprint(s)
	default:
		return colorError.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

// fitWidth truncates a possibly colored line to width cells.
func fitWidth(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
