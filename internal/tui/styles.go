package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/clockcalc/internal/tui/theme"
	"github.com/javiermolinar/clockcalc/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color

	TitleStyle lipgloss.Style

	// Expression input box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	InputTextStyle     lipgloss.Style
	PlaceholderStyle   lipgloss.Style

	// Result line, one per outcome kind
	ResultOKStyle    lipgloss.Style
	ResultErrorStyle lipgloss.Style
	ResultLogicStyle lipgloss.Style
	ResultLabelStyle lipgloss.Style

	// History panel
	SectionTitleStyle lipgloss.Style
	History           view.HistoryStyles

	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style

	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.FgMuted).
		BorderBackground(palette.Bg).
		Background(palette.Bg).
		Padding(0, 1)

	s.PromptFocusedStyle = s.PromptStyle.
		BorderForeground(palette.Accent)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	result := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	s.ResultOKStyle = result.
		Foreground(palette.Success).
		Background(palette.SuccessBg)

	// Parse and value errors
	s.ResultErrorStyle = result.
		Foreground(palette.Error).
		Background(palette.ErrorBg)

	s.ResultLogicStyle = result.
		Foreground(palette.Warning).
		Background(palette.WarningBg)

	s.ResultLabelStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.SectionTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.History = view.HistoryStyles{
		Input:  lipgloss.NewStyle().Foreground(palette.Fg).Background(palette.Bg),
		Arrow:  lipgloss.NewStyle().Foreground(palette.FgMuted).Background(palette.Bg),
		Output: lipgloss.NewStyle().Foreground(palette.Success).Background(palette.Bg),
		Error:  lipgloss.NewStyle().Foreground(palette.Error).Background(palette.Bg),
		Empty:  lipgloss.NewStyle().Italic(true).Foreground(palette.FgMuted).Background(palette.Bg),
	}

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.Bg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.AppStyle = lipgloss.NewStyle().
		Background(palette.Bg).
		Padding(1, 2)

	return s
}
