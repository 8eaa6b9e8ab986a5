package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/tui/view"
)

const (
	appPadX = 2
	appPadY = 1

	footerHeight = 2

	// title, blank, prompt box (3), blank, result, blank, history title
	chromeLines = 9
)

const helpText = "enter evaluate • ↑/↓ history • ctrl+y copy • ctrl+l clear • esc quit"

// View renders the TUI.
func (m Model) View() string {
	return view.Render(view.ViewState{
		Width:            m.width,
		Height:           m.height,
		Content:          m.renderAppContent(),
		EmptyPlaceholder: "Loading...",
	})
}

func (m Model) innerSize() (int, int) {
	return m.width - 2*appPadX, m.height - 2*appPadY
}

// inputWidth is the text area width inside the bordered prompt box.
func (m Model) inputWidth() int {
	innerW, _ := m.innerSize()
	w := innerW - 4 - lipgloss.Width(m.input.Prompt) - 1
	if w < 1 {
		return 1
	}
	return w
}

func (m Model) renderAppContent() string {
	innerW, innerH := m.innerSize()
	if innerW <= 0 || innerH <= footerHeight+chromeLines {
		return "Terminal too small"
	}
	bodyH := innerH - footerHeight

	body := []string{
		m.styles.TitleStyle.Render("clockcalc"),
		"",
		m.styles.PromptFocusedStyle.Width(innerW - 2).Render(m.input.View()),
		"",
		m.renderResult(innerW),
		"",
		m.styles.SectionTitleStyle.Render("History"),
	}
	body = append(body, view.HistoryLines(m.historyRows(), innerW, bodyH-chromeLines, m.styles.History)...)

	bodyBox := view.PlaceBox(innerW, bodyH, lipgloss.Top, strings.Join(body, "\n"), m.styles.colorBg)
	footerBox := view.RenderFooter(view.FooterViewState{
		InnerW:     innerW,
		FooterH:    footerHeight,
		StatusLine: m.styles.StatusStyle.Render(m.statusMsg),
		HelpLine:   m.styles.HelpStyle.Render(helpText),
		VAlign:     lipgloss.Bottom,
		Bg:         m.styles.colorBg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, bodyBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// renderResult renders the last evaluation, styled by outcome.
func (m Model) renderResult(width int) string {
	if !m.hasResult {
		return view.Fit(m.styles.ResultLabelStyle.Render("Type an expression and press enter"), width)
	}

	var style lipgloss.Style
	switch m.result.Kind() {
	case clock.KindOK:
		style = m.styles.ResultOKStyle
	case clock.KindLogic:
		style = m.styles.ResultLogicStyle
	default:
		style = m.styles.ResultErrorStyle
	}

	line := style.Render(m.result.String())
	if m.result.OK() {
		line += m.styles.ResultLabelStyle.Render(" " + normalizedLabel(m.result))
	}
	return view.Fit(line, width)
}

// normalizedLabel shows both components on the 24-hour clock, e.g. "(14:00 + 03:30)".
func normalizedLabel(res clock.Result) string {
	return fmt.Sprintf("(%s %s %s)", res.Times[0], res.Groups.Operator, res.Times[1])
}

func (m Model) historyRows() []view.HistoryRow {
	rows := make([]view.HistoryRow, 0, len(m.history))
	for _, e := range m.history {
		rows = append(rows, view.HistoryRow{
			Input:  e.Input,
			Output: e.Output,
			OK:     e.OK(),
		})
	}
	return rows
}
