package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/tui/commands"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.handleEnter()

	case "ctrl+y":
		return m.handleCopy()

	case "ctrl+l":
		m.input.SetValue("")
		m.result = clock.Result{}
		m.hasResult = false
		m.recall = noRecall
		return m, nil

	case "up":
		return m.recallOlder(), nil

	case "down":
		return m.recallNewer(), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recall = noRecall
	return m, cmd
}

// handleEnter evaluates the input and records the outcome.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	m.result = clock.Evaluate(m.input.Value())
	m.hasResult = true
	m.recall = noRecall
	LogEvaluation(m.result, "input")

	return m, commands.RecordEvaluation(m.repo, m.result, m.now)
}

// handleCopy copies the last successful result to the clipboard.
func (m Model) handleCopy() (tea.Model, tea.Cmd) {
	text := ""
	if m.hasResult && m.result.OK() {
		text = m.result.Value
	}
	return m, commands.CopyResult(text)
}

// recallOlder replaces the input with the previous history entry.
func (m Model) recallOlder() Model {
	if m.recall+1 >= len(m.history) {
		return m
	}
	if m.recall == noRecall {
		m.draft = m.input.Value()
	}
	m.recall++
	m.setInput(m.history[m.recall].Input)
	LogHistoryRecall(m.recall, m.input.Value())
	return m
}

// recallNewer moves back toward the draft the user was typing.
func (m Model) recallNewer() Model {
	if m.recall == noRecall {
		return m
	}
	m.recall--
	if m.recall == noRecall {
		m.setInput(m.draft)
	} else {
		m.setInput(m.history[m.recall].Input)
	}
	LogHistoryRecall(m.recall, m.input.Value())
	return m
}

func (m *Model) setInput(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
}
