package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/clockcalc/internal/history"
	"github.com/javiermolinar/clockcalc/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		LogKeyPress(msg)
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.inputWidth()
		return m, nil

	case commands.HistoryLoadedMsg:
		m.history = msg.Entries
		m.recall = noRecall
		return m, nil

	case commands.HistoryRecordedMsg:
		m.history = prependEntry(m.history, msg.Entry, m.config.History.Limit)
		return m, nil

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m.setStatus(fmt.Sprintf("Error: %v", msg.Err))

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if m.statusMsg != "" && m.now().Sub(m.statusTime) >= statusTTL {
			m.statusMsg = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// setStatus shows msg and schedules its removal.
func (m Model) setStatus(msg string) (tea.Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusTime = m.now()
	return m, commands.ClearStatusAfter(statusTTL)
}

// prependEntry adds e to the front of entries, keeping at most limit.
func prependEntry(entries []*history.Entry, e *history.Entry, limit int) []*history.Entry {
	out := make([]*history.Entry, 0, len(entries)+1)
	out = append(out, e)
	out = append(out, entries...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
