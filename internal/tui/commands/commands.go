// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/history"
)

// HistoryLoadedMsg is sent when recent evaluations are loaded.
type HistoryLoadedMsg struct {
	Entries []*history.Entry
}

// HistoryRecordedMsg is sent after an evaluation has been stored.
type HistoryRecordedMsg struct {
	Entry *history.Entry
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

var defaultClipboardWrite = clipboard.WriteAll

// clipboardWrite is replaced in tests.
var clipboardWrite = defaultClipboardWrite

// LoadHistory loads up to limit recent evaluations.
func LoadHistory(repo history.Repository, limit int) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return HistoryLoadedMsg{}
		}
		entries, err := repo.ListRecent(context.Background(), limit)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading history: %w", err)}
		}
		return HistoryLoadedMsg{Entries: entries}
	}
}

// RecordEvaluation stores res in repo. Blank inputs produce no message.
func RecordEvaluation(repo history.Repository, res clock.Result, now func() time.Time) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		entry, err := history.FromResult(res, now())
		if err != nil {
			return nil
		}
		if err := repo.AddEntry(context.Background(), entry); err != nil {
			return ErrMsg{Err: fmt.Errorf("recording evaluation: %w", err)}
		}
		return HistoryRecordedMsg{Entry: entry}
	}
}

// CopyResult copies text to the system clipboard.
func CopyResult(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: "Nothing to copy"}
		}
		if err := clipboardWrite(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + text}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
