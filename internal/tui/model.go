// Package tui provides the terminal user interface for clockcalc.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/config"
	"github.com/javiermolinar/clockcalc/internal/db"
	"github.com/javiermolinar/clockcalc/internal/history"
	"github.com/javiermolinar/clockcalc/internal/tui/commands"
	"github.com/javiermolinar/clockcalc/internal/tui/theme"
)

// statusTTL is how long a status message stays visible.
const statusTTL = 3 * time.Second

// noRecall means the input holds the user's own draft.
const noRecall = -1

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   history.Repository // nil when history is disabled
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Components
	input textinput.Model

	// Last evaluation shown under the input
	result    clock.Result
	hasResult bool

	// Recent evaluations, newest first
	history []*history.Entry
	recall  int    // index into history while browsing with up/down
	draft   string // input saved when browsing starts

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When the message was set

	now func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model. The configured default expression is
// placed in the input and evaluated once so the first frame shows a result.
func New(repo history.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.Placeholder = "2pm + 3:30"
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.PromptStyle = styles.InputTextStyle.Foreground(styles.colorAccent)
	ti.TextStyle = styles.InputTextStyle
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.Cursor.TextStyle = styles.InputTextStyle
	ti.Focus()

	if !cfg.History.Enabled {
		repo = nil
	}

	m := &Model{
		repo:   repo,
		config: cfg,
		theme:  t,
		styles: styles,
		input:  ti,
		recall: noRecall,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	if expr := cfg.Calculator.DefaultExpression; expr != "" {
		m.input.SetValue(expr)
		m.input.CursorEnd()
		m.result = clock.Evaluate(expr)
		m.hasResult = true
		LogEvaluation(m.result, "startup")
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, commands.LoadHistory(m.repo, m.config.History.Limit))
}

// RunWithDebug starts the TUI with optional debug logging.
// When repo is nil and history is enabled, the configured database is opened.
func RunWithDebug(repo history.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	if repo == nil && cfg.History.Enabled {
		opened, err := db.Open(cfg.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
		defer func() { _ = opened.Close() }()
		repo = opened
	}

	p := tea.NewProgram(New(repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
