// Package ui provides the clockcalc command line interface.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/clockcalc/internal/config"
	"github.com/javiermolinar/clockcalc/internal/db"
	"github.com/javiermolinar/clockcalc/internal/history"
	"github.com/javiermolinar/clockcalc/internal/llm"
	"github.com/javiermolinar/clockcalc/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   history.Repository
	owned  bool // repo was opened by the app and must be closed
	config *config.Config
	root   *cobra.Command

	debug     bool // Enable debug logging
	jsonOut   bool
	noColor   bool
	noHistory bool

	now       func() time.Time
	newClient func(provider, model, baseURL string) (llm.Client, error)
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo history.Repository, cfg *config.Config) *App {
	a := &App{
		repo:      repo,
		config:    cfg,
		now:       time.Now,
		newClient: llm.NewClient,
	}

	a.root = &cobra.Command{
		Use:   "clockcalc [expression...]",
		Short: "Add and subtract clock times",
		Long: `Clockcalc evaluates clock-time expressions such as "2pm + 3:30" or "12am - 12pm".

An expression is TIME [am|pm] (+|-) TIME [am|pm], where TIME is H, H:M, H: or :M.
Addition answers "what time will it be"; subtraction answers "how long between".
Without arguments an interactive calculator is started.`,
		Example: `  clockcalc 2pm + 3:30
  clockcalc "16:30 + 17"
  clockcalc --json 12am-12pm
  clockcalc 6 - 7:30`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor || !a.config.UI.Color {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runInteractive()
			}
			return a.evaluate(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging for the interactive mode")
	a.root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "Print results as JSON")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.root.PersistentFlags().BoolVar(&a.noHistory, "no-history", false, "Do not record evaluations")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.askCmd())
	a.root.AddCommand(a.examplesCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "clockcalc %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if a.owned && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		a.owned = false
		return err
	}
	return nil
}

// recording reports whether evaluations should be stored.
func (a *App) recording() bool {
	return a.config.History.Enabled && !a.noHistory
}

// ensureRepo opens the history database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.owned = true
	return nil
}

func (a *App) runInteractive() error {
	cfg := *a.config
	if a.noHistory {
		cfg.History.Enabled = false
	}
	// A nil repo lets the TUI open and close the database itself.
	return tui.RunWithDebug(a.repo, &cfg, a.debug)
}
