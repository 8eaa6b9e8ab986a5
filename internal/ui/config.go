package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/config"
	"github.com/javiermolinar/clockcalc/internal/llm"
	"github.com/javiermolinar/clockcalc/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  clockcalc config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(os.Stdout, cfg)

	reader := bufio.NewReader(os.Stdin)
	if !promptYesNo(reader, "\nWould you like to edit the configuration?") {
		return nil
	}

	editConfig(reader, cfg)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

// editConfig prompts for every setting, keeping the current value on empty input.
func editConfig(reader *bufio.Reader, cfg *config.Config) {
	cfg.Calculator.DefaultExpression = promptExpression(reader, cfg.Calculator.DefaultExpression)
	cfg.History.Enabled = promptBool(reader, "Record history", cfg.History.Enabled)
	cfg.History.Limit = promptInt(reader, "History entries to show", cfg.History.Limit)
	cfg.LLM.Provider = promptProvider(reader, cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL (Ollama/LM Studio)", cfg.LLM.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.UI.Color = promptBool(reader, "Color output", cfg.UI.Color)
}

func printConfig(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, "Current configuration:")
	_, _ = fmt.Fprintln(w, "──────────────────────")
	_, _ = fmt.Fprintln(w, "[calculator]")
	_, _ = fmt.Fprintf(w, "  default_expression = %s\n", cfg.Calculator.DefaultExpression)
	_, _ = fmt.Fprintln(w, "\n[history]")
	_, _ = fmt.Fprintf(w, "  enabled            = %t\n", cfg.History.Enabled)
	_, _ = fmt.Fprintf(w, "  limit              = %d\n", cfg.History.Limit)
	_, _ = fmt.Fprintln(w, "\n[llm]")
	_, _ = fmt.Fprintf(w, "  provider           = %s\n", cfg.LLM.Provider)
	_, _ = fmt.Fprintf(w, "  model              = %s\n", cfg.LLM.Model)
	_, _ = fmt.Fprintf(w, "  base_url           = %s\n", cfg.LLM.BaseURL)
	_, _ = fmt.Fprintln(w, "\n[storage]")
	_, _ = fmt.Fprintf(w, "  db_path            = %s\n", cfg.Storage.DBPath)
	_, _ = fmt.Fprintln(w, "\n[ui]")
	_, _ = fmt.Fprintf(w, "  theme              = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(w, "  color              = %t\n", cfg.UI.Color)
}

func promptYesNo(reader *bufio.Reader, question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	for {
		value := strings.ToLower(promptValue(reader, label+" (true/false)", strconv.FormatBool(current)))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Printf("  Invalid value %q. Use true or false\n", value)
	}
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil && n > 0 {
			return n
		}
		fmt.Printf("  Invalid value %q. Must be a positive number\n", value)
	}
}

func promptExpression(reader *bufio.Reader, current string) string {
	for {
		value := promptValue(reader, "Default expression", current)
		if _, err := clock.Match(value); err == nil {
			return value
		}
		fmt.Printf("  Invalid expression %q. Example: 3pm+5\n", value)
	}
}

func promptProvider(reader *bufio.Reader, current string) string {
	options := strings.Join(llm.Providers(), ", ")
	label := fmt.Sprintf("LLM provider (%s)", options)
	for {
		name, err := llm.NormalizeProvider(promptValue(reader, label, current))
		if err == nil {
			return name
		}
		fmt.Printf("  %v. Available: %s\n", err, options)
	}
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
