// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/llm"
	"github.com/javiermolinar/clockcalc/internal/tui/theme"
)

// DefaultExpression is evaluated once when the interactive mode starts.
const DefaultExpression = "3pm+5"

// Config holds the application configuration.
type Config struct {
	Calculator CalculatorConfig `toml:"calculator"`
	History    HistoryConfig    `toml:"history"`
	LLM        LLMConfig        `toml:"llm"`
	Storage    StorageConfig    `toml:"storage"`
	UI         UIConfig         `toml:"ui"`
}

// CalculatorConfig holds evaluation settings.
type CalculatorConfig struct {
	DefaultExpression string `toml:"default_expression"` // e.g., "3pm+5"
}

// HistoryConfig holds evaluation history settings.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit"` // entries shown by default
}

// LLMConfig holds LLM provider settings.
type LLMConfig struct {
	Provider string `toml:"provider"` // "copilot", "ollama", "lmstudio"
	Model    string `toml:"model"`    // e.g., "gpt-4o"
	BaseURL  string `toml:"base_url"` // e.g., "http://localhost:11434"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds output settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
	Color bool   `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calculator: CalculatorConfig{
			DefaultExpression: DefaultExpression,
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
		LLM: LLMConfig{
			Provider: llm.ProviderCopilot,
			Model:    llm.DefaultModel,
			BaseURL:  "http://localhost:11434",
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
			Color: true,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clockcalc.db"
	}
	return filepath.Join(home, ".local", "share", "clockcalc", "clockcalc.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "clockcalc", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config. Malformed
// boolean or integer values are ignored.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CLOCKCALC_DEFAULT_EXPRESSION"); v != "" {
		cfg.Calculator.DefaultExpression = v
	}

	if v := os.Getenv("CLOCKCALC_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = b
		}
	}
	if v := os.Getenv("CLOCKCALC_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.Limit = n
		}
	}

	if v := os.Getenv("CLOCKCALC_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("CLOCKCALC_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("CLOCKCALC_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("CLOCKCALC_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("CLOCKCALC_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("CLOCKCALC_UI_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.Color = b
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Calculator.DefaultExpression) == "" {
		return errors.New("default_expression must be set")
	}
	if _, err := clock.Match(c.Calculator.DefaultExpression); err != nil {
		return fmt.Errorf("default_expression %q is not a valid expression", c.Calculator.DefaultExpression)
	}
	if c.History.Limit <= 0 {
		return errors.New("history limit must be greater than zero")
	}
	if _, err := llm.NormalizeProvider(c.LLM.Provider); err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(llm.Providers(), ", "))
	}
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme %q (available: %s)", c.UI.Theme, strings.Join(theme.Available(), ", "))
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
