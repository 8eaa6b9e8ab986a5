package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// tokenEnv lists the variables checked for a GitHub token, in order.
var tokenEnv = []string{"CLOCKCALC_GITHUB_TOKEN", "GITHUB_TOKEN", "GH_TOKEN"}

// copilotTokenFiles are the editor plugin files that may hold an oauth_token.
var copilotTokenFiles = []string{"hosts.json", "apps.json"}

// LoadGitHubToken loads the GitHub OAuth token used for Copilot.
// Environment variables win over the files written by Copilot editor plugins.
func LoadGitHubToken() (string, error) {
	for _, name := range tokenEnv {
		if token := os.Getenv(name); token != "" {
			return token, nil
		}
	}

	configDir, err := getConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	for _, name := range copilotTokenFiles {
		token, err := loadTokenFromFile(filepath.Join(configDir, "github-copilot", name))
		if err == nil && token != "" {
			return token, nil
		}
	}

	return "", fmt.Errorf("GitHub token not found: set %s or sign in to GitHub Copilot in your editor", strings.Join(tokenEnv, ", "))
}

// getConfigDir returns the user's config directory based on OS.
func getConfigDir() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if runtime.GOOS == "windows" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return localAppData, nil
		}
		return filepath.Join(home, "AppData", "Local"), nil
	}

	return filepath.Join(home, ".config"), nil
}

// loadTokenFromFile reads a Copilot plugin file and returns the github.com oauth_token.
func loadTokenFromFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	var hosts map[string]struct {
		OAuthToken string `json:"oauth_token"`
	}
	if err := json.Unmarshal(data, &hosts); err != nil {
		return "", fmt.Errorf("parsing %s: %w", filePath, err)
	}

	for key, host := range hosts {
		if strings.Contains(key, "github.com") && host.OAuthToken != "" {
			return host.OAuthToken, nil
		}
	}

	return "", fmt.Errorf("oauth_token not found in %s", filePath)
}
