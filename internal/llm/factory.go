package llm

import (
	"fmt"
	"strings"
)

const (
	ProviderCopilot  = "copilot"
	ProviderOllama   = "ollama"
	ProviderLMStudio = "lmstudio"
)

// providerAliases maps accepted spellings to a canonical provider name.
var providerAliases = map[string]string{
	"":               ProviderCopilot,
	ProviderCopilot:  ProviderCopilot,
	"github-copilot": ProviderCopilot,
	ProviderOllama:   ProviderOllama,
	ProviderLMStudio: ProviderLMStudio,
	"lm-studio":      ProviderLMStudio,
	"llmstudio":      ProviderLMStudio,
}

// Providers returns the canonical provider names.
func Providers() []string {
	return []string{ProviderCopilot, ProviderOllama, ProviderLMStudio}
}

// NormalizeProvider returns the canonical name for provider.
// An empty provider means Copilot.
func NormalizeProvider(provider string) (string, error) {
	name, ok := providerAliases[strings.ToLower(strings.TrimSpace(provider))]
	if !ok {
		return "", fmt.Errorf("unsupported LLM provider: %s", provider)
	}
	return name, nil
}

// NewClient creates an LLM client based on provider configuration.
func NewClient(provider, model, baseURL string) (Client, error) {
	name, err := NormalizeProvider(provider)
	if err != nil {
		return nil, err
	}
	switch name {
	case ProviderOllama:
		return NewOllamaClient(model, baseURL)
	case ProviderLMStudio:
		return NewLMStudioClient(model, baseURL)
	default:
		return NewCopilotClient(model)
	}
}
