package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultLMStudioBaseURL = "http://localhost:1234/v1"

// lmStudioKeyEnv lists the variables checked for an API key, in order.
// LM Studio accepts any key unless authentication is turned on.
var lmStudioKeyEnv = []string{"CLOCKCALC_LLM_API_KEY", "LMSTUDIO_API_KEY", "OPENAI_API_KEY"}

// LMStudioClient implements the Client interface using LM Studio's OpenAI-compatible API.
type LMStudioClient struct {
	client  openai.Client
	model   string
	baseURL string
}

// NewLMStudioClient creates a new LM Studio client.
func NewLMStudioClient(model, baseURL string) (*LMStudioClient, error) {
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("lm studio model is required")
	}
	if baseURL == "" {
		baseURL = defaultLMStudioBaseURL
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(lmStudioAPIKey()),
	)

	return &LMStudioClient{
		client:  client,
		model:   model,
		baseURL: baseURL,
	}, nil
}

func lmStudioAPIKey() string {
	for _, name := range lmStudioKeyEnv {
		if key := os.Getenv(name); key != "" {
			return key
		}
	}
	return "lm-studio"
}

// Chat sends messages to the LLM and returns the response.
func (c *LMStudioClient) Chat(ctx context.Context, messages []Message) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, completionParams(c.model, messages))
	if err != nil {
		return "", fmt.Errorf("lm studio chat completion: %w", err)
	}
	return firstContent(resp)
}

// ChatJSON sends messages and parses the response as JSON into the provided type.
func (c *LMStudioClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := c.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return decodeJSON(content, result)
}
