package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
)

// A translation is one short JSON object; sampling is kept deterministic so
// the same question maps to the same expression.
const (
	replyTemperature = 0.0
	replyTokenLimit  = 256
)

var errNoChoices = errors.New("no response choices returned")

// toOpenAIMessages converts messages for OpenAI-compatible endpoints.
func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, len(messages))
	for i, msg := range messages {
		switch strings.ToLower(msg.Role) {
		case RoleSystem:
			out[i] = openai.SystemMessage(msg.Content)
		case RoleAssistant:
			out[i] = openai.AssistantMessage(msg.Content)
		default:
			out[i] = openai.UserMessage(msg.Content)
		}
	}
	return out
}

// completionParams builds a chat request for model.
func completionParams(model string, messages []Message) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model:       model,
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(replyTemperature),
		MaxTokens:   openai.Int(replyTokenLimit),
	}
}

// firstContent returns the text of the first choice.
func firstContent(resp *openai.ChatCompletion) (string, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return "", errNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}

// decodeJSON parses the JSON payload of a model reply into result.
func decodeJSON(content string, result any) error {
	if err := json.Unmarshal([]byte(extractJSON(content)), result); err != nil {
		return fmt.Errorf("parsing JSON response: %w (content: %s)", err, content)
	}
	return nil
}

// extractJSON returns the JSON part of a reply that may be wrapped in a
// markdown code fence or surrounded by prose.
func extractJSON(s string) string {
	for _, fence := range []string{"```json", "```"} {
		if body, ok := fencedBlock(s, fence); ok {
			return body
		}
	}
	if obj, ok := firstBalanced(s); ok {
		return obj
	}
	return s
}

// fencedBlock returns the content between fence and the next closing ```.
func fencedBlock(s, fence string) (string, bool) {
	idx := strings.Index(s, fence)
	if idx == -1 {
		return "", false
	}
	rest := strings.TrimLeft(s[idx+len(fence):], "\r\n")
	end := strings.Index(rest, "```")
	if end == -1 {
		return "", false
	}
	return strings.TrimRight(rest[:end], "\r\n"), true
}

// firstBalanced returns the first {...} or [...] span with balanced brackets.
func firstBalanced(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start == -1 {
		return "", false
	}
	depth := 0
	for j := start; j < len(s); j++ {
		switch s[j] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return s[start : j+1], true
			}
		}
	}
	return "", false
}
