package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// fakeClient replies with a canned response and records the messages it saw.
type fakeClient struct {
	reply    string
	err      error
	messages []Message
}

func (f *fakeClient) Chat(_ context.Context, messages []Message) (string, error) {
	f.messages = messages
	return f.reply, f.err
}

func (f *fakeClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := f.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(extractJSON(content)), result)
}

func TestTranslate(t *testing.T) {
	client := &fakeClient{reply: "```json\n{\"expression\": \"2pm+3:30\", \"explanation\": \"Add three and a half hours\"}\n```"}
	tr := NewTranslator(client)

	got, err := tr.Translate(context.Background(), "three and a half hours after 2pm")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got.Expression != "2pm+3:30" {
		t.Errorf("Expression = %q, want %q", got.Expression, "2pm+3:30")
	}
	if got.Explanation != "Add three and a half hours" {
		t.Errorf("Explanation = %q", got.Explanation)
	}
}

func TestTranslate_PromptIncludesCurrentTime(t *testing.T) {
	client := &fakeClient{reply: `{"expression": "9:10+:45"}`}
	tr := NewTranslator(client).WithClock(func() time.Time {
		return time.Date(2025, 1, 9, 9, 10, 0, 0, time.UTC)
	})

	if _, err := tr.Translate(context.Background(), "45 minutes from now"); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if len(client.messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(client.messages))
	}
	if !strings.Contains(client.messages[0].Content, "09:10") {
		t.Error("system prompt should include the current time")
	}
	if client.messages[1].Role != RoleUser || client.messages[1].Content != "45 minutes from now" {
		t.Errorf("user message = %+v", client.messages[1])
	}
	if strings.Contains(client.messages[0].Content, "45 minutes from now") {
		t.Error("question should only be sent as the user message")
	}
	if strings.Contains(client.messages[0].Content, "%!") {
		t.Errorf("system prompt has a formatting error: %q", client.messages[0].Content)
	}
}

func TestTranslate_InvalidExpression(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "empty expression", reply: `{"expression": ""}`},
		{name: "not the grammar", reply: `{"expression": "2pm plus 3 hours"}`},
		{name: "two operators", reply: `{"expression": "1+2+3"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranslator(&fakeClient{reply: tt.reply})
			_, err := tr.Translate(context.Background(), "question")
			if !errors.Is(err, ErrNoExpression) {
				t.Errorf("expected ErrNoExpression, got %v", err)
			}
		})
	}
}

func TestTranslate_EmptyQuestion(t *testing.T) {
	client := &fakeClient{}
	if _, err := NewTranslator(client).Translate(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty question")
	}
	if client.messages != nil {
		t.Error("client should not be called for an empty question")
	}
}

func TestTranslate_ClientError(t *testing.T) {
	boom := errors.New("connection refused")
	tr := NewTranslator(&fakeClient{err: boom})

	_, err := tr.Translate(context.Background(), "noon until 3pm")
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped client error, got %v", err)
	}
}

func TestAsk(t *testing.T) {
	tr := NewTranslator(&fakeClient{reply: `{"expression": "12pm-3pm"}`})

	translation, res, err := tr.Ask(context.Background(), "how long from noon until 3pm")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if translation.Expression != "12pm-3pm" {
		t.Errorf("Expression = %q", translation.Expression)
	}
	if res.String() != "3 hours and 0 minutes" {
		t.Errorf("result = %q, want %q", res.String(), "3 hours and 0 minutes")
	}
}

func TestAsk_SemanticErrorIsAResult(t *testing.T) {
	tr := NewTranslator(&fakeClient{reply: `{"expression": "16pm+22am"}`})

	_, res, err := tr.Ask(context.Background(), "something odd")
	if err != nil {
		t.Fatalf("Ask() error = %v", err)
	}
	if res.Kind() != clock.KindLogic {
		t.Errorf("Kind = %q, want %q", res.Kind(), clock.KindLogic)
	}
}

// scriptedClient returns one reply per call and records every conversation.
type scriptedClient struct {
	replies []string
	calls   [][]Message
}

func (s *scriptedClient) Chat(_ context.Context, messages []Message) (string, error) {
	s.calls = append(s.calls, append([]Message(nil), messages...))
	if len(s.calls) > len(s.replies) {
		return "", errors.New("no more replies")
	}
	return s.replies[len(s.calls)-1], nil
}

func (s *scriptedClient) ChatJSON(ctx context.Context, messages []Message, result any) error {
	content, err := s.Chat(ctx, messages)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(extractJSON(content)), result)
}

func TestTranslate_RetriesWithFeedback(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`{"expression": "2pm plus 3:30"}`,
		`{"expression": "2pm+3:30"}`,
	}}
	tr := NewTranslator(client).WithRetries(2)

	got, err := tr.Translate(context.Background(), "three and a half hours after 2pm")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got.Expression != "2pm+3:30" {
		t.Errorf("Expression = %q", got.Expression)
	}
	if len(client.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(client.calls))
	}

	retry := client.calls[1]
	if len(retry) != 4 {
		t.Fatalf("expected 4 messages on retry, got %d", len(retry))
	}
	if retry[2].Role != RoleAssistant || !strings.Contains(retry[2].Content, "2pm plus 3:30") {
		t.Errorf("assistant message = %+v", retry[2])
	}
	if retry[3].Role != RoleUser || !strings.Contains(retry[3].Content, "does not match the grammar") {
		t.Errorf("feedback message = %+v", retry[3])
	}
}

func TestTranslate_RetriesExhausted(t *testing.T) {
	client := &scriptedClient{replies: []string{
		`{"expression": ""}`,
		`{"expression": "soon"}`,
	}}
	tr := NewTranslator(client).WithRetries(1)

	_, err := tr.Translate(context.Background(), "whenever")
	if !errors.Is(err, ErrNoExpression) {
		t.Fatalf("expected ErrNoExpression, got %v", err)
	}
	if !strings.Contains(err.Error(), `"soon"`) {
		t.Errorf("error should name the last expression: %v", err)
	}
	if len(client.calls) != 2 {
		t.Errorf("expected 2 calls, got %d", len(client.calls))
	}
}

func TestExpressionFeedback(t *testing.T) {
	if got := expressionFeedback("1:30pm+6:45am"); got != "" {
		t.Errorf("grammatical expression got feedback %q", got)
	}
	if got := expressionFeedback(""); !strings.Contains(got, "empty") {
		t.Errorf("feedback = %q", got)
	}
	if got := expressionFeedback("noon"); !strings.Contains(got, `"noon"`) {
		t.Errorf("feedback = %q", got)
	}
}
