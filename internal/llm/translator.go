package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// ErrNoExpression is returned when the model does not produce a usable expression.
var ErrNoExpression = errors.New("model did not return a valid expression")

const translatePrompt = `You convert questions about clock times into a single calculator expression.

Current local time: %s (24-hour HH:MM).

Expression grammar (exactly one operator, no spaces required):
  <time><meridian?> <operator> <time><meridian?>
  time      = H | H: | :M | H:M   (H is 0-24, M is 0-59, one or two digits)
  meridian  = am | pm             (optional, only for hours 1-12)
  operator  = + | -

Meaning:
- "A + B" adds duration B to clock time A. Only one side may carry am/pm.
- "A - B" is the elapsed time from A until B (B minus A).
- Durations never carry am/pm. 90 minutes is 1:30, a quarter hour is :15.
- Use the current local time when the question says "now" or "from now".

Examples:
- "what time is it 3 and a half hours after 2pm" -> {"expression": "2pm+3:30"}
- "how long from noon until 3pm" -> {"expression": "12pm-3pm"}
- "45 minutes from now" at 09:10 -> {"expression": "9:10+:45"}

Respond ONLY with valid JSON (no markdown, no explanation):
{"expression": "<expression>", "explanation": "<one short sentence>"}`

// Translation is the model's answer for one question.
type Translation struct {
	Expression  string `json:"expression"`
	Explanation string `json:"explanation,omitempty"`
}

// Translator asks an LLM to phrase a question as an expression.
// It never lets the model compute the answer: the expression is always
// evaluated locally.
type Translator struct {
	client  Client
	now     func() time.Time
	retries int
}

// NewTranslator creates a translator using the given client.
func NewTranslator(client Client) *Translator {
	return &Translator{client: client, now: time.Now}
}

// WithClock sets the function used to read the current time.
func (t *Translator) WithClock(now func() time.Time) *Translator {
	t.now = now
	return t
}

// WithRetries sets how many times a reply that does not parse is sent back
// to the model with feedback before giving up.
func (t *Translator) WithRetries(n int) *Translator {
	if n < 0 {
		n = 0
	}
	t.retries = n
	return t
}

// Translate converts question into an expression that matches the grammar.
func (t *Translator) Translate(ctx context.Context, question string) (*Translation, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.New("question cannot be empty")
	}

	messages := []Message{
		{Role: RoleSystem, Content: fmt.Sprintf(translatePrompt, t.now().Format("15:04"))},
		{Role: RoleUser, Content: question},
	}

	for attempt := 0; ; attempt++ {
		var tr Translation
		if err := t.client.ChatJSON(ctx, messages, &tr); err != nil {
			return nil, fmt.Errorf("translating question (attempt %d): %w", attempt+1, err)
		}

		tr.Expression = strings.TrimSpace(tr.Expression)
		feedback := expressionFeedback(tr.Expression)
		if feedback == "" {
			return &tr, nil
		}

		if attempt >= t.retries {
			if tr.Expression == "" {
				return nil, ErrNoExpression
			}
			return nil, fmt.Errorf("%w: %q", ErrNoExpression, tr.Expression)
		}

		// Keep the rejected reply in context so the model can correct it.
		reply, _ := json.Marshal(tr)
		messages = append(messages,
			Message{Role: RoleAssistant, Content: string(reply)},
			Message{Role: RoleUser, Content: feedback},
		)
	}
}

// expressionFeedback explains why expr is unusable, or returns "" if it matches.
func expressionFeedback(expr string) string {
	if expr == "" {
		return `The "expression" field was empty. Reply again with one expression.`
	}
	if _, err := clock.Match(expr); err != nil {
		return fmt.Sprintf("%q does not match the grammar. Use TIME[am|pm] + or - TIME[am|pm], for example 2pm+3:30. Reply again with JSON only.", expr)
	}
	return ""
}

// Ask translates question and evaluates the resulting expression.
func (t *Translator) Ask(ctx context.Context, question string) (*Translation, clock.Result, error) {
	tr, err := t.Translate(ctx, question)
	if err != nil {
		return nil, clock.Result{}, err
	}
	return tr, clock.Evaluate(tr.Expression), nil
}
