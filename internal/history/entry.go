// Package history defines recorded evaluations and their storage interface.
package history

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// Validation errors.
var (
	ErrEmptyExpression = errors.New("expression cannot be empty")
	ErrInvalidKind     = errors.New("kind must be 'ok', 'parse', 'value' or 'logic'")
	ErrInvalidLimit    = errors.New("limit must be greater than zero")
)

// Entry is one recorded evaluation.
type Entry struct {
	ID        int64
	Input     string     // expression as typed
	Output    string     // result value or error message
	Kind      clock.Kind // outcome classification
	CreatedAt time.Time
}

// FromResult builds an entry for an evaluation result.
// Returns ErrEmptyExpression if the input is blank.
func FromResult(res clock.Result, now time.Time) (*Entry, error) {
	input := strings.TrimSpace(res.Input)
	if input == "" {
		return nil, ErrEmptyExpression
	}
	return &Entry{
		Input:     input,
		Output:    res.String(),
		Kind:      res.Kind(),
		CreatedAt: now,
	}, nil
}

// Validate checks the entry before it is stored.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Input) == "" {
		return ErrEmptyExpression
	}
	if !e.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}

// OK returns true if the recorded evaluation succeeded.
func (e *Entry) OK() bool {
	return e.Kind == clock.KindOK
}
