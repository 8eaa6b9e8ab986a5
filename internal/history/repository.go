package history

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/clockcalc/internal/clock"
)

// Repository defines the storage interface for evaluation history.
type Repository interface {
	// AddEntry stores an entry and sets its ID.
	AddEntry(ctx context.Context, entry *Entry) error

	// GetEntry retrieves an entry by ID. Returns nil, nil if it does not exist.
	GetEntry(ctx context.Context, id int64) (*Entry, error)

	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*Entry, error)

	// CountByKind returns how many entries exist for each kind.
	CountByKind(ctx context.Context) (map[clock.Kind]int, error)

	// Clear deletes every entry and returns how many were removed.
	Clear(ctx context.Context) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}

// Record stores res in repo. Blank inputs are skipped without error.
func Record(ctx context.Context, repo Repository, res clock.Result, now func() time.Time) error {
	entry, err := FromResult(res, now())
	if errors.Is(err, ErrEmptyExpression) {
		return nil
	}
	if err != nil {
		return err
	}
	return repo.AddEntry(ctx, entry)
}
