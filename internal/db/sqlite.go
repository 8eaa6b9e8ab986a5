// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/history"
)

// timestampFormat is fixed width so created_at sorts lexically.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite implements history.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the repository.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// AddEntry stores an evaluation and sets its ID.
func (s *SQLite) AddEntry(ctx context.Context, e *history.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO evaluations (input, output, kind, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		e.Input,
		e.Output,
		string(e.Kind),
		e.CreatedAt.UTC().Format(timestampFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting evaluation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	e.ID = id

	return nil
}

// GetEntry retrieves an evaluation by ID.
func (s *SQLite) GetEntry(ctx context.Context, id int64) (*history.Entry, error) {
	query := `
		SELECT id, input, output, kind, created_at
		FROM evaluations
		WHERE id = ?
	`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying evaluation: %w", err)
	}
	return e, nil
}

// ListRecent returns up to limit evaluations, newest first.
func (s *SQLite) ListRecent(ctx context.Context, limit int) ([]*history.Entry, error) {
	if limit <= 0 {
		return nil, history.ErrInvalidLimit
	}

	query := `
		SELECT id, input, output, kind, created_at
		FROM evaluations
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying evaluations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*history.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning evaluation: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating evaluations: %w", err)
	}

	return entries, nil
}

// CountByKind returns how many evaluations exist for each kind.
func (s *SQLite) CountByKind(ctx context.Context) (map[clock.Kind]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT kind, COUNT(*) FROM evaluations GROUP BY kind`)
	if err != nil {
		return nil, fmt.Errorf("counting evaluations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[clock.Kind]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[clock.Kind(kind)] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating counts: %w", err)
	}

	return counts, nil
}

// Clear deletes all evaluations.
func (s *SQLite) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM evaluations`)
	if err != nil {
		return 0, fmt.Errorf("clearing evaluations: %w", err)
	}

	rows, _ := result.RowsAffected()
	return rows, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*history.Entry, error) {
	var (
		e         history.Entry
		kind      string
		createdAt string
	)

	if err := row.Scan(&e.ID, &e.Input, &e.Output, &kind, &createdAt); err != nil {
		return nil, err
	}
	e.Kind = clock.Kind(kind)

	t, err := parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	e.CreatedAt = t

	return &e, nil
}

// parseTimestamp parses a timestamp in the formats SQLite might return.
func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
