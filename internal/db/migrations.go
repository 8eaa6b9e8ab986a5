package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS evaluations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			input      TEXT NOT NULL,
			output     TEXT NOT NULL,
			kind       TEXT NOT NULL CHECK(kind IN ('ok', 'parse', 'value', 'logic')),
			created_at TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_evaluations_created ON evaluations(created_at);
		CREATE INDEX IF NOT EXISTS idx_evaluations_kind ON evaluations(kind);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating evaluations table: %w", err)
	}

	return nil
}
