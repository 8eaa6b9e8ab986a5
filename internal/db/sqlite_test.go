package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/clockcalc/internal/clock"
	"github.com/javiermolinar/clockcalc/internal/history"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func addEntry(t *testing.T, repo *SQLite, input string, at time.Time) *history.Entry {
	t.Helper()
	e, err := history.FromResult(clock.Evaluate(input), at)
	if err != nil {
		t.Fatalf("FromResult(%q) failed: %v", input, err)
	}
	if err := repo.AddEntry(context.Background(), e); err != nil {
		t.Fatalf("AddEntry(%q) failed: %v", input, err)
	}
	return e
}

func TestAddEntry(t *testing.T) {
	repo := newTestRepo(t)
	at := time.Date(2025, 1, 9, 10, 30, 0, 0, time.UTC)

	e := addEntry(t, repo, "2pm+3:30", at)
	if e.ID == 0 {
		t.Error("expected ID to be set after insert")
	}

	got, err := repo.GetEntry(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got == nil {
		t.Fatalf("entry %d not found", e.ID)
	}
	if got.Input != "2pm+3:30" {
		t.Errorf("Input: got %q, want %q", got.Input, "2pm+3:30")
	}
	if got.Output != "05:30 PM" {
		t.Errorf("Output: got %q, want %q", got.Output, "05:30 PM")
	}
	if got.Kind != clock.KindOK {
		t.Errorf("Kind: got %q, want %q", got.Kind, clock.KindOK)
	}
	if !got.CreatedAt.Equal(at) {
		t.Errorf("CreatedAt: got %v, want %v", got.CreatedAt, at)
	}
}

func TestAddEntry_ErrorResult(t *testing.T) {
	repo := newTestRepo(t)

	e := addEntry(t, repo, "00:00pm + 5", time.Now())

	got, err := repo.GetEntry(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("GetEntry failed: %v", err)
	}
	if got.Kind != clock.KindLogic {
		t.Errorf("Kind: got %q, want %q", got.Kind, clock.KindLogic)
	}
	if got.Output != clock.MsgMidnightPM {
		t.Errorf("Output: got %q, want %q", got.Output, clock.MsgMidnightPM)
	}
}

func TestAddEntry_Invalid(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.AddEntry(context.Background(), &history.Entry{Input: "", Kind: clock.KindOK})
	if !errors.Is(err, history.ErrEmptyExpression) {
		t.Errorf("expected ErrEmptyExpression, got %v", err)
	}

	err = repo.AddEntry(context.Background(), &history.Entry{Input: "1+1", Kind: "weird"})
	if !errors.Is(err, history.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestGetEntry_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetEntry(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil entry, got %+v", got)
	}
}

func TestListRecent(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC)

	inputs := []string{"1+1", "2pm+3:30", "12pm - 3pm", "hello"}
	for i, in := range inputs {
		addEntry(t, repo, in, base.Add(time.Duration(i)*time.Second))
	}

	got, err := repo.ListRecent(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}

	want := []string{"hello", "12pm - 3pm", "2pm+3:30"}
	for i, e := range got {
		if e.Input != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, e.Input, want[i])
		}
	}
}

func TestListRecent_SubSecondOrdering(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2025, 1, 9, 9, 0, 0, 0, time.UTC)

	addEntry(t, repo, "1+1", base)
	addEntry(t, repo, "1+2", base.Add(500*time.Millisecond))

	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 2 || got[0].Input != "1+2" {
		t.Fatalf("expected newest entry first, got %+v", got)
	}
}

func TestListRecent_InvalidLimit(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.ListRecent(context.Background(), 0)
	if !errors.Is(err, history.ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit, got %v", err)
	}
}

func TestCountByKind(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	for _, in := range []string{"1+1", "2+2", "nope", "2:99+1", "16pm+1"} {
		addEntry(t, repo, in, now)
	}

	counts, err := repo.CountByKind(context.Background())
	if err != nil {
		t.Fatalf("CountByKind failed: %v", err)
	}

	want := map[clock.Kind]int{
		clock.KindOK:    2,
		clock.KindParse: 1,
		clock.KindValue: 1,
		clock.KindLogic: 1,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("counts[%q] = %d, want %d", k, counts[k], n)
		}
	}
}

func TestClear(t *testing.T) {
	repo := newTestRepo(t)
	now := time.Now()

	addEntry(t, repo, "1+1", now)
	addEntry(t, repo, "2+2", now)

	n, err := repo.Clear(context.Background())
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear removed %d, want 2", n)
	}

	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got))
	}
}

func TestNew_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	e, err := history.FromResult(clock.Evaluate("3pm+5"), time.Now())
	if err != nil {
		t.Fatalf("FromResult failed: %v", err)
	}
	if err := repo.AddEntry(context.Background(), e); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	got, err := repo.ListRecent(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 1 || got[0].Output != "08:00 PM" {
		t.Errorf("expected persisted entry, got %+v", got)
	}
}

func TestNew_NotADatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "garbage.db")
	if err := os.WriteFile(dbPath, []byte(strings.Repeat("not a sqlite file ", 64)), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	repo, err := New(dbPath)
	if err == nil {
		_ = repo.Close()
		t.Fatal("expected error opening a non-database file")
	}
	if repo != nil {
		t.Errorf("expected nil repository on error, got %+v", repo)
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "clockcalc.db")

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, err := os.Stat(filepath.Dir(dbPath)); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
	got, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got))
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}
