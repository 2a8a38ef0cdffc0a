package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := openTestDB(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	runs := []Run{
		{Paper: "monofusion.txt", Query: "Related Work", Provider: "anthropic", Model: "claude-haiku-4-5", Cited: 17, Resolved: 16, Missing: 1, CreatedAt: base},
		{Paper: "nerf.txt", Query: "Introduction", Provider: "ollama", Model: "llama3.2", Cited: 5, Resolved: 5, CreatedAt: base.Add(time.Hour)},
	}
	for _, run := range runs {
		if _, err := db.Record(run); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Recent() returned %d runs, want 2", len(got))
	}

	// Newest first.
	if got[0].Paper != "nerf.txt" {
		t.Errorf("first run = %s, want nerf.txt", got[0].Paper)
	}
	if got[1].Cited != 17 || got[1].Resolved != 16 || got[1].Missing != 1 {
		t.Errorf("counts = %d/%d/%d, want 17/16/1", got[1].Cited, got[1].Resolved, got[1].Missing)
	}
	if got[1].Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", got[1].Provider)
	}
	if !got[1].CreatedAt.Equal(base) {
		t.Errorf("created_at = %v, want %v", got[1].CreatedAt, base)
	}
}

func TestRecordAssignsID(t *testing.T) {
	db := openTestDB(t)

	first, err := db.Record(Run{Paper: "a.txt", Query: "q", Cited: 1, Resolved: 1})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	second, err := db.Record(Run{Paper: "b.txt", Query: "q", Cited: 2, Resolved: 2})
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Error("Record() left id unset")
	}
	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}
}

func TestRecentLimit(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		if _, err := db.Record(Run{Paper: "p.txt", Query: "q"}); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	got, err := db.Recent(3)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("Recent(3) returned %d runs", len(got))
	}
}

func TestRecentEmpty(t *testing.T) {
	db := openTestDB(t)

	got, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Recent() on empty store returned %d runs", len(got))
	}
}
