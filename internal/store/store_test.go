package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Driver() == nil {
		t.Fatal("expected non-nil ent driver")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDBUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "quizterm.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"preferences", "result_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestPreferenceGetMissing(t *testing.T) {
	s := openTestStore(t)

	v, ok, err := s.PreferenceRepo().Get(context.Background(), "quizTheme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || v != "" {
		t.Errorf("get missing = (%q, %v), want (\"\", false)", v, ok)
	}
}

func TestPreferenceSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	for _, want := range []string{"light", "dark", "light"} {
		if err := repo.Set(ctx, "quizTheme", want); err != nil {
			t.Fatalf("set %q: %v", want, err)
		}
		got, ok, err := repo.Get(ctx, "quizTheme")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !ok || got != want {
			t.Errorf("get = (%q, %v), want (%q, true)", got, ok, want)
		}
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM preferences").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("rows = %d, want 1", count)
	}
}

func TestResultAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	inputs := []ResultEventData{
		{SessionID: "s1", Subject: "HTML", Score: 3, Total: 5},
		{SessionID: "s2", Subject: "CSS", Score: 5, Total: 5},
		{SessionID: "s3", Subject: "HTML", Score: 4, Total: 5},
	}
	for _, in := range inputs {
		if err := repo.AppendResult(ctx, in); err != nil {
			t.Fatalf("append %s: %v", in.SessionID, err)
		}
	}

	all, err := repo.QueryResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d results, want 3", len(all))
	}
	// Newest first.
	if all[0].SessionID != "s3" || all[2].SessionID != "s1" {
		t.Errorf("order = %s,%s,%s, want s3,s2,s1", all[0].SessionID, all[1].SessionID, all[2].SessionID)
	}
	if all[0].Sequence <= all[1].Sequence {
		t.Errorf("sequence not increasing: %d <= %d", all[0].Sequence, all[1].Sequence)
	}
	if all[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}

	html, err := repo.QueryResults(ctx, QueryOpts{Subject: "HTML", Limit: 1})
	if err != nil {
		t.Fatalf("query html: %v", err)
	}
	if len(html) != 1 || html[0].SessionID != "s3" {
		t.Errorf("html query = %+v, want only s3", html)
	}

	after, err := repo.QueryResults(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 1 || after[0].SessionID != "s3" {
		t.Errorf("after query = %+v, want only s3", after)
	}

	since, err := repo.QueryResults(ctx, QueryOpts{From: time.Now().Add(-time.Hour)})
	if err != nil {
		t.Fatalf("query from: %v", err)
	}
	if len(since) != 3 {
		t.Errorf("from query returned %d, want 3", len(since))
	}
}

func TestResultAppendRejectsBadScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	bad := []ResultEventData{
		{SessionID: "x", Subject: "", Score: 0, Total: 1},
		{SessionID: "x", Subject: "HTML", Score: 6, Total: 5},
		{SessionID: "x", Subject: "HTML", Score: -1, Total: 5},
	}
	for _, b := range bad {
		if err := repo.AppendResult(ctx, b); err == nil {
			t.Errorf("append %+v: expected error", b)
		}
	}
}

func TestBestScore(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	_, ok, err := repo.BestScore(ctx, "HTML")
	if err != nil {
		t.Fatalf("best (empty): %v", err)
	}
	if ok {
		t.Fatal("expected no best score before any result")
	}

	for i, score := range []int{2, 4, 4, 1} {
		err := repo.AppendResult(ctx, ResultEventData{
			SessionID: string(rune('a' + i)),
			Subject:   "HTML",
			Score:     score,
			Total:     5,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	best, ok, err := repo.BestScore(ctx, "HTML")
	if err != nil {
		t.Fatalf("best: %v", err)
	}
	if !ok {
		t.Fatal("expected a best score")
	}
	// Ties go to the earliest attempt.
	if best.Score != 4 || best.SessionID != "b" {
		t.Errorf("best = %+v, want score 4 from session b", best)
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.PreferenceRepo().Set(ctx, "quizTheme", "light"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.ResultRepo().AppendResult(ctx, ResultEventData{SessionID: "a", Subject: "CSS", Score: 1, Total: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if _, ok, _ := s.PreferenceRepo().Get(ctx, "quizTheme"); ok {
		t.Error("expected preference cleared")
	}
	res, err := s.ResultRepo().QueryResults(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(res) != 0 {
		t.Errorf("got %d results after reset, want 0", len(res))
	}

	// Sequence numbers keep increasing across a reset.
	if err := s.ResultRepo().AppendResult(ctx, ResultEventData{SessionID: "b", Subject: "CSS", Score: 2, Total: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	res, _ = s.ResultRepo().QueryResults(ctx, QueryOpts{})
	if len(res) != 1 || res[0].Sequence != 2 {
		t.Errorf("post-reset result = %+v, want sequence 2", res)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestDefaultDBPathEnv(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "q.db")
	t.Setenv(EnvDB, want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestDefaultDBPathXDG(t *testing.T) {
	t.Setenv(EnvDB, "")
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if want := filepath.Join(dir, "quizterm", "quizterm.db"); got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}
