package sqlite

import (
	"context"
	"errors"
	dbsqlite "mentionBot/internal/db/sqlite"
	"mentionBot/internal/db/settings"
	"testing"
)

func newTestRepository(t *testing.T) *RepositorySQlite {
	t.Helper()
	conn, err := dbsqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	r := NewRepositorySQlite(conn)
	if err := r.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	return r
}

func TestGetByIdMissing(t *testing.T) {
	r := newTestRepository(t)

	s, found, err := r.GetById(context.Background(), 7)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Errorf("found = true for unconfigured chat: %+v", s)
	}
	if s.RudeModeEnabled || s.RudeWord != "" {
		t.Errorf("zero settings expected, got %+v", s)
	}
}

func TestSetEnabledLeavesWordUntouched(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	if err := r.SetWord(ctx, 7, "слово"); err != nil {
		t.Fatalf("set word: %v", err)
	}
	if err := r.SetEnabled(ctx, 7, true); err != nil {
		t.Fatalf("enable: %v", err)
	}

	s, found, err := r.GetById(ctx, 7)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if !s.RudeModeEnabled || s.RudeWord != "слово" {
		t.Errorf("settings = %+v, want enabled with word", s)
	}

	if err := r.SetEnabled(ctx, 7, false); err != nil {
		t.Fatalf("disable: %v", err)
	}
	s, _, _ = r.GetById(ctx, 7)
	if s.RudeModeEnabled || s.RudeWord != "слово" {
		t.Errorf("settings = %+v, want disabled with word kept", s)
	}
}

func TestSetWordOnNewRowDefaultsToDisabled(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	if err := r.SetWord(ctx, 9, "people"); err != nil {
		t.Fatalf("set word: %v", err)
	}

	s, found, err := r.GetById(ctx, 9)
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if s.RudeModeEnabled {
		t.Errorf("word write enabled the feature: %+v", s)
	}
	if s.RudeWord != "people" {
		t.Errorf("word = %q, want people", s.RudeWord)
	}
}

func TestSetWordPreservesEnabled(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	if err := r.SetEnabled(ctx, 3, true); err != nil {
		t.Fatalf("enable: %v", err)
	}
	s, _, _ := r.GetById(ctx, 3)
	if s.RudeWord != "" {
		t.Errorf("word = %q before any word was set", s.RudeWord)
	}

	if err := r.SetWord(ctx, 3, "first"); err != nil {
		t.Fatalf("set word: %v", err)
	}
	if err := r.SetWord(ctx, 3, "second"); err != nil {
		t.Fatalf("set word: %v", err)
	}

	s, _, _ = r.GetById(ctx, 3)
	if !s.RudeModeEnabled || s.RudeWord != "second" {
		t.Errorf("settings = %+v, want enabled with word second", s)
	}
}

func TestSetWordRejectsInvalid(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	err := r.SetWord(ctx, 4, "abc123")
	if !errors.Is(err, settings.ErrWordNotAlphabetic) {
		t.Fatalf("err = %v, want ErrWordNotAlphabetic", err)
	}
	if _, found, _ := r.GetById(ctx, 4); found {
		t.Error("invalid word created a settings row")
	}
}
