package sqlite

import (
	"context"
	"errors"
	"fmt"
	dbsqlite "mentionBot/internal/db/sqlite"
	"mentionBot/internal/db/roster"
	"sort"
	"testing"

	"github.com/mattn/go-sqlite3"
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

func TestAddDuplicateKeepsSingleEntry(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	res, err := r.Add(ctx, 42, "@alice")
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if res != roster.Inserted {
		t.Errorf("first add result = %v, want inserted", res)
	}

	res, err = r.Add(ctx, 42, "@alice")
	if err != nil {
		t.Fatalf("second add returned error: %v", err)
	}
	if res != roster.AlreadyPresent {
		t.Errorf("second add result = %v, want already_present", res)
	}

	users, err := r.List(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 || users[0] != "@alice" {
		t.Errorf("users = %v, want [@alice]", users)
	}
}

func TestAddNormalizesUsername(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	if _, err := r.Add(ctx, 1, "bob"); err != nil {
		t.Fatalf("add: %v", err)
	}
	res, err := r.Add(ctx, 1, "@bob")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res != roster.AlreadyPresent {
		t.Errorf("result = %v, want already_present", res)
	}
}

func TestRostersAreIsolatedPerChat(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	for _, u := range []string{"@alice", "@bob"} {
		if _, err := r.Add(ctx, 1, u); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	res, err := r.Add(ctx, 2, "@alice")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if res != roster.Inserted {
		t.Errorf("same username in another chat = %v, want inserted", res)
	}

	users, err := r.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	sort.Strings(users)
	if len(users) != 2 || users[0] != "@alice" || users[1] != "@bob" {
		t.Errorf("chat 1 users = %v", users)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	for _, u := range []string{"@a1", "@a2", "@a3"} {
		if _, err := r.Add(ctx, 5, u); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := r.Add(ctx, 6, "@other"); err != nil {
		t.Fatalf("add: %v", err)
	}

	n, err := r.Clear(ctx, 5)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n != 3 {
		t.Errorf("removed = %d, want 3", n)
	}

	n, err = r.Clear(ctx, 5)
	if err != nil {
		t.Fatalf("second clear: %v", err)
	}
	if n != 0 {
		t.Errorf("second clear removed = %d, want 0", n)
	}

	users, err := r.List(ctx, 6)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("chat 6 users = %v, want untouched", users)
	}
}

func TestListEmpty(t *testing.T) {
	r := newTestRepository(t)

	users, err := r.List(context.Background(), 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("users = %v, want empty", users)
	}
}

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, true},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"wrapped", fmt.Errorf("insert: %w", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}), true},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, false},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, false},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDuplicateKey(tt.err); got != tt.want {
				t.Errorf("isDuplicateKey = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddOnClosedDatabaseFails(t *testing.T) {
	conn, err := dbsqlite.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	r := NewRepositorySQlite(conn)
	if err := r.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	_ = conn.Close()

	res, err := r.Add(context.Background(), 1, "@alice")
	if err == nil {
		t.Fatal("expected error on closed database")
	}
	if res != roster.Failed {
		t.Errorf("result = %v, want failed", res)
	}
}
