package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"mentionBot/internal/db"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

// Open returns the single shared handle used by every repository.
// sqlite serialises writers anyway, so the pool is kept to one connection;
// this also keeps ":memory:" databases alive for the lifetime of the handle.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("db path required")
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	log.Printf("[sqlite.Open] database ready path=%s", path)
	return conn, nil
}

// Init creates the tables of every given repository.
func Init(repos ...db.Initializer) error {
	for _, r := range repos {
		if err := r.Init(); err != nil {
			return err
		}
	}
	return nil
}

func Close(conn *sql.DB) {
	log.Println("[sqlite.Close] closing db connection")
	if err := conn.Close(); err != nil {
		log.Println("[sqlite.Close] close error:", err)
	}
}
