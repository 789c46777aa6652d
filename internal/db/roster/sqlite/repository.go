package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"mentionBot/internal/db/roster"

	"github.com/mattn/go-sqlite3"
)

type RepositorySQlite struct {
	db *sql.DB
}

func NewRepositorySQlite(db *sql.DB) *RepositorySQlite {
	return &RepositorySQlite{db: db}
}

func (r *RepositorySQlite) Init() error {
	_, err := r.db.Exec(createTable)
	if err != nil {
		log.Println("[roster/RepositorySQlite.Init] failed to create table:", err)
		return err
	}
	log.Println("[roster/RepositorySQlite.Init] table created or already exists")
	return nil
}

// Add relies on the (chat_id, username) primary key: a key conflict
// is reported as AlreadyPresent, anything else is a write failure.
func (r *RepositorySQlite) Add(ctx context.Context, chatID int64, username string) (roster.AddResult, error) {
	username = roster.Normalize(username)

	_, err := r.db.ExecContext(ctx, insertUser, chatID, username)
	if err == nil {
		log.Printf("[roster/RepositorySQlite.Add] inserted chatID=%d username=%s", chatID, username)
		return roster.Inserted, nil
	}
	if isDuplicateKey(err) {
		log.Printf("[roster/RepositorySQlite.Add] already present chatID=%d username=%s", chatID, username)
		return roster.AlreadyPresent, nil
	}

	log.Printf("[roster/RepositorySQlite.Add] chatID=%d username=%s error=%v", chatID, username, err)
	return roster.Failed, fmt.Errorf("insert user %s: %w", username, err)
}

func (r *RepositorySQlite) List(ctx context.Context, chatID int64) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectByChatId, chatID)
	if err != nil {
		log.Printf("[roster/RepositorySQlite.List] chatID=%d error=%v", chatID, err)
		return nil, fmt.Errorf("select users by chat_id: %w", err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			log.Println("[roster/RepositorySQlite.List] failed to close rows:", err)
		}
	}(rows)

	var usernames []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			log.Printf("[roster/RepositorySQlite.List] failed to scan rows:%v", err)
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		usernames = append(usernames, username)
	}

	if err := rows.Err(); err != nil {
		log.Printf("[roster/RepositorySQlite.List] failed to iterate rows:%v", err)
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	log.Printf("[roster/RepositorySQlite.List] found %d users chatID=%d", len(usernames), chatID)
	return usernames, nil
}

func (r *RepositorySQlite) Clear(ctx context.Context, chatID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteByChatId, chatID)
	if err != nil {
		log.Printf("[roster/RepositorySQlite.Clear] chatID=%d error=%v", chatID, err)
		return 0, fmt.Errorf("delete users by chat_id: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		log.Printf("[roster/RepositorySQlite.Clear] chatID=%d error getting RowsAffected=%v", chatID, err)
		return 0, err
	}

	if rows > 0 {
		log.Printf("[roster/RepositorySQlite.Clear] deleted %d users chatID=%d", rows, chatID)
	} else {
		log.Printf("[roster/RepositorySQlite.Clear] no record found chatID=%d", chatID)
	}
	return rows, nil
}

// isDuplicateKey matches only uniqueness conflicts; NOT NULL or CHECK
// failures stay errors.
func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
