package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"mentionBot/internal/db/settings"
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
		log.Println("[settings/RepositorySQlite.Init] failed to create table:", err)
		return err
	}
	log.Println("[settings/RepositorySQlite.Init] table created or already exists")
	return nil
}

func (r *RepositorySQlite) GetById(ctx context.Context, chatID int64) (s settings.ChatSettings, found bool, err error) {
	var word sql.NullString
	row := r.db.QueryRowContext(ctx, selectByChatId, chatID)
	switch err = row.Scan(&s.RudeModeEnabled, &word); {
	case err == nil:
		s.ChatID = chatID
		s.RudeWord = word.String
		return s, true, nil
	case errors.Is(err, sql.ErrNoRows):
		return settings.ChatSettings{ChatID: chatID}, false, nil
	default:
		log.Printf("[settings/RepositorySQlite.GetById] error chatID=%d err=%v", chatID, err)
		return settings.ChatSettings{}, false, fmt.Errorf("select settings by chat_id: %w", err)
	}
}

func (r *RepositorySQlite) SetEnabled(ctx context.Context, chatID int64, enabled bool) error {
	_, err := r.db.ExecContext(ctx, upsertEnabled, chatID, enabled)
	if err != nil {
		log.Printf("[settings/RepositorySQlite.SetEnabled] chatID=%d enabled=%t error=%v", chatID, enabled, err)
		return fmt.Errorf("upsert rude mode: %w", err)
	}
	log.Printf("[settings/RepositorySQlite.SetEnabled] success chatID=%d enabled=%t", chatID, enabled)
	return nil
}

func (r *RepositorySQlite) SetWord(ctx context.Context, chatID int64, word string) error {
	word, err := settings.ValidateWord(word)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertWord, chatID, word)
	if err != nil {
		log.Printf("[settings/RepositorySQlite.SetWord] chatID=%d word=%s error=%v", chatID, word, err)
		return fmt.Errorf("upsert rude word: %w", err)
	}
	log.Printf("[settings/RepositorySQlite.SetWord] success chatID=%d word=%s", chatID, word)
	return nil
}
