package settings

import "context"

type Repository interface {
	Init() error
	GetById(ctx context.Context, chatID int64) (s ChatSettings, found bool, err error)
	SetEnabled(ctx context.Context, chatID int64, enabled bool) error
	SetWord(ctx context.Context, chatID int64, word string) error
}
