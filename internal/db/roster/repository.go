package roster

import (
	"context"
	"strings"
)

// AddResult tells an inserted row apart from a row the store already had.
// Failed is the zero value and always comes with an error.
type AddResult int

const (
	Failed AddResult = iota
	Inserted
	AlreadyPresent
)

func (r AddResult) String() string {
	switch r {
	case Failed:
		return "failed"
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already_present"
	}
	return "unknown"
}

type Repository interface {
	Init() error
	Add(ctx context.Context, chatID int64, username string) (AddResult, error)
	List(ctx context.Context, chatID int64) ([]string, error)
	Clear(ctx context.Context, chatID int64) (int64, error)
}

// Normalize returns the username with exactly one leading "@".
func Normalize(username string) string {
	return "@" + strings.TrimLeft(strings.TrimSpace(username), "@")
}

// ParseUsernames picks the "@name" tokens out of free text, keeping the
// first occurrence order and dropping repeats.
func ParseUsernames(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !strings.HasPrefix(f, "@") || len(strings.TrimLeft(f, "@")) == 0 {
			continue
		}
		name := Normalize(f)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
