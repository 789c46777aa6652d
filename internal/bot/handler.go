package bot

import "context"

type ChatType string

const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

func (t ChatType) IsGroup() bool {
	return t == ChatGroup || t == ChatSupergroup
}

type User struct {
	ID       int64
	Username string
	IsBot    bool
}

// Message is an inbound chat message in platform-neutral form.
type Message struct {
	ID       int
	ChatID   int64
	ChatType ChatType
	From     User
	Text     string
	// Mentions holds the "@username" entities found in Text.
	Mentions []string
	ReplyTo  *Message
}

type Reply struct {
	ChatID           int64
	Text             string
	ReplyToMessageID int
	DisableNotify    bool
}

// Platform is what the dispatcher needs from the chat service.
type Platform interface {
	Send(ctx context.Context, r Reply) error
	IsAdmin(ctx context.Context, chatID int64) (bool, error)
}

type Handler interface {
	Handle(ctx context.Context, msg *Message, args string)
}
