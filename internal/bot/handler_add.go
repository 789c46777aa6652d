package bot

import (
	"context"
	"fmt"
	"log"
	"mentionBot/internal/db/roster"
	"mentionBot/internal/service"
	"strings"
)

type AddHandler struct {
	platform   Platform
	repository roster.Repository
	pending    *service.PendingManager
}

func NewAddHandler(p Platform, r roster.Repository, m *service.PendingManager) *AddHandler {
	return &AddHandler{platform: p, repository: r, pending: m}
}

func (h *AddHandler) Handle(ctx context.Context, msg *Message, args string) {
	usernames := roster.ParseUsernames(args)
	if len(usernames) == 0 {
		h.pending.Set(msg.ChatID, msg.From.ID, service.PromptUsernames)
		replyTo(ctx, h.platform, msg, addUsageText)
		return
	}
	h.add(ctx, msg, usernames)
}

// Continue handles the message that answers the usage prompt. The prompt is
// already consumed; a message without usernames only gets a hint.
func (h *AddHandler) Continue(ctx context.Context, msg *Message) {
	usernames := roster.ParseUsernames(msg.Text)
	if len(usernames) == 0 {
		replyTo(ctx, h.platform, msg, addRetryText)
		return
	}
	h.add(ctx, msg, usernames)
}

func (h *AddHandler) add(ctx context.Context, msg *Message, usernames []string) {
	chatID := msg.ChatID
	added := make([]string, 0, len(usernames))
	failed := false

	for _, username := range usernames {
		res, err := h.repository.Add(ctx, chatID, username)
		if err != nil {
			log.Printf("[AddHandler.add] insert failed chatID=%d username=%s err=%v", chatID, username, err)
			failed = true
			continue
		}
		if res == roster.Inserted {
			added = append(added, username)
		}
	}

	var text string
	switch {
	case failed && len(added) > 0:
		text = fmt.Sprintf(addedFormat, strings.Join(added, ", ")) + "\n" + addFailedText
	case failed:
		text = addFailedText
	case len(added) > 0:
		text = fmt.Sprintf(addedFormat, strings.Join(added, ", "))
	default:
		text = allPresentText
	}
	replyTo(ctx, h.platform, msg, text)
}
