package bot

import (
	"context"
	"log"
	"mentionBot/internal/db/roster"
	"strings"
)

type AllHandler struct {
	platform   Platform
	repository roster.Repository
}

func NewAllHandler(p Platform, r roster.Repository) *AllHandler {
	return &AllHandler{platform: p, repository: r}
}

func (h *AllHandler) Handle(ctx context.Context, msg *Message, _ string) {
	chatID := msg.ChatID

	if !msg.ChatType.IsGroup() {
		sendTo(ctx, h.platform, msg, groupsOnlyText)
		return
	}

	isAdmin, err := h.platform.IsAdmin(ctx, chatID)
	if err != nil {
		log.Printf("[AllHandler.Handle] admin lookup failed chatID=%d err=%v", chatID, err)
		isAdmin = false
	}
	if !isAdmin {
		replyTo(ctx, h.platform, msg, promoteBotText)
		return
	}

	users, err := h.repository.List(ctx, chatID)
	if err != nil {
		log.Printf("[AllHandler.Handle] list failed chatID=%d err=%v", chatID, err)
		replyTo(ctx, h.platform, msg, rosterFailedText)
		return
	}

	if len(users) == 0 {
		replyTo(ctx, h.platform, msg, rosterEmptyText)
		return
	}
	sendTo(ctx, h.platform, msg, strings.Join(users, " "))
}
