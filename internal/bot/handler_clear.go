package bot

import (
	"context"
	"log"
	"mentionBot/internal/db/roster"
)

type ClearHandler struct {
	platform   Platform
	repository roster.Repository
}

func NewClearHandler(p Platform, r roster.Repository) *ClearHandler {
	return &ClearHandler{platform: p, repository: r}
}

func (h *ClearHandler) Handle(ctx context.Context, msg *Message, _ string) {
	chatID := msg.ChatID

	n, err := h.repository.Clear(ctx, chatID)
	if err != nil {
		log.Printf("[ClearHandler.Handle] delete error chatID=%d err=%v", chatID, err)
		replyTo(ctx, h.platform, msg, clearFailedText)
		return
	}

	if n > 0 {
		log.Printf("[ClearHandler.Handle] roster cleared chatID=%d removed=%d", chatID, n)
		replyTo(ctx, h.platform, msg, clearedText)
	} else {
		log.Printf("[ClearHandler.Handle] nothing to delete chatID=%d", chatID)
		replyTo(ctx, h.platform, msg, alreadyClearText)
	}
}
