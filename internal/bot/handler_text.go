package bot

import (
	"context"
	"log"
)

type Trigger interface {
	Evaluate(ctx context.Context, chatID int64, text string) (reply string, ok bool)
}

// TextHandler answers plain group messages through the trigger engine.
type TextHandler struct {
	platform Platform
	trigger  Trigger
}

func NewTextHandler(p Platform, t Trigger) *TextHandler {
	return &TextHandler{platform: p, trigger: t}
}

// Handle reports whether an auto-reply was produced for msg.
func (h *TextHandler) Handle(ctx context.Context, msg *Message) bool {
	reply, ok := h.trigger.Evaluate(ctx, msg.ChatID, msg.Text)
	if !ok {
		return false
	}

	err := h.platform.Send(ctx, Reply{
		ChatID:           msg.ChatID,
		Text:             reply,
		ReplyToMessageID: msg.ID,
		DisableNotify:    true,
	})
	if err != nil {
		log.Printf("[TextHandler.Handle] send failed chatID=%d err=%v", msg.ChatID, err)
	}
	return true
}
