package bot

import (
	"context"
	"log"
)

// replyTo answers msg in its chat, linked to the source message.
func replyTo(ctx context.Context, p Platform, msg *Message, text string) {
	err := p.Send(ctx, Reply{
		ChatID:           msg.ChatID,
		Text:             text,
		ReplyToMessageID: msg.ID,
	})
	if err != nil {
		log.Printf("[bot.replyTo] send failed chatID=%d msgID=%d err=%v", msg.ChatID, msg.ID, err)
	}
}

// sendTo posts text in the chat of msg without reply linkage.
func sendTo(ctx context.Context, p Platform, msg *Message, text string) {
	if err := p.Send(ctx, Reply{ChatID: msg.ChatID, Text: text}); err != nil {
		log.Printf("[bot.sendTo] send failed chatID=%d err=%v", msg.ChatID, err)
	}
}
