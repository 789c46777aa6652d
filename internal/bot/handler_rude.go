package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mentionBot/internal/db/settings"
	"mentionBot/internal/service"
)

type RudeModeHandler struct {
	platform   Platform
	repository settings.Repository
	enable     bool
}

func NewRudeModeHandler(p Platform, r settings.Repository, enable bool) *RudeModeHandler {
	return &RudeModeHandler{platform: p, repository: r, enable: enable}
}

func (h *RudeModeHandler) Handle(ctx context.Context, msg *Message, _ string) {
	if err := h.repository.SetEnabled(ctx, msg.ChatID, h.enable); err != nil {
		log.Printf("[RudeModeHandler.Handle] save failed chatID=%d enable=%t err=%v", msg.ChatID, h.enable, err)
		replyTo(ctx, h.platform, msg, settingsSaveError)
		return
	}

	if h.enable {
		replyTo(ctx, h.platform, msg, rudeEnabledText)
	} else {
		replyTo(ctx, h.platform, msg, rudeDisabledText)
	}
}

type RudeWordHandler struct {
	platform   Platform
	repository settings.Repository
	pending    *service.PendingManager
}

func NewRudeWordHandler(p Platform, r settings.Repository, m *service.PendingManager) *RudeWordHandler {
	return &RudeWordHandler{platform: p, repository: r, pending: m}
}

func (h *RudeWordHandler) Handle(ctx context.Context, msg *Message, args string) {
	h.setWord(ctx, msg, args, false)
}

// Continue handles the message that answers the word prompt.
func (h *RudeWordHandler) Continue(ctx context.Context, msg *Message) {
	h.setWord(ctx, msg, msg.Text, true)
}

func (h *RudeWordHandler) setWord(ctx context.Context, msg *Message, raw string, continuation bool) {
	word, err := settings.ValidateWord(raw)
	if err != nil {
		// only an empty command arms the prompt, answers never re-arm it
		if !continuation && errors.Is(err, settings.ErrWordEmpty) {
			h.pending.Set(msg.ChatID, msg.From.ID, service.PromptWord)
		}
		replyTo(ctx, h.platform, msg, validationText(err))
		return
	}

	if err := h.repository.SetWord(ctx, msg.ChatID, word); err != nil {
		log.Printf("[RudeWordHandler.setWord] save failed chatID=%d word=%s err=%v", msg.ChatID, word, err)
		replyTo(ctx, h.platform, msg, settingsSaveError)
		return
	}
	replyTo(ctx, h.platform, msg, fmt.Sprintf(wordSetFormat, word))
}

func validationText(err error) string {
	switch {
	case errors.Is(err, settings.ErrWordTooLong):
		return wordTooLongText
	case errors.Is(err, settings.ErrWordNotAlphabetic):
		return wordCharsetText
	default:
		return wordUsageText
	}
}
