package bot

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/time/rate"
)

const sendBurst = 20

// TelegramPlatform implements Platform on top of the Bot API client.
type TelegramPlatform struct {
	b        *bot.Bot
	selfID   int64
	interval time.Duration

	now      func() time.Time
	mu       sync.Mutex
	limiters map[int64]*chatLimiter
}

type chatLimiter struct {
	limiter  *rate.Limiter
	lastUsed time.Time
}

func NewTelegramPlatform(b *bot.Bot, selfID int64, sendInterval time.Duration) *TelegramPlatform {
	return &TelegramPlatform{
		b:        b,
		selfID:   selfID,
		interval: sendInterval,
		now:      time.Now,
		limiters: make(map[int64]*chatLimiter),
	}
}

func (p *TelegramPlatform) Send(ctx context.Context, r Reply) error {
	if err := p.limiter(r.ChatID).Wait(ctx); err != nil {
		return fmt.Errorf("wait send slot chat %d: %w", r.ChatID, err)
	}

	params := &bot.SendMessageParams{
		ChatID:              r.ChatID,
		Text:                r.Text,
		DisableNotification: r.DisableNotify,
	}
	if r.ReplyToMessageID != 0 {
		params.ReplyParameters = &models.ReplyParameters{
			MessageID:                r.ReplyToMessageID,
			AllowSendingWithoutReply: true,
		}
	}

	if _, err := p.b.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send message chat %d: %w", r.ChatID, err)
	}
	return nil
}

func (p *TelegramPlatform) IsAdmin(ctx context.Context, chatID int64) (bool, error) {
	member, err := p.b.GetChatMember(ctx, &bot.GetChatMemberParams{
		ChatID: chatID,
		UserID: p.selfID,
	})
	if err != nil {
		return false, fmt.Errorf("get chat member chat %d: %w", chatID, err)
	}
	log.Printf("[TelegramPlatform.IsAdmin] chatID=%d status=%s", chatID, member.Type)
	return member.Type == models.ChatMemberTypeAdministrator, nil
}

func (p *TelegramPlatform) limiter(chatID int64) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	l, ok := p.limiters[chatID]
	if !ok {
		l = &chatLimiter{limiter: rate.NewLimiter(rate.Every(p.interval), sendBurst)}
		p.limiters[chatID] = l
	}
	l.lastUsed = now
	return l.limiter
}

// PruneLimiters drops the limiters of chats that sent nothing for idle.
// A bucket refills completely within sendBurst intervals, so once idle
// exceeds that a fresh limiter behaves the same as the dropped one.
func (p *TelegramPlatform) PruneLimiters(idle time.Duration) int {
	if refill := p.interval * sendBurst; idle < refill {
		idle = refill
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cutoff := p.now().Add(-idle)
	removed := 0
	for chatID, l := range p.limiters {
		if l.lastUsed.Before(cutoff) {
			delete(p.limiters, chatID)
			removed++
		}
	}
	return removed
}

// NewUpdateHandler adapts the dispatcher to the Bot API handler signature.
func NewUpdateHandler(d *Dispatcher) bot.HandlerFunc {
	return func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		msg := MessageFromUpdate(update)
		if msg == nil {
			return
		}
		d.Dispatch(ctx, msg)
	}
}

// MessageFromUpdate returns nil for updates that carry no text message.
func MessageFromUpdate(update *models.Update) *Message {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return nil
	}
	return fromModel(update.Message)
}

func fromModel(m *models.Message) *Message {
	msg := &Message{
		ID:       m.ID,
		ChatID:   m.Chat.ID,
		ChatType: ChatType(m.Chat.Type),
		Text:     m.Text,
	}
	if m.From != nil {
		msg.From = User{ID: m.From.ID, Username: m.From.Username, IsBot: m.From.IsBot}
	}
	for _, e := range m.Entities {
		if e.Type != models.MessageEntityTypeMention {
			continue
		}
		if s := entityText(m.Text, e.Offset, e.Length); s != "" {
			msg.Mentions = append(msg.Mentions, s)
		}
	}
	if m.ReplyToMessage != nil {
		msg.ReplyTo = fromModel(m.ReplyToMessage)
	}
	return msg
}

// entityText cuts an entity out of text; Bot API offsets are UTF-16 units.
func entityText(text string, offset, length int) string {
	units := utf16.Encode([]rune(text))
	if offset < 0 || length <= 0 || offset+length > len(units) {
		return ""
	}
	return string(utf16.Decode(units[offset : offset+length]))
}
