package bot

import (
	"context"
	"log"
	"mentionBot/internal/db/roster"
	"mentionBot/internal/db/settings"
	"mentionBot/internal/service"
	"strings"
	"unicode"
)

type command struct {
	prefix  string
	handler Handler
}

// Dispatcher routes every inbound message to at most one handler.
type Dispatcher struct {
	platform    Platform
	commands    []command
	text        *TextHandler
	add         *AddHandler
	word        *RudeWordHandler
	pending     *service.PendingManager
	botUsername string
}

func NewDispatcher(p Platform, r roster.Repository, s settings.Repository, t Trigger, m *service.PendingManager, botUsername string) *Dispatcher {
	add := NewAddHandler(p, r, m)
	word := NewRudeWordHandler(p, s, m)

	return &Dispatcher{
		platform: p,
		// matched by leading substring, first hit wins
		commands: []command{
			{"/start", NewStartHandler(p)},
			{"/rude_mode_enable", NewRudeModeHandler(p, s, true)},
			{"/rude_mode_disable", NewRudeModeHandler(p, s, false)},
			{"/set_rude_word", word},
			{"/add", add},
			{"/all", NewAllHandler(p, r)},
			{"/clear", NewClearHandler(p, r)},
		},
		text:        NewTextHandler(p, t),
		add:         add,
		word:        word,
		pending:     m,
		botUsername: strings.TrimPrefix(botUsername, "@"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg *Message) {
	if msg == nil || msg.Text == "" {
		return
	}

	if !strings.HasPrefix(msg.Text, "/") && msg.ChatType.IsGroup() {
		if d.text.Handle(ctx, msg) {
			return
		}
	}

	if h, args, found := d.matchCommand(msg.Text); found {
		if h == nil {
			return
		}
		d.pending.Clear(msg.ChatID, msg.From.ID)
		h.Handle(ctx, msg, args)
		return
	}

	switch d.pending.Take(msg.ChatID, msg.From.ID) {
	case service.PromptUsernames:
		d.add.Continue(ctx, msg)
		return
	case service.PromptWord:
		d.word.Continue(ctx, msg)
		return
	}

	if d.mentionsBot(msg) {
		replyTo(ctx, d.platform, msg, helpText)
	}
}

// matchCommand finds the command text starts with. A command addressed to
// another bot ("/all@OtherBot") is reported as found with a nil handler.
func (d *Dispatcher) matchCommand(text string) (h Handler, args string, found bool) {
	for _, c := range d.commands {
		if !strings.HasPrefix(text, c.prefix) {
			continue
		}

		rest := text[len(c.prefix):]
		if strings.HasPrefix(rest, "@") {
			end := strings.IndexFunc(rest, unicode.IsSpace)
			if end < 0 {
				end = len(rest)
			}
			target := rest[1:end]
			if d.botUsername != "" && !strings.EqualFold(target, d.botUsername) {
				log.Printf("[Dispatcher.matchCommand] %s addressed to @%s, ignoring", c.prefix, target)
				return nil, "", true
			}
			rest = rest[end:]
		}
		return c.handler, rest, true
	}
	return nil, "", false
}

func (d *Dispatcher) mentionsBot(msg *Message) bool {
	if d.botUsername == "" {
		return false
	}
	for _, m := range msg.Mentions {
		if strings.EqualFold(strings.TrimPrefix(m, "@"), d.botUsername) {
			return true
		}
	}
	return false
}
