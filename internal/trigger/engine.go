// Package trigger decides when a plain group message gets an automatic
// "rude" reply and builds that reply.
package trigger

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"mentionBot/internal/db/settings"
	"strings"
	"unicode/utf8"
)

const minTokenLength = 5

type SettingsReader interface {
	GetById(ctx context.Context, chatID int64) (s settings.ChatSettings, found bool, err error)
}

type Engine struct {
	settings    SettingsReader
	probability int
	defaultWord string
	// intN returns a value in [0, n).
	intN func(n int) int
}

func NewEngine(s SettingsReader, probability int, defaultWord string) *Engine {
	return &Engine{
		settings:    s,
		probability: probability,
		defaultWord: defaultWord,
		intN:        rand.Intn,
	}
}

// Evaluate returns the reply for text, or ok=false when nothing should be sent.
func (e *Engine) Evaluate(ctx context.Context, chatID int64, text string) (reply string, ok bool) {
	s, found, err := e.settings.GetById(ctx, chatID)
	if err != nil {
		log.Printf("[trigger.Engine.Evaluate] settings lookup failed chatID=%d err=%v", chatID, err)
		return "", false
	}
	if !found || !s.RudeModeEnabled {
		return "", false
	}

	if draw := e.intN(100) + 1; draw > e.probability {
		return "", false
	}

	candidates := longTokens(text)
	if len(candidates) == 0 {
		return "", false
	}
	token := candidates[e.intN(len(candidates))]

	word := s.RudeWord
	if word == "" {
		word = e.defaultWord
	}

	log.Printf("[trigger.Engine.Evaluate] fired chatID=%d token=%s word=%s", chatID, token, word)
	return fmt.Sprintf("%s для %s", token, word), true
}

func longTokens(text string) []string {
	var out []string
	for _, f := range strings.Fields(text) {
		if utf8.RuneCountInString(f) >= minTokenLength {
			out = append(out, f)
		}
	}
	return out
}
