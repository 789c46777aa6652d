package service

import (
	"log"
	"sync"
	"time"
)

// Prompt is the operation a user was asked to finish with their next message.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptUsernames
	PromptWord
)

func (p Prompt) String() string {
	switch p {
	case PromptUsernames:
		return "awaiting-usernames"
	case PromptWord:
		return "awaiting-word"
	}
	return "none"
}

type pendingKey struct {
	chatID int64
	userID int64
}

type pending struct {
	prompt    Prompt
	expiresAt time.Time
}

// PendingManager keeps at most one outstanding prompt per (chat, user).
type PendingManager struct {
	prompts map[pendingKey]pending
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
}

func NewPendingManager(ttl time.Duration) *PendingManager {
	return &PendingManager{
		prompts: make(map[pendingKey]pending),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *PendingManager) Set(chatID, userID int64, p Prompt) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pendingKey{chatID, userID}
	if p == PromptNone {
		delete(m.prompts, key)
		return
	}
	m.prompts[key] = pending{prompt: p, expiresAt: m.now().Add(m.ttl)}
	log.Printf("[PendingManager.Set] chatID=%d userID=%d prompt=%s", chatID, userID, p)
}

// Take returns the live prompt for (chat, user) and removes it.
func (m *PendingManager) Take(chatID, userID int64) Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pendingKey{chatID, userID}
	rec, exists := m.prompts[key]
	if !exists {
		return PromptNone
	}
	delete(m.prompts, key)

	if !m.now().Before(rec.expiresAt) {
		log.Printf("[PendingManager.Take] expired chatID=%d userID=%d prompt=%s", chatID, userID, rec.prompt)
		return PromptNone
	}
	return rec.prompt
}

func (m *PendingManager) Clear(chatID, userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.prompts, pendingKey{chatID, userID})
}

// Sweep drops expired prompts and reports how many were removed.
func (m *PendingManager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, rec := range m.prompts {
		if !now.Before(rec.expiresAt) {
			delete(m.prompts, key)
			removed++
		}
	}
	return removed
}

func (m *PendingManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.prompts)
}
