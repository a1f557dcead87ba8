// Package memory keeps per-user conversation history for the support agent.
// Everything lives in process memory; history disappears on restart.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"support-widget/internal/model/support"
)

var ErrUserRequired = errors.New("user id is required")

// Store holds a bounded conversation window per user.
type Store struct {
	mu    sync.RWMutex
	turns map[string][]support.Message
	limit int
}

// NewStore creates a store keeping at most limit messages per user.
func NewStore(limit int) *Store {
	if limit <= 0 {
		limit = 10
	}
	return &Store{
		turns: make(map[string][]support.Message),
		limit: limit,
	}
}

// Append records one message for the user, evicting the oldest entries
// beyond the window.
func (s *Store) Append(_ context.Context, userID, author, content string) error {
	if userID == "" {
		return ErrUserRequired
	}

	msg := support.Message{
		ID:        uuid.NewString(),
		UserID:    userID,
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.turns[userID], msg)
	if len(history) > s.limit {
		history = history[len(history)-s.limit:]
	}
	s.turns[userID] = history
	return nil
}

// History returns a copy of the user's conversation window, oldest first.
func (s *Store) History(_ context.Context, userID string) []support.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.turns[userID]
	copied := make([]support.Message, len(history))
	copy(copied, history)
	return copied
}
