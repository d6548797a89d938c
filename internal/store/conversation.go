// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-chat/models"
)

// conversationStore keeps the last limit turns of every user's chat. Entries
// untouched for longer than the janitor's idle TTL are evicted.
type conversationStore struct {
	mu    sync.Mutex
	limit int
	now   func() time.Time
	users map[int64]*conversation
}

type conversation struct {
	turns    []models.Message
	lastSeen time.Time
}

func NewConversationStore(limit int) ConversationStore {
	if limit <= 0 {
		limit = 1
	}
	return &conversationStore{
		limit: limit,
		now:   time.Now,
		users: make(map[int64]*conversation),
	}
}

// Append adds messages to the user's history and drops the oldest turns
// beyond the limit.
func (s *conversationStore) Append(userID int64, messages ...models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.users[userID]
	if !ok {
		c = &conversation{turns: make([]models.Message, 0, s.limit+len(messages))}
		s.users[userID] = c
	}

	c.turns = append(c.turns, messages...)
	if over := len(c.turns) - s.limit; over > 0 {
		c.turns = append(c.turns[:0], c.turns[over:]...)
	}
	c.lastSeen = s.now()
}

// History returns a copy of the user's turns, oldest first.
func (s *conversationStore) History(userID int64) []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.users[userID]
	if !ok {
		return nil
	}
	c.lastSeen = s.now()

	out := make([]models.Message, len(c.turns))
	copy(out, c.turns)
	return out
}

// EvictIdle drops every history not touched within idleFor and returns how
// many were removed.
func (s *conversationStore) EvictIdle(idleFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idleFor)
	evicted := 0
	for userID, c := range s.users {
		if c.lastSeen.Before(cutoff) {
			delete(s.users, userID)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of users with a live history.
func (s *conversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}
