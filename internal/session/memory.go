package session

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]*ChatSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*ChatSession)}
}

func (m *MemoryStore) Load(_ context.Context, chatID int64) (*ChatSession, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[chatID]
	if !ok {
		return nil, false, nil
	}
	return sess.Clone(), true, nil
}

func (m *MemoryStore) Save(_ context.Context, sess *ChatSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.ChatID] = sess.Clone()
	return nil
}
