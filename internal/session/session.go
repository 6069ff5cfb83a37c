// Package session owns the per-chat conversational state: language, role and
// the single outstanding prompt.
package session

import (
	"context"
	"maps"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// PendingPrompt is a resumable prompt chain. Chain names a chain definition
// registered with the executor; Step indexes its next unfilled field.
type PendingPrompt struct {
	ID        uuid.UUID         `json:"id"`
	Chain     string            `json:"chain"`
	Step      int               `json:"step"`
	Collected map[string]string `json:"collected"`
	Context   map[string]string `json:"context,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewPendingPrompt(chain string, context map[string]string, now time.Time) *PendingPrompt {
	return &PendingPrompt{
		ID:        uuid.New(),
		Chain:     chain,
		Collected: map[string]string{},
		Context:   maps.Clone(context),
		CreatedAt: now,
	}
}

func (p *PendingPrompt) Clone() *PendingPrompt {
	if p == nil {
		return nil
	}
	c := *p
	c.Collected = maps.Clone(p.Collected)
	c.Context = maps.Clone(p.Context)
	if c.Collected == nil {
		c.Collected = map[string]string{}
	}
	return &c
}

type ChatSession struct {
	ChatID   int64          `json:"chat_id"`
	Language string         `json:"language"`
	Role     Role           `json:"role"`
	Pending  *PendingPrompt `json:"pending,omitempty"`
}

func (s *ChatSession) Clone() *ChatSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Pending = s.Pending.Clone()
	return &c
}

func (s *ChatSession) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Store persists sessions. Load reports found=false for an unknown chat.
type Store interface {
	Load(ctx context.Context, chatID int64) (sess *ChatSession, found bool, err error)
	Save(ctx context.Context, sess *ChatSession) error
}
