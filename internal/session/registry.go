package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/safar/go-chat-store/internal/apperrors"
	"go.uber.org/zap"
)

// ReplacePolicy decides what happens when a prompt is installed while another
// is still pending.
type ReplacePolicy string

const (
	// PolicyReplace installs the new prompt and hands the superseded one back
	// so the caller can tell the user it was discarded.
	PolicyReplace ReplacePolicy = "replace"
	// PolicyReject refuses the new prompt with apperrors.ErrPromptPending.
	PolicyReject ReplacePolicy = "reject"
)

func ParseReplacePolicy(s string) (ReplacePolicy, error) {
	switch p := ReplacePolicy(s); p {
	case PolicyReplace, PolicyReject:
		return p, nil
	case "":
		return PolicyReplace, nil
	}
	return "", fmt.Errorf("unknown prompt policy %q", s)
}

// StepAdvance is the outcome of feeding one answer to a pending prompt.
type StepAdvance struct {
	// Prompt is the prompt state after the answer.
	Prompt *PendingPrompt
	// Invalid is the parse failure when the answer was rejected; the step
	// did not advance.
	Invalid error
	// Completed is set when the last field was filled; the prompt has been
	// cleared from the session.
	Completed bool
}

// Answer is one inbound reply: free text or a shared location.
type Answer struct {
	Text     string
	Location *Location
}

type Location struct {
	Latitude  float64
	Longitude float64
}

func TextAnswer(text string) Answer {
	return Answer{Text: text}
}

// Stepper applies one answer to a prompt, returning the advanced copy.
type Stepper interface {
	Step(p *PendingPrompt, in Answer) (StepAdvance, error)
}

type Options struct {
	DefaultLanguage string
	Policy          ReplacePolicy
	// IsAdmin seeds the role of newly created sessions.
	IsAdmin func(chatID int64) bool
	// StoredLanguage seeds the language of newly created sessions from the
	// chat's saved profile. An empty result falls back to DefaultLanguage.
	StoredLanguage func(ctx context.Context, chatID int64) (string, error)
	Now            func() time.Time
}

// Registry is the single source of truth for whether a chat has a prompt
// outstanding. Read-modify-write operations on one chat are serialized.
type Registry struct {
	store  Store
	opts   Options
	logger *zap.Logger

	locks sync.Map // chatID -> *sync.Mutex
}

func NewRegistry(store Store, opts Options, logger *zap.Logger) *Registry {
	if opts.Policy == "" {
		opts.Policy = PolicyReplace
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = "uz"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Registry{store: store, opts: opts, logger: logger.Named("session")}
}

func (r *Registry) Policy() ReplacePolicy {
	return r.opts.Policy
}

func (r *Registry) lock(chatID int64) func() {
	m, _ := r.locks.LoadOrStore(chatID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (r *Registry) load(ctx context.Context, chatID int64) (*ChatSession, error) {
	sess, found, err := r.store.Load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if found {
		return sess, nil
	}

	role := RoleCustomer
	if r.opts.IsAdmin != nil && r.opts.IsAdmin(chatID) {
		role = RoleAdmin
	}
	sess = &ChatSession{ChatID: chatID, Language: r.storedLanguage(ctx, chatID), Role: role}
	if err := r.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	r.logger.Debug("session created", zap.Int64("chat_id", chatID), zap.String("role", string(role)))
	return sess, nil
}

func (r *Registry) storedLanguage(ctx context.Context, chatID int64) string {
	if r.opts.StoredLanguage == nil {
		return r.opts.DefaultLanguage
	}
	lang, err := r.opts.StoredLanguage(ctx, chatID)
	if err != nil {
		r.logger.Warn("stored language lookup failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return r.opts.DefaultLanguage
	}
	if lang == "" {
		return r.opts.DefaultLanguage
	}
	return lang
}

// update runs fn on the chat's session and saves it when fn succeeds.
func (r *Registry) update(ctx context.Context, chatID int64, fn func(sess *ChatSession) error) (*ChatSession, error) {
	unlock := r.lock(chatID)
	defer unlock()

	sess, err := r.load(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := r.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess.Clone(), nil
}

func (r *Registry) GetOrCreate(ctx context.Context, chatID int64) (*ChatSession, error) {
	unlock := r.lock(chatID)
	defer unlock()

	return r.load(ctx, chatID)
}

// SetPrompt installs p as the chat's only pending prompt. Under PolicyReplace
// the superseded prompt, if any, is returned.
func (r *Registry) SetPrompt(ctx context.Context, chatID int64, p *PendingPrompt) (*PendingPrompt, error) {
	var superseded *PendingPrompt
	_, err := r.update(ctx, chatID, func(sess *ChatSession) error {
		if sess.Pending != nil && r.opts.Policy == PolicyReject {
			return apperrors.ErrPromptPending
		}
		superseded = sess.Pending
		sess.Pending = p.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if superseded != nil {
		r.logger.Info("pending prompt superseded",
			zap.Int64("chat_id", chatID),
			zap.String("old_chain", superseded.Chain),
			zap.String("new_chain", p.Chain),
		)
	}
	return superseded, nil
}

// ConsumeAnswer feeds in to the pending prompt through stepper. It fails with
// apperrors.ErrNoPendingPrompt when nothing is outstanding.
func (r *Registry) ConsumeAnswer(ctx context.Context, chatID int64, in Answer, stepper Stepper) (StepAdvance, error) {
	var adv StepAdvance
	_, err := r.update(ctx, chatID, func(sess *ChatSession) error {
		if sess.Pending == nil {
			return apperrors.ErrNoPendingPrompt
		}
		next, err := stepper.Step(sess.Pending.Clone(), in)
		if err != nil {
			return err
		}
		adv = next
		if adv.Completed {
			sess.Pending = nil
		} else {
			sess.Pending = adv.Prompt.Clone()
		}
		return nil
	})
	return adv, err
}

// ClearPrompt drops the pending prompt and returns it, or nil if none.
func (r *Registry) ClearPrompt(ctx context.Context, chatID int64) (*PendingPrompt, error) {
	var cleared *PendingPrompt
	_, err := r.update(ctx, chatID, func(sess *ChatSession) error {
		cleared = sess.Pending
		sess.Pending = nil
		return nil
	})
	return cleared, err
}

func (r *Registry) SetLanguage(ctx context.Context, chatID int64, language string) (*ChatSession, error) {
	return r.update(ctx, chatID, func(sess *ChatSession) error {
		sess.Language = language
		return nil
	})
}

func (r *Registry) SetRole(ctx context.Context, chatID int64, role Role) (*ChatSession, error) {
	return r.update(ctx, chatID, func(sess *ChatSession) error {
		sess.Role = role
		return nil
	})
}
