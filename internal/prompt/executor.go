// Package prompt drives multi-field question/answer chains. Chains are
// declared data; progress lives in session.PendingPrompt so a chain survives
// restarts and never parks a goroutine waiting for input.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

// CompleteFunc consumes a finished chain.
type CompleteFunc func(ctx context.Context, sub Submission) error

// Sessions is the slice of the session registry the executor needs.
type Sessions interface {
	SetPrompt(ctx context.Context, chatID int64, p *session.PendingPrompt) (*session.PendingPrompt, error)
	ConsumeAnswer(ctx context.Context, chatID int64, in session.Answer, stepper session.Stepper) (session.StepAdvance, error)
	ClearPrompt(ctx context.Context, chatID int64) (*session.PendingPrompt, error)
}

type registration struct {
	chain      Chain
	onComplete CompleteFunc
}

type Executor struct {
	sessions   Sessions
	messenger  transport.Messenger
	translator *i18n.Translator
	logger     *zap.Logger
	now        func() time.Time

	chains map[string]registration
}

func NewExecutor(sessions Sessions, messenger transport.Messenger, translator *i18n.Translator, logger *zap.Logger) *Executor {
	return &Executor{
		sessions:   sessions,
		messenger:  messenger,
		translator: translator,
		logger:     logger.Named("prompt"),
		now:        time.Now,
		chains:     make(map[string]registration),
	}
}

// Register binds a chain to its completion handler. Registering the same
// name twice panics.
func (e *Executor) Register(chain Chain, onComplete CompleteFunc) {
	if _, dup := e.chains[chain.Name]; dup {
		panic(fmt.Sprintf("prompt: chain %q registered twice", chain.Name))
	}
	if len(chain.Fields) == 0 {
		panic(fmt.Sprintf("prompt: chain %q has no fields", chain.Name))
	}
	e.chains[chain.Name] = registration{chain: chain, onComplete: onComplete}
}

func (e *Executor) lookup(name string) (registration, error) {
	reg, ok := e.chains[name]
	if !ok {
		return registration{}, fmt.Errorf("prompt: unknown chain %q", name)
	}
	return reg, nil
}

// Start installs a new prompt for the chain and asks its first question. When
// the replace policy superseded an unfinished prompt the user is told so.
func (e *Executor) Start(ctx context.Context, chatID int64, lang, chain string, captured map[string]string) error {
	reg, err := e.lookup(chain)
	if err != nil {
		return err
	}

	p := session.NewPendingPrompt(chain, captured, e.now())
	superseded, err := e.sessions.SetPrompt(ctx, chatID, p)
	if err != nil {
		return err
	}
	if superseded != nil {
		e.send(ctx, chatID, e.translator.T(lang, i18n.PromptDiscarded), nil)
	}

	return e.ask(ctx, chatID, lang, reg.chain.Fields[0])
}

// Answer feeds one reply to the chat's pending prompt. It returns
// apperrors.ErrNoPendingPrompt when nothing is outstanding so the caller can
// route the event elsewhere.
func (e *Executor) Answer(ctx context.Context, chatID int64, lang string, in session.Answer) error {
	adv, err := e.sessions.ConsumeAnswer(ctx, chatID, in, e)
	if err != nil {
		return err
	}

	reg, err := e.lookup(adv.Prompt.Chain)
	if err != nil {
		return err
	}

	if adv.Invalid != nil {
		var perr *ParseError
		if errors.As(adv.Invalid, &perr) {
			e.send(ctx, chatID, e.translator.T(lang, i18n.InvalidInput, e.translator.T(lang, perr.Key)), nil)
		}
		return e.ask(ctx, chatID, lang, reg.chain.Fields[adv.Prompt.Step])
	}

	if !adv.Completed {
		return e.ask(ctx, chatID, lang, reg.chain.Fields[adv.Prompt.Step])
	}

	e.logger.Debug("chain completed", zap.Int64("chat_id", chatID), zap.String("chain", reg.chain.Name))
	sub := NewSubmission(chatID, lang, adv.Prompt.Collected, adv.Prompt.Context)
	if reg.onComplete == nil {
		return nil
	}
	return reg.onComplete(ctx, sub)
}

// Cancel drops the pending prompt. cancelled is false when there was none.
func (e *Executor) Cancel(ctx context.Context, chatID int64) (cancelled bool, err error) {
	p, err := e.sessions.ClearPrompt(ctx, chatID)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

// Step implements session.Stepper. It never advances past a rejected answer.
func (e *Executor) Step(p *session.PendingPrompt, in session.Answer) (session.StepAdvance, error) {
	reg, err := e.lookup(p.Chain)
	if err != nil {
		return session.StepAdvance{}, err
	}
	fields := reg.chain.Fields
	if p.Step < 0 || p.Step >= len(fields) {
		return session.StepAdvance{}, fmt.Errorf("prompt %s: step %d out of range", p.Chain, p.Step)
	}

	value, invalid := parseAnswer(fields[p.Step], in)
	if invalid != nil {
		return session.StepAdvance{Prompt: p, Invalid: invalid}, nil
	}

	p.Collected[fields[p.Step].Name] = value
	p.Step++
	return session.StepAdvance{Prompt: p, Completed: p.Step == len(fields)}, nil
}

func parseAnswer(field FieldSpec, in session.Answer) (string, error) {
	if field.Input == InputLocation {
		if in.Location == nil {
			return "", reject(i18n.ParseNeedLoc)
		}
		return strconv.FormatFloat(in.Location.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(in.Location.Longitude, 'f', -1, 64), nil
	}

	if in.Location != nil {
		return "", reject(i18n.ParseRequired)
	}
	raw := strings.TrimSpace(in.Text)
	if field.Optional && (raw == "" || raw == "-") {
		return "", nil
	}
	if raw == "" {
		return "", reject(i18n.ParseRequired)
	}
	if field.Parse == nil {
		return raw, nil
	}
	return field.Parse(raw)
}

func (e *Executor) ask(ctx context.Context, chatID int64, lang string, field FieldSpec) error {
	var opts *transport.Options
	if field.Input == InputLocation {
		opts = &transport.Options{
			Reply:   [][]transport.ReplyButton{{{Text: e.translator.T(lang, i18n.BtnShareLocation), RequestLocation: true}}},
			OneTime: true,
		}
	}
	return e.messenger.SendText(ctx, chatID, e.translator.T(lang, field.Prompt), opts)
}

func (e *Executor) send(ctx context.Context, chatID int64, text string, opts *transport.Options) {
	if err := e.messenger.SendText(ctx, chatID, text, opts); err != nil {
		e.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
