// Package bot routes decoded chat events to the customer and admin flows. It
// is the only layer that turns an error into a chat message.
package bot

import (
	"context"
	"errors"
	"strings"

	"github.com/safar/go-chat-store/internal/admin"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/checkout"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

type menuAction func(r *Router, ctx context.Context, chatID int64, lang string) error

var menuActions = map[i18n.Key]menuAction{
	i18n.BtnCategories: func(r *Router, ctx context.Context, chatID int64, lang string) error {
		return r.checkout.Categories(ctx, chatID, lang)
	},
	i18n.BtnCart: func(r *Router, ctx context.Context, chatID int64, lang string) error {
		return r.checkout.ShowCart(ctx, chatID, lang)
	},
	i18n.BtnProfile: func(r *Router, ctx context.Context, chatID int64, lang string) error {
		return r.checkout.Profile(ctx, chatID, lang)
	},
	i18n.BtnHistory: func(r *Router, ctx context.Context, chatID int64, lang string) error {
		return r.checkout.History(ctx, chatID, lang, 1)
	},
	i18n.BtnLanguage: func(r *Router, ctx context.Context, chatID int64, lang string) error {
		return r.checkout.ChooseLanguage(ctx, chatID, lang)
	},
}

type Router struct {
	sessions  *session.Registry
	prompts   *prompt.Executor
	checkout  *checkout.Orchestrator
	admin     *admin.Router
	messenger transport.Messenger
	tr        *i18n.Translator
	cfg       config.BotConfig
	logger    *zap.Logger

	// menu maps every localized reply-keyboard label to its action.
	menu map[string]menuAction
}

func NewRouter(
	sessions *session.Registry,
	prompts *prompt.Executor,
	co *checkout.Orchestrator,
	adm *admin.Router,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg config.BotConfig,
	logger *zap.Logger,
) *Router {
	r := &Router{
		sessions:  sessions,
		prompts:   prompts,
		checkout:  co,
		admin:     adm,
		messenger: messenger,
		tr:        tr,
		cfg:       cfg,
		logger:    logger.Named("router"),
		menu:      make(map[string]menuAction),
	}
	for _, lang := range i18n.Languages {
		for _, row := range checkout.MenuKeys {
			for _, key := range row {
				r.menu[tr.T(lang, key)] = menuActions[key]
			}
		}
	}
	return r
}

// Handle processes one update to completion. Button presses are always
// acknowledged, whatever the outcome.
func (r *Router) Handle(ctx context.Context, u transport.Update) {
	lang := r.cfg.DefaultLanguage
	sess, err := r.sessions.GetOrCreate(ctx, u.ChatID)
	if err == nil {
		lang = sess.Language
		err = r.route(ctx, u, sess)
	}

	if press, ok := u.Event.(transport.ButtonPress); ok {
		if ackErr := r.messenger.Acknowledge(ctx, press.CallbackID, ""); ackErr != nil {
			r.logger.Warn("acknowledge failed", zap.Int64("chat_id", u.ChatID), zap.Error(ackErr))
		}
	}

	if err != nil {
		r.report(ctx, u.ChatID, lang, err)
	}
}

func (r *Router) route(ctx context.Context, u transport.Update, sess *session.ChatSession) error {
	lang := sess.Language

	switch ev := u.Event.(type) {
	case transport.Command:
		return r.command(ctx, u, sess, ev)

	case transport.ButtonPress:
		if opcode.IsAdminData(ev.Data) && !sess.IsAdmin() {
			r.logger.Warn("admin opcode refused", zap.Int64("chat_id", u.ChatID), zap.String("opcode", ev.Data))
			return apperrors.ErrPermissionDenied
		}
		op, err := opcode.Decode(ev.Data)
		if err != nil {
			return err
		}
		if opcode.RequiresAdmin(op) && !sess.IsAdmin() {
			return apperrors.ErrPermissionDenied
		}
		return r.dispatch(ctx, u.ChatID, lang, op)

	case transport.TextReply:
		err := r.prompts.Answer(ctx, u.ChatID, lang, session.TextAnswer(ev.Raw))
		if !errors.Is(err, apperrors.ErrNoPendingPrompt) {
			return err
		}
		if action, ok := r.menu[strings.TrimSpace(ev.Raw)]; ok {
			return action(r, ctx, u.ChatID, lang)
		}
		return r.checkout.MainMenu(ctx, u.ChatID, lang)

	case transport.LocationShare:
		in := session.Answer{Location: &session.Location{Latitude: ev.Latitude, Longitude: ev.Longitude}}
		return r.prompts.Answer(ctx, u.ChatID, lang, in)
	}

	r.logger.Debug("unhandled event", zap.Int64("chat_id", u.ChatID))
	return nil
}

// command handles slash commands. /start, /admin and /cancel drop any
// unfinished form first.
func (r *Router) command(ctx context.Context, u transport.Update, sess *session.ChatSession, cmd transport.Command) error {
	lang := sess.Language

	switch cmd.Name {
	case "start", "admin", "cancel":
		cancelled, err := r.prompts.Cancel(ctx, u.ChatID)
		if err != nil {
			return err
		}
		switch cmd.Name {
		case "start":
			_, err = r.checkout.Start(ctx, u.ChatID, u.From, lang)
			return err
		case "admin":
			if !sess.IsAdmin() {
				return apperrors.ErrPermissionDenied
			}
			return r.admin.Panel(ctx, u.ChatID, lang)
		}
		key := i18n.NothingToCancel
		if cancelled {
			key = i18n.PromptCancelled
		}
		return r.messenger.SendText(ctx, u.ChatID, r.tr.T(lang, key), &transport.Options{RemoveKeyboard: true})

	case "promocode":
		return r.checkout.ApplyPromocode(ctx, u.ChatID, lang, strings.Join(cmd.Args, " "))
	}

	return apperrors.Validation("unknown_opcode", "unknown command /%s", cmd.Name)
}

func (r *Router) dispatch(ctx context.Context, chatID int64, lang string, op opcode.Opcode) error {
	switch op := op.(type) {
	case opcode.SetLanguage:
		return r.checkout.SetLanguage(ctx, chatID, op.Language)
	case opcode.ShowCategory:
		return r.checkout.ShowCategory(ctx, chatID, lang, op.CategoryID)
	case opcode.ShowProduct:
		return r.checkout.ShowProduct(ctx, chatID, lang, op.ProductID)
	case opcode.AddToCart:
		return r.checkout.AddToCart(ctx, chatID, lang, op.ProductID)
	case opcode.ClearCart:
		return r.checkout.ClearCart(ctx, chatID, lang)
	case opcode.RequestFeedback:
		return r.checkout.RequestFeedback(ctx, chatID, lang, op.ProductID)
	case opcode.RateProduct:
		return r.checkout.RateProduct(ctx, chatID, lang, op.ProductID, op.Rating)
	case opcode.PlaceOrder:
		return r.checkout.PlaceOrder(ctx, chatID, lang, op.OrderID)
	case opcode.ConfirmPayment:
		return r.checkout.ConfirmPayment(ctx, chatID, lang, op.OrderID, op.PaymentType)
	case opcode.OrderHistory:
		return r.checkout.History(ctx, chatID, lang, op.Page)
	case opcode.CancelOrder:
		return r.checkout.CancelOrder(ctx, chatID, lang, op.OrderID)
	}
	return r.admin.Handle(ctx, chatID, lang, op)
}
