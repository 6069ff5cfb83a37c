// Package checkout implements the customer side of the storefront: browsing,
// the cart, and the checkout state machine from cart to paid order.
//
// Chats are private, so a chat id is also the customer's telegram id.
package checkout

import (
	"context"

	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/notify"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/session"
	"github.com/safar/go-chat-store/internal/shop"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

// Sessions is the part of the session registry the orchestrator writes.
type Sessions interface {
	SetLanguage(ctx context.Context, chatID int64, language string) (*session.ChatSession, error)
	SetRole(ctx context.Context, chatID int64, role session.Role) (*session.ChatSession, error)
}

type Orchestrator struct {
	shop      *shop.Service
	orders    *order.Service
	prompts   *prompt.Executor
	sessions  Sessions
	notifier  *notify.Notifier
	messenger transport.Messenger
	tr        *i18n.Translator
	cfg       config.BotConfig
	logger    *zap.Logger
}

// New builds the orchestrator and registers its prompt chains with prompts.
func New(
	shopSvc *shop.Service,
	orders *order.Service,
	prompts *prompt.Executor,
	sessions Sessions,
	notifier *notify.Notifier,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg config.BotConfig,
	logger *zap.Logger,
) *Orchestrator {
	o := &Orchestrator{
		shop:      shopSvc,
		orders:    orders,
		prompts:   prompts,
		sessions:  sessions,
		notifier:  notifier,
		messenger: messenger,
		tr:        tr,
		cfg:       cfg,
		logger:    logger.Named("checkout"),
	}

	prompts.Register(prompt.PhoneChain, o.completePhone)
	prompts.Register(prompt.CheckoutChain, o.completeAddress)
	prompts.Register(prompt.FeedbackChain, o.completeFeedback)
	return o
}

func (o *Orchestrator) customer(ctx context.Context, chatID int64) (*models.User, error) {
	return o.shop.UserByTelegramID(ctx, chatID)
}

func (o *Orchestrator) send(ctx context.Context, chatID int64, text string, opts *transport.Options) error {
	return o.messenger.SendText(ctx, chatID, text, opts)
}

func (o *Orchestrator) pageSize() int {
	if o.cfg.PageSize > 0 {
		return o.cfg.PageSize
	}
	return 10
}
