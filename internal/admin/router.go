// Package admin serves the privileged opcodes. The role check happens once in
// the event router before anything here runs.
package admin

import (
	"context"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/config"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/shop"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

// pickLimit caps how many entities a pick keyboard offers.
const pickLimit = 50

type Router struct {
	shop      *shop.Service
	orders    *order.Service
	prompts   *prompt.Executor
	messenger transport.Messenger
	tr        *i18n.Translator
	cfg       config.BotConfig
	logger    *zap.Logger
}

// New builds the router and registers the management chains with prompts.
func New(
	shopSvc *shop.Service,
	orders *order.Service,
	prompts *prompt.Executor,
	messenger transport.Messenger,
	tr *i18n.Translator,
	cfg config.BotConfig,
	logger *zap.Logger,
) *Router {
	r := &Router{
		shop:      shopSvc,
		orders:    orders,
		prompts:   prompts,
		messenger: messenger,
		tr:        tr,
		cfg:       cfg,
		logger:    logger.Named("admin"),
	}

	prompts.Register(prompt.CategoryChain, r.completeCategory)
	prompts.Register(prompt.ProductChain, r.completeProduct)
	prompts.Register(prompt.UserChain, r.completeUser)
	prompts.Register(prompt.DeliveryChain, r.completeDelivery)
	prompts.Register(prompt.PromocodeChain, r.completePromocode)
	return r
}

type panelButton struct {
	key i18n.Key
	op  opcode.Opcode
}

var panel = [][]panelButton{
	{{i18n.BtnAddCategory, opcode.Add{Entity: opcode.EntityCategory}}, {i18n.BtnViewCategories, opcode.List{Entity: opcode.EntityCategory, Page: 1}}},
	{{i18n.BtnEditCategory, opcode.Pick{Entity: opcode.EntityCategory, Action: opcode.ActionEdit}}, {i18n.BtnDeleteCategory, opcode.Pick{Entity: opcode.EntityCategory, Action: opcode.ActionDelete}}},
	{{i18n.BtnAddProduct, opcode.Add{Entity: opcode.EntityProduct}}, {i18n.BtnViewProducts, opcode.List{Entity: opcode.EntityProduct, Page: 1}}},
	{{i18n.BtnEditProduct, opcode.Pick{Entity: opcode.EntityProduct, Action: opcode.ActionEdit}}, {i18n.BtnDeleteProduct, opcode.Pick{Entity: opcode.EntityProduct, Action: opcode.ActionDelete}}},
	{{i18n.BtnViewUsers, opcode.List{Entity: opcode.EntityUser, Page: 1}}},
	{{i18n.BtnEditUser, opcode.Pick{Entity: opcode.EntityUser, Action: opcode.ActionEdit}}, {i18n.BtnDeleteUser, opcode.Pick{Entity: opcode.EntityUser, Action: opcode.ActionDelete}}},
	{{i18n.BtnViewOrders, opcode.List{Entity: opcode.EntityOrder, Page: 1}}, {i18n.BtnViewDeliveries, opcode.List{Entity: opcode.EntityDelivery, Page: 1}}},
	{{i18n.BtnEditDelivery, opcode.Pick{Entity: opcode.EntityDelivery, Action: opcode.ActionEdit}}},
	{{i18n.BtnViewFeedback, opcode.List{Entity: opcode.EntityFeedback, Page: 1}}, {i18n.BtnDeleteFeedback, opcode.Pick{Entity: opcode.EntityFeedback, Action: opcode.ActionDelete}}},
	{{i18n.BtnAddPromocode, opcode.Add{Entity: opcode.EntityPromocode}}, {i18n.BtnViewStats, opcode.Stats{}}},
}

// Panel sends the admin keyboard.
func (r *Router) Panel(ctx context.Context, chatID int64, lang string) error {
	rows := make([][]transport.Button, 0, len(panel))
	for _, specs := range panel {
		row := make([]transport.Button, 0, len(specs))
		for _, b := range specs {
			row = append(row, transport.Button{Text: r.tr.T(lang, b.key), Data: b.op.Data()})
		}
		rows = append(rows, row)
	}
	return r.send(ctx, chatID, r.tr.T(lang, i18n.AdminPanel), &transport.Options{Inline: rows})
}

// Handle dispatches one privileged opcode.
func (r *Router) Handle(ctx context.Context, chatID int64, lang string, op opcode.Opcode) error {
	r.logger.Debug("admin opcode", zap.Int64("chat_id", chatID), zap.String("opcode", op.Data()))

	switch op := op.(type) {
	case opcode.Add:
		return r.add(ctx, chatID, lang, op.Entity)
	case opcode.List:
		return r.list(ctx, chatID, lang, op.Entity, op.Page)
	case opcode.Pick:
		return r.pick(ctx, chatID, lang, op)
	case opcode.Edit:
		return r.edit(ctx, chatID, lang, op)
	case opcode.Delete:
		return r.delete(ctx, chatID, lang, op)
	case opcode.Stats:
		return r.stats(ctx, chatID, lang, op.Orders)
	}
	return apperrors.Validation("unknown_opcode", "not an admin opcode: %s", op.Data())
}

func (r *Router) send(ctx context.Context, chatID int64, text string, opts *transport.Options) error {
	return r.messenger.SendText(ctx, chatID, text, opts)
}

func (r *Router) add(ctx context.Context, chatID int64, lang string, entity opcode.Entity) error {
	chains := map[opcode.Entity]string{
		opcode.EntityCategory:  prompt.ChainCategory,
		opcode.EntityProduct:   prompt.ChainProduct,
		opcode.EntityPromocode: prompt.ChainPromocode,
	}
	chain, ok := chains[entity]
	if !ok {
		return apperrors.Validation("unknown_opcode", "cannot add %s", entity)
	}
	return r.prompts.Start(ctx, chatID, lang, chain, nil)
}

func (r *Router) delete(ctx context.Context, chatID int64, lang string, op opcode.Delete) error {
	var remove func(ctx context.Context, id int64) error
	var done i18n.Key
	switch op.Entity {
	case opcode.EntityCategory:
		remove, done = r.shop.DeleteCategory, i18n.CategoryDeleted
	case opcode.EntityProduct:
		remove, done = r.shop.DeleteProduct, i18n.ProductDeleted
	case opcode.EntityUser:
		remove, done = r.shop.DeleteUser, i18n.UserDeleted
	case opcode.EntityFeedback:
		remove, done = r.shop.DeleteFeedback, i18n.FeedbackDeleted
	default:
		return apperrors.Validation("unknown_opcode", "cannot delete %s", op.Entity)
	}

	if err := remove(ctx, op.ID); err != nil {
		return err
	}
	r.logger.Info("entity deleted", zap.String("entity", string(op.Entity)), zap.Int64("id", op.ID), zap.Int64("admin_chat_id", chatID))
	return r.send(ctx, chatID, r.tr.T(lang, done), nil)
}
