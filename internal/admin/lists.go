package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/transport"
)

// listing is one rendered page of an entity list.
type listing struct {
	lines      []string
	page       int
	totalPages int
}

func fromPage[T any](p *repository.Page[T], line func(T) string) listing {
	l := listing{page: p.Page, totalPages: p.TotalPages}
	for _, item := range p.Items {
		l.lines = append(l.lines, line(item))
	}
	return l
}

func (r *Router) list(ctx context.Context, chatID int64, lang string, entity opcode.Entity, page int) error {
	req := repository.NewPageRequest(page, r.cfg.PageSize)

	var (
		l   listing
		err error
	)
	switch entity {
	case opcode.EntityCategory:
		l, err = r.categoryListing(ctx, lang)
	case opcode.EntityProduct:
		l, err = r.productListing(ctx, lang, req)
	case opcode.EntityUser:
		l, err = r.userListing(ctx, lang, req)
	case opcode.EntityOrder:
		l, err = r.orderListing(ctx, lang, req)
	case opcode.EntityDelivery:
		l, err = r.deliveryListing(ctx, lang, req)
	case opcode.EntityFeedback:
		l, err = r.feedbackListing(ctx, lang, req)
	default:
		return apperrors.Validation("unknown_opcode", "cannot list %s", entity)
	}
	if err != nil {
		return errors.Wrapf(err, "list %s", entity)
	}

	if len(l.lines) == 0 {
		return r.send(ctx, chatID, r.tr.T(lang, i18n.ListEmpty), nil)
	}

	text := strings.Join(l.lines, "\n")
	if l.totalPages > 1 {
		text += "\n\n" + r.tr.T(lang, i18n.ListPage, l.page, l.totalPages)
	}

	var nav []transport.Button
	if l.page > 1 {
		nav = append(nav, transport.Button{Text: r.tr.T(lang, i18n.BtnPrev), Data: opcode.List{Entity: entity, Page: l.page - 1}.Data()})
	}
	if l.page < l.totalPages {
		nav = append(nav, transport.Button{Text: r.tr.T(lang, i18n.BtnNext), Data: opcode.List{Entity: entity, Page: l.page + 1}.Data()})
	}
	var opts *transport.Options
	if len(nav) > 0 {
		opts = &transport.Options{Inline: [][]transport.Button{nav}}
	}
	return r.send(ctx, chatID, text, opts)
}

func (r *Router) categoryListing(ctx context.Context, lang string) (listing, error) {
	categories, err := r.shop.Categories(ctx)
	if err != nil {
		return listing{}, err
	}
	l := listing{page: 1, totalPages: 1}
	for _, c := range categories {
		l.lines = append(l.lines, r.tr.T(lang, i18n.ListCategoryLine, c.ID, c.Name, c.NameRu))
	}
	return l, nil
}

func (r *Router) productListing(ctx context.Context, lang string, req repository.PageRequest) (listing, error) {
	page, err := r.shop.ListProducts(ctx, req)
	if err != nil {
		return listing{}, err
	}
	return fromPage(page, func(p models.Product) string {
		return r.tr.T(lang, i18n.ListProductLine, p.ID, i18n.Pick(lang, p.Name, p.NameRu), r.tr.Money(lang, p.Price), p.Stock)
	}), nil
}

func (r *Router) userListing(ctx context.Context, lang string, req repository.PageRequest) (listing, error) {
	page, err := r.shop.ListUsers(ctx, req)
	if err != nil {
		return listing{}, err
	}
	return fromPage(page, func(u models.User) string {
		phone := u.Phone
		if phone == "" {
			phone = r.tr.T(lang, i18n.NotSpecified)
		}
		role := "customer"
		if u.IsAdmin {
			role = "admin"
		}
		return r.tr.T(lang, i18n.ListUserLine, u.ID, u.FullName, phone, role)
	}), nil
}

func (r *Router) orderListing(ctx context.Context, lang string, req repository.PageRequest) (listing, error) {
	page, err := r.orders.List(ctx, req)
	if err != nil {
		return listing{}, err
	}
	return fromPage(page, func(o models.Order) string {
		return r.tr.T(lang, i18n.ListOrderLine,
			o.OrderNumber,
			r.tr.T(lang, i18n.StatusKey(string(o.Status))),
			r.tr.Money(lang, o.TotalAmount),
			o.CreatedAt.Format("2006-01-02 15:04"),
		)
	}), nil
}

func (r *Router) deliveryListing(ctx context.Context, lang string, req repository.PageRequest) (listing, error) {
	page, err := r.shop.ListDeliveries(ctx, req)
	if err != nil {
		return listing{}, err
	}
	return fromPage(page, func(d models.Delivery) string {
		address := d.AddressDetails
		if d.CourierName != nil {
			address += " / " + *d.CourierName
		}
		return r.tr.T(lang, i18n.ListDeliveryLine, d.ID, d.OrderID, r.tr.T(lang, i18n.DeliveryStatusKey(string(d.Status))), address)
	}), nil
}

func (r *Router) feedbackListing(ctx context.Context, lang string, req repository.PageRequest) (listing, error) {
	page, err := r.shop.ListFeedback(ctx, req)
	if err != nil {
		return listing{}, err
	}
	return fromPage(page, func(f models.Feedback) string {
		return r.tr.T(lang, i18n.ListFeedbackLine, f.ID, f.Rating, f.Comment, f.ProductID)
	}), nil
}

type choice struct {
	id    int64
	label string
}

var pickPrompts = map[opcode.Pick]i18n.Key{
	{Entity: opcode.EntityCategory, Action: opcode.ActionEdit}:   i18n.PickCategoryEdit,
	{Entity: opcode.EntityCategory, Action: opcode.ActionDelete}: i18n.PickCategoryDelete,
	{Entity: opcode.EntityProduct, Action: opcode.ActionEdit}:    i18n.PickProductEdit,
	{Entity: opcode.EntityProduct, Action: opcode.ActionDelete}:  i18n.PickProductDelete,
	{Entity: opcode.EntityUser, Action: opcode.ActionEdit}:       i18n.PickUserEdit,
	{Entity: opcode.EntityUser, Action: opcode.ActionDelete}:     i18n.PickUserDelete,
	{Entity: opcode.EntityDelivery, Action: opcode.ActionEdit}:   i18n.PickDeliveryEdit,
	{Entity: opcode.EntityFeedback, Action: opcode.ActionDelete}: i18n.PickFeedbackDelete,
}

// pick offers the entities an edit or delete can target.
func (r *Router) pick(ctx context.Context, chatID int64, lang string, op opcode.Pick) error {
	title, ok := pickPrompts[op]
	if !ok {
		return apperrors.Validation("unknown_opcode", "cannot %s %s", op.Action, op.Entity)
	}

	choices, err := r.choices(ctx, lang, op.Entity)
	if err != nil {
		return errors.Wrapf(err, "pick %s", op.Entity)
	}
	if len(choices) == 0 {
		return r.send(ctx, chatID, r.tr.T(lang, i18n.ListEmpty), nil)
	}

	buttons := make([]transport.Button, 0, len(choices))
	for _, c := range choices {
		var target opcode.Opcode = opcode.Edit{Entity: op.Entity, ID: c.id}
		if op.Action == opcode.ActionDelete {
			target = opcode.Delete{Entity: op.Entity, ID: c.id}
		}
		buttons = append(buttons, transport.Button{Text: c.label, Data: target.Data()})
	}
	return r.send(ctx, chatID, r.tr.T(lang, title), &transport.Options{Inline: transport.InlineColumn(buttons...)})
}

func (r *Router) choices(ctx context.Context, lang string, entity opcode.Entity) ([]choice, error) {
	req := repository.NewPageRequest(1, pickLimit)
	var out []choice

	switch entity {
	case opcode.EntityCategory:
		categories, err := r.shop.Categories(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			out = append(out, choice{c.ID, i18n.Pick(lang, c.Name, c.NameRu)})
		}
	case opcode.EntityProduct:
		page, err := r.shop.ListProducts(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, p := range page.Items {
			out = append(out, choice{p.ID, i18n.Pick(lang, p.Name, p.NameRu)})
		}
	case opcode.EntityUser:
		page, err := r.shop.ListUsers(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, u := range page.Items {
			out = append(out, choice{u.ID, fmt.Sprintf("%s (%d)", u.FullName, u.TelegramID)})
		}
	case opcode.EntityDelivery:
		page, err := r.shop.ListDeliveries(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, d := range page.Items {
			out = append(out, choice{d.ID, fmt.Sprintf("#%d — %s", d.OrderID, r.tr.T(lang, i18n.DeliveryStatusKey(string(d.Status))))})
		}
	case opcode.EntityFeedback:
		page, err := r.shop.ListFeedback(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, f := range page.Items {
			out = append(out, choice{f.ID, fmt.Sprintf("%d. %s", f.ID, strings.Repeat("⭐", f.Rating))})
		}
	}
	return out, nil
}

func (r *Router) stats(ctx context.Context, chatID int64, lang string, byStatus bool) error {
	stats, err := r.orders.GetStats(ctx)
	if err != nil {
		return err
	}

	if !byStatus {
		text := r.tr.T(lang, i18n.StatsSummary, stats.TotalOrders, r.tr.Money(lang, stats.TotalAmount))
		opts := &transport.Options{Inline: [][]transport.Button{{
			{Text: r.tr.T(lang, i18n.BtnOrderStats), Data: opcode.Stats{Orders: true}.Data()},
		}}}
		return r.send(ctx, chatID, text, opts)
	}

	statuses := []models.OrderStatus{
		models.OrderStatusCreated,
		models.OrderStatusAwaitingPayment,
		models.OrderStatusPaid,
		models.OrderStatusCancelled,
	}
	lines := make([]string, 0, len(statuses))
	for _, s := range statuses {
		lines = append(lines, r.tr.T(lang, i18n.StatsByStatus, r.tr.T(lang, i18n.StatusKey(string(s))), stats.ByStatus[s]))
	}
	return r.send(ctx, chatID, strings.Join(lines, "\n"), nil)
}
