package checkout

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/notify"
	"github.com/safar/go-chat-store/internal/opcode"
	"github.com/safar/go-chat-store/internal/prompt"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

const ctxOrderID = "order_id"

// PlaceOrder turns the cart into an order when orderID is 0, or resumes
// checkout of an existing order. A Created order is asked for its delivery
// location; an AwaitingPayment order gets the payment choice again.
func (o *Orchestrator) PlaceOrder(ctx context.Context, chatID int64, lang string, orderID int64) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}

	var ord *models.Order
	if orderID == 0 {
		if ord, err = o.orders.CreateFromCart(ctx, user.ID); err != nil {
			return err
		}
		if err := o.send(ctx, chatID, o.tr.T(lang, i18n.OrderCreated, ord.OrderNumber, o.tr.Money(lang, ord.TotalAmount)), nil); err != nil {
			return err
		}
	} else if ord, err = o.orders.Get(ctx, orderID, user.ID); err != nil {
		return err
	}

	switch ord.Status {
	case models.OrderStatusCreated:
		return o.askDelivery(ctx, chatID, lang, ord)
	case models.OrderStatusAwaitingPayment:
		return o.presentPayment(ctx, chatID, lang, ord)
	case models.OrderStatusPaid:
		return o.send(ctx, chatID, o.tr.T(lang, i18n.AlreadyPaid, ord.OrderNumber), nil)
	}
	return errors.Wrapf(apperrors.ErrIllegalStatus, "resume order %d in status %s", ord.ID, ord.Status)
}

func (o *Orchestrator) askDelivery(ctx context.Context, chatID int64, lang string, ord *models.Order) error {
	captured := map[string]string{ctxOrderID: strconv.FormatInt(ord.ID, 10)}
	return o.prompts.Start(ctx, chatID, lang, prompt.ChainCheckout, captured)
}

// completeAddress creates the delivery, which moves the order to
// AwaitingPayment, then offers the payment types.
func (o *Orchestrator) completeAddress(ctx context.Context, sub prompt.Submission) error {
	orderID, err := sub.ContextInt64(ctxOrderID)
	if err != nil {
		return err
	}
	lat, lon, err := sub.Location("location")
	if err != nil {
		return err
	}
	user, err := o.customer(ctx, sub.ChatID)
	if err != nil {
		return err
	}

	ord, err := o.orders.AttachDelivery(ctx, user.ID, &models.Delivery{
		OrderID:        orderID,
		Latitude:       lat,
		Longitude:      lon,
		AddressDetails: sub.String("address_details"),
	})
	if err != nil {
		return err
	}

	return o.presentPayment(ctx, sub.ChatID, sub.Language, ord)
}

func (o *Orchestrator) presentPayment(ctx context.Context, chatID int64, lang string, ord *models.Order) error {
	labels := map[models.PaymentType]i18n.Key{
		models.PaymentTypeClick: i18n.BtnPayClick,
		models.PaymentTypePayme: i18n.BtnPayPayme,
	}
	buttons := make([]transport.Button, 0, len(models.PaymentTypes)+1)
	for _, pt := range models.PaymentTypes {
		buttons = append(buttons, transport.Button{
			Text: o.tr.T(lang, labels[pt]),
			Data: opcode.ConfirmPayment{OrderID: ord.ID, PaymentType: pt}.Data(),
		})
	}
	buttons = append(buttons, transport.Button{
		Text: o.tr.T(lang, i18n.BtnCancelOrder, ord.OrderNumber),
		Data: opcode.CancelOrder{OrderID: ord.ID}.Data(),
	})

	text := o.tr.T(lang, i18n.ChoosePayment, ord.OrderNumber, o.tr.Money(lang, ord.TotalAmount))
	return o.send(ctx, chatID, text, &transport.Options{Inline: transport.InlineColumn(buttons...)})
}

// ConfirmPayment marks the order paid and fans the summary out. A repeated
// confirmation of a paid order only tells the customer it is already done.
func (o *Orchestrator) ConfirmPayment(ctx context.Context, chatID int64, lang string, orderID int64, pt models.PaymentType) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}

	conf, err := o.orders.ConfirmPayment(ctx, orderID, user.ID, pt)
	if err != nil {
		return err
	}
	if conf.AlreadyPaid {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.AlreadyPaid, conf.Order.OrderNumber), nil)
	}

	admins, err := o.shop.Admins(ctx)
	if err != nil {
		o.logger.Error("failed to load admins for notification", zap.Int64("order_id", orderID), zap.Error(err))
	}
	if user.Language == "" {
		user.Language = lang
	}
	recipients := notify.Recipients(user, admins, o.cfg.DefaultLanguage)
	o.notifier.PaymentConfirmed(ctx, conf, user, recipients)
	return nil
}

// CancelOrder cancels one of the customer's unfinished orders and restocks it.
func (o *Orchestrator) CancelOrder(ctx context.Context, chatID int64, lang string, orderID int64) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	ord, err := o.orders.Cancel(ctx, orderID, user.ID)
	if err != nil {
		return err
	}
	return o.send(ctx, chatID, o.tr.T(lang, i18n.OrderCancelled, ord.OrderNumber), nil)
}

func (o *Orchestrator) History(ctx context.Context, chatID int64, lang string, page int) error {
	user, err := o.customer(ctx, chatID)
	if err != nil {
		return err
	}
	result, err := o.orders.History(ctx, user.ID, repository.NewPageRequest(page, o.pageSize()))
	if err != nil {
		return errors.Wrap(err, "order history")
	}
	if result.Total == 0 {
		return o.send(ctx, chatID, o.tr.T(lang, i18n.HistoryEmpty), nil)
	}

	lines := []string{o.tr.T(lang, i18n.HistoryTitle, result.Page, result.TotalPages), ""}
	var buttons []transport.Button
	for _, ord := range result.Items {
		lines = append(lines, o.tr.T(lang, i18n.HistoryEntry,
			ord.OrderNumber,
			o.tr.T(lang, i18n.StatusKey(string(ord.Status))),
			o.tr.Money(lang, ord.TotalAmount),
			ord.CreatedAt.Format("2006-01-02 15:04"),
		))
		if !ord.Status.Terminal() {
			buttons = append(buttons,
				transport.Button{Text: o.tr.T(lang, i18n.BtnResumeOrder, ord.OrderNumber), Data: opcode.PlaceOrder{OrderID: ord.ID}.Data()},
				transport.Button{Text: o.tr.T(lang, i18n.BtnCancelOrder, ord.OrderNumber), Data: opcode.CancelOrder{OrderID: ord.ID}.Data()},
			)
		}
	}

	rows := transport.InlineColumn(buttons...)
	var nav []transport.Button
	if result.HasPrev() {
		nav = append(nav, transport.Button{Text: o.tr.T(lang, i18n.BtnPrev), Data: opcode.OrderHistory{Page: result.Page - 1}.Data()})
	}
	if result.HasNext() {
		nav = append(nav, transport.Button{Text: o.tr.T(lang, i18n.BtnNext), Data: opcode.OrderHistory{Page: result.Page + 1}.Data()})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	var opts *transport.Options
	if len(rows) > 0 {
		opts = &transport.Options{Inline: rows}
	}
	return o.send(ctx, chatID, strings.Join(lines, "\n"), opts)
}
