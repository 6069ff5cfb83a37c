// Package notify fans a paid order's summary out to the customer and every
// administrator.
package notify

import (
	"context"
	"html"
	"strings"

	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

type Recipient struct {
	ChatID   int64
	Language string
}

// Report lists what happened to each recipient chat.
type Report struct {
	Sent      []int64
	Failed    []int64
	Duplicate []int64
}

type Notifier struct {
	messenger  transport.Messenger
	translator *i18n.Translator
	guard      Guard
	logger     *zap.Logger
}

func New(messenger transport.Messenger, translator *i18n.Translator, guard Guard, logger *zap.Logger) *Notifier {
	return &Notifier{
		messenger:  messenger,
		translator: translator,
		guard:      guard,
		logger:     logger.Named("notify"),
	}
}

// Recipients returns the customer followed by every admin, each chat once.
func Recipients(customer *models.User, admins []models.User, fallbackLang string) []Recipient {
	seen := make(map[int64]bool, len(admins)+1)
	out := make([]Recipient, 0, len(admins)+1)
	add := func(u *models.User) {
		if u == nil || seen[u.TelegramID] {
			return
		}
		seen[u.TelegramID] = true
		lang := u.Language
		if lang == "" {
			lang = fallbackLang
		}
		out = append(out, Recipient{ChatID: u.TelegramID, Language: lang})
	}

	add(customer)
	for i := range admins {
		add(&admins[i])
	}
	return out
}

// PaymentConfirmed sends one summary per recipient. A failed send is logged
// and does not stop the remaining recipients.
func (n *Notifier) PaymentConfirmed(ctx context.Context, conf *order.Confirmation, customer *models.User, recipients []Recipient) Report {
	var report Report
	orderID := conf.Order.ID

	for _, r := range recipients {
		log := n.logger.With(zap.Int64("order_id", orderID), zap.Int64("chat_id", r.ChatID))

		claimed, err := n.guard.Claim(ctx, orderID, r.ChatID)
		if err != nil {
			log.Warn("notification guard unavailable, sending unguarded", zap.Error(err))
			claimed = true
		}
		if !claimed {
			log.Debug("summary already sent")
			report.Duplicate = append(report.Duplicate, r.ChatID)
			continue
		}

		text := n.Summary(r.Language, conf, customer)
		if err := n.messenger.SendText(ctx, r.ChatID, text, &transport.Options{HTML: true}); err != nil {
			log.Error("failed to deliver order summary", zap.Error(err))
			if err := n.guard.Release(ctx, orderID, r.ChatID); err != nil {
				log.Warn("failed to release notification claim", zap.Error(err))
			}
			report.Failed = append(report.Failed, r.ChatID)
			continue
		}
		report.Sent = append(report.Sent, r.ChatID)
	}

	n.logger.Info("order summary fan-out finished",
		zap.Int64("order_id", orderID),
		zap.Int("sent", len(report.Sent)),
		zap.Int("failed", len(report.Failed)),
		zap.Int("duplicate", len(report.Duplicate)),
	)
	return report
}

// Summary renders the paid order in lang as Telegram HTML. Customer and
// catalog text is escaped.
func (n *Notifier) Summary(lang string, conf *order.Confirmation, customer *models.User) string {
	t := n.translator
	o := conf.Order

	phone := html.EscapeString(customer.Phone)
	if phone == "" {
		phone = t.T(lang, i18n.NotSpecified)
	}

	lines := []string{
		t.T(lang, i18n.SummaryTitle, o.OrderNumber),
		t.T(lang, i18n.SummaryCustomer, html.EscapeString(customer.FullName), phone),
		"",
	}
	for _, item := range o.Items {
		lines = append(lines, t.T(lang, i18n.SummaryItem, html.EscapeString(item.ProductName), item.Quantity, t.Money(lang, item.UnitPrice)))
	}
	lines = append(lines, "", t.T(lang, i18n.SummaryTotal, t.Money(lang, o.TotalAmount)))

	if o.PaymentType != nil {
		lines = append(lines, t.T(lang, i18n.SummaryPayment, PaymentLabel(*o.PaymentType)))
	}
	if d := conf.Delivery; d != nil {
		address := html.EscapeString(d.AddressDetails)
		if address == "" {
			address = t.T(lang, i18n.NotSpecified)
		}
		lines = append(lines,
			t.T(lang, i18n.SummaryAddress, address),
			t.T(lang, i18n.SummaryLocation, d.Latitude, d.Longitude),
		)
	}
	return strings.Join(lines, "\n")
}

// PaymentLabel is the display name of a payment type.
func PaymentLabel(pt models.PaymentType) string {
	switch pt {
	case models.PaymentTypeClick:
		return "Click"
	case models.PaymentTypePayme:
		return "Payme"
	}
	return string(pt)
}
