// Package messaging publishes domain events. Publishing is best effort: a
// failed publish is logged by the caller and never undoes a committed change.
package messaging

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated = "orders.created"
	EventOrderPaid    = "orders.paid"
)

type Publisher interface {
	PublishEvent(ctx context.Context, eventType, key string, event any) error
}

type OrderEvent struct {
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	UserID      int64           `json:"user_id"`
	Status      string          `json:"status"`
	PaymentType string          `json:"payment_type,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishEvent(context.Context, string, string, any) error {
	return nil
}
