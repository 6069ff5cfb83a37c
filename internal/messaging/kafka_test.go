package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	event := OrderEvent{
		OrderID:     4,
		OrderNumber: "ORD-1",
		UserID:      2,
		Status:      "paid",
		PaymentType: "click",
		TotalAmount: decimal.RequireFromString("25000.00"),
		OccurredAt:  time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
	}

	msg, err := encode(EventOrderPaid, "4", event)
	require.NoError(t, err)

	assert.Equal(t, []byte("4"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, headerEventType, msg.Headers[0].Key)
	assert.Equal(t, EventOrderPaid, string(msg.Headers[0].Value))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "ORD-1", decoded["order_number"])
	assert.Equal(t, "25000", decoded["total_amount"])
}

func TestEncodeRejectsUnmarshalable(t *testing.T) {
	_, err := encode(EventOrderCreated, "1", make(chan int))
	assert.Error(t, err)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishEvent(context.Background(), EventOrderCreated, "1", nil))
}
