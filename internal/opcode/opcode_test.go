package opcode

import (
	"testing"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		data string
		want Opcode
	}{
		{"lang_ru", SetLanguage{Language: "ru"}},
		{"category_3", ShowCategory{CategoryID: 3}},
		{"product_12", ShowProduct{ProductID: 12}},
		{"addtocart_12", AddToCart{ProductID: 12}},
		{"clear_cart", ClearCart{}},
		{"place_order", PlaceOrder{}},
		{"place_order_42", PlaceOrder{OrderID: 42}},
		{"confirm_payment_42_click", ConfirmPayment{OrderID: 42, PaymentType: models.PaymentTypeClick}},
		{"confirm_payment_7_payme", ConfirmPayment{OrderID: 7, PaymentType: models.PaymentTypePayme}},
		{"feedback_5", RequestFeedback{ProductID: 5}},
		{"rate_5_4", RateProduct{ProductID: 5, Rating: 4}},
		{"history_2", OrderHistory{Page: 2}},
		{"cancel_order_9", CancelOrder{OrderID: 9}},
		{"add_category", Add{Entity: EntityCategory}},
		{"add_promocode", Add{Entity: EntityPromocode}},
		{"view_categories", List{Entity: EntityCategory, Page: 1}},
		{"view_orders_3", List{Entity: EntityOrder, Page: 3}},
		{"view_feedback", List{Entity: EntityFeedback, Page: 1}},
		{"edit_category", Pick{Entity: EntityCategory, Action: ActionEdit}},
		{"edit_cat_7", Edit{Entity: EntityCategory, ID: 7}},
		{"edit_prod_8", Edit{Entity: EntityProduct, ID: 8}},
		{"edit_user_4", Edit{Entity: EntityUser, ID: 4}},
		{"edit_delivery_2", Edit{Entity: EntityDelivery, ID: 2}},
		{"delete_feedback", Pick{Entity: EntityFeedback, Action: ActionDelete}},
		{"delete_fb_11", Delete{Entity: EntityFeedback, ID: 11}},
		{"delete_cat_7", Delete{Entity: EntityCategory, ID: 7}},
		{"view_stats", Stats{}},
		{"stats_orders", Stats{Orders: true}},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.data, got.Data())
		})
	}
}

func TestDecodeRejectsNonNumericID(t *testing.T) {
	for _, data := range []string{"edit_cat_x", "confirm_payment_abc_click", "category_", "delete_prod_-1", "history_zero"} {
		_, err := Decode(data)
		require.Error(t, err, data)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), data)
		assert.Equal(t, "invalid_id", apperrors.CodeOf(err), data)
	}
}

func TestDecodeRejectsUnknownShapes(t *testing.T) {
	tests := map[string]string{
		"":                        "unknown_opcode",
		"dance":                   "unknown_opcode",
		"edit_order_1":            "unknown_opcode",
		"delete_delivery_1":       "unknown_opcode",
		"confirm_payment_42_cash": "unknown_payment_type",
		"confirm_payment_42":      "unknown_opcode",
		"rate_5_9":                "invalid_rating",
		"lang_en":                 "unknown_language",
	}

	for data, code := range tests {
		_, err := Decode(data)
		require.Error(t, err, data)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), data)
		assert.Equal(t, code, apperrors.CodeOf(err), data)
	}
}

func TestRequiresAdmin(t *testing.T) {
	admin := []string{"add_product", "view_users", "edit_prod_1", "delete_user_3", "stats_orders", "view_stats", "edit_delivery"}
	for _, data := range admin {
		op, err := Decode(data)
		require.NoError(t, err)
		assert.True(t, RequiresAdmin(op), data)
	}

	customer := []string{"lang_uz", "place_order", "confirm_payment_1_click", "history_1", "cancel_order_1", "rate_1_5"}
	for _, data := range customer {
		op, err := Decode(data)
		require.NoError(t, err)
		assert.False(t, RequiresAdmin(op), data)
	}
}

func TestIsAdminData(t *testing.T) {
	for _, data := range []string{"add_product", "view_stats", "edit_cat_abc", "delete_order_5", "stats_users", "view_orders_x"} {
		assert.True(t, IsAdminData(data), data)
	}
	for _, data := range []string{"lang_uz", "place_order", "category_3", "product_abc", "cancel_order_1", "feedback_2", "teleport_7"} {
		assert.False(t, IsAdminData(data), data)
	}
}
