package database

import (
	"errors"

	"github.com/safar/go-chat-store/internal/apperrors"
)

var sentinelCodes = []struct {
	err  error
	kind apperrors.Kind
	code string
}{
	{ErrUserNotFound, apperrors.KindNotFound, "user_not_found"},
	{ErrCategoryNotFound, apperrors.KindNotFound, "category_not_found"},
	{ErrProductNotFound, apperrors.KindNotFound, "product_not_found"},
	{ErrCartItemNotFound, apperrors.KindNotFound, "product_not_found"},
	{ErrOrderNotFound, apperrors.KindNotFound, "order_not_found"},
	{ErrDeliveryNotFound, apperrors.KindNotFound, "delivery_not_found"},
	{ErrFeedbackNotFound, apperrors.KindNotFound, "feedback_not_found"},
	{ErrPromocodeNotFound, apperrors.KindNotFound, "promocode_not_found"},
	{ErrInsufficientStock, apperrors.KindConflict, "insufficient_stock"},
	{ErrDeliveryExists, apperrors.KindConflict, "delivery_exists"},
	{ErrPromocodeExists, apperrors.KindConflict, "promocode_exists"},
	{ErrOptimisticLock, apperrors.KindConflict, "optimistic_lock"},
}

// AppError classifies storage sentinels for the layers above. Errors that
// are already classified, and unknown errors, are returned unchanged.
func AppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return apperrors.Wrap(err, s.kind, s.code, s.err.Error())
		}
	}
	return err
}
