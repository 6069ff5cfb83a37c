package bot

import (
	"context"
	"errors"

	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/i18n"
	"github.com/safar/go-chat-store/internal/order"
	"go.uber.org/zap"
)

// errorKey picks the most specific localized message for err.
func errorKey(err error) i18n.Key {
	if code := apperrors.CodeOf(err); code != "" && i18n.Has(i18n.ErrorKey(code)) {
		return i18n.ErrorKey(code)
	}
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindPermission {
		return i18n.ErrorKey("permission_denied")
	}
	if key := i18n.ErrorKey(kind.String()); i18n.Has(key) {
		return key
	}
	return i18n.ErrorKey("unexpected")
}

// report tells the chat what went wrong. Delivery failures are only logged:
// the chat cannot be told about them.
func (r *Router) report(ctx context.Context, chatID int64, lang string, err error) {
	kind := apperrors.KindOf(err)
	fields := []zap.Field{
		zap.Int64("chat_id", chatID),
		zap.String("kind", kind.String()),
		zap.String("code", apperrors.CodeOf(err)),
		zap.Error(err),
	}

	switch kind {
	case apperrors.KindTransport:
		r.logger.Warn("message delivery failed", fields...)
		return
	case apperrors.KindUnexpected:
		r.logger.Error("event failed", fields...)
	default:
		r.logger.Info("event rejected", fields...)
	}

	var text string
	var stock *order.InsufficientStockError
	if errors.As(err, &stock) {
		text = r.tr.T(lang, i18n.ErrorKey("insufficient_stock"), stock.ProductName, stock.Available, stock.Requested)
	} else {
		text = r.tr.T(lang, errorKey(err))
	}

	if sendErr := r.messenger.SendText(ctx, chatID, text, nil); sendErr != nil {
		r.logger.Warn("error reply failed", zap.Int64("chat_id", chatID), zap.Error(sendErr))
	}
}
