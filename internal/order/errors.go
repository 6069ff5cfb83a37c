package order

import (
	"fmt"

	"github.com/safar/go-chat-store/internal/apperrors"
)

// InsufficientStockError names the cart line that could not be satisfied.
type InsufficientStockError struct {
	ProductID   int64
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d %q (available: %d, requested: %d)",
		e.ProductID, e.ProductName, e.Available, e.Requested)
}

// Unwrap classifies the error as a conflict for the event router.
func (e *InsufficientStockError) Unwrap() error {
	return apperrors.Conflict("insufficient_stock", "product %d out of stock", e.ProductID)
}
