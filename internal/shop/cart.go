package shop

import (
	"context"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/order"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/shopspring/decimal"
)

// AddToCart merges quantity into the user's cart. Live stock is checked
// against the merged quantity but never reserved.
func (s *Service) AddToCart(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, apperrors.Validation("validation", "quantity must be positive, got %d", quantity)
	}

	var item *models.CartItem
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		p, err := repos.Products().GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if !p.IsActive {
			return database.ErrProductNotFound
		}

		items, err := repos.Cart().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		requested := quantity
		for _, existing := range items {
			if existing.ProductID == productID {
				requested += existing.Quantity
			}
		}
		if requested > p.Stock {
			return &order.InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Available: p.Stock, Requested: requested}
		}

		item, err = repos.Cart().AddItem(ctx, userID, productID, quantity)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(database.AppError(err), "add to cart")
	}
	return item, nil
}

// Cart returns the user's cart lines with their live products and the total
// at current prices.
func (s *Service) Cart(ctx context.Context, userID int64) ([]models.CartItem, decimal.Decimal, error) {
	items, err := s.store.Cart().ListByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range items {
		if item.Product != nil {
			total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return items, total, nil
}

func (s *Service) ClearCart(ctx context.Context, userID int64) error {
	return s.store.Cart().Clear(ctx, userID)
}
