// Package order is the only writer of order status and product stock.
package order

import (
	"cmp"
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/messaging"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service struct {
	store     repository.Store
	publisher messaging.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(store repository.Store, publisher messaging.Publisher, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger.Named("order"),
		now:       time.Now,
	}
}

func generateOrderNumber() string {
	return "ORD-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// CreateFromCart converts the user's cart into a Created order. Every line is
// checked against live stock before anything is written; the decrement,
// order insert and cart clear commit together or not at all.
func (s *Service) CreateFromCart(ctx context.Context, userID int64) (*models.Order, error) {
	var order *models.Order

	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		items, err := repos.Cart().ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return apperrors.ErrEmptyCart
		}

		// Lock rows in id order so concurrent checkouts cannot deadlock.
		slices.SortFunc(items, func(a, b models.CartItem) int {
			return cmp.Compare(a.ProductID, b.ProductID)
		})

		products := make(map[int64]*models.Product, len(items))
		for _, item := range items {
			p, err := repos.Products().GetForUpdate(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !p.IsActive || p.Stock < item.Quantity {
				return &InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Available:   p.Stock,
					Requested:   item.Quantity,
				}
			}
			products[p.ID] = p
		}

		order = &models.Order{
			UserID:      userID,
			OrderNumber: generateOrderNumber(),
			Status:      models.OrderStatusCreated,
			TotalAmount: decimal.Zero,
		}
		for _, item := range items {
			p := products[item.ProductID]
			if err := repos.Products().DecrementStock(ctx, p.ID, item.Quantity); err != nil {
				if errors.Is(err, database.ErrInsufficientStock) {
					return &InsufficientStockError{ProductID: p.ID, ProductName: p.Name, Available: p.Stock, Requested: item.Quantity}
				}
				return err
			}

			subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			order.Items = append(order.Items, models.OrderItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    item.Quantity,
				UnitPrice:   p.Price,
				Subtotal:    subtotal,
			})
			order.TotalAmount = order.TotalAmount.Add(subtotal)
		}

		if err := repos.Orders().Create(ctx, order); err != nil {
			return err
		}
		return repos.Cart().Clear(ctx, userID)
	})
	if err != nil {
		return nil, errors.Wrap(database.AppError(err), "create order from cart")
	}

	s.logger.Info("order created",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)
	s.publish(ctx, messaging.EventOrderCreated, order)
	return order, nil
}

// UpdateStatus applies one transition of the order status table. Cancelling
// returns the order's items to stock in the same transaction. Paid is only
// reachable through ConfirmPayment.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status models.OrderStatus) (*models.Order, error) {
	if status == models.OrderStatusPaid {
		return nil, apperrors.Conflict("illegal_transition", "order %d: paid only through payment confirmation", orderID)
	}
	return s.transition(ctx, orderID, 0, status)
}

// Cancel is the customer-initiated cancellation of their own order.
func (s *Service) Cancel(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	return s.transition(ctx, orderID, userID, models.OrderStatusCancelled)
}

// transition checks ownership when userID is non-zero.
func (s *Service) transition(ctx context.Context, orderID, userID int64, status models.OrderStatus) (*models.Order, error) {
	var order *models.Order

	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		current, err := lockOwned(ctx, repos, orderID, userID)
		if err != nil {
			return err
		}
		if !models.CanTransition(current.Status, status) {
			return apperrors.Conflict("illegal_transition", "order %d: %s -> %s", orderID, current.Status, status)
		}

		if status == models.OrderStatusCancelled {
			for _, item := range current.Items {
				if err := repos.Products().IncrementStock(ctx, item.ProductID, item.Quantity); err != nil && !errors.Is(err, database.ErrProductNotFound) {
					return err
				}
			}
		}

		if err := repos.Orders().UpdateStatus(ctx, orderID, status, nil); err != nil {
			return err
		}
		current.Status = status
		order = current
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "order %d to %s", orderID, status)
	}

	s.logger.Info("order status changed", zap.Int64("order_id", orderID), zap.String("status", string(status)))
	return order, nil
}

// AttachDelivery records where a Created order goes and moves it to
// AwaitingPayment in the same transaction.
func (s *Service) AttachDelivery(ctx context.Context, userID int64, delivery *models.Delivery) (*models.Order, error) {
	var order *models.Order

	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		current, err := lockOwned(ctx, repos, delivery.OrderID, userID)
		if err != nil {
			return err
		}
		if current.Status != models.OrderStatusCreated {
			if current.Status == models.OrderStatusAwaitingPayment {
				return database.ErrDeliveryExists
			}
			return apperrors.ErrIllegalStatus
		}

		delivery.Status = models.DeliveryStatusPending
		if err := repos.Deliveries().Create(ctx, delivery); err != nil {
			return err
		}
		if err := repos.Orders().UpdateStatus(ctx, current.ID, models.OrderStatusAwaitingPayment, nil); err != nil {
			return err
		}
		current.Status = models.OrderStatusAwaitingPayment
		order = current
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "attach delivery to order %d", delivery.OrderID)
	}
	return order, nil
}

// Confirmation is the outcome of ConfirmPayment.
type Confirmation struct {
	Order    *models.Order
	Delivery *models.Delivery
	// AlreadyPaid is set when the order was paid before this call; nothing
	// was changed.
	AlreadyPaid bool
}

// ConfirmPayment moves an AwaitingPayment order to Paid. Confirming an
// already paid order is a no-op reported through AlreadyPaid.
func (s *Service) ConfirmPayment(ctx context.Context, orderID, userID int64, paymentType models.PaymentType) (*Confirmation, error) {
	if _, ok := models.ParsePaymentType(string(paymentType)); !ok {
		return nil, apperrors.Validation("unknown_payment_type", "unknown payment type %q", paymentType)
	}

	var result Confirmation
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		current, err := lockOwned(ctx, repos, orderID, userID)
		if err != nil {
			return err
		}

		switch current.Status {
		case models.OrderStatusPaid:
			result = Confirmation{Order: current, AlreadyPaid: true}
			return nil
		case models.OrderStatusCreated:
			return database.ErrDeliveryNotFound
		case models.OrderStatusCancelled:
			return apperrors.ErrIllegalStatus
		}

		delivery, err := repos.Deliveries().GetByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := repos.Orders().UpdateStatus(ctx, orderID, models.OrderStatusPaid, &paymentType); err != nil {
			return err
		}

		current.Status = models.OrderStatusPaid
		current.PaymentType = &paymentType
		result = Confirmation{Order: current, Delivery: delivery}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "confirm payment of order %d", orderID)
	}

	if result.AlreadyPaid {
		s.logger.Info("duplicate payment confirmation ignored", zap.Int64("order_id", orderID))
		return &result, nil
	}

	s.logger.Info("order paid", zap.Int64("order_id", orderID), zap.String("payment_type", string(paymentType)))
	s.publish(ctx, messaging.EventOrderPaid, result.Order)
	return &result, nil
}

// Get loads an order; a non-zero userID must own it.
func (s *Service) Get(ctx context.Context, orderID, userID int64) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(ctx, orderID)
	if err != nil {
		return nil, database.AppError(err)
	}
	if userID != 0 && order.UserID != userID {
		return nil, database.AppError(database.ErrOrderNotFound)
	}
	return order, nil
}

func (s *Service) Delivery(ctx context.Context, orderID int64) (*models.Delivery, error) {
	d, err := s.store.Deliveries().GetByOrderID(ctx, orderID)
	return d, database.AppError(err)
}

func (s *Service) History(ctx context.Context, userID int64, page repository.PageRequest) (*repository.Page[models.Order], error) {
	p, err := s.store.Orders().ListByUser(ctx, userID, page)
	return p, database.AppError(err)
}

func (s *Service) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Order], error) {
	p, err := s.store.Orders().List(ctx, page)
	return p, database.AppError(err)
}

// GetStats counts every order that was not cancelled.
func (s *Service) GetStats(ctx context.Context) (*models.OrderStats, error) {
	stats, err := s.store.Orders().Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "order stats")
	}
	return stats, nil
}

func lockOwned(ctx context.Context, repos repository.RepositoryFactory, orderID, userID int64) (*models.Order, error) {
	order, err := repos.Orders().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if userID != 0 && order.UserID != userID {
		return nil, database.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) publish(ctx context.Context, eventType string, order *models.Order) {
	event := messaging.OrderEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		UserID:      order.UserID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount,
		OccurredAt:  s.now(),
	}
	if order.PaymentType != nil {
		event.PaymentType = string(*order.PaymentType)
	}
	if err := s.publisher.PublishEvent(ctx, eventType, strconv.FormatInt(order.ID, 10), event); err != nil {
		s.logger.Warn("publish failed", zap.String("event_type", eventType), zap.Int64("order_id", order.ID), zap.Error(err))
	}
}
