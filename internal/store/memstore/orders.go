package memstore

import (
	"context"
	"slices"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/shopspring/decimal"
)

type cartRepo factory

func (r cartRepo) AddItem(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error) {
	now := factory(r).now()
	var item models.CartItem
	err := factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.products[productID]; !ok {
			return database.ErrProductNotFound
		}
		for id, existing := range d.cart {
			if existing.UserID == userID && existing.ProductID == productID {
				existing.Quantity += quantity
				d.cart[id] = existing
				item = existing
				return nil
			}
		}
		item = models.CartItem{
			ID:        d.nextID(),
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   now,
		}
		d.cart[item.ID] = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r cartRepo) ListByUser(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, item := range sortedValues(d.cart, func(a, b models.CartItem) int { return byID(a.ID, b.ID) }) {
			if item.UserID != userID {
				continue
			}
			p, ok := d.products[item.ProductID]
			if !ok {
				continue
			}
			item.Product = &p
			items = append(items, item)
		}
		return nil
	})
	return items, err
}

func (r cartRepo) Clear(ctx context.Context, userID int64) error {
	return factory(r).with(ctx, func(d *dataset) error {
		for id, item := range d.cart {
			if item.UserID == userID {
				delete(d.cart, id)
			}
		}
		return nil
	})
}

type orderRepo factory

func (r orderRepo) Create(ctx context.Context, order *models.Order) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.users[order.UserID]; !ok {
			return database.ErrUserNotFound
		}
		order.ID = d.nextID()
		order.CreatedAt = now
		order.UpdatedAt = now
		order.Version = 1
		for i := range order.Items {
			order.Items[i].ID = d.nextID()
			order.Items[i].OrderID = order.ID
			order.Items[i].CreatedAt = now
		}
		stored := *order
		stored.Items = slices.Clone(order.Items)
		d.orders[order.ID] = stored
		return nil
	})
}

func (r orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := factory(r).with(ctx, func(d *dataset) error {
		found, ok := d.orders[id]
		if !ok {
			return database.ErrOrderNotFound
		}
		order = found
		order.Items = slices.Clone(found.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r orderRepo) GetForUpdate(ctx context.Context, id int64) (*models.Order, error) {
	return r.GetByID(ctx, id)
}

func (r orderRepo) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, paymentType *models.PaymentType) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		order, ok := d.orders[id]
		if !ok {
			return database.ErrOrderNotFound
		}
		order.Status = status
		if paymentType != nil {
			pt := *paymentType
			order.PaymentType = &pt
		}
		order.UpdatedAt = now
		order.Version++
		d.orders[id] = order
		return nil
	})
}

func (r orderRepo) list(ctx context.Context, page repository.PageRequest, keep func(models.Order) bool) (*repository.Page[models.Order], error) {
	var result *repository.Page[models.Order]
	err := factory(r).with(ctx, func(d *dataset) error {
		var orders []models.Order
		for _, o := range sortedValues(d.orders, func(a, b models.Order) int {
			return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		}) {
			if keep(o) {
				o.Items = nil
				orders = append(orders, o)
			}
		}
		result = paginate(orders, page)
		return nil
	})
	return result, err
}

func (r orderRepo) ListByUser(ctx context.Context, userID int64, page repository.PageRequest) (*repository.Page[models.Order], error) {
	return r.list(ctx, page, func(o models.Order) bool { return o.UserID == userID })
}

func (r orderRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Order], error) {
	return r.list(ctx, page, func(models.Order) bool { return true })
}

func (r orderRepo) Stats(ctx context.Context) (*models.OrderStats, error) {
	stats := &models.OrderStats{TotalAmount: decimal.Zero, ByStatus: make(map[models.OrderStatus]int64)}
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, o := range d.orders {
			stats.ByStatus[o.Status]++
			if o.Status == models.OrderStatusCancelled {
				continue
			}
			stats.TotalOrders++
			stats.TotalAmount = stats.TotalAmount.Add(o.TotalAmount)
		}
		return nil
	})
	return stats, err
}
