package memstore

import (
	"context"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

type deliveryRepo factory

func (r deliveryRepo) Create(ctx context.Context, delivery *models.Delivery) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.orders[delivery.OrderID]; !ok {
			return database.ErrOrderNotFound
		}
		for _, existing := range d.deliveries {
			if existing.OrderID == delivery.OrderID {
				return database.ErrDeliveryExists
			}
		}
		if delivery.Status == "" {
			delivery.Status = models.DeliveryStatusPending
		}
		delivery.ID = d.nextID()
		delivery.CreatedAt = now
		delivery.UpdatedAt = now
		d.deliveries[delivery.ID] = *delivery
		return nil
	})
}

func (r deliveryRepo) find(ctx context.Context, match func(models.Delivery) bool) (*models.Delivery, error) {
	var found models.Delivery
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, delivery := range d.deliveries {
			if match(delivery) {
				found = delivery
				return nil
			}
		}
		return database.ErrDeliveryNotFound
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r deliveryRepo) GetByID(ctx context.Context, id int64) (*models.Delivery, error) {
	return r.find(ctx, func(d models.Delivery) bool { return d.ID == id })
}

func (r deliveryRepo) GetByOrderID(ctx context.Context, orderID int64) (*models.Delivery, error) {
	return r.find(ctx, func(d models.Delivery) bool { return d.OrderID == orderID })
}

func (r deliveryRepo) Update(ctx context.Context, delivery *models.Delivery) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		existing, ok := d.deliveries[delivery.ID]
		if !ok {
			return database.ErrDeliveryNotFound
		}
		delivery.OrderID = existing.OrderID
		delivery.CreatedAt = existing.CreatedAt
		delivery.UpdatedAt = now
		d.deliveries[delivery.ID] = *delivery
		return nil
	})
}

func (r deliveryRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Delivery], error) {
	var result *repository.Page[models.Delivery]
	err := factory(r).with(ctx, func(d *dataset) error {
		deliveries := sortedValues(d.deliveries, func(a, b models.Delivery) int {
			return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		})
		result = paginate(deliveries, page)
		return nil
	})
	return result, err
}

type feedbackRepo factory

func (r feedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.products[f.ProductID]; !ok {
			return database.ErrProductNotFound
		}
		f.ID = d.nextID()
		f.CreatedAt = now
		d.feedback[f.ID] = *f
		return nil
	})
}

func (r feedbackRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Feedback], error) {
	var result *repository.Page[models.Feedback]
	err := factory(r).with(ctx, func(d *dataset) error {
		items := sortedValues(d.feedback, func(a, b models.Feedback) int {
			return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		})
		result = paginate(items, page)
		return nil
	})
	return result, err
}

func (r feedbackRepo) Delete(ctx context.Context, id int64) error {
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.feedback[id]; !ok {
			return database.ErrFeedbackNotFound
		}
		delete(d.feedback, id)
		return nil
	})
}

type promocodeRepo factory

func (r promocodeRepo) Create(ctx context.Context, p *models.Promocode) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		for _, existing := range d.promocodes {
			if existing.Code == p.Code {
				return database.ErrPromocodeExists
			}
		}
		p.ID = d.nextID()
		p.CreatedAt = now
		d.promocodes[p.ID] = *p
		return nil
	})
}

func (r promocodeRepo) GetByCode(ctx context.Context, code string) (*models.Promocode, error) {
	var found models.Promocode
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, p := range d.promocodes {
			if p.Code == code {
				found = p
				return nil
			}
		}
		return database.ErrPromocodeNotFound
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}
