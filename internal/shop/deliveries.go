package shop

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

type DeliveryUpdate struct {
	Status       models.DeliveryStatus
	CourierName  *string
	CourierPhone *string
	DeliveryDate *time.Time
}

func (s *Service) ListDeliveries(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Delivery], error) {
	return s.store.Deliveries().List(ctx, page)
}

func (s *Service) Delivery(ctx context.Context, id int64) (*models.Delivery, error) {
	d, err := s.store.Deliveries().GetByID(ctx, id)
	return d, database.AppError(err)
}

// UpdateDelivery sets the courier progress of a delivery. The location and
// address stay as the customer entered them.
func (s *Service) UpdateDelivery(ctx context.Context, id int64, upd DeliveryUpdate) (*models.Delivery, error) {
	var delivery *models.Delivery
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		d, err := repos.Deliveries().GetByID(ctx, id)
		if err != nil {
			return err
		}
		d.Status = upd.Status
		d.CourierName = upd.CourierName
		d.CourierPhone = upd.CourierPhone
		d.DeliveryDate = upd.DeliveryDate
		delivery = d
		return repos.Deliveries().Update(ctx, d)
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "update delivery %d", id)
	}
	return delivery, nil
}
