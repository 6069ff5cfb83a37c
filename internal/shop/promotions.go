package shop

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"go.uber.org/zap"
)

// ApplyPromocode looks up a code and rejects it once expired. The discount is
// reported, not stored on any order.
func (s *Service) ApplyPromocode(ctx context.Context, code string) (*models.Promocode, error) {
	promo, err := s.store.Promocodes().GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, database.AppError(err)
	}
	if promo.Expired(s.now()) {
		return nil, apperrors.ErrPromocodeExpired
	}
	return promo, nil
}

func (s *Service) CreatePromocode(ctx context.Context, p *models.Promocode) error {
	p.Code = strings.ToUpper(p.Code)
	if err := s.check(p); err != nil {
		return err
	}
	if err := s.store.Promocodes().Create(ctx, p); err != nil {
		return errors.Wrap(database.AppError(err), "create promocode")
	}
	s.logger.Info("promocode created", zap.String("code", p.Code), zap.Int("discount_percent", p.DiscountPercent))
	return nil
}

func (s *Service) LeaveFeedback(ctx context.Context, f *models.Feedback) error {
	if err := s.check(f); err != nil {
		return err
	}
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.Products().GetByID(ctx, f.ProductID); err != nil {
			return err
		}
		return repos.Feedback().Create(ctx, f)
	})
	return errors.Wrap(database.AppError(err), "leave feedback")
}

func (s *Service) ListFeedback(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Feedback], error) {
	return s.store.Feedback().List(ctx, page)
}

func (s *Service) DeleteFeedback(ctx context.Context, id int64) error {
	return database.AppError(s.store.Feedback().Delete(ctx, id))
}
