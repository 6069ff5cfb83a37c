// Package shop holds the storefront use cases that do not touch order status
// or stock: users, catalog, cart, promocodes, feedback and delivery edits.
package shop

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/safar/go-chat-store/internal/apperrors"
	"github.com/safar/go-chat-store/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	store    repository.Store
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(store repository.Store, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		validate: validator.New(),
		logger:   logger.Named("shop"),
		now:      time.Now,
	}
}

// WithClock overrides the time source used for promocode expiry.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) check(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		return apperrors.Validation("validation", "invalid %s", strings.Join(fields, ", "))
	}
	return err
}
