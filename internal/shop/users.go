package shop

import (
	"context"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"go.uber.org/zap"
)

// Register creates the user on first contact or refreshes the name. isAdmin
// can only promote.
func (s *Service) Register(ctx context.Context, telegramID int64, fullName string, isAdmin bool) (*models.User, error) {
	user := &models.User{TelegramID: telegramID, FullName: fullName, IsAdmin: isAdmin}
	if err := s.store.Users().Upsert(ctx, user); err != nil {
		return nil, errors.Wrap(err, "register user")
	}
	s.logger.Debug("user registered", zap.Int64("telegram_id", telegramID), zap.Int64("user_id", user.ID))
	return user, nil
}

func (s *Service) UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	user, err := s.store.Users().GetByTelegramID(ctx, telegramID)
	return user, database.AppError(err)
}

// StoredLanguage returns the saved language of the user, or "" when the
// user is unknown.
func (s *Service) StoredLanguage(ctx context.Context, telegramID int64) (string, error) {
	user, err := s.store.Users().GetByTelegramID(ctx, telegramID)
	if errors.Is(err, database.ErrUserNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "load user language")
	}
	return user.Language, nil
}

func (s *Service) User(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.store.Users().GetByID(ctx, id)
	return user, database.AppError(err)
}

func (s *Service) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	return database.AppError(s.store.Users().SetLanguage(ctx, telegramID, language))
}

func (s *Service) SetPhone(ctx context.Context, telegramID int64, phone string) error {
	return database.AppError(s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		user, err := repos.Users().GetByTelegramID(ctx, telegramID)
		if err != nil {
			return err
		}
		user.Phone = phone
		return repos.Users().Update(ctx, user)
	}))
}

// UpdateUser is the admin edit of a user's contact details.
func (s *Service) UpdateUser(ctx context.Context, id int64, fullName, phone string) (*models.User, error) {
	var user *models.User
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var err error
		if user, err = repos.Users().GetByID(ctx, id); err != nil {
			return err
		}
		user.FullName = fullName
		user.Phone = phone
		return repos.Users().Update(ctx, user)
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "update user %d", id)
	}
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return database.AppError(s.store.Users().Delete(ctx, id))
}

func (s *Service) ListUsers(ctx context.Context, page repository.PageRequest) (*repository.Page[models.User], error) {
	return s.store.Users().List(ctx, page)
}

func (s *Service) Admins(ctx context.Context) ([]models.User, error) {
	return s.store.Users().ListAdmins(ctx)
}
