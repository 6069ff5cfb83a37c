package memstore

import (
	"context"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

type userRepo factory

func (r userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := factory(r).with(ctx, func(d *dataset) error {
		u, ok := d.users[id]
		if !ok {
			return database.ErrUserNotFound
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r userRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, u := range d.users {
			if u.TelegramID == telegramID {
				user = u
				return nil
			}
		}
		return database.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r userRepo) Upsert(ctx context.Context, user *models.User) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		for id, existing := range d.users {
			if existing.TelegramID != user.TelegramID {
				continue
			}
			existing.FullName = user.FullName
			existing.IsAdmin = existing.IsAdmin || user.IsAdmin
			existing.UpdatedAt = now
			d.users[id] = existing
			*user = existing
			return nil
		}

		user.ID = d.nextID()
		user.CreatedAt = now
		user.UpdatedAt = now
		user.Version = 1
		d.users[user.ID] = *user
		return nil
	})
}

func (r userRepo) Update(ctx context.Context, user *models.User) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		existing, ok := d.users[user.ID]
		if !ok {
			return database.ErrUserNotFound
		}
		existing.FullName = user.FullName
		existing.Phone = user.Phone
		existing.Language = user.Language
		existing.IsAdmin = user.IsAdmin
		existing.UpdatedAt = now
		existing.Version++
		d.users[user.ID] = existing
		*user = existing
		return nil
	})
}

func (r userRepo) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		for id, u := range d.users {
			if u.TelegramID == telegramID {
				u.Language = language
				u.UpdatedAt = now
				d.users[id] = u
				return nil
			}
		}
		return database.ErrUserNotFound
	})
}

func (r userRepo) Delete(ctx context.Context, id int64) error {
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.users[id]; !ok {
			return database.ErrUserNotFound
		}
		delete(d.users, id)
		for cid, item := range d.cart {
			if item.UserID == id {
				delete(d.cart, cid)
			}
		}
		return nil
	})
}

func (r userRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.User], error) {
	var result *repository.Page[models.User]
	err := factory(r).with(ctx, func(d *dataset) error {
		users := sortedValues(d.users, func(a, b models.User) int {
			return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
		})
		result = paginate(users, page)
		return nil
	})
	return result, err
}

func (r userRepo) ListAdmins(ctx context.Context) ([]models.User, error) {
	var admins []models.User
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, u := range sortedValues(d.users, func(a, b models.User) int { return byID(a.ID, b.ID) }) {
			if u.IsAdmin {
				admins = append(admins, u)
			}
		}
		return nil
	})
	return admins, err
}
