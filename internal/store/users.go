package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

const userColumns = `id, telegram_id, full_name, phone, language, is_admin, created_at, updated_at, version`

type userRepo struct {
	q DBTX
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(
		&user.ID,
		&user.TelegramID,
		&user.FullName,
		&user.Phone,
		&user.Language,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Version,
	)
}

func (r *userRepo) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	if err := scanUser(r.q.QueryRowContext(ctx, query, arg), user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE telegram_id = $1`, telegramID)
}

func (r *userRepo) Upsert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (telegram_id, full_name, language, is_admin, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, NOW(), NOW(), 1)
		ON CONFLICT (telegram_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    is_admin = users.is_admin OR EXCLUDED.is_admin,
		    updated_at = NOW()
		RETURNING ` + userColumns

	err := scanUser(r.q.QueryRowContext(ctx, query,
		user.TelegramID, user.FullName, user.Language, user.IsAdmin), user)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	err := r.q.QueryRowContext(ctx,
		`UPDATE users
		 SET full_name = $1, phone = $2, language = $3, is_admin = $4,
		     updated_at = NOW(), version = version + 1
		 WHERE id = $5
		 RETURNING updated_at, version`,
		user.FullName, user.Phone, user.Language, user.IsAdmin, user.ID,
	).Scan(&user.UpdatedAt, &user.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.ErrUserNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepo) SetLanguage(ctx context.Context, telegramID int64, language string) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE users SET language = $1, updated_at = NOW() WHERE telegram_id = $2`,
		language, telegramID)
	if err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	return expectOneRow(result, database.ErrUserNotFound)
}

func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return expectOneRow(result, database.ErrUserNotFound)
}

func (r *userRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.User], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, err
	}
	return repository.NewPage(users, total, page), nil
}

func (r *userRepo) ListAdmins(ctx context.Context) ([]models.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_admin ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]models.User, error) {
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}
