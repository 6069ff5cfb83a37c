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

type feedbackRepo struct {
	q DBTX
}

func (r *feedbackRepo) Create(ctx context.Context, f *models.Feedback) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO feedback (user_id, product_id, rating, comment, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING id, created_at`,
		f.UserID, f.ProductID, f.Rating, f.Comment,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return database.ErrProductNotFound
		}
		return fmt.Errorf("create feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Feedback], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM feedback`)
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, product_id, rating, comment, created_at
		 FROM feedback
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var items []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProductID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return repository.NewPage(items, total, page), nil
}

func (r *feedbackRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return expectOneRow(result, database.ErrFeedbackNotFound)
}

type promocodeRepo struct {
	q DBTX
}

func (r *promocodeRepo) Create(ctx context.Context, p *models.Promocode) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO promocodes (code, discount_percent, valid_till, created_at)
		 VALUES ($1, $2, $3, NOW())
		 RETURNING id, created_at`,
		p.Code, p.DiscountPercent, p.ValidTill,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "promocodes_code_key") {
			return database.ErrPromocodeExists
		}
		return fmt.Errorf("create promocode: %w", err)
	}
	return nil
}

func (r *promocodeRepo) GetByCode(ctx context.Context, code string) (*models.Promocode, error) {
	p := &models.Promocode{}
	err := r.q.QueryRowContext(ctx,
		`SELECT id, code, discount_percent, valid_till, created_at FROM promocodes WHERE code = $1`,
		code,
	).Scan(&p.ID, &p.Code, &p.DiscountPercent, &p.ValidTill, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrPromocodeNotFound
		}
		return nil, fmt.Errorf("get promocode: %w", err)
	}
	return p, nil
}
