package store

import (
	"context"
	"fmt"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
)

type cartRepo struct {
	q DBTX
}

func (r *cartRepo) AddItem(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO cart_items (user_id, product_id, quantity, added_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT ON CONSTRAINT cart_items_user_product_key DO UPDATE
		 SET quantity = cart_items.quantity + EXCLUDED.quantity
		 RETURNING id, user_id, product_id, quantity, added_at`,
		userID, productID, quantity,
	).Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.AddedAt)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	return item, nil
}

func (r *cartRepo) ListByUser(ctx context.Context, userID int64) ([]models.CartItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT c.id, c.user_id, c.product_id, c.quantity, c.added_at,
		        p.id, p.category_id, p.name, p.name_ru, p.description, p.description_ru, p.price,
		        p.image_url, p.stock_quantity, p.is_active, p.created_at, p.updated_at, p.version
		 FROM cart_items c
		 JOIN products p ON p.id = c.product_id
		 WHERE c.user_id = $1
		 ORDER BY c.id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		p := &models.Product{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.AddedAt,
			&p.ID, &p.CategoryID, &p.Name, &p.NameRu, &p.Description, &p.DescriptionRu, &p.Price,
			&p.ImageURL, &p.Stock, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.Version,
		)
		if err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		item.Product = p
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func (r *cartRepo) Clear(ctx context.Context, userID int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
