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

type orderRepo struct {
	q DBTX
}

const orderColumns = `id, user_id, order_number, status, payment_type, total_amount, created_at, updated_at, version`

func scanOrder(row rowScanner, order *models.Order) error {
	var paymentType sql.NullString
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.OrderNumber,
		&order.Status,
		&paymentType,
		&order.TotalAmount,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.Version,
	)
	if err != nil {
		return err
	}
	order.PaymentType = nil
	if paymentType.Valid {
		pt := models.PaymentType(paymentType.String)
		order.PaymentType = &pt
	}
	return nil
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO orders (user_id, order_number, status, total_amount, created_at, updated_at, version)
		 VALUES ($1, $2, $3, $4, NOW(), NOW(), 1)
		 RETURNING id, created_at, updated_at, version`,
		order.UserID, order.OrderNumber, order.Status, order.TotalAmount,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt, &order.Version)
	if err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err := r.q.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, NOW())
			 RETURNING id, created_at`,
			item.OrderID, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return fmt.Errorf("create order item: %w", err)
		}
	}

	return nil
}

func (r *orderRepo) get(ctx context.Context, query string, id int64) (*models.Order, error) {
	order := &models.Order{}
	if err := scanOrder(r.q.QueryRowContext(ctx, query, id), order); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}

	items, err := r.items(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetForUpdate serializes concurrent status changes of one order.
func (r *orderRepo) GetForUpdate(ctx context.Context, id int64) (*models.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *orderRepo) items(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal, created_at
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("get order items: %w", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return items, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, paymentType *models.PaymentType) error {
	var pt sql.NullString
	if paymentType != nil {
		pt = sql.NullString{String: string(*paymentType), Valid: true}
	}

	result, err := r.q.ExecContext(ctx,
		`UPDATE orders
		 SET status = $1,
		     payment_type = COALESCE($2, payment_type),
		     updated_at = NOW(),
		     version = version + 1
		 WHERE id = $3`,
		status, pt, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return expectOneRow(result, database.ErrOrderNotFound)
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64, page repository.PageRequest) (*repository.Page[models.Order], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return repository.NewPage(orders, total, page), nil
}

func (r *orderRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Order], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	orders, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return repository.NewPage(orders, total, page), nil
}

func (r *orderRepo) Stats(ctx context.Context) (*models.OrderStats, error) {
	stats := &models.OrderStats{}
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		 FROM orders
		 WHERE status <> $1`,
		models.OrderStatusCancelled,
	).Scan(&stats.TotalOrders, &stats.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	rows, err := r.q.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("order stats by status: %w", err)
	}
	defer rows.Close()

	stats.ByStatus = make(map[models.OrderStatus]int64)
	for rows.Next() {
		var (
			status models.OrderStatus
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan order status count: %w", err)
		}
		stats.ByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return stats, nil
}

func collectOrders(rows *sql.Rows) ([]models.Order, error) {
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return orders, nil
}
