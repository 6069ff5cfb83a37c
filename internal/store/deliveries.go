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

type deliveryRepo struct {
	q DBTX
}

const deliveryColumns = `id, order_id, latitude, longitude, address_details, courier_name, courier_phone,
	delivery_date, status, created_at, updated_at`

func scanDelivery(row rowScanner, d *models.Delivery) error {
	return row.Scan(
		&d.ID,
		&d.OrderID,
		&d.Latitude,
		&d.Longitude,
		&d.AddressDetails,
		&d.CourierName,
		&d.CourierPhone,
		&d.DeliveryDate,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
}

func (r *deliveryRepo) Create(ctx context.Context, d *models.Delivery) error {
	if d.Status == "" {
		d.Status = models.DeliveryStatusPending
	}

	err := r.q.QueryRowContext(ctx,
		`INSERT INTO deliveries (order_id, latitude, longitude, address_details, courier_name, courier_phone,
		                         delivery_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		 RETURNING id, created_at, updated_at`,
		d.OrderID, d.Latitude, d.Longitude, d.AddressDetails, d.CourierName, d.CourierPhone,
		d.DeliveryDate, d.Status,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "deliveries_order_id_key") {
			return database.ErrDeliveryExists
		}
		if database.IsForeignKeyViolation(err) {
			return database.ErrOrderNotFound
		}
		return fmt.Errorf("create delivery: %w", err)
	}
	return nil
}

func (r *deliveryRepo) getOne(ctx context.Context, query string, arg int64) (*models.Delivery, error) {
	d := &models.Delivery{}
	if err := scanDelivery(r.q.QueryRowContext(ctx, query, arg), d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

func (r *deliveryRepo) GetByID(ctx context.Context, id int64) (*models.Delivery, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id)
}

func (r *deliveryRepo) GetByOrderID(ctx context.Context, orderID int64) (*models.Delivery, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE order_id = $1`, orderID)
}

func (r *deliveryRepo) Update(ctx context.Context, d *models.Delivery) error {
	err := r.q.QueryRowContext(ctx,
		`UPDATE deliveries
		 SET latitude = $1, longitude = $2, address_details = $3, courier_name = $4, courier_phone = $5,
		     delivery_date = $6, status = $7, updated_at = NOW()
		 WHERE id = $8
		 RETURNING updated_at`,
		d.Latitude, d.Longitude, d.AddressDetails, d.CourierName, d.CourierPhone,
		d.DeliveryDate, d.Status, d.ID,
	).Scan(&d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.ErrDeliveryNotFound
		}
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

func (r *deliveryRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Delivery], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM deliveries`)
	if err != nil {
		return nil, fmt.Errorf("count deliveries: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+deliveryColumns+` FROM deliveries ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []models.Delivery
	for rows.Next() {
		var d models.Delivery
		if err := scanDelivery(rows, &d); err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return repository.NewPage(deliveries, total, page), nil
}
