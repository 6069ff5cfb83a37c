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

type categoryRepo struct {
	q DBTX
}

const categoryColumns = `id, name, name_ru, description, description_ru, created_at`

func scanCategory(row rowScanner, c *models.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.NameRu, &c.Description, &c.DescriptionRu, &c.CreatedAt)
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO categories (name, name_ru, description, description_ru, created_at)
		 VALUES ($1, $2, $3, $4, NOW())
		 RETURNING id, created_at`,
		c.Name, c.NameRu, c.Description, c.DescriptionRu,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	c := &models.Category{}
	err := scanCategory(r.q.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id), c)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return categories, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE categories SET name = $1, name_ru = $2, description = $3, description_ru = $4
		 WHERE id = $5`,
		c.Name, c.NameRu, c.Description, c.DescriptionRu, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return expectOneRow(result, database.ErrCategoryNotFound)
}

func (r *categoryRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return expectOneRow(result, database.ErrCategoryNotFound)
}

type productRepo struct {
	q DBTX
}

const productColumns = `id, category_id, name, name_ru, description, description_ru, price, image_url,
	stock_quantity, is_active, created_at, updated_at, version`

func scanProduct(row rowScanner, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.CategoryID,
		&p.Name,
		&p.NameRu,
		&p.Description,
		&p.DescriptionRu,
		&p.Price,
		&p.ImageURL,
		&p.Stock,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Version,
	)
}

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	err := r.q.QueryRowContext(ctx,
		`INSERT INTO products (category_id, name, name_ru, description, description_ru, price, image_url,
		                       stock_quantity, is_active, created_at, updated_at, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE, NOW(), NOW(), 1)
		 RETURNING id, is_active, created_at, updated_at, version`,
		p.CategoryID, p.Name, p.NameRu, p.Description, p.DescriptionRu, p.Price, p.ImageURL, p.Stock,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.Version)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return database.ErrCategoryNotFound
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *productRepo) get(ctx context.Context, query string, id int64) (*models.Product, error) {
	p := &models.Product{}
	if err := scanProduct(r.q.QueryRowContext(ctx, query, id), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, database.ErrProductNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return p, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate fails fast with 55P03 when another checkout holds the row; the
// transaction retry loop treats that as transient.
func (r *productRepo) GetForUpdate(ctx context.Context, id int64) (*models.Product, error) {
	return r.get(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE NOWAIT`, id)
}

func (r *productRepo) ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 AND is_active ORDER BY id`,
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	return collectProducts(rows)
}

func (r *productRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Product], error) {
	total, err := countRows(ctx, r.q, `SELECT COUNT(*) FROM products`)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY id LIMIT $1 OFFSET $2`,
		page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	return repository.NewPage(products, total, page), nil
}

// Update uses the version column for optimistic concurrency.
func (r *productRepo) Update(ctx context.Context, p *models.Product) error {
	err := r.q.QueryRowContext(ctx,
		`UPDATE products
		 SET category_id = $1, name = $2, name_ru = $3, description = $4, description_ru = $5,
		     price = $6, image_url = $7, stock_quantity = $8, is_active = $9,
		     updated_at = NOW(), version = version + 1
		 WHERE id = $10 AND version = $11
		 RETURNING updated_at, version`,
		p.CategoryID, p.Name, p.NameRu, p.Description, p.DescriptionRu,
		p.Price, p.ImageURL, p.Stock, p.IsActive, p.ID, p.Version,
	).Scan(&p.UpdatedAt, &p.Version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.ErrOptimisticLock
		}
		if database.IsForeignKeyViolation(err) {
			return database.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return expectOneRow(result, database.ErrProductNotFound)
}

func (r *productRepo) DecrementStock(ctx context.Context, id int64, quantity int) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE products
		 SET stock_quantity = stock_quantity - $1,
		     updated_at = NOW(),
		     version = version + 1
		 WHERE id = $2
		   AND stock_quantity >= $1`,
		quantity, id)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return expectOneRow(result, database.ErrInsufficientStock)
}

func (r *productRepo) IncrementStock(ctx context.Context, id int64, quantity int) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE products
		 SET stock_quantity = stock_quantity + $1,
		     updated_at = NOW(),
		     version = version + 1
		 WHERE id = $2`,
		quantity, id)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	return expectOneRow(result, database.ErrProductNotFound)
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return products, nil
}
