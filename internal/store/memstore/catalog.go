package memstore

import (
	"context"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

type categoryRepo factory

func (r categoryRepo) Create(ctx context.Context, c *models.Category) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		c.ID = d.nextID()
		c.CreatedAt = now
		d.categories[c.ID] = *c
		return nil
	})
}

func (r categoryRepo) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := factory(r).with(ctx, func(d *dataset) error {
		found, ok := d.categories[id]
		if !ok {
			return database.ErrCategoryNotFound
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := factory(r).with(ctx, func(d *dataset) error {
		categories = sortedValues(d.categories, func(a, b models.Category) int { return byID(a.ID, b.ID) })
		return nil
	})
	return categories, err
}

func (r categoryRepo) Update(ctx context.Context, c *models.Category) error {
	return factory(r).with(ctx, func(d *dataset) error {
		existing, ok := d.categories[c.ID]
		if !ok {
			return database.ErrCategoryNotFound
		}
		c.CreatedAt = existing.CreatedAt
		d.categories[c.ID] = *c
		return nil
	})
}

// Delete cascades to the category's products, like the foreign key does.
func (r categoryRepo) Delete(ctx context.Context, id int64) error {
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.categories[id]; !ok {
			return database.ErrCategoryNotFound
		}
		delete(d.categories, id)
		for pid, p := range d.products {
			if p.CategoryID == id {
				deleteProduct(d, pid)
			}
		}
		return nil
	})
}

type productRepo factory

func (r productRepo) Create(ctx context.Context, p *models.Product) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.categories[p.CategoryID]; !ok {
			return database.ErrCategoryNotFound
		}
		p.ID = d.nextID()
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		p.Version = 1
		d.products[p.ID] = *p
		return nil
	})
}

func (r productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var p models.Product
	err := factory(r).with(ctx, func(d *dataset) error {
		found, ok := d.products[id]
		if !ok {
			return database.ErrProductNotFound
		}
		p = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r productRepo) GetForUpdate(ctx context.Context, id int64) (*models.Product, error) {
	return r.GetByID(ctx, id)
}

func (r productRepo) ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var products []models.Product
	err := factory(r).with(ctx, func(d *dataset) error {
		for _, p := range sortedValues(d.products, func(a, b models.Product) int { return byID(a.ID, b.ID) }) {
			if p.CategoryID == categoryID && p.IsActive {
				products = append(products, p)
			}
		}
		return nil
	})
	return products, err
}

func (r productRepo) List(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Product], error) {
	var result *repository.Page[models.Product]
	err := factory(r).with(ctx, func(d *dataset) error {
		products := sortedValues(d.products, func(a, b models.Product) int { return byID(a.ID, b.ID) })
		result = paginate(products, page)
		return nil
	})
	return result, err
}

func (r productRepo) Update(ctx context.Context, p *models.Product) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		existing, ok := d.products[p.ID]
		if !ok || existing.Version != p.Version {
			return database.ErrOptimisticLock
		}
		if _, ok := d.categories[p.CategoryID]; !ok {
			return database.ErrCategoryNotFound
		}
		p.CreatedAt = existing.CreatedAt
		p.UpdatedAt = now
		p.Version = existing.Version + 1
		d.products[p.ID] = *p
		return nil
	})
}

func (r productRepo) Delete(ctx context.Context, id int64) error {
	return factory(r).with(ctx, func(d *dataset) error {
		if _, ok := d.products[id]; !ok {
			return database.ErrProductNotFound
		}
		deleteProduct(d, id)
		return nil
	})
}

func deleteProduct(d *dataset, id int64) {
	delete(d.products, id)
	for cid, item := range d.cart {
		if item.ProductID == id {
			delete(d.cart, cid)
		}
	}
	for fid, f := range d.feedback {
		if f.ProductID == id {
			delete(d.feedback, fid)
		}
	}
}

func (r productRepo) DecrementStock(ctx context.Context, id int64, quantity int) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		p, ok := d.products[id]
		if !ok || p.Stock < quantity {
			return database.ErrInsufficientStock
		}
		p.Stock -= quantity
		p.UpdatedAt = now
		p.Version++
		d.products[id] = p
		return nil
	})
}

func (r productRepo) IncrementStock(ctx context.Context, id int64, quantity int) error {
	now := factory(r).now()
	return factory(r).with(ctx, func(d *dataset) error {
		p, ok := d.products[id]
		if !ok {
			return database.ErrProductNotFound
		}
		p.Stock += quantity
		p.UpdatedAt = now
		p.Version++
		d.products[id] = p
		return nil
	})
}
