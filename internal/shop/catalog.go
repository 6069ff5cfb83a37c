package shop

import (
	"context"

	"github.com/pkg/errors"
	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"go.uber.org/zap"
)

func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories().List(ctx)
}

func (s *Service) Category(ctx context.Context, id int64) (*models.Category, error) {
	c, err := s.store.Categories().GetByID(ctx, id)
	return c, database.AppError(err)
}

func (s *Service) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := s.check(c); err != nil {
		return err
	}
	if err := s.store.Categories().Create(ctx, c); err != nil {
		return errors.Wrap(err, "create category")
	}
	s.logger.Info("category created", zap.Int64("category_id", c.ID))
	return nil
}

// UpdateCategory replaces every editable field of an existing category.
func (s *Service) UpdateCategory(ctx context.Context, c *models.Category) error {
	if err := s.check(c); err != nil {
		return err
	}
	return errors.Wrapf(database.AppError(s.store.Categories().Update(ctx, c)), "update category %d", c.ID)
}

// DeleteCategory also removes the category's products.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return database.AppError(s.store.Categories().Delete(ctx, id))
}

// ProductsInCategory lists the active products of a category.
func (s *Service) ProductsInCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	return s.store.Products().ListByCategory(ctx, categoryID)
}

func (s *Service) Product(ctx context.Context, id int64) (*models.Product, error) {
	p, err := s.store.Products().GetByID(ctx, id)
	return p, database.AppError(err)
}

func (s *Service) ListProducts(ctx context.Context, page repository.PageRequest) (*repository.Page[models.Product], error) {
	return s.store.Products().List(ctx, page)
}

func (s *Service) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := s.check(p); err != nil {
		return err
	}
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.Categories().GetByID(ctx, p.CategoryID); err != nil {
			return err
		}
		return repos.Products().Create(ctx, p)
	})
	if err != nil {
		return errors.Wrap(database.AppError(err), "create product")
	}
	s.logger.Info("product created", zap.Int64("product_id", p.ID), zap.Int("stock", p.Stock))
	return nil
}

// UpdateProduct applies edit to the stored product under its version check.
func (s *Service) UpdateProduct(ctx context.Context, id int64, edit func(p *models.Product)) (*models.Product, error) {
	var product *models.Product
	err := s.store.Execute(ctx, func(repos repository.RepositoryFactory) error {
		p, err := repos.Products().GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		edit(p)
		if err := s.check(p); err != nil {
			return err
		}
		if _, err := repos.Categories().GetByID(ctx, p.CategoryID); err != nil {
			return err
		}
		product = p
		return repos.Products().Update(ctx, p)
	})
	if err != nil {
		return nil, errors.Wrapf(database.AppError(err), "update product %d", id)
	}
	return product, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id int64) error {
	return database.AppError(s.store.Products().Delete(ctx, id))
}
