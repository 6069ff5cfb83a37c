package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, stock int) (*models.User, *models.Product) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{TelegramID: 100, FullName: "Ali"}
	require.NoError(t, s.Users().Upsert(ctx, user))

	category := &models.Category{Name: "Mevalar", NameRu: "Фрукты"}
	require.NoError(t, s.Categories().Create(ctx, category))

	product := &models.Product{
		CategoryID: category.ID,
		Name:       "Olma",
		NameRu:     "Яблоко",
		Price:      decimal.NewFromInt(100),
		ImageURL:   "https://example.com/a.png",
		Stock:      stock,
	}
	require.NoError(t, s.Products().Create(ctx, product))
	return user, product
}

func TestExecuteRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	user, product := seed(t, s, 5)

	errAbort := errors.New("abort")
	err := s.Execute(ctx, func(repos repository.RepositoryFactory) error {
		require.NoError(t, repos.Products().DecrementStock(ctx, product.ID, 3))
		_, err := repos.Cart().AddItem(ctx, user.ID, product.ID, 1)
		require.NoError(t, err)
		return errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	after, err := s.Products().GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, after.Stock)

	items, err := s.Cart().ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExecuteCommitsOnSuccess(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, product := seed(t, s, 5)

	err := s.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.Products().DecrementStock(ctx, product.ID, 2)
	})
	require.NoError(t, err)

	after, _ := s.Products().GetByID(ctx, product.ID)
	assert.Equal(t, 3, after.Stock)
}

func TestCartMergesQuantities(t *testing.T) {
	s := New()
	ctx := context.Background()
	user, product := seed(t, s, 10)

	_, err := s.Cart().AddItem(ctx, user.ID, product.ID, 2)
	require.NoError(t, err)
	merged, err := s.Cart().AddItem(ctx, user.ID, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, merged.Quantity)

	items, err := s.Cart().ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Olma", items[0].Product.Name)
}

func TestDecrementStockIsConditional(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, product := seed(t, s, 1)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Products().DecrementStock(ctx, product.ID, 1); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else {
				assert.ErrorIs(t, err, database.ErrInsufficientStock)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestUpsertKeepsAdminFlag(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Users().Upsert(ctx, &models.User{TelegramID: 7, FullName: "Admin", IsAdmin: true}))

	again := &models.User{TelegramID: 7, FullName: "Admin Renamed"}
	require.NoError(t, s.Users().Upsert(ctx, again))
	assert.True(t, again.IsAdmin)
	assert.Equal(t, "Admin Renamed", again.FullName)

	admins, err := s.Users().ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
}

func TestProductUpdateOptimisticLock(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, product := seed(t, s, 1)

	stale := *product
	product.Stock = 9
	require.NoError(t, s.Products().Update(ctx, product))

	stale.Stock = 4
	assert.ErrorIs(t, s.Products().Update(ctx, &stale), database.ErrOptimisticLock)
}

func TestDeliveryOnePerOrder(t *testing.T) {
	s := New()
	ctx := context.Background()
	user, _ := seed(t, s, 1)

	order := &models.Order{UserID: user.ID, OrderNumber: "ORD-1", Status: models.OrderStatusCreated}
	require.NoError(t, s.Orders().Create(ctx, order))

	require.NoError(t, s.Deliveries().Create(ctx, &models.Delivery{OrderID: order.ID}))
	assert.ErrorIs(t, s.Deliveries().Create(ctx, &models.Delivery{OrderID: order.ID}), database.ErrDeliveryExists)
}

func TestListPaginatesNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	user, _ := seed(t, s, 1)

	for i := 0; i < 12; i++ {
		require.NoError(t, s.Orders().Create(ctx, &models.Order{UserID: user.ID, Status: models.OrderStatusCreated}))
	}

	first, err := s.Orders().ListByUser(ctx, user.ID, repository.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, int64(12), first.Total)
	assert.True(t, first.HasNext())
	assert.Greater(t, first.Items[0].ID, first.Items[1].ID)

	second, err := s.Orders().ListByUser(ctx, user.ID, repository.NewPageRequest(2, 10))
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
}
