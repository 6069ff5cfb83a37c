//go:build integration

package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
	"github.com/safar/go-chat-store/internal/store"
	"github.com/safar/go-chat-store/internal/store/pgtest"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func seedProduct(t *testing.T, s *store.Store, stock int) *models.Product {
	t.Helper()
	ctx := context.Background()

	category := &models.Category{Name: "Mevalar", NameRu: "Фрукты", Description: "Fresh"}
	if err := s.Categories().Create(ctx, category); err != nil {
		t.Fatalf("Create category: %v", err)
	}

	product := &models.Product{
		CategoryID: category.ID,
		Name:       "Olma",
		NameRu:     "Яблоко",
		Price:      decimal.NewFromInt(100),
		ImageURL:   "https://example.com/apple.png",
		Stock:      stock,
	}
	if err := s.Products().Create(ctx, product); err != nil {
		t.Fatalf("Create product: %v", err)
	}
	return product
}

func TestCartMergeAndClear(t *testing.T) {
	s := store.New(pgtest.Setup(t), zap.NewNop())
	ctx := context.Background()

	user := &models.User{TelegramID: 1001, FullName: "Test User"}
	if err := s.Users().Upsert(ctx, user); err != nil {
		t.Fatalf("Upsert user: %v", err)
	}
	product := seedProduct(t, s, 10)

	if _, err := s.Cart().AddItem(ctx, user.ID, product.ID, 2); err != nil {
		t.Fatalf("Add item: %v", err)
	}
	if _, err := s.Cart().AddItem(ctx, user.ID, product.ID, 3); err != nil {
		t.Fatalf("Add item again: %v", err)
	}

	items, err := s.Cart().ListByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("List cart: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("Expected one row with quantity 5, got %+v", items)
	}
	if items[0].Product == nil || items[0].Product.Name != "Olma" {
		t.Errorf("Expected joined product, got %+v", items[0].Product)
	}

	if err := s.Cart().Clear(ctx, user.ID); err != nil {
		t.Fatalf("Clear cart: %v", err)
	}
	items, _ = s.Cart().ListByUser(ctx, user.ID)
	if len(items) != 0 {
		t.Errorf("Expected empty cart, got %d items", len(items))
	}
}

func TestTransactionRollsBackStockDecrement(t *testing.T) {
	s := store.New(pgtest.Setup(t), zap.NewNop())
	ctx := context.Background()
	product := seedProduct(t, s, 5)

	errAbort := errors.New("abort")
	err := s.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.Products().DecrementStock(ctx, product.ID, 3); err != nil {
			return err
		}
		return errAbort
	})
	if !errors.Is(err, errAbort) {
		t.Fatalf("Expected abort error, got %v", err)
	}

	after, err := s.Products().GetByID(ctx, product.ID)
	if err != nil {
		t.Fatalf("Get product: %v", err)
	}
	if after.Stock != 5 {
		t.Errorf("Stock should remain unchanged at 5, got %d", after.Stock)
	}
}

func TestDecrementStockNeverGoesNegative(t *testing.T) {
	s := store.New(pgtest.Setup(t), zap.NewNop())
	ctx := context.Background()
	product := seedProduct(t, s, 1)

	if err := s.Products().DecrementStock(ctx, product.ID, 1); err != nil {
		t.Fatalf("First decrement: %v", err)
	}
	if err := s.Products().DecrementStock(ctx, product.ID, 1); !errors.Is(err, database.ErrInsufficientStock) {
		t.Errorf("Expected insufficient stock, got %v", err)
	}
}

func TestOrderLifecycleRoundTrip(t *testing.T) {
	s := store.New(pgtest.Setup(t), zap.NewNop())
	ctx := context.Background()

	user := &models.User{TelegramID: 2002, FullName: "Buyer"}
	if err := s.Users().Upsert(ctx, user); err != nil {
		t.Fatalf("Upsert user: %v", err)
	}
	product := seedProduct(t, s, 10)

	order := &models.Order{
		UserID:      user.ID,
		OrderNumber: "ORD-IT-1",
		Status:      models.OrderStatusCreated,
		TotalAmount: decimal.NewFromInt(200),
		Items: []models.OrderItem{{
			ProductID: product.ID, ProductName: product.Name, Quantity: 2,
			UnitPrice: product.Price, Subtotal: decimal.NewFromInt(200),
		}},
	}
	if err := s.Orders().Create(ctx, order); err != nil {
		t.Fatalf("Create order: %v", err)
	}

	delivery := &models.Delivery{OrderID: order.ID, Latitude: 41.3, Longitude: 69.2, AddressDetails: "Apt 5"}
	if err := s.Deliveries().Create(ctx, delivery); err != nil {
		t.Fatalf("Create delivery: %v", err)
	}
	if err := s.Deliveries().Create(ctx, &models.Delivery{OrderID: order.ID}); !errors.Is(err, database.ErrDeliveryExists) {
		t.Errorf("Expected duplicate delivery error, got %v", err)
	}

	pt := models.PaymentTypeClick
	if err := s.Orders().UpdateStatus(ctx, order.ID, models.OrderStatusPaid, &pt); err != nil {
		t.Fatalf("Update status: %v", err)
	}

	loaded, err := s.Orders().GetByID(ctx, order.ID)
	if err != nil {
		t.Fatalf("Get order: %v", err)
	}
	if loaded.Status != models.OrderStatusPaid || loaded.PaymentType == nil || *loaded.PaymentType != pt {
		t.Errorf("Unexpected order state: %+v", loaded)
	}
	if len(loaded.Items) != 1 || !loaded.Items[0].Subtotal.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Unexpected items: %+v", loaded.Items)
	}

	stats, err := s.Orders().Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalOrders != 1 || !stats.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("Unexpected stats: %+v", stats)
	}
}

func TestPromocodeRoundTrip(t *testing.T) {
	s := store.New(pgtest.Setup(t), zap.NewNop())
	ctx := context.Background()

	promo := &models.Promocode{Code: "SAVE10", DiscountPercent: 10, ValidTill: time.Now().Add(24 * time.Hour)}
	if err := s.Promocodes().Create(ctx, promo); err != nil {
		t.Fatalf("Create promocode: %v", err)
	}
	if err := s.Promocodes().Create(ctx, &models.Promocode{Code: "SAVE10", DiscountPercent: 5, ValidTill: time.Now()}); !errors.Is(err, database.ErrPromocodeExists) {
		t.Errorf("Expected duplicate error, got %v", err)
	}

	got, err := s.Promocodes().GetByCode(ctx, "SAVE10")
	if err != nil {
		t.Fatalf("Get promocode: %v", err)
	}
	if got.DiscountPercent != 10 {
		t.Errorf("Expected 10%%, got %d", got.DiscountPercent)
	}
}
