// Package repository declares the persistence contracts for every storefront
// aggregate. Implementations live in internal/store (Postgres) and
// internal/store/memstore.
package repository

import (
	"context"

	"github.com/safar/go-chat-store/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	// Upsert inserts the user or refreshes its full name, keyed by TelegramID.
	// Admin flag is only ever raised, never lowered, by Upsert.
	Upsert(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	SetLanguage(ctx context.Context, telegramID int64, language string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, page PageRequest) (*Page[models.User], error)
	ListAdmins(ctx context.Context) ([]models.User, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	// GetForUpdate reads the product holding a row lock until the transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*models.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Product, error)
	List(ctx context.Context, page PageRequest) (*Page[models.Product], error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	// DecrementStock subtracts quantity only if enough stock remains and
	// returns database.ErrInsufficientStock otherwise.
	DecrementStock(ctx context.Context, id int64, quantity int) error
	IncrementStock(ctx context.Context, id int64, quantity int) error
}

type CartRepository interface {
	// AddItem merges into an existing (user, product) row instead of duplicating it.
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*models.CartItem, error)
	ListByUser(ctx context.Context, userID int64) ([]models.CartItem, error)
	Clear(ctx context.Context, userID int64) error
}

type OrderRepository interface {
	// Create inserts the order and its items, filling generated ids and timestamps.
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	GetForUpdate(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, paymentType *models.PaymentType) error
	ListByUser(ctx context.Context, userID int64, page PageRequest) (*Page[models.Order], error)
	List(ctx context.Context, page PageRequest) (*Page[models.Order], error)
	// Stats aggregates every order that was not cancelled.
	Stats(ctx context.Context) (*models.OrderStats, error)
}

type DeliveryRepository interface {
	// Create returns database.ErrDeliveryExists if the order already has one.
	Create(ctx context.Context, delivery *models.Delivery) error
	GetByID(ctx context.Context, id int64) (*models.Delivery, error)
	GetByOrderID(ctx context.Context, orderID int64) (*models.Delivery, error)
	Update(ctx context.Context, delivery *models.Delivery) error
	List(ctx context.Context, page PageRequest) (*Page[models.Delivery], error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context, page PageRequest) (*Page[models.Feedback], error)
	Delete(ctx context.Context, id int64) error
}

type PromocodeRepository interface {
	// Create returns database.ErrPromocodeExists on a duplicate code.
	Create(ctx context.Context, promocode *models.Promocode) error
	GetByCode(ctx context.Context, code string) (*models.Promocode, error)
}

// RepositoryFactory hands out repositories bound to one connection or transaction.
type RepositoryFactory interface {
	Users() UserRepository
	Categories() CategoryRepository
	Products() ProductRepository
	Cart() CartRepository
	Orders() OrderRepository
	Deliveries() DeliveryRepository
	Feedback() FeedbackRepository
	Promocodes() PromocodeRepository
}

// TransactionManager runs fn inside one transaction. Every repository obtained
// from the factory passed to fn shares it; an error from fn rolls it back.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// Store is the full persistence surface injected into services.
type Store interface {
	RepositoryFactory
	TransactionManager
}
