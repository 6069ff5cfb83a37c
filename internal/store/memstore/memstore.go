// Package memstore is an in-process repository.Store. Every operation and
// every transaction is serialized by one mutex; a failed transaction restores
// the snapshot taken when it began.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/safar/go-chat-store/internal/models"
	"github.com/safar/go-chat-store/internal/repository"
)

type dataset struct {
	seq        int64
	users      map[int64]models.User
	categories map[int64]models.Category
	products   map[int64]models.Product
	cart       map[int64]models.CartItem
	orders     map[int64]models.Order
	deliveries map[int64]models.Delivery
	feedback   map[int64]models.Feedback
	promocodes map[int64]models.Promocode
}

func newDataset() *dataset {
	return &dataset{
		users:      map[int64]models.User{},
		categories: map[int64]models.Category{},
		products:   map[int64]models.Product{},
		cart:       map[int64]models.CartItem{},
		orders:     map[int64]models.Order{},
		deliveries: map[int64]models.Delivery{},
		feedback:   map[int64]models.Feedback{},
		promocodes: map[int64]models.Promocode{},
	}
}

// clone copies every table. Stored values are never mutated in place, so a
// shallow copy of each map is a consistent snapshot.
func (d *dataset) clone() *dataset {
	return &dataset{
		seq:        d.seq,
		users:      maps.Clone(d.users),
		categories: maps.Clone(d.categories),
		products:   maps.Clone(d.products),
		cart:       maps.Clone(d.cart),
		orders:     maps.Clone(d.orders),
		deliveries: maps.Clone(d.deliveries),
		feedback:   maps.Clone(d.feedback),
		promocodes: maps.Clone(d.promocodes),
	}
}

func (d *dataset) nextID() int64 {
	d.seq++
	return d.seq
}

type Store struct {
	mu   sync.Mutex
	data *dataset
	now  func() time.Time
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{data: newDataset(), now: time.Now}
}

// WithClock overrides the timestamp source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Execute holds the store lock for the whole of fn. Repositories handed to fn
// must be used instead of the Store itself, which would deadlock.
func (s *Store) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	defer func() {
		if p := recover(); p != nil {
			s.data = snapshot
			panic(p)
		}
		if err != nil {
			s.data = snapshot
		}
	}()

	return fn(factory{s: s, inTx: true})
}

func (s *Store) Users() repository.UserRepository           { return factory{s: s}.Users() }
func (s *Store) Categories() repository.CategoryRepository  { return factory{s: s}.Categories() }
func (s *Store) Products() repository.ProductRepository     { return factory{s: s}.Products() }
func (s *Store) Cart() repository.CartRepository            { return factory{s: s}.Cart() }
func (s *Store) Orders() repository.OrderRepository         { return factory{s: s}.Orders() }
func (s *Store) Deliveries() repository.DeliveryRepository  { return factory{s: s}.Deliveries() }
func (s *Store) Feedback() repository.FeedbackRepository    { return factory{s: s}.Feedback() }
func (s *Store) Promocodes() repository.PromocodeRepository { return factory{s: s}.Promocodes() }

type factory struct {
	s    *Store
	inTx bool
}

func (f factory) Users() repository.UserRepository           { return userRepo(f) }
func (f factory) Categories() repository.CategoryRepository  { return categoryRepo(f) }
func (f factory) Products() repository.ProductRepository     { return productRepo(f) }
func (f factory) Cart() repository.CartRepository            { return cartRepo(f) }
func (f factory) Orders() repository.OrderRepository         { return orderRepo(f) }
func (f factory) Deliveries() repository.DeliveryRepository  { return deliveryRepo(f) }
func (f factory) Feedback() repository.FeedbackRepository    { return feedbackRepo(f) }
func (f factory) Promocodes() repository.PromocodeRepository { return promocodeRepo(f) }

// with runs fn against the live dataset, taking the lock unless already
// inside Execute.
func (f factory) with(ctx context.Context, fn func(d *dataset) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !f.inTx {
		f.s.mu.Lock()
		defer f.s.mu.Unlock()
	}
	return fn(f.s.data)
}

func (f factory) now() time.Time {
	return f.s.now()
}

func sortedValues[T any](m map[int64]T, less func(a, b T) int) []T {
	values := slices.Collect(maps.Values(m))
	slices.SortFunc(values, less)
	return values
}

func paginate[T any](items []T, page repository.PageRequest) *repository.Page[T] {
	total := int64(len(items))
	start := min(page.Offset(), len(items))
	end := min(start+page.Limit(), len(items))
	return repository.NewPage(slices.Clone(items[start:end]), total, page)
}

func newestFirst(aTime, bTime time.Time, aID, bID int64) int {
	if c := bTime.Compare(aTime); c != 0 {
		return c
	}
	switch {
	case aID > bID:
		return -1
	case aID < bID:
		return 1
	}
	return 0
}

func byID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
