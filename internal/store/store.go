// Package store implements repository.Store on PostgreSQL with database/sql.
package store

import (
	"context"
	"database/sql"

	"github.com/safar/go-chat-store/internal/database"
	"github.com/safar/go-chat-store/internal/repository"
	"go.uber.org/zap"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

type queries struct {
	q DBTX
}

func (f queries) Users() repository.UserRepository           { return &userRepo{q: f.q} }
func (f queries) Categories() repository.CategoryRepository  { return &categoryRepo{q: f.q} }
func (f queries) Products() repository.ProductRepository     { return &productRepo{q: f.q} }
func (f queries) Cart() repository.CartRepository            { return &cartRepo{q: f.q} }
func (f queries) Orders() repository.OrderRepository         { return &orderRepo{q: f.q} }
func (f queries) Deliveries() repository.DeliveryRepository  { return &deliveryRepo{q: f.q} }
func (f queries) Feedback() repository.FeedbackRepository    { return &feedbackRepo{q: f.q} }
func (f queries) Promocodes() repository.PromocodeRepository { return &promocodeRepo{q: f.q} }

type Store struct {
	queries
	db     *sql.DB
	txOpts database.TxOptions
	logger *zap.Logger
}

var _ repository.Store = (*Store)(nil)

// New returns a Store whose transactions run serializable and are retried on
// serialization failures, deadlocks and NOWAIT lock conflicts.
func New(db *sql.DB, logger *zap.Logger) *Store {
	opts := database.DefaultTxOptions()
	opts.IsolationLevel = sql.LevelSerializable

	return &Store{
		queries: queries{q: db},
		db:      db,
		txOpts:  opts,
		logger:  logger.Named("store"),
	}
}

func (s *Store) Execute(ctx context.Context, fn func(repos repository.RepositoryFactory) error) error {
	return database.WithRetry(ctx, s.db, s.txOpts, s.logger, func(tx *sql.Tx) error {
		return fn(queries{q: tx})
	})
}

func countRows(ctx context.Context, q DBTX, query string, args ...any) (int64, error) {
	var total int64
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func expectOneRow(result sql.Result, notFound error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return notFound
	}
	return nil
}
