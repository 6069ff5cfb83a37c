package bot

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/safar/go-chat-store/internal/transport"
	"go.uber.org/zap"
)

var ErrDispatcherStopped = errors.New("dispatcher stopped")

// EventHandler processes one update synchronously.
type EventHandler interface {
	Handle(ctx context.Context, u transport.Update)
}

// Dispatcher runs updates on a fixed set of workers. All updates of one chat
// go to the same worker, so they are handled one at a time in arrival order
// while other chats proceed in parallel.
type Dispatcher struct {
	handler EventHandler
	timeout time.Duration
	logger  *zap.Logger

	shards []chan transport.Update
	wg     sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
	cancel  context.CancelFunc
}

func NewDispatcher(handler EventHandler, workers, queueSize int, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shards := make([]chan transport.Update, workers)
	for i := range shards {
		shards[i] = make(chan transport.Update, queueSize)
	}
	return &Dispatcher{
		handler: handler,
		timeout: timeout,
		logger:  logger.Named("dispatcher"),
		shards:  shards,
	}
}

// Start launches the workers. Handlers run under contexts derived from ctx.
func (d *Dispatcher) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(context.WithoutCancel(ctx))
	for i, shard := range d.shards {
		d.wg.Add(1)
		go d.work(ctx, i, shard)
	}
	d.logger.Info("dispatcher started", zap.Int("workers", len(d.shards)))
}

// Submit queues u behind the earlier updates of the same chat. It blocks
// while that chat's worker queue is full.
func (d *Dispatcher) Submit(ctx context.Context, u transport.Update) {
	if err := d.Enqueue(ctx, u); err != nil {
		d.logger.Warn("update dropped", zap.Int64("chat_id", u.ChatID), zap.Int64("update_id", u.ID), zap.Error(err))
	}
}

func (d *Dispatcher) Enqueue(ctx context.Context, u transport.Update) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return ErrDispatcherStopped
	}

	select {
	case d.shard(u.ChatID) <- u:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) shard(chatID int64) chan transport.Update {
	return d.shards[uint64(chatID)%uint64(len(d.shards))]
}

// Stop refuses new updates and waits for the queued ones to finish or for
// ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		for _, shard := range d.shards {
			close(shard)
		}
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("dispatcher stopped")
		return nil
	case <-ctx.Done():
		if d.cancel != nil {
			d.cancel()
		}
		return ctx.Err()
	}
}

func (d *Dispatcher) work(ctx context.Context, id int, updates <-chan transport.Update) {
	defer d.wg.Done()
	for u := range updates {
		d.handle(ctx, id, u)
	}
}

func (d *Dispatcher) handle(ctx context.Context, worker int, u transport.Update) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("handler panicked",
				zap.Int("worker", worker),
				zap.Int64("chat_id", u.ChatID),
				zap.Int64("update_id", u.ID),
				zap.Any("panic", rec),
			)
		}
	}()

	d.handler.Handle(ctx, u)
}
