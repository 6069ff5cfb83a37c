package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard records which (order, chat) pairs have already been notified.
// Claim returns true only for the first caller of a pair.
type Guard interface {
	Claim(ctx context.Context, orderID, chatID int64) (bool, error)
	Release(ctx context.Context, orderID, chatID int64) error
}

func guardKey(orderID, chatID int64) string {
	return fmt.Sprintf("chatstore:notify:%d:%d", orderID, chatID)
}

// MemoryGuard keeps claims in process memory. Claims expire after ttl;
// expired entries are swept on Claim.
type MemoryGuard struct {
	mu   sync.Mutex
	ttl  time.Duration
	now  func() time.Time
	seen map[string]time.Time
}

func NewMemoryGuard(ttl time.Duration) *MemoryGuard {
	return &MemoryGuard{ttl: ttl, now: time.Now, seen: make(map[string]time.Time)}
}

func (g *MemoryGuard) Claim(_ context.Context, orderID, chatID int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for key, expires := range g.seen {
		if !now.Before(expires) {
			delete(g.seen, key)
		}
	}

	key := guardKey(orderID, chatID)
	if _, ok := g.seen[key]; ok {
		return false, nil
	}
	g.seen[key] = now.Add(g.ttl)
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, orderID, chatID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.seen, guardKey(orderID, chatID))
	return nil
}

// Len reports the number of live claims.
func (g *MemoryGuard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}

// RedisGuard shares claims between bot replicas. Claims expire after ttl.
type RedisGuard struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisGuard(client redis.Cmdable, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, ttl: ttl}
}

func (g *RedisGuard) Claim(ctx context.Context, orderID, chatID int64) (bool, error) {
	ok, err := g.client.SetNX(ctx, guardKey(orderID, chatID), time.Now().Unix(), g.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim notification %d/%d: %w", orderID, chatID, err)
	}
	return ok, nil
}

func (g *RedisGuard) Release(ctx context.Context, orderID, chatID int64) error {
	if err := g.client.Del(ctx, guardKey(orderID, chatID)).Err(); err != nil {
		return fmt.Errorf("release notification %d/%d: %w", orderID, chatID, err)
	}
	return nil
}
