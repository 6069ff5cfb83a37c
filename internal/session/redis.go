package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as one JSON value. Every save refreshes the TTL,
// so idle chats expire and start over with a fresh session.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) key(chatID int64) string {
	return fmt.Sprintf("chatstore:session:%d", chatID)
}

func (r *RedisStore) Load(ctx context.Context, chatID int64) (*ChatSession, bool, error) {
	data, err := r.client.Get(ctx, r.key(chatID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load session %d: %w", chatID, err)
	}

	var sess ChatSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, false, fmt.Errorf("decode session %d: %w", chatID, err)
	}
	if sess.Pending != nil && sess.Pending.Collected == nil {
		sess.Pending.Collected = map[string]string{}
	}
	return &sess, true, nil
}

func (r *RedisStore) Save(ctx context.Context, sess *ChatSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", sess.ChatID, err)
	}
	if err := r.client.Set(ctx, r.key(sess.ChatID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %d: %w", sess.ChatID, err)
	}
	return nil
}
