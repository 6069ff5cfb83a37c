package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func nowFixed() time.Time {
	return time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	prompt := NewPendingPrompt("edit_category", map[string]string{"id": "7"}, nowFixed())
	prompt.Step = 2
	prompt.Collected["name"] = "Groceries"

	require.NoError(t, store.Save(ctx, &ChatSession{ChatID: 42, Language: "ru", Role: RoleAdmin, Pending: prompt}))

	got, found, err := store.Load(ctx, 42)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ru", got.Language)
	assert.Equal(t, RoleAdmin, got.Role)
	require.NotNil(t, got.Pending)
	assert.Equal(t, prompt.ID, got.Pending.ID)
	assert.Equal(t, 2, got.Pending.Step)
	assert.Equal(t, "Groceries", got.Pending.Collected["name"])
	assert.Equal(t, "7", got.Pending.Context["id"])

	assert.Equal(t, time.Hour, mr.TTL("chatstore:session:42"))
}

func TestRedisStoreMissingAndExpired(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, found, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, &ChatSession{ChatID: 1, Language: "uz", Role: RoleCustomer}))
	mr.FastForward(2 * time.Hour)

	_, found, err = store.Load(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRegistryOverRedis(t *testing.T) {
	store, _ := newRedisStore(t)
	r := NewRegistry(store, Options{DefaultLanguage: "uz"}, zap.NewNop())
	ctx := context.Background()

	_, err := r.SetPrompt(ctx, 8, NewPendingPrompt("feedback", nil, nowFixed()))
	require.NoError(t, err)

	adv, err := r.ConsumeAnswer(ctx, 8, TextAnswer("great"), countingStepper{n: 1})
	require.NoError(t, err)
	assert.True(t, adv.Completed)

	sess, err := r.GetOrCreate(ctx, 8)
	require.NoError(t, err)
	assert.Nil(t, sess.Pending)
}
