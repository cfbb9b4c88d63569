package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedis_UnreachableServerIsPersistenceError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })

	coll := NewRedis[record](client, "test:records", discardLogger())

	_, err := coll.LoadAll(context.Background())
	require.ErrorIs(t, err, ErrPersistence)

	err = coll.SaveAll(context.Background(), []record{{ID: "a"}})
	require.ErrorIs(t, err, ErrPersistence)
}

// Runs against a real server when REDIS_TEST_ADDR is set.
func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { client.Close() })

	key := "halisaha:test:" + t.Name()
	require.NoError(t, client.Del(ctx, key).Err())
	t.Cleanup(func() { client.Del(context.Background(), key) })

	coll := NewRedis[record](client, key, discardLogger())

	items, err := coll.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	want := []record{{ID: "b", Tags: []string{"x"}, Count: 2}, {ID: "a", Tags: []string{}, Count: 1}}
	require.NoError(t, coll.SaveAll(ctx, want))

	got, err := coll.LoadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, client.Set(ctx, key, "{broken", 0).Err())
	got, err = coll.LoadAll(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}
