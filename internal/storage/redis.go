package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Redis keeps a collection as one JSON array value under a key.
type Redis[T any] struct {
	client *redis.Client
	key    string
	logger *slog.Logger
}

func NewRedis[T any](client *redis.Client, key string, logger *slog.Logger) *Redis[T] {
	return &Redis[T]{client: client, key: key, logger: logger}
}

func (r *Redis[T]) LoadAll(ctx context.Context) ([]T, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		if err := r.client.Set(ctx, r.key, "[]", 0).Err(); err != nil {
			return nil, fmt.Errorf("%w: init %s: %v", ErrPersistence, r.key, err)
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrPersistence, r.key, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		r.logger.Warn("redis value is not valid JSON, treating as empty",
			slog.String("key", r.key), slog.Any("error", err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Redis[T]) SaveAll(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, r.key, err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		r.logger.Error("failed to save collection", slog.String("key", r.key), slog.Any("error", err))
		return fmt.Errorf("%w: set %s: %v", ErrPersistence, r.key, err)
	}
	return nil
}
