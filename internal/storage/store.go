package storage

import (
	"context"
	"errors"
	"sync"
)

// Store guards a Collection with a single-writer lock.
type Store[T any] struct {
	mu   sync.RWMutex
	coll Collection[T]
}

// NewStore wraps coll.
func NewStore[T any](coll Collection[T]) *Store[T] {
	return &Store[T]{coll: coll}
}

// Snapshot loads the current collection.
func (s *Store[T]) Snapshot(ctx context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.coll.LoadAll(ctx)
}

// Update runs fn against the current collection and saves what it returns.
// The lock is held for the whole cycle. When fn fails nothing is written;
// ErrSkipWrite ends the cycle successfully without a write.
func (s *Store[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.coll.LoadAll(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		if errors.Is(err, ErrSkipWrite) {
			return nil
		}
		return err
	}

	return s.coll.SaveAll(ctx, updated)
}
