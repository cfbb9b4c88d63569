// Package storage persists whole collections of records.
//
// Every backend exposes the same contract: LoadAll returns the full collection
// and SaveAll replaces it. Store serializes load-modify-save cycles so that
// concurrent writers in one process never overwrite each other's changes.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrPersistence wraps every read or write failure of a backend.
	ErrPersistence = errors.New("storage: persistence failure")
	// ErrSkipWrite may be returned by an Update callback to finish without saving.
	ErrSkipWrite = errors.New("storage: skip write")
)

// Collection is a whole-collection record store.
type Collection[T any] interface {
	// LoadAll returns every record in storage order. A missing store is created
	// empty. Undecodable content is logged and reported as an empty collection.
	LoadAll(ctx context.Context) ([]T, error)

	// SaveAll replaces the stored collection with items.
	SaveAll(ctx context.Context, items []T) error
}
