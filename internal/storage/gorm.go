package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

// Document is one record of a collection stored in a SQL table.
type Document struct {
	Collection string `gorm:"primaryKey;size:64"`
	Seq        int    `gorm:"primaryKey;autoIncrement:false"`
	Body       string `gorm:"type:text;not null"`
}

func (Document) TableName() string {
	return "documents"
}

// Gorm keeps a collection as ordered rows of the documents table.
type Gorm[T any] struct {
	db         *gorm.DB
	collection string
	logger     *slog.Logger
}

// NewGorm creates a collection named name on db. The documents table must
// already be migrated.
func NewGorm[T any](db *gorm.DB, name string, logger *slog.Logger) *Gorm[T] {
	return &Gorm[T]{db: db, collection: name, logger: logger}
}

func (g *Gorm[T]) LoadAll(ctx context.Context) ([]T, error) {
	var docs []Document
	err := g.db.WithContext(ctx).
		Where("collection = ?", g.collection).
		Order("seq").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrPersistence, g.collection, err)
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := json.Unmarshal([]byte(doc.Body), &item); err != nil {
			g.logger.Warn("stored document is not valid JSON, treating collection as empty",
				slog.String("collection", g.collection), slog.Int("seq", doc.Seq), slog.Any("error", err))
			return []T{}, nil
		}
		items = append(items, item)
	}
	return items, nil
}

func (g *Gorm[T]) SaveAll(ctx context.Context, items []T) error {
	docs := make([]Document, len(items))
	for i, item := range items {
		body, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: encode %s: %v", ErrPersistence, g.collection, err)
		}
		docs[i] = Document{Collection: g.collection, Seq: i, Body: string(body)}
	}

	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection = ?", g.collection).Delete(&Document{}).Error; err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}
		return tx.CreateInBatches(docs, 100).Error
	})
	if err != nil {
		g.logger.Error("failed to save collection", slog.String("collection", g.collection), slog.Any("error", err))
		return fmt.Errorf("%w: save %s: %v", ErrPersistence, g.collection, err)
	}
	return nil
}
