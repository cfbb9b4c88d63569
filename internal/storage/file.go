package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// JSONFile keeps a collection as an indented JSON array in a single file.
type JSONFile[T any] struct {
	path   string
	logger *slog.Logger
}

// NewJSONFile creates a file-backed collection at path.
func NewJSONFile[T any](path string, logger *slog.Logger) *JSONFile[T] {
	return &JSONFile[T]{path: path, logger: logger}
}

// Path returns the backing file path.
func (f *JSONFile[T]) Path() string {
	return f.path
}

func (f *JSONFile[T]) LoadAll(_ context.Context) ([]T, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := f.write([]byte("[]")); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, f.path, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		f.logger.Warn("collection file is not valid JSON, treating as empty",
			slog.String("path", f.path), slog.Any("error", err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (f *JSONFile[T]) SaveAll(_ context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, f.path, err)
	}
	if err := f.write(data); err != nil {
		f.logger.Error("failed to write collection file", slog.String("path", f.path), slog.Any("error", err))
		return err
	}
	return nil
}

// write replaces the file through a temp file and rename, so readers see
// either the old or the new content.
func (f *JSONFile[T]) write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrPersistence, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", ErrPersistence, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrPersistence, tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrPersistence, f.path, err)
	}
	return nil
}
