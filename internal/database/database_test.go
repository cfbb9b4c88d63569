package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/halisaha-api/internal/config"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{config.StorageMySQL, "mysql"},
		{config.StoragePostgres, "postgres"},
		{config.StorageSQLite, "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := Dialector(&config.Config{StorageDriver: tt.driver, SQLitePath: "x.db"})
			require.NoError(t, err)
			require.Equal(t, tt.name, d.Name())
		})
	}

	_, err := Dialector(&config.Config{StorageDriver: config.StorageFile})
	require.Error(t, err)
}

func TestConnectAndMigrateSQLite(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		StorageDriver: config.StorageSQLite,
		SQLitePath:    filepath.Join(t.TempDir(), "halisaha.db"),
		GinMode:       "release",
	}

	require.NoError(t, Connect(cfg, log))
	t.Cleanup(func() {
		if sqlDB, err := GetDB().DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, Migrate(log))
	require.True(t, GetDB().Migrator().HasTable(&storage.Document{}))
}
