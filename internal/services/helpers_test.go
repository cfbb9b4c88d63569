package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

type testEnv struct {
	users   repository.UserRepository
	matches repository.MatchRepository
	logger  *slog.Logger
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return testEnv{
		users: repository.NewUserRepository(storage.NewStore[models.User](
			storage.NewJSONFile[models.User](filepath.Join(dir, "users.json"), logger))),
		matches: repository.NewMatchRepository(storage.NewStore[models.Match](
			storage.NewJSONFile[models.Match](filepath.Join(dir, "matches.json"), logger))),
		logger: logger,
	}
}

func (e testEnv) createUser(t *testing.T, username, phone string) *models.User {
	t.Helper()

	user, err := e.users.Create(context.Background(), models.User{
		Username: username,
		Password: "hashed",
		FullName: username,
		Phone:    phone,
	})
	require.NoError(t, err)
	return user
}

// flakyCollection fails every save while failSaves is set.
type flakyCollection[T any] struct {
	storage.Collection[T]
	failSaves atomic.Bool
}

func (c *flakyCollection[T]) SaveAll(ctx context.Context, items []T) error {
	if c.failSaves.Load() {
		return fmt.Errorf("%w: disk full", storage.ErrPersistence)
	}
	return c.Collection.SaveAll(ctx, items)
}

type flakyEnv struct {
	testEnv
	userColl  *flakyCollection[models.User]
	matchColl *flakyCollection[models.Match]
}

func newFlakyEnv(t *testing.T) flakyEnv {
	t.Helper()

	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userColl := &flakyCollection[models.User]{
		Collection: storage.NewJSONFile[models.User](filepath.Join(dir, "users.json"), logger),
	}
	matchColl := &flakyCollection[models.Match]{
		Collection: storage.NewJSONFile[models.Match](filepath.Join(dir, "matches.json"), logger),
	}
	return flakyEnv{
		testEnv: testEnv{
			users:   repository.NewUserRepository(storage.NewStore[models.User](userColl)),
			matches: repository.NewMatchRepository(storage.NewStore[models.Match](matchColl)),
			logger:  logger,
		},
		userColl:  userColl,
		matchColl: matchColl,
	}
}
