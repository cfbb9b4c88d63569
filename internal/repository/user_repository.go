package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

// StoreUserRepository is a collection-backed implementation of UserRepository
type StoreUserRepository struct {
	store *storage.Store[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store *storage.Store[models.User]) UserRepository {
	return &StoreUserRepository{store: store}
}

// FindByID finds a user by ID
func (r *StoreUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByUsername finds a user by username
func (r *StoreUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create creates a new user
func (r *StoreUserRepository) Create(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = uuid.New().String()
	user.ReliabilityScore = constants.DefaultReliabilityScore

	err := r.store.Update(ctx, func(users []models.User) ([]models.User, error) {
		for _, existing := range users {
			if existing.Username == user.Username {
				return nil, ErrDuplicateUsername
			}
		}
		return append(users, user), nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AdjustReliability adds delta to the stored reliability score
func (r *StoreUserRepository) AdjustReliability(ctx context.Context, id string, delta int) (*models.User, error) {
	var updated models.User
	err := r.store.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == id {
				users[i].ReliabilityScore += delta
				updated = users[i]
				return users, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
