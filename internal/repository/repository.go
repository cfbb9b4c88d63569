package repository

import (
	"context"
	"errors"

	"github.com/yukikurage/halisaha-api/internal/models"
)

var (
	// ErrNotFound is returned when a user or match id is unknown.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateUsername is returned when registering a taken username.
	ErrDuplicateUsername = errors.New("repository: username already exists")
)

// UserRepository is the user directory.
type UserRepository interface {
	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByUsername finds a user by exact, case-sensitive username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Create stores a new user with a fresh ID and the default reliability score.
	// The password must already be hashed.
	Create(ctx context.Context, user models.User) (*models.User, error)

	// AdjustReliability adds delta to the user's reliability score without clamping
	AdjustReliability(ctx context.Context, id string, delta int) (*models.User, error)
}

// MatchFilter holds the list predicates. Empty fields match everything.
type MatchFilter struct {
	Location   string
	Position   string
	Date       string
	SkillLevel string
}

// MatchRepository is the match registry.
type MatchRepository interface {
	// Create stores a new match owned by organizerID
	Create(ctx context.Context, match models.Match, organizerID string) (*models.Match, error)

	// FindByID finds a match by ID
	FindByID(ctx context.Context, id string) (*models.Match, error)

	// List returns matches passing every filter predicate, in storage order
	List(ctx context.Context, filter MatchFilter) ([]models.Match, error)

	// ListByOrganizer returns matches organized by userID
	ListByOrganizer(ctx context.Context, userID string) ([]models.Match, error)

	// ListByParticipant returns matches userID has joined
	ListByParticipant(ctx context.Context, userID string) ([]models.Match, error)

	// Join adds userID to the participants. Joining twice is a no-op.
	Join(ctx context.Context, matchID, userID string) (*models.Match, error)

	// Leave removes userID from the participants if present
	Leave(ctx context.Context, matchID, userID string) (*models.Match, error)

	// AddFeedback appends a feedback entry
	AddFeedback(ctx context.Context, matchID string, feedback models.Feedback) (*models.Match, error)

	// Delete removes a match, reporting whether it existed
	Delete(ctx context.Context, matchID string) (bool, error)
}
