package repository

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/storage"
)

// StoreMatchRepository is a collection-backed implementation of MatchRepository
type StoreMatchRepository struct {
	store *storage.Store[models.Match]
}

// NewMatchRepository creates a new MatchRepository
func NewMatchRepository(store *storage.Store[models.Match]) MatchRepository {
	return &StoreMatchRepository{store: store}
}

// Create creates a new match
func (r *StoreMatchRepository) Create(ctx context.Context, match models.Match, organizerID string) (*models.Match, error) {
	match.ID = uuid.New().String()
	match.OrganizerID = organizerID
	match.ParticipantIDs = []string{}
	match.Feedback = []models.Feedback{}
	match.Normalize()
	match.RecountPlayers()

	err := r.store.Update(ctx, func(matches []models.Match) ([]models.Match, error) {
		return append(matches, match), nil
	})
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// FindByID finds a match by ID
func (r *StoreMatchRepository) FindByID(ctx context.Context, id string) (*models.Match, error) {
	matches, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		if matches[i].ID == id {
			return &matches[i], nil
		}
	}
	return nil, ErrNotFound
}

// List retrieves matches with filtering
func (r *StoreMatchRepository) List(ctx context.Context, filter MatchFilter) ([]models.Match, error) {
	return r.filter(ctx, filter.matches)
}

// ListByOrganizer lists matches organized by a user
func (r *StoreMatchRepository) ListByOrganizer(ctx context.Context, userID string) ([]models.Match, error) {
	return r.filter(ctx, func(m *models.Match) bool {
		return m.OrganizerID == userID
	})
}

// ListByParticipant lists matches a user has joined
func (r *StoreMatchRepository) ListByParticipant(ctx context.Context, userID string) ([]models.Match, error) {
	return r.filter(ctx, func(m *models.Match) bool {
		return m.HasParticipant(userID)
	})
}

// Join adds a participant
func (r *StoreMatchRepository) Join(ctx context.Context, matchID, userID string) (*models.Match, error) {
	return r.mutate(ctx, matchID, func(m *models.Match) bool {
		if m.OrganizerID == userID || m.HasParticipant(userID) {
			return false
		}
		m.ParticipantIDs = append(m.ParticipantIDs, userID)
		m.RecountPlayers()
		return true
	})
}

// Leave removes a participant
func (r *StoreMatchRepository) Leave(ctx context.Context, matchID, userID string) (*models.Match, error) {
	return r.mutate(ctx, matchID, func(m *models.Match) bool {
		m.ParticipantIDs = slices.DeleteFunc(m.ParticipantIDs, func(id string) bool {
			return id == userID
		})
		m.RecountPlayers()
		return true
	})
}

// AddFeedback appends a feedback entry
func (r *StoreMatchRepository) AddFeedback(ctx context.Context, matchID string, feedback models.Feedback) (*models.Match, error) {
	return r.mutate(ctx, matchID, func(m *models.Match) bool {
		m.Feedback = append(m.Feedback, feedback)
		return true
	})
}

// Delete deletes a match
func (r *StoreMatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	deleted := false
	err := r.store.Update(ctx, func(matches []models.Match) ([]models.Match, error) {
		kept := slices.DeleteFunc(matches, func(m models.Match) bool {
			return m.ID == matchID
		})
		if len(kept) == len(matches) {
			return nil, storage.ErrSkipWrite
		}
		deleted = true
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *StoreMatchRepository) load(ctx context.Context) ([]models.Match, error) {
	matches, err := r.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		matches[i].Normalize()
	}
	return matches, nil
}

func (r *StoreMatchRepository) filter(ctx context.Context, keep func(m *models.Match) bool) ([]models.Match, error) {
	matches, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Match, 0, len(matches))
	for i := range matches {
		if keep(&matches[i]) {
			result = append(result, matches[i])
		}
	}
	return result, nil
}

// mutate applies fn to one match inside a single locked cycle. fn reports
// whether it changed anything; unchanged matches are not written back.
func (r *StoreMatchRepository) mutate(ctx context.Context, matchID string, fn func(m *models.Match) bool) (*models.Match, error) {
	var result models.Match
	err := r.store.Update(ctx, func(matches []models.Match) ([]models.Match, error) {
		for i := range matches {
			if matches[i].ID != matchID {
				continue
			}
			matches[i].Normalize()
			changed := fn(&matches[i])
			result = matches[i]
			if !changed {
				return nil, storage.ErrSkipWrite
			}
			return matches, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (f MatchFilter) matches(m *models.Match) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(m.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.Position != "" {
		found := slices.ContainsFunc(m.RequiredPositions, func(p models.Position) bool {
			return strings.EqualFold(string(p), f.Position)
		})
		if !found {
			return false
		}
	}
	if f.Date != "" && !strings.Contains(m.Date, f.Date) {
		return false
	}
	if f.SkillLevel != "" && string(m.SkillLevel) != f.SkillLevel {
		return false
	}
	return true
}
