package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/halisaha-api/internal/dto"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
)

// ViewerRole is the relationship between a caller and a match.
type ViewerRole int

const (
	RoleStranger ViewerRole = iota
	RoleParticipant
	RoleOrganizer
)

func (r ViewerRole) String() string {
	switch r {
	case RoleOrganizer:
		return "organizer"
	case RoleParticipant:
		return "participant"
	default:
		return "stranger"
	}
}

// RoleOf derives the viewer's role from the current match state. An empty
// viewerID is an anonymous caller.
func RoleOf(m *models.Match, viewerID string) ViewerRole {
	switch {
	case viewerID == "":
		return RoleStranger
	case m.OrganizerID == viewerID:
		return RoleOrganizer
	case m.HasParticipant(viewerID):
		return RoleParticipant
	default:
		return RoleStranger
	}
}

// phoneBook resolves organizer phones, remembering lookups for one response.
type phoneBook struct {
	users  repository.UserRepository
	phones map[string]*string
}

func newPhoneBook(users repository.UserRepository) *phoneBook {
	return &phoneBook{users: users, phones: make(map[string]*string)}
}

func (b *phoneBook) lookup(ctx context.Context, userID string) (*string, error) {
	if phone, ok := b.phones[userID]; ok {
		return phone, nil
	}

	var phone *string
	user, err := b.users.FindByID(ctx, userID)
	switch {
	case err == nil:
		if user.Phone != "" {
			phone = &user.Phone
		}
	case errors.Is(err, repository.ErrNotFound):
		// organizer record gone; respond without a phone
	default:
		return nil, fmt.Errorf("failed to look up organizer: %w", err)
	}

	b.phones[userID] = phone
	return phone, nil
}

// project applies the visibility policy for viewerID to m.
func (b *phoneBook) project(ctx context.Context, m models.Match, viewerID string) (dto.MatchDTO, error) {
	switch RoleOf(&m, viewerID) {
	case RoleOrganizer:
		return dto.ToMemberMatchDTO(m), nil
	case RoleParticipant:
		view := dto.ToMemberMatchDTO(m)
		phone, err := b.lookup(ctx, m.OrganizerID)
		if err != nil {
			return dto.MatchDTO{}, err
		}
		view.OrganizerPhone = phone
		return view, nil
	default:
		return dto.ToPublicMatchDTO(m), nil
	}
}

func (b *phoneBook) projectAll(ctx context.Context, matches []models.Match, viewerID string) ([]dto.MatchDTO, error) {
	views := make([]dto.MatchDTO, 0, len(matches))
	for _, m := range matches {
		view, err := b.project(ctx, m, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
