package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
)

// ErrSeedOrganizerTaken is returned when the seed organizer username belongs
// to an account that can log in.
var ErrSeedOrganizerTaken = errors.New("seed organizer username is held by a real account")

type seedSlot struct {
	date       string
	time       string
	maxPlayers int
	skill      models.SkillLevel
	price      int
	positions  []models.Position
}

// One slot per catalog venue, in catalog order.
var seedSlots = []seedSlot{
	{"28 Kasım", "19:00", 12, models.SkillIntermediate, 50, []models.Position{models.PositionGoalkeeper, models.PositionDefender}},
	{"29 Kasım", "20:30", 14, models.SkillAdvanced, 60, []models.Position{models.PositionForward}},
	{"30 Kasım", "18:00", 10, models.SkillBeginner, 40, []models.Position{models.PositionMidfielder}},
	{"1 Aralık", "17:30", 12, models.SkillIntermediate, 45, []models.Position{models.PositionDefender}},
	{"2 Aralık", "21:00", 12, models.SkillAdvanced, 55, []models.Position{models.PositionGoalkeeper}},
	{"3 Aralık", "19:30", 14, models.SkillIntermediate, 50, []models.Position{models.PositionMidfielder, models.PositionForward}},
}

// SeedMatches populates an empty registry with one match per catalog venue,
// organized by a dedicated seed user that cannot log in.
func SeedMatches(ctx context.Context, catalog *CatalogService, users repository.UserRepository, matches repository.MatchRepository, logger *slog.Logger) error {
	existing, err := matches.List(ctx, repository.MatchFilter{})
	if err != nil {
		return fmt.Errorf("failed to check registry: %w", err)
	}
	if len(existing) > 0 {
		logger.InfoContext(ctx, "registry already populated, skipping seed", slog.Int("matches", len(existing)))
		return nil
	}

	organizer, err := users.FindByUsername(ctx, constants.SeedOrganizerUsername)
	if errors.Is(err, repository.ErrNotFound) {
		// An empty hash never matches a bcrypt comparison.
		organizer, err = users.Create(ctx, models.User{
			Username: constants.SeedOrganizerUsername,
			FullName: "Halı Saha",
		})
	}
	if err != nil {
		return fmt.Errorf("failed to prepare seed organizer: %w", err)
	}
	if organizer.Password != "" {
		return ErrSeedOrganizerTaken
	}

	venues := catalog.Venues()
	for i, slot := range seedSlots {
		if i >= len(venues) {
			break
		}
		_, err := matches.Create(ctx, models.Match{
			VenueName:         venues[i].Name,
			Location:          venues[i].Location,
			Date:              slot.date,
			Time:              slot.time,
			MaxPlayers:        slot.maxPlayers,
			SkillLevel:        slot.skill,
			Price:             slot.price,
			RequiredPositions: slot.positions,
		}, organizer.ID)
		if err != nil {
			return fmt.Errorf("failed to seed match: %w", err)
		}
	}

	logger.InfoContext(ctx, "seeded match registry", slog.Int("matches", len(seedSlots)))
	return nil
}
