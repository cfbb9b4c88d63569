package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/halisaha-api/internal/constants"
	"github.com/yukikurage/halisaha-api/internal/models"
	"github.com/yukikurage/halisaha-api/internal/repository"
)

func TestCatalogService(t *testing.T) {
	catalog := NewCatalogService()

	venues := catalog.Venues()
	require.Len(t, venues, 6)
	require.Len(t, catalog.Testimonials(), 4)

	venue, err := catalog.Venue(venues[2].ID)
	require.NoError(t, err)
	require.Equal(t, "Yıldız Sports Complex", venue.Name)

	_, err = catalog.Venue("missing")
	require.ErrorIs(t, err, ErrVenueNotFound)
}

func TestSeedMatches_PopulatesEmptyRegistryOnce(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	catalog := NewCatalogService()

	require.NoError(t, SeedMatches(ctx, catalog, env.users, env.matches, env.logger))
	require.NoError(t, SeedMatches(ctx, catalog, env.users, env.matches, env.logger))

	matches, err := env.matches.List(ctx, repository.MatchFilter{})
	require.NoError(t, err)
	require.Len(t, matches, len(catalog.Venues()))

	organizer, err := env.users.FindByUsername(ctx, constants.SeedOrganizerUsername)
	require.NoError(t, err)
	for _, m := range matches {
		require.Equal(t, organizer.ID, m.OrganizerID)
		require.Equal(t, 1, m.CurrentPlayers)
	}

	_, err = NewAuthService(env.users).Login(ctx, LoginInput{Username: constants.SeedOrganizerUsername, Password: ""})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedMatches_RefusesLoginableOrganizerAccount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.users.Create(ctx, models.User{Username: constants.SeedOrganizerUsername, Password: "hashed"})
	require.NoError(t, err)

	err = SeedMatches(ctx, NewCatalogService(), env.users, env.matches, env.logger)
	require.ErrorIs(t, err, ErrSeedOrganizerTaken)

	matches, err := env.matches.List(ctx, repository.MatchFilter{})
	require.NoError(t, err)
	require.Empty(t, matches)
}
