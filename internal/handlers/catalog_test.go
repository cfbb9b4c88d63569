package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/halisaha-api/internal/models"
)

func TestCatalogHandler(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodGet, "/api/venues", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	venues := decode[[]models.Venue](t, w)
	require.Len(t, venues, 6)

	w = env.do(t, http.MethodGet, "/api/venues/"+venues[0].ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, venues[0].Name, decode[models.Venue](t, w).Name)

	w = env.do(t, http.MethodGet, "/api/venues/missing", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, "/api/testimonials", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[[]models.Testimonial](t, w), 4)
}
