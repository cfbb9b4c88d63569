package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, query string) (PaginationParams, bool) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/maclar"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	_, ok := paramsFor(t, "")
	require.False(t, ok)

	params, ok := paramsFor(t, "?page=3&limit=5")
	require.True(t, ok)
	require.Equal(t, PaginationParams{Page: 3, Limit: 5, Offset: 10}, params)

	params, ok = paramsFor(t, "?limit=1000")
	require.True(t, ok)
	require.Equal(t, PaginationParams{Page: 1, Limit: 20, Offset: 0}, params)

	params, ok = paramsFor(t, "?page=-2")
	require.True(t, ok)
	require.Equal(t, 1, params.Page)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	require.Equal(t, []int{1, 2}, Paginate(items, PaginationParams{Page: 1, Limit: 2, Offset: 0}))
	require.Equal(t, []int{5}, Paginate(items, PaginationParams{Page: 3, Limit: 2, Offset: 4}))
	require.Empty(t, Paginate(items, PaginationParams{Page: 4, Limit: 2, Offset: 6}))
}
