// AngelaMos | 2026
// repository_test.go

package destination

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
	"github.com/carterperez-dev/travel-marketplace/internal/core/coretest"
)

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(coretest.NewDatabase(t).DB)

	n, err := repo.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(seedRows), n)

	n, err = repo.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(seedRows))

	names := make(map[string]int, len(all))
	for _, d := range all {
		names[d.Name]++
	}
	for _, row := range seedRows {
		assert.Equal(t, 1, names[row.name], row.name)
	}
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(coretest.NewDatabase(t).DB)

	require.NoError(t, repo.Create(ctx, &Destination{Name: "Leh", Country: "India"}))

	n, err := repo.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpdateDestination(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(coretest.NewDatabase(t).DB)

	d := &Destination{Name: "Leh", Country: "India"}
	require.NoError(t, repo.Create(ctx, d))
	assert.Nil(t, d.Description)

	desc := "High desert"
	updated, err := repo.Update(ctx, d.ID, Changes{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, updated.Description)
	assert.Equal(t, desc, *updated.Description)
	assert.Equal(t, "Leh", updated.Name)

	_, err = repo.Update(ctx, 404, Changes{Description: &desc})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestHandlerGet(t *testing.T) {
	repo := NewRepository(coretest.NewDatabase(t).DB)
	_, err := repo.Seed(context.Background())
	require.NoError(t, err)

	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r)

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"found", "/destinations/1", http.StatusOK, `"name":"Goa"`},
		{"missing", "/destinations/999", http.StatusNotFound, `Destination not found`},
		{"not a number", "/destinations/abc", http.StatusBadRequest, `Invalid destination ID`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}
