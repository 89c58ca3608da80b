package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/reelfind/internal/config"
	"github.com/user/reelfind/internal/model"
)

func newTMDBService(baseURL string) *TMDBService {
	cfg := &config.Config{
		TMDBAPIKey:    "test-key",
		TMDBBaseURL:   baseURL,
		ProviderRPS:   1000,
		ProviderBurst: 1000,
	}
	return NewTMDBService(cfg, log.New(io.Discard))
}

func pageOf(page, totalPages int, ids ...int) model.PagedResult {
	movies := make([]model.Movie, 0, len(ids))
	for _, id := range ids {
		movies = append(movies, model.Movie{ID: id, Title: "Movie"})
	}
	return model.PagedResult{
		Page:         page,
		Results:      movies,
		TotalPages:   totalPages,
		TotalResults: totalPages * len(ids),
	}
}

func TestPopularAttachesKeyAndPage(t *testing.T) {
	var gotKey, gotPage string
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movie/popular", r.URL.Path)
		gotKey = r.URL.Query().Get("api_key")
		gotPage = r.URL.Query().Get("page")
		json.NewEncoder(w).Encode(pageOf(2, 10, 1, 2, 3))
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)
	result, err := svc.Popular(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "2", gotPage)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.TotalPages)
	assert.Len(t, result.Results, 3)
}

func TestSearchForwardsQuery(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/search/movie", r.URL.Path)
		require.Equal(t, "batman", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(pageOf(1, 3, 1))
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)
	result, err := svc.Search(context.Background(), "batman", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalPages)
}

func TestProviderFailureIsUpstreamError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)
	_, err := svc.Popular(context.Background(), 1)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.StatusCode)
}

func TestListResponsesAreCached(t *testing.T) {
	var calls atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode(pageOf(1, 1, 1))
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)
	_, err := svc.Popular(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.Popular(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestDetailsAndCreditsAreCached(t *testing.T) {
	var calls atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch r.URL.Path {
		case "/movie/27205":
			runtime := 148
			json.NewEncoder(w).Encode(model.MovieDetails{
				Movie:   model.Movie{ID: 27205, Title: "Inception"},
				Runtime: &runtime,
				Status:  "Released",
			})
		case "/movie/27205/credits":
			json.NewEncoder(w).Encode(model.Credits{
				Cast: []model.CastMember{{ID: 1, Name: "Leonardo DiCaprio", Character: "Cobb"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)

	details, err := svc.Details(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, "Inception", details.Title)
	require.NotNil(t, details.Runtime)
	assert.Equal(t, 148, *details.Runtime)

	credits, err := svc.Credits(context.Background(), 27205)
	require.NoError(t, err)
	require.Len(t, credits.Cast, 1)

	_, err = svc.Details(context.Background(), 27205)
	require.NoError(t, err)
	_, err = svc.Credits(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestErrorsAreNotCached(t *testing.T) {
	var calls atomic.Int32
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(pageOf(1, 1, 1))
	}))
	defer provider.Close()

	svc := newTMDBService(provider.URL)
	_, err := svc.Popular(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*UpstreamError)))

	// Retrying the same fetch recovers.
	result, err := svc.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
}
