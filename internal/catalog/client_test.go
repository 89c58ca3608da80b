package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/reelfind/internal/model"
)

func TestClientFetchPopular(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/movies/popular", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(model.PagedResult{
			Page:       3,
			Results:    []model.Movie{{ID: 1}, {ID: 2}},
			TotalPages: 5,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	page, err := client.FetchPopular(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Results, 2)
}

func TestClientSearchEncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/movies/search", r.URL.Path)
		require.Equal(t, "dark knight", r.URL.Query().Get("query"))
		json.NewEncoder(w).Encode(model.PagedResult{Page: 1, TotalPages: 1})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Search(context.Background(), "dark knight", 1)
	require.NoError(t, err)
}

func TestClientSurfacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"upstream provider unavailable"}`, http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchPopular(context.Background(), 1)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
}

func TestClientFetchDetailsAndCredits(t *testing.T) {
	runtime := 148
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/movies/27205":
			json.NewEncoder(w).Encode(model.MovieDetails{
				Movie:   model.Movie{ID: 27205, Title: "Inception"},
				Runtime: &runtime,
			})
		case "/api/movies/27205/credits":
			json.NewEncoder(w).Encode(model.Credits{
				Crew: []model.CrewMember{{ID: 1, Name: "Christopher Nolan", Job: "Director"}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)

	details, err := client.FetchDetails(context.Background(), 27205)
	require.NoError(t, err)
	assert.Equal(t, "Inception", details.Title)

	credits, err := client.FetchCredits(context.Background(), 27205)
	require.NoError(t, err)
	require.Len(t, credits.Crew, 1)
	assert.Equal(t, "Director", credits.Crew[0].Job)
}
