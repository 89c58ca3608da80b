package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/user/reelfind/internal/model"
)

// UpstreamError is a recoverable fetch failure: re-invoking the same
// fetch is the retry path.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return "catalog request failed"
	}
	return fmt.Sprintf("catalog request failed with status %d", e.StatusCode)
}

// Client fetches catalog pages through the same-origin proxy. The proxy
// holds the provider API key; none is needed here.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchPopular fetches one page of the popular listing. Pages are
// 1-indexed.
func (c *Client) FetchPopular(ctx context.Context, page int) (*model.PagedResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	return c.fetchPage(ctx, "/api/movies/popular", query)
}

// Search fetches one page of search results for the query.
func (c *Client) Search(ctx context.Context, searchQuery string, page int) (*model.PagedResult, error) {
	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("page", strconv.Itoa(page))
	return c.fetchPage(ctx, "/api/movies/search", query)
}

// FetchDetails fetches the full record for one movie.
func (c *Client) FetchDetails(ctx context.Context, movieID int) (*model.MovieDetails, error) {
	var details model.MovieDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/api/movies/%d", movieID), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// FetchCredits fetches cast and crew for one movie.
func (c *Client) FetchCredits(ctx context.Context, movieID int) (*model.Credits, error) {
	var credits model.Credits
	if err := c.getJSON(ctx, fmt.Sprintf("/api/movies/%d/credits", movieID), nil, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, query url.Values) (*model.PagedResult, error) {
	var page model.PagedResult
	if err := c.getJSON(ctx, path, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &UpstreamError{StatusCode: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}
