package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	gocache "github.com/patrickmn/go-cache"
	"github.com/user/reelfind/internal/config"
	"github.com/user/reelfind/internal/model"
	"github.com/user/reelfind/internal/utils"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// listCacheTTL and detailCacheTTL mirror the reference revalidation
// windows: 5 minutes for listings, 1 hour for per-movie payloads.
const (
	listCacheTTL   = 5 * time.Minute
	listCacheSize  = 1000
	detailCacheTTL = time.Hour
)

// UpstreamError marks a provider failure as retryable: re-invoking the
// same fetch is the recovery path.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider request failed with status %d", e.StatusCode)
}

// TMDBService talks to the movie metadata provider. The API key is
// attached here, server-side, and never reaches the browser.
type TMDBService struct {
	cfg         *config.Config
	client      *http.Client
	limiter     *rate.Limiter
	group       singleflight.Group
	listCache   *utils.TTLCache[*model.PagedResult]
	detailCache *gocache.Cache
	logger      *log.Logger
}

func NewTMDBService(cfg *config.Config, logger *log.Logger) *TMDBService {
	return &TMDBService{
		cfg:         cfg,
		client:      &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(cfg.ProviderRPS), cfg.ProviderBurst),
		listCache:   utils.NewTTLCache[*model.PagedResult](listCacheSize, listCacheTTL),
		detailCache: gocache.New(detailCacheTTL, 2*detailCacheTTL),
		logger:      logger,
	}
}

// Popular fetches one page of the popular listing. Pages are 1-indexed;
// a page beyond the last is forwarded to the provider untouched.
func (s *TMDBService) Popular(ctx context.Context, page int) (*model.PagedResult, error) {
	key := "popular:" + strconv.Itoa(page)
	if cached, ok := s.listCache.Get(key); ok {
		return cached, nil
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var result model.PagedResult
	if err := s.getJSON(ctx, key, "/movie/popular", query, &result); err != nil {
		return nil, err
	}

	s.listCache.Set(key, &result)
	return &result, nil
}

// Search fetches one page of title-search results.
func (s *TMDBService) Search(ctx context.Context, searchQuery string, page int) (*model.PagedResult, error) {
	key := "search:" + searchQuery + ":" + strconv.Itoa(page)
	if cached, ok := s.listCache.Get(key); ok {
		return cached, nil
	}

	query := url.Values{}
	query.Set("query", searchQuery)
	query.Set("page", strconv.Itoa(page))

	var result model.PagedResult
	if err := s.getJSON(ctx, key, "/search/movie", query, &result); err != nil {
		return nil, err
	}

	s.listCache.Set(key, &result)
	return &result, nil
}

// Details fetches the full record for one movie.
func (s *TMDBService) Details(ctx context.Context, movieID int) (*model.MovieDetails, error) {
	key := "details:" + strconv.Itoa(movieID)
	if cached, ok := s.detailCache.Get(key); ok {
		return cached.(*model.MovieDetails), nil
	}

	var result model.MovieDetails
	if err := s.getJSON(ctx, key, fmt.Sprintf("/movie/%d", movieID), nil, &result); err != nil {
		return nil, err
	}

	s.detailCache.Set(key, &result, gocache.DefaultExpiration)
	return &result, nil
}

// Credits fetches cast and crew for one movie.
func (s *TMDBService) Credits(ctx context.Context, movieID int) (*model.Credits, error) {
	key := "credits:" + strconv.Itoa(movieID)
	if cached, ok := s.detailCache.Get(key); ok {
		return cached.(*model.Credits), nil
	}

	var result model.Credits
	if err := s.getJSON(ctx, key, fmt.Sprintf("/movie/%d/credits", movieID), nil, &result); err != nil {
		return nil, err
	}

	s.detailCache.Set(key, &result, gocache.DefaultExpiration)
	return &result, nil
}

// getJSON performs one rate-limited provider request. Concurrent
// requests for the same key are collapsed through singleflight.
func (s *TMDBService) getJSON(ctx context.Context, key, path string, query url.Values, target any) error {
	body, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetch(ctx, path, query)
	})
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body.([]byte), target); err != nil {
		s.logger.Error("failed to decode provider response", "path", path, "err", err)
		return fmt.Errorf("failed to decode provider response: %w", err)
	}
	return nil
}

func (s *TMDBService) fetch(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", s.cfg.TMDBAPIKey)
	requestURL := s.cfg.TMDBBaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("provider request failed", "path", path, "err", err)
		return nil, &UpstreamError{StatusCode: 0}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("provider returned non-200", "path", path, "status", resp.StatusCode)
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{StatusCode: resp.StatusCode}
	}
	return buf, nil
}
