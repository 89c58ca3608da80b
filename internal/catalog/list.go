package catalog

import (
	"context"
	"sync"

	"github.com/user/reelfind/internal/model"
)

// State is the list controller phase.
type State int

const (
	StateIdle State = iota
	StateLoadingFirstPage
	StateReady
	StateFetchingNext
	StateError
)

// ListSource is the page fetcher behind a Controller; *Client satisfies it.
type ListSource interface {
	FetchPopular(ctx context.Context, page int) (*model.PagedResult, error)
	Search(ctx context.Context, query string, page int) (*model.PagedResult, error)
}

// Controller owns the infinite-scroll fetch state for one list view:
// the current query session, the accumulated results, and the
// guarantee that at most one page fetch is in flight at a time.
//
// Results are append-only within a query session and carry fetch
// arrival order. Because only one fetch is ever in flight per session,
// completions cannot apply out of order. A query change starts a new
// session; a still-running fetch from the previous session is not
// cancelled, its completion is simply discarded by generation stamp.
type Controller struct {
	mu     sync.Mutex
	source ListSource

	query       string
	generation  uint64
	state       State
	currentPage int
	totalPages  int
	results     []model.Movie
	lastErr     error
}

func NewController(source ListSource) *Controller {
	return &Controller{
		source: source,
		state:  StateIdle,
	}
}

// SetQuery starts a new query session and loads its first page. An
// empty query means the popular listing. Accumulated results are
// cleared up front; if a fetch from an older session completes later,
// it is dropped.
func (c *Controller) SetQuery(ctx context.Context, query string) error {
	c.mu.Lock()
	c.query = query
	c.generation++
	gen := c.generation
	c.state = StateLoadingFirstPage
	c.results = nil
	c.currentPage = 0
	c.totalPages = 0
	c.lastErr = nil
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, 1, false)
}

// OnSentinelVisible is the trigger fired when the trailing marker
// enters the viewport. It only acts when the controller is Ready with
// pages remaining; while a fetch is in flight, or once the list is
// exhausted, it is a no-op.
func (c *Controller) OnSentinelVisible(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateReady || c.currentPage >= c.totalPages {
		c.mu.Unlock()
		return nil
	}
	c.state = StateFetchingNext
	gen := c.generation
	query := c.query
	page := c.currentPage + 1
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, page, true)
}

// Retry recovers from the Error state by reloading the query session
// from page 1.
func (c *Controller) Retry(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateError {
		c.mu.Unlock()
		return nil
	}
	c.generation++
	gen := c.generation
	query := c.query
	c.state = StateLoadingFirstPage
	c.results = nil
	c.currentPage = 0
	c.totalPages = 0
	c.lastErr = nil
	c.mu.Unlock()

	return c.fetch(ctx, gen, query, 1, false)
}

// fetch runs one page request for the given query session and applies
// the completion only if the session is still current.
func (c *Controller) fetch(ctx context.Context, gen uint64, query string, page int, isAppend bool) error {
	var result *model.PagedResult
	var err error
	if query == "" {
		result, err = c.source.FetchPopular(ctx, page)
	} else {
		result, err = c.source.Search(ctx, query, page)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer query session has started; this completion is stale.
	if gen != c.generation {
		return nil
	}

	if err != nil {
		// A failed increment loses only the increment: accumulated
		// results stay in place for display alongside the error.
		c.state = StateError
		c.lastErr = err
		return err
	}

	if isAppend {
		c.results = append(c.results, result.Results...)
	} else {
		c.results = result.Results
	}
	c.currentPage = result.Page
	c.totalPages = result.TotalPages
	c.state = StateReady
	c.lastErr = nil
	return nil
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Results returns a copy of the accumulated movies in arrival order.
func (c *Controller) Results() []model.Movie {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Movie, len(c.results))
	copy(out, c.results)
	return out
}

// Err returns the retained error while in the Error state.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// HasNextPage reports whether another page exists for this session;
// false once the list is exhausted, which the UI should surface.
func (c *Controller) HasNextPage() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage < c.totalPages
}

// Page returns the last applied page number and the total.
func (c *Controller) Page() (current, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentPage, c.totalPages
}
