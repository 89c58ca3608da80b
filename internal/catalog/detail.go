package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/user/reelfind/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrLoadInFlight is returned when a load is requested while the
// previous one for this assembler is still running.
var ErrLoadInFlight = errors.New("movie load already in flight")

// DetailSource fetches the two halves of a movie page; *Client
// satisfies it.
type DetailSource interface {
	FetchDetails(ctx context.Context, movieID int) (*model.MovieDetails, error)
	FetchCredits(ctx context.Context, movieID int) (*model.Credits, error)
}

// MovieBundle is everything the detail page renders.
type MovieBundle struct {
	Details *model.MovieDetails
	Credits *model.Credits
}

// Assembler loads a movie's detail and credits concurrently, fail-fast:
// either half failing fails the whole load with one aggregated error,
// and nothing partial is returned. Re-invoking Load is the retry path,
// with at most one load in flight per assembler.
type Assembler struct {
	source DetailSource

	mu       sync.Mutex
	inFlight bool
}

func NewAssembler(source DetailSource) *Assembler {
	return &Assembler{source: source}
}

// Load fetches detail and credits for the movie.
func (a *Assembler) Load(ctx context.Context, movieID int) (*MovieBundle, error) {
	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return nil, ErrLoadInFlight
	}
	a.inFlight = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.inFlight = false
		a.mu.Unlock()
	}()

	var (
		details *model.MovieDetails
		credits *model.Credits
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = a.source.FetchDetails(gctx, movieID)
		return err
	})
	g.Go(func() error {
		var err error
		credits, err = a.source.FetchCredits(gctx, movieID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load movie %d: %w", movieID, err)
	}

	return &MovieBundle{Details: details, Credits: credits}, nil
}
