package favorites

import (
	"encoding/json"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/user/reelfind/internal/model"
)

// storageKey is the single entry holding the favorites JSON array.
const storageKey = "movie-favorites"

// Store keeps the user's favorited movies: full snapshots taken at the
// time of the action, set semantics keyed by movie id. All reads go back
// to storage, so independently rendered views stay consistent through
// the change notifications alone.
//
// Storage failure is a degraded mode, not a hard failure: mutations are
// logged and dropped, reads fall back to an empty list.
type Store struct {
	mu      sync.Mutex
	kv      KV
	logger  *log.Logger
	subs    map[int]func([]model.Movie)
	nextSub int
}

func NewStore(kv KV, logger *log.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
		subs:   make(map[int]func([]model.Movie)),
	}
}

// List returns the favorites in storage order. A missing, unreadable, or
// corrupt value reads as an empty list.
func (s *Store) List() []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends a snapshot of the movie. A second add of the same id is a
// no-op, so the list never holds duplicates. The change notification is
// emitted only after the write has been persisted.
func (s *Store) Add(movie model.Movie) {
	s.mu.Lock()

	current := s.load()
	for _, fav := range current {
		if fav.ID == movie.ID {
			s.mu.Unlock()
			return
		}
	}

	updated := append(current, movie)
	if !s.persist(updated) {
		s.mu.Unlock()
		return
	}
	observers := s.observers()
	s.mu.Unlock()

	notify(observers, updated)
}

// Remove drops the movie with the given id. Absent ids are a no-op, but
// the write and notification still happen, matching the reference.
func (s *Store) Remove(movieID int) {
	s.mu.Lock()

	current := s.load()
	updated := make([]model.Movie, 0, len(current))
	for _, fav := range current {
		if fav.ID != movieID {
			updated = append(updated, fav)
		}
	}

	if !s.persist(updated) {
		s.mu.Unlock()
		return
	}
	observers := s.observers()
	s.mu.Unlock()

	notify(observers, updated)
}

// Contains reports whether the movie is favorited.
func (s *Store) Contains(movieID int) bool {
	for _, fav := range s.List() {
		if fav.ID == movieID {
			return true
		}
	}
	return false
}

// Subscribe registers a change observer and returns its unsubscribe
// handle. Observers receive the post-change list. Every view displaying
// favorites state subscribes at mount and unsubscribes at teardown.
func (s *Store) Subscribe(fn func([]model.Movie)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// load reads under s.mu.
func (s *Store) load() []model.Movie {
	raw, ok, err := s.kv.Get(storageKey)
	if err != nil {
		s.logger.Error("failed to read favorites", "err", err)
		return []model.Movie{}
	}
	if !ok {
		return []model.Movie{}
	}

	var favs []model.Movie
	if err := json.Unmarshal([]byte(raw), &favs); err != nil {
		s.logger.Error("corrupt favorites value, treating as empty", "err", err)
		return []model.Movie{}
	}
	if favs == nil {
		return []model.Movie{}
	}
	return favs
}

// persist writes under s.mu and reports success.
func (s *Store) persist(favs []model.Movie) bool {
	data, err := json.Marshal(favs)
	if err != nil {
		s.logger.Error("failed to encode favorites", "err", err)
		return false
	}
	if err := s.kv.Set(storageKey, string(data)); err != nil {
		s.logger.Error("failed to persist favorites", "err", err)
		return false
	}
	return true
}

// observers snapshots the subscriber set under s.mu so notification can
// run outside the lock; a callback may re-enter the store.
func (s *Store) observers() []func([]model.Movie) {
	fns := make([]func([]model.Movie), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return fns
}

// notify runs strictly after the persisted write. Observers are handed
// their own copy of the list.
func notify(observers []func([]model.Movie), favs []model.Movie) {
	for _, fn := range observers {
		snapshot := make([]model.Movie, len(favs))
		copy(snapshot, favs)
		fn(snapshot)
	}
}
