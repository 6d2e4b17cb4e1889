package apiclient

import (
	"context"
	"sync"
)

// Loader tracks one logical resource fetch. Reload may be called from
// any goroutine; only the newest in-flight request is allowed to commit
// its result, earlier completions are discarded.
type Loader[T any] struct {
	fetch func(ctx context.Context) (T, error)

	mu      sync.Mutex
	seq     uint64
	data    T
	err     error
	loaded  bool
	pending int
}

func NewLoader[T any](fetch func(ctx context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// Reload issues a fetch stamped with the next request id. If a newer
// Reload starts before this one finishes, this result is dropped and the
// last committed state is returned instead; when nothing has committed
// yet that is the zero value and a nil error, so callers that need to
// tell the two apart gate on Loaded.
func (l *Loader[T]) Reload(ctx context.Context) (T, error) {
	l.mu.Lock()
	l.seq++
	id := l.seq
	l.pending++
	l.mu.Unlock()

	data, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending--
	if id != l.seq {
		// superseded by a newer request
		return l.data, l.err
	}
	l.data, l.err, l.loaded = data, err, true
	return data, err
}

// Get returns the last committed state.
func (l *Loader[T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data, l.err
}

// Loaded reports whether any fetch has committed yet.
func (l *Loader[T]) Loaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Loading reports whether any request is in flight.
func (l *Loader[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending > 0
}

// NewsLoader builds a Loader over Client.News with fixed parameters.
func (c *Client) NewsLoader(limit int, search string) *Loader[[]NewsItem] {
	return NewLoader(func(ctx context.Context) ([]NewsItem, error) {
		return c.News(ctx, limit, search)
	})
}

// RankingsLoader builds a Loader over the public rankings strip.
func (c *Client) RankingsLoader() *Loader[[]Ranking] {
	return NewLoader(c.Rankings)
}

// LiveUpdatesLoader builds a Loader over Client.LiveUpdates.
func (c *Client) LiveUpdatesLoader(limit int, priority string) *Loader[[]LiveUpdate] {
	return NewLoader(func(ctx context.Context) ([]LiveUpdate, error) {
		return c.LiveUpdates(ctx, limit, priority)
	})
}
