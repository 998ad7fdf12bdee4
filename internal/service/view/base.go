package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned when a view is used after Close.
var ErrClosed = errors.New("view: closed")

// View is implemented by every screen.
type View interface {
	// Load fetches the screen's collections. Individual collection failures
	// are logged and leave that collection empty.
	Load(ctx context.Context) error
	// Refresh re-fetches explicitly.
	Refresh(ctx context.Context) error
	// Fetching is true until every collection of the current load settles.
	Fetching() bool
	// LoadedAt is when the last load settled.
	LoadedAt() time.Time
	// Close unmounts the view. Results arriving afterwards are discarded.
	Close()
}

// lifecycle is embedded by every view. Its context lives until Close.
type lifecycle struct {
	log *slog.Logger
	now func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	fetching bool
	loadedAt time.Time
}

func newLifecycle(d Deps, name string) lifecycle {
	ctx, cancel := context.WithCancel(context.Background())
	return lifecycle{
		log:    d.Log.With("view", name),
		now:    d.Clock.Now,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Close cancels every in-flight fetch of the view.
func (l *lifecycle) Close() { l.cancel() }

func (l *lifecycle) closed() bool { return l.ctx.Err() != nil }

func (l *lifecycle) Fetching() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.fetching
}

func (l *lifecycle) LoadedAt() time.Time {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loadedAt
}

// scope derives a context that ends with either the caller or the view.
func (l *lifecycle) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(l.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// load runs every fetch concurrently and, unless the view closed meanwhile,
// applies the results under the view lock. The apply step receives the
// results only once all fetches settled.
func (l *lifecycle) load(ctx context.Context, fetches []fetch, apply func()) error {
	if l.closed() {
		return ErrClosed
	}

	l.mu.Lock()
	l.fetching = true
	l.mu.Unlock()

	ctx, done := l.scope(ctx)
	defer done()

	var g errgroup.Group
	for _, f := range fetches {
		g.Go(func() error {
			if err := f.run(ctx); err != nil {
				if ctx.Err() == nil {
					l.log.WarnContext(ctx, "background load failed",
						slog.String("collection", f.name),
						slog.String("error", err.Error()),
					)
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetching = false
	if l.closed() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	apply()
	l.loadedAt = l.now()
	return nil
}

// fetch is one collection load. run stores into a local the caller hands to
// apply; a failed run leaves that local empty.
type fetch struct {
	name string
	run  func(ctx context.Context) error
}

// list builds a fetch that fills dst, falling back to an empty list.
func list[T any](name string, dst *[]T, fn func(ctx context.Context) ([]T, error)) fetch {
	return fetch{name: name, run: func(ctx context.Context) error {
		items, err := fn(ctx)
		if err != nil {
			*dst = []T{}
			return err
		}
		if items == nil {
			items = []T{}
		}
		*dst = items
		return nil
	}}
}

// alive reports whether a mutation result may still be spliced in.
func (l *lifecycle) alive() bool { return !l.closed() }
