package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/repository"
)

// DefaultPollInterval is how often the background refresh runs.
const DefaultPollInterval = 30 * time.Second

// Snapshot is one coherent view of the aggregate state. All slices belong to
// the snapshot; callers must not mutate them.
type Snapshot struct {
	WorkItems     []domain.WorkItem
	Projects      []domain.Project
	Users         []domain.User
	CurrentUser   *domain.User
	Notifications []domain.Notification
	LoadedAt      time.Time
}

// Aggregator composes several repositories into one loaded snapshot with
// background polling and optimistic status updates. A new Load cancels any
// load still in flight, so a stale fetch can never overwrite a newer one.
type Aggregator struct {
	provider *repository.Provider
	log      *zap.Logger
	interval time.Duration

	mu         sync.Mutex
	snap       Snapshot
	loading    bool
	loadCancel context.CancelFunc

	// pendingUpdates counts in-flight optimistic writes. The poller skips
	// refreshes while it is non-zero to avoid racing the user's own write.
	pendingUpdates atomic.Int32
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) AggregatorOption {
	return func(a *Aggregator) { a.log = log }
}

// WithPollInterval overrides the background refresh interval.
func WithPollInterval(d time.Duration) AggregatorOption {
	return func(a *Aggregator) { a.interval = d }
}

// NewAggregator creates an Aggregator over a resolved provider.
func NewAggregator(p *repository.Provider, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		provider: p,
		log:      zap.NewNop(),
		interval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Snapshot returns the current aggregate state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// Loading reports whether a foreground load is in progress. Background
// refreshes never set it.
func (a *Aggregator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// Load fetches everything and replaces the snapshot. A previous in-flight
// load is cancelled first. With force set, the provider's cache is dropped so
// every read hits the backing store.
func (a *Aggregator) Load(ctx context.Context, force bool) error {
	a.mu.Lock()
	if a.loadCancel != nil {
		a.loadCancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	a.loadCancel = cancel
	a.loading = true
	a.mu.Unlock()
	defer cancel()

	defer func() {
		a.mu.Lock()
		a.loading = false
		a.mu.Unlock()
	}()

	if force && a.provider.InvalidateCache != nil {
		a.provider.InvalidateCache()
	}

	snap, err := a.fetch(ctx)
	if err != nil {
		a.log.Warn("aggregate load failed", zap.Error(err))
		return err
	}

	a.mu.Lock()
	// A newer Load cancelled this one after fetch completed; drop the result.
	if ctx.Err() == nil {
		a.snap = *snap
	}
	a.mu.Unlock()
	return ctx.Err()
}

// fetch runs the independent reads in parallel, then the dependent
// notifications read for the resolved current user.
func (a *Aggregator) fetch(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{LoadedAt: time.Now().UTC()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := a.provider.WorkItems.List(gctx)
		snap.WorkItems = items
		return err
	})
	g.Go(func() error {
		projects, err := a.provider.Projects.List(gctx)
		snap.Projects = projects
		return err
	})
	g.Go(func() error {
		users, err := a.provider.Users.List(gctx)
		snap.Users = users
		return err
	})
	g.Go(func() error {
		cur, err := a.provider.Users.Current(gctx)
		snap.CurrentUser = cur
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if snap.CurrentUser != nil {
		notifs, err := a.provider.Notifications.ListByUser(ctx, snap.CurrentUser.ID)
		if err != nil {
			return nil, err
		}
		snap.Notifications = notifs
	}
	return snap, nil
}

// Run refreshes work items and notifications on a fixed interval until ctx is
// cancelled. Ticks are skipped while optimistic updates are in flight. A
// failed refresh keeps the previous snapshot and is only logged.
func (a *Aggregator) Run(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.pendingUpdates.Load() > 0 {
				continue
			}
			if err := a.refresh(ctx); err != nil && ctx.Err() == nil {
				a.log.Warn("background refresh failed", zap.Error(err))
			}
		}
	}
}

// refresh re-reads only the fast-moving collections. It never touches the
// loading flag.
func (a *Aggregator) refresh(ctx context.Context) error {
	items, err := a.provider.WorkItems.List(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	current := a.snap.CurrentUser
	a.mu.Unlock()

	var notifs []domain.Notification
	if current != nil {
		notifs, err = a.provider.Notifications.ListByUser(ctx, current.ID)
		if err != nil {
			return err
		}
	}

	a.mu.Lock()
	a.snap.WorkItems = items
	if current != nil {
		a.snap.Notifications = notifs
	}
	a.mu.Unlock()
	return nil
}

// UpdateStatus applies the status change to the snapshot immediately, then
// writes through the provider. On failure the optimistic change is discarded
// by a forced full reload and the error is returned.
func (a *Aggregator) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	a.mu.Lock()
	for i := range a.snap.WorkItems {
		if a.snap.WorkItems[i].ID == id {
			a.snap.WorkItems[i].Status = status
			break
		}
	}
	a.mu.Unlock()

	a.pendingUpdates.Add(1)
	defer a.pendingUpdates.Add(-1)

	if _, err := a.provider.WorkItems.UpdateStatus(ctx, id, status); err != nil {
		if lerr := a.Load(ctx, true); lerr != nil {
			a.log.Warn("reconciliation reload failed", zap.Error(lerr))
		}
		return err
	}
	return nil
}
