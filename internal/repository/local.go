package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/alexanderramin/enjaz/internal/session"
	"github.com/alexanderramin/enjaz/internal/store"
)

// Cache keys for the two highest-traffic collections.
const (
	cacheWorkItems = "wi"
	cacheProjects  = "pj"
)

// Local backs every repository with the persistence manager. Collections are
// seeded with a default dataset the first time they are read empty. A small
// read-through cache covers work items and projects; every mutation drops the
// whole cache.
type Local struct {
	store *store.Manager
	sess  *session.Store

	mu    sync.Mutex
	cache map[string]any
}

// NewLocalProvider wires every repository contract to one Local instance.
func NewLocalProvider(st *store.Manager, sess *session.Store, ai AiService) *Provider {
	l := &Local{store: st, sess: sess, cache: make(map[string]any)}
	return &Provider{
		WorkItems:       localWorkItems{l},
		Projects:        localProjects{l},
		Users:           localUsers{l},
		Assets:          localAssets{l},
		Materials:       localMaterials{l},
		DailyLogs:       localDailyLogs{l},
		Employees:       localEmployees{l},
		Payroll:         localPayroll{l},
		Vendors:         localVendors{l},
		Procurement:     localProcurement{l},
		Stakeholders:    localStakeholders{l},
		Documents:       localDocuments{l},
		Knowledge:       localKnowledge{l},
		Notifications:   localNotifications{l},
		Automation:      localAutomation{l},
		FieldOps:        localFieldOps{l},
		AI:              ai,
		InvalidateCache: l.invalidateCache,
	}
}

func (l *Local) invalidateCache() {
	l.mu.Lock()
	l.cache = make(map[string]any)
	l.mu.Unlock()
}

func (l *Local) cacheGet(key string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.cache[key]
	return v, ok
}

func (l *Local) cachePut(key string, v any) {
	l.mu.Lock()
	l.cache[key] = v
	l.mu.Unlock()
}

// ensure reads a collection and, if it is empty, writes the default dataset
// in one transaction and returns it. A nil defaults func reads plainly.
func ensure[T any](ctx context.Context, l *Local, coll string, id func(T) string, defaults func() []T) ([]T, error) {
	items, err := store.All[T](ctx, l.store, coll)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 || defaults == nil {
		return items, nil
	}
	seeded := defaults()
	if len(seeded) == 0 {
		return items, nil
	}
	err = l.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		for _, it := range seeded {
			if err := store.PutDocTx(ctx, tx, coll, id(it), it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

// findByID returns a copy of the first matching element, or nil.
func findByID[T any](items []T, id func(T) string, want string) *T {
	for i := range items {
		if id(items[i]) == want {
			out := items[i]
			return &out
		}
	}
	return nil
}

func filterBy[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// byCreatedDesc sorts an activity feed newest first.
func byCreatedDesc[T any](items []T, createdAt func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]) > createdAt(items[j])
	})
}
