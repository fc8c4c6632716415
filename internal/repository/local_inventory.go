package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localMaterials struct{ *Local }

func (r localMaterials) List(ctx context.Context) ([]domain.Material, error) {
	return ensure(ctx, r.Local, store.CollMaterials, func(m domain.Material) string { return m.ID }, seedMaterials)
}

func (r localMaterials) Get(ctx context.Context, id string) (*domain.Material, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, func(m domain.Material) string { return m.ID }, id), nil
}

func (r localMaterials) Create(ctx context.Context, m domain.Material) (*domain.Material, error) {
	m.ID = domain.NewID(domain.PrefixMaterial)
	m.Version = 1
	now := domain.Touch(m.CreatedAt)
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := store.PutDoc(ctx, r.store, store.CollMaterials, m.ID, m); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &m, nil
}

// AdjustStock updates the stock level and appends the movement record in one
// transaction, so the ledger never disagrees with the balance.
func (r localMaterials) AdjustStock(ctx context.Context, id string, qty float64, direction domain.MovementDirection, note, performedBy string) (*domain.Material, error) {
	m, err := r.Get(ctx, id)
	if err != nil || m == nil {
		return nil, err
	}
	switch direction {
	case domain.MovementInbound:
		m.CurrentStock += qty
	case domain.MovementOutbound:
		m.CurrentStock -= qty
	default:
		return nil, domain.ErrInvalidStatus
	}
	m.Version++
	m.UpdatedAt = domain.Touch(m.UpdatedAt)

	mv := domain.StockMovement{
		ID:          domain.NewID(domain.PrefixMovement),
		MaterialID:  m.ID,
		Quantity:    qty,
		Direction:   direction,
		Note:        note,
		PerformedBy: performedBy,
		CreatedAt:   time.Now().UTC(),
	}
	err = r.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		if err := store.PutDocTx(ctx, tx, store.CollMaterials, m.ID, *m); err != nil {
			return err
		}
		return store.PutDocTx(ctx, tx, store.CollStockMovements, mv.ID, mv)
	})
	if err != nil {
		return nil, err
	}
	r.invalidateCache()
	return m, nil
}

func (r localMaterials) Movements(ctx context.Context, materialID string) ([]domain.StockMovement, error) {
	all, err := store.All[domain.StockMovement](ctx, r.store, store.CollStockMovements)
	if err != nil {
		return nil, err
	}
	moves := filterBy(all, func(mv domain.StockMovement) bool { return mv.MaterialID == materialID })
	byCreatedDesc(moves, func(mv domain.StockMovement) int64 { return mv.CreatedAt.UnixNano() })
	return moves, nil
}

type localDailyLogs struct{ *Local }

func (r localDailyLogs) List(ctx context.Context) ([]domain.DailyLog, error) {
	all, err := store.All[domain.DailyLog](ctx, r.store, store.CollDailyLogs)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(all, func(l domain.DailyLog) int64 { return l.CreatedAt.UnixNano() })
	return all, nil
}

func (r localDailyLogs) Get(ctx context.Context, id string) (*domain.DailyLog, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, func(l domain.DailyLog) string { return l.ID }, id), nil
}

func (r localDailyLogs) Create(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	log.ID = domain.NewID(domain.PrefixDailyLog)
	log.CreatedAt = time.Now().UTC()
	if err := store.PutDoc(ctx, r.store, store.CollDailyLogs, log.ID, log); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &log, nil
}

func (r localDailyLogs) Approve(ctx context.Context, id string) (*domain.DailyLog, error) {
	log, err := r.Get(ctx, id)
	if err != nil || log == nil {
		return nil, err
	}
	log.IsApproved = true
	if err := store.PutDoc(ctx, r.store, store.CollDailyLogs, log.ID, *log); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return log, nil
}
