package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localVendors struct{ *Local }

func (r localVendors) List(ctx context.Context) ([]domain.Vendor, error) {
	return ensure(ctx, r.Local, store.CollVendors, func(v domain.Vendor) string { return v.ID }, seedVendors)
}

func (r localVendors) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, func(v domain.Vendor) string { return v.ID }, id), nil
}

func (r localVendors) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	v.ID = domain.NewID(domain.PrefixVendor)
	v.Version = 1
	now := domain.Touch(v.CreatedAt)
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Status == "" {
		v.Status = "Active"
	}
	if err := store.PutDoc(ctx, r.store, store.CollVendors, v.ID, v); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &v, nil
}

func (r localVendors) Update(ctx context.Context, id string, patch domain.VendorPatch) (*domain.Vendor, error) {
	v, err := r.Get(ctx, id)
	if err != nil || v == nil {
		return nil, err
	}
	patch.Apply(v)
	v.Version++
	v.UpdatedAt = domain.Touch(v.UpdatedAt)
	if err := store.PutDoc(ctx, r.store, store.CollVendors, v.ID, *v); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return v, nil
}

func (r localVendors) ListByCategory(ctx context.Context, category domain.VendorCategory) ([]domain.Vendor, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(v domain.Vendor) bool { return v.Category == category }), nil
}

type localProcurement struct{ *Local }

func (r localProcurement) PurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	all, err := store.All[domain.PurchaseOrder](ctx, r.store, store.CollPurchaseOrders)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(all, func(po domain.PurchaseOrder) int64 { return po.CreatedAt.UnixNano() })
	return all, nil
}

func (r localProcurement) CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	now := time.Now().UTC()
	po.ID = domain.NewID(domain.PrefixPO)
	if po.PONumber == "" {
		po.PONumber = fmt.Sprintf("PO-%d", 1000+now.UnixMilli()%9000)
	}
	if po.IssueDate == "" {
		po.IssueDate = now.Format("2006-01-02")
	}
	if po.PaymentStatus == "" {
		po.PaymentStatus = "Pending"
	}
	if po.Status == "" {
		po.Status = domain.PODraft
	}
	po.CreatedAt = now
	if err := store.PutDoc(ctx, r.store, store.CollPurchaseOrders, po.ID, po); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &po, nil
}

func (r localProcurement) UpdatePurchaseOrderStatus(ctx context.Context, id string, status domain.POStatus) (*domain.PurchaseOrder, error) {
	all, err := store.All[domain.PurchaseOrder](ctx, r.store, store.CollPurchaseOrders)
	if err != nil {
		return nil, err
	}
	po := findByID(all, func(p domain.PurchaseOrder) string { return p.ID }, id)
	if po == nil {
		return nil, nil
	}
	po.Status = status
	if err := store.PutDoc(ctx, r.store, store.CollPurchaseOrders, po.ID, *po); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return po, nil
}

func (r localProcurement) Contracts(ctx context.Context) ([]domain.Contract, error) {
	return store.All[domain.Contract](ctx, r.store, store.CollContracts)
}

func (r localProcurement) CreateContract(ctx context.Context, c domain.Contract) (*domain.Contract, error) {
	now := time.Now().UTC()
	c.ID = domain.NewID(domain.PrefixContract)
	if c.ContractNumber == "" {
		c.ContractNumber = fmt.Sprintf("CON-%05d", now.UnixMilli()%100000)
	}
	c.CreatedAt = now
	if err := store.PutDoc(ctx, r.store, store.CollContracts, c.ID, c); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &c, nil
}

func (r localProcurement) PettyCash(ctx context.Context) ([]domain.PettyCashRecord, error) {
	all, err := store.All[domain.PettyCashRecord](ctx, r.store, store.CollPettyCash)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(all, func(p domain.PettyCashRecord) int64 { return p.CreatedAt.UnixNano() })
	return all, nil
}

func (r localProcurement) CreatePettyCash(ctx context.Context, rec domain.PettyCashRecord) (*domain.PettyCashRecord, error) {
	rec.ID = domain.NewID(domain.PrefixPettyCash)
	rec.CreatedAt = time.Now().UTC()
	if rec.Date == "" {
		rec.Date = rec.CreatedAt.Format("2006-01-02")
	}
	if err := store.PutDoc(ctx, r.store, store.CollPettyCash, rec.ID, rec); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &rec, nil
}
