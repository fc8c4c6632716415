package repository

import (
	"context"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localWorkItems struct{ *Local }

func (r localWorkItems) all(ctx context.Context, force bool) ([]domain.WorkItem, error) {
	if !force {
		if v, ok := r.cacheGet(cacheWorkItems); ok {
			return v.([]domain.WorkItem), nil
		}
	}
	items, err := ensure(ctx, r.Local, store.CollWorkItems, func(w domain.WorkItem) string { return w.ID }, seedWorkItems)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(items, func(w domain.WorkItem) int64 { return w.CreatedAt.UnixNano() })
	r.cachePut(cacheWorkItems, items)
	return items, nil
}

func (r localWorkItems) List(ctx context.Context) ([]domain.WorkItem, error) {
	return r.all(ctx, false)
}

func (r localWorkItems) Get(ctx context.Context, id string) (*domain.WorkItem, error) {
	items, err := r.all(ctx, false)
	if err != nil {
		return nil, err
	}
	return findByID(items, func(w domain.WorkItem) string { return w.ID }, id), nil
}

func (r localWorkItems) Create(ctx context.Context, item domain.WorkItem) (*domain.WorkItem, error) {
	item.ID = domain.NewID(domain.PrefixWorkItem)
	item.Version = 1
	now := domain.Touch(item.CreatedAt)
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Status == "" {
		item.Status = domain.StatusOpen
	}
	if item.Priority == "" {
		item.Priority = domain.PriorityMedium
	}
	item.Comments = []domain.Comment{}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if err := store.PutDoc(ctx, r.store, store.CollWorkItems, item.ID, item); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &item, nil
}

// save stamps the version bump and write-through for an already-mutated item.
func (r localWorkItems) save(ctx context.Context, item *domain.WorkItem) (*domain.WorkItem, error) {
	item.Version++
	item.UpdatedAt = domain.Touch(item.UpdatedAt)
	if err := store.PutDoc(ctx, r.store, store.CollWorkItems, item.ID, *item); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return item, nil
}

func (r localWorkItems) Update(ctx context.Context, id string, patch domain.WorkItemPatch) (*domain.WorkItem, error) {
	item, err := r.Get(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	patch.Apply(item)
	return r.save(ctx, item)
}

func (r localWorkItems) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.WorkItem, error) {
	if !domain.ValidStatuses[status] {
		return nil, domain.ErrInvalidStatus
	}
	item, err := r.Get(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	item.Status = status
	return r.save(ctx, item)
}

func (r localWorkItems) AddComment(ctx context.Context, id string, comment domain.Comment) (*domain.WorkItem, error) {
	item, err := r.Get(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	if comment.ID == "" {
		comment.ID = domain.NewID(domain.PrefixComment)
	}
	item.Comments = append(item.Comments, comment)
	return r.save(ctx, item)
}

func (r localWorkItems) SubmitApproval(ctx context.Context, id, stepID string, decision domain.ApprovalDecision, comments string) (*domain.WorkItem, error) {
	item, err := r.Get(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	if !item.RecordDecision(stepID, decision, comments, domain.Touch(item.UpdatedAt)) {
		return nil, nil
	}
	return r.save(ctx, item)
}

type localProjects struct{ *Local }

func (r localProjects) all(ctx context.Context, force bool) ([]domain.Project, error) {
	if !force {
		if v, ok := r.cacheGet(cacheProjects); ok {
			return v.([]domain.Project), nil
		}
	}
	items, err := ensure(ctx, r.Local, store.CollProjects, func(p domain.Project) string { return p.ID }, seedProjects)
	if err != nil {
		return nil, err
	}
	r.cachePut(cacheProjects, items)
	return items, nil
}

func (r localProjects) List(ctx context.Context) ([]domain.Project, error) {
	return r.all(ctx, false)
}

func (r localProjects) Get(ctx context.Context, id string) (*domain.Project, error) {
	items, err := r.all(ctx, false)
	if err != nil {
		return nil, err
	}
	return findByID(items, func(p domain.Project) string { return p.ID }, id), nil
}

func (r localProjects) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	p, err := r.Get(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	patch.Apply(p)
	p.Version++
	p.UpdatedAt = domain.Touch(p.UpdatedAt)
	if err := store.PutDoc(ctx, r.store, store.CollProjects, p.ID, *p); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return p, nil
}

type localUsers struct{ *Local }

func (r localUsers) List(ctx context.Context) ([]domain.User, error) {
	return ensure(ctx, r.Local, store.CollUsers, func(u domain.User) string { return u.ID }, seedUsers)
}

func (r localUsers) Current(ctx context.Context) (*domain.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	if u := findByID(all, func(u domain.User) string { return u.ID }, r.sess.CurrentUserID()); u != nil {
		return u, nil
	}
	return &all[0], nil
}

func (r localUsers) Switch(ctx context.Context, id string) (*domain.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	u := findByID(all, func(u domain.User) string { return u.ID }, id)
	if u == nil {
		return nil, nil
	}
	if err := r.sess.SetCurrentUserID(u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

type localAssets struct{ *Local }

func (r localAssets) List(ctx context.Context) ([]domain.Asset, error) {
	return ensure(ctx, r.Local, store.CollAssets, func(a domain.Asset) string { return a.ID }, seedAssets)
}

func (r localAssets) Get(ctx context.Context, id string) (*domain.Asset, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, func(a domain.Asset) string { return a.ID }, id), nil
}

func (r localAssets) Create(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	asset.ID = domain.NewID(domain.PrefixAsset)
	asset.Version = 1
	now := domain.Touch(asset.CreatedAt)
	asset.CreatedAt = now
	asset.UpdatedAt = now
	if asset.Status == "" {
		asset.Status = domain.AssetAvailable
	}
	if err := store.PutDoc(ctx, r.store, store.CollAssets, asset.ID, asset); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &asset, nil
}

func (r localAssets) Update(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error) {
	a, err := r.Get(ctx, id)
	if err != nil || a == nil {
		return nil, err
	}
	patch.Apply(a)
	a.Version++
	a.UpdatedAt = domain.Touch(a.UpdatedAt)
	if err := store.PutDoc(ctx, r.store, store.CollAssets, a.ID, *a); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return a, nil
}
