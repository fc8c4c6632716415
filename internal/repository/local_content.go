package repository

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/session"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localDocuments struct{ *Local }

func (r localDocuments) List(ctx context.Context) ([]domain.Document, error) {
	all, err := store.All[domain.Document](ctx, r.store, store.CollDocuments)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(all, func(d domain.Document) int64 { return d.UploadedAt.UnixNano() })
	return all, nil
}

func (r localDocuments) ListByProject(ctx context.Context, projectID string) ([]domain.Document, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(d domain.Document) bool { return d.ProjectID == projectID }), nil
}

func (r localDocuments) Upload(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	doc.ID = domain.NewID(domain.PrefixDocument)
	doc.UploadedAt = time.Now().UTC()
	if err := store.PutDoc(ctx, r.store, store.CollDocuments, doc.ID, doc); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &doc, nil
}

func (r localDocuments) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.CollDocuments, id); err != nil {
		return err
	}
	r.invalidateCache()
	return nil
}

func (r localDocuments) Blueprints(ctx context.Context, projectID string) ([]domain.Blueprint, error) {
	all, err := ensure(ctx, r.Local, store.CollBlueprints, func(b domain.Blueprint) string { return b.ID }, seedBlueprints)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(b domain.Blueprint) bool { return b.ProjectID == projectID }), nil
}

func (r localDocuments) SetPins(ctx context.Context, blueprintID string, pins []domain.TaskPin) (*domain.Blueprint, error) {
	all, err := store.All[domain.Blueprint](ctx, r.store, store.CollBlueprints)
	if err != nil {
		return nil, err
	}
	bp := findByID(all, func(b domain.Blueprint) string { return b.ID }, blueprintID)
	if bp == nil {
		return nil, nil
	}
	bp.Pins = pins
	if err := store.PutDoc(ctx, r.store, store.CollBlueprints, bp.ID, *bp); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return bp, nil
}

type localKnowledge struct{ *Local }

func (r localKnowledge) List(ctx context.Context) ([]domain.Article, error) {
	return ensure(ctx, r.Local, store.CollArticles, func(a domain.Article) string { return a.ID }, seedArticles)
}

func (r localKnowledge) Search(ctx context.Context, query string) ([]domain.Article, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return filterBy(all, func(a domain.Article) bool {
		return strings.Contains(strings.ToLower(a.Title), q)
	}), nil
}

func (r localKnowledge) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	a.ID = domain.NewID(domain.PrefixArticle)
	a.LastUpdated = time.Now().UTC()
	if err := store.PutDoc(ctx, r.store, store.CollArticles, a.ID, a); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &a, nil
}

type localNotifications struct{ *Local }

func (r localNotifications) List(ctx context.Context) ([]domain.Notification, error) {
	return store.All[domain.Notification](ctx, r.store, store.CollNotifications)
}

func (r localNotifications) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := filterBy(all, func(n domain.Notification) bool { return n.UserID == userID })
	byCreatedDesc(mine, func(n domain.Notification) int64 { return n.CreatedAt.UnixNano() })
	return mine, nil
}

func (r localNotifications) UnreadCount(ctx context.Context, userID string) (int, error) {
	mine, err := r.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range mine {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r localNotifications) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	n.ID = domain.NewID(domain.PrefixNotif)
	n.IsRead = false
	n.CreatedAt = time.Now().UTC()
	if err := store.PutDoc(ctx, r.store, store.CollNotifications, n.ID, n); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &n, nil
}

func (r localNotifications) MarkRead(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	n := findByID(all, func(x domain.Notification) string { return x.ID }, id)
	if n == nil {
		return nil
	}
	n.IsRead = true
	if err := store.PutDoc(ctx, r.store, store.CollNotifications, n.ID, *n); err != nil {
		return err
	}
	r.invalidateCache()
	return nil
}

// MarkAllRead rewrites the user's unread notifications in a single
// transaction rather than one write per record.
func (r localNotifications) MarkAllRead(ctx context.Context, userID string) error {
	mine, err := r.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	err = r.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		for _, n := range mine {
			if n.IsRead {
				continue
			}
			n.IsRead = true
			if err := store.PutDocTx(ctx, tx, store.CollNotifications, n.ID, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	r.invalidateCache()
	return nil
}

func (r localNotifications) Preferences(ctx context.Context, userID string) (*domain.NotificationPreferences, error) {
	var prefs domain.NotificationPreferences
	ok, err := r.sess.GetJSON(session.KeyNotifPrefs, &prefs)
	if err != nil {
		return nil, err
	}
	if !ok {
		p := domain.DefaultPreferences()
		p.UserID = userID
		return &p, nil
	}
	return &prefs, nil
}

func (r localNotifications) SavePreferences(ctx context.Context, prefs domain.NotificationPreferences) error {
	return r.sess.SetJSON(session.KeyNotifPrefs, prefs)
}

type localAutomation struct{ *Local }

func (r localAutomation) List(ctx context.Context) ([]domain.AutomationRule, error) {
	return ensure(ctx, r.Local, store.CollAutomation, func(a domain.AutomationRule) string { return a.ID }, seedAutomationRules)
}

func (r localAutomation) Toggle(ctx context.Context, id string) (*domain.AutomationRule, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	rule := findByID(all, func(a domain.AutomationRule) string { return a.ID }, id)
	if rule == nil {
		return nil, nil
	}
	rule.IsEnabled = !rule.IsEnabled
	if err := store.PutDoc(ctx, r.store, store.CollAutomation, rule.ID, *rule); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return rule, nil
}

type localFieldOps struct{ *Local }

func (r localFieldOps) Drafts(ctx context.Context) ([]domain.FieldDraft, error) {
	all, err := store.All[domain.FieldDraft](ctx, r.store, store.CollFieldDrafts)
	if err != nil {
		return nil, err
	}
	byCreatedDesc(all, func(d domain.FieldDraft) int64 { return d.SavedAt.UnixNano() })
	return all, nil
}

func (r localFieldOps) SaveDraft(ctx context.Context, d domain.FieldDraft) (*domain.FieldDraft, error) {
	if d.ID == "" {
		d.ID = domain.NewID(domain.PrefixDraft)
	}
	d.SavedAt = time.Now().UTC()
	if err := store.PutDoc(ctx, r.store, store.CollFieldDrafts, d.ID, d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r localFieldOps) RemoveDraft(ctx context.Context, id string) error {
	return r.store.Delete(ctx, store.CollFieldDrafts, id)
}

func (r localFieldOps) ClearDrafts(ctx context.Context) error {
	return r.store.Clear(ctx, store.CollFieldDrafts)
}
