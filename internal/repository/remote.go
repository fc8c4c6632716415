package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alexanderramin/enjaz/internal/apiclient"
	"github.com/alexanderramin/enjaz/internal/domain"
)

// Remote maps every repository contract onto the HTTP backend through the
// request client. Operations without a server endpoint fail with
// apiclient.ErrNotImplemented instead of faking empty data.
type Remote struct {
	c *apiclient.Client
}

// NewRemoteProvider wires every repository contract to the HTTP backend.
// The AI facade also runs server-side.
func NewRemoteProvider(c *apiclient.Client) *Provider {
	r := &Remote{c: c}
	return &Provider{
		WorkItems:       remoteWorkItems{r},
		Projects:        remoteProjects{r},
		Users:           remoteUsers{r},
		Assets:          remoteAssets{r},
		Materials:       remoteMaterials{r},
		DailyLogs:       remoteDailyLogs{r},
		Employees:       remoteEmployees{r},
		Payroll:         remotePayroll{r},
		Vendors:         remoteVendors{r},
		Procurement:     remoteProcurement{r},
		Stakeholders:    remoteStakeholders{r},
		Documents:       remoteDocuments{r},
		Knowledge:       remoteKnowledge{r},
		Notifications:   remoteNotifications{r},
		Automation:      remoteAutomation{r},
		FieldOps:        remoteFieldOps{r},
		AI:              remoteAI{r},
		InvalidateCache: func() {},
	}
}

func notImplemented(op string) error {
	return fmt.Errorf("%w: %s has no backend endpoint yet", apiclient.ErrNotImplemented, op)
}

type remoteWorkItems struct{ *Remote }

func (r remoteWorkItems) List(ctx context.Context) ([]domain.WorkItem, error) {
	var dtos []workItemDTO
	if err := r.c.Get(ctx, "/work-items", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.WorkItem, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, workItemToDomain(d))
	}
	return out, nil
}

func (r remoteWorkItems) Get(ctx context.Context, id string) (*domain.WorkItem, error) {
	var dto workItemDTO
	if err := r.c.Get(ctx, "/work-items/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	w := workItemToDomain(dto)
	return &w, nil
}

func (r remoteWorkItems) Create(ctx context.Context, item domain.WorkItem) (*domain.WorkItem, error) {
	var dto workItemDTO
	if err := r.c.Post(ctx, "/work-items", workItemToDTO(item), &dto); err != nil {
		return nil, err
	}
	w := workItemToDomain(dto)
	return &w, nil
}

func (r remoteWorkItems) Update(ctx context.Context, id string, patch domain.WorkItemPatch) (*domain.WorkItem, error) {
	var dto workItemDTO
	if err := r.c.Put(ctx, "/work-items/"+url.PathEscape(id), workItemPatchToDTO(patch), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	w := workItemToDomain(dto)
	return &w, nil
}

func (r remoteWorkItems) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.WorkItem, error) {
	var dto workItemDTO
	body := map[string]string{"status": string(status)}
	if err := r.c.Patch(ctx, "/work-items/"+url.PathEscape(id)+"/status", body, &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	w := workItemToDomain(dto)
	return &w, nil
}

func (r remoteWorkItems) AddComment(ctx context.Context, id string, comment domain.Comment) (*domain.WorkItem, error) {
	var dto workItemDTO
	body := commentDTO{
		ID: comment.ID, UserID: comment.UserID, UserName: comment.UserName,
		UserAvatar: comment.UserAvatar, Text: comment.Text,
		Timestamp: comment.Timestamp, IsSystem: comment.IsSystem,
	}
	if err := r.c.Post(ctx, "/work-items/"+url.PathEscape(id)+"/comments", body, &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	w := workItemToDomain(dto)
	return &w, nil
}

func (r remoteWorkItems) SubmitApproval(ctx context.Context, id, stepID string, decision domain.ApprovalDecision, comments string) (*domain.WorkItem, error) {
	var dto workItemDTO
	body := map[string]string{"decision": string(decision), "comments": comments}
	path := "/work-items/" + url.PathEscape(id) + "/approvals/" + url.PathEscape(stepID)
	if err := r.c.Post(ctx, path, body, &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	w := workItemToDomain(dto)
	return &w, nil
}

type remoteProjects struct{ *Remote }

func (r remoteProjects) List(ctx context.Context) ([]domain.Project, error) {
	var dtos []projectDTO
	if err := r.c.Get(ctx, "/projects", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Project, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, projectToDomain(d))
	}
	return out, nil
}

func (r remoteProjects) Get(ctx context.Context, id string) (*domain.Project, error) {
	var dto projectDTO
	if err := r.c.Get(ctx, "/projects/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	p := projectToDomain(dto)
	return &p, nil
}

func (r remoteProjects) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	var dto projectDTO
	if err := r.c.Put(ctx, "/projects/"+url.PathEscape(id), projectPatchToDTO(patch), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	p := projectToDomain(dto)
	return &p, nil
}

type remoteUsers struct{ *Remote }

func (r remoteUsers) List(ctx context.Context) ([]domain.User, error) {
	var dtos []userDTO
	if err := r.c.Get(ctx, "/users", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, userToDomain(d))
	}
	return out, nil
}

func (r remoteUsers) Current(ctx context.Context) (*domain.User, error) {
	var dto userDTO
	if err := r.c.Get(ctx, "/users/me", &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	u := userToDomain(dto)
	return &u, nil
}

func (r remoteUsers) Switch(ctx context.Context, id string) (*domain.User, error) {
	var dto userDTO
	if err := r.c.Post(ctx, "/users/session", map[string]string{"id": id}, &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	u := userToDomain(dto)
	return &u, nil
}

type remoteAssets struct{ *Remote }

func (r remoteAssets) List(ctx context.Context) ([]domain.Asset, error) {
	var dtos []assetDTO
	if err := r.c.Get(ctx, "/assets", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Asset, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, assetToDomain(d))
	}
	return out, nil
}

func (r remoteAssets) Get(ctx context.Context, id string) (*domain.Asset, error) {
	var dto assetDTO
	if err := r.c.Get(ctx, "/assets/"+url.PathEscape(id), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	a := assetToDomain(dto)
	return &a, nil
}

func (r remoteAssets) Create(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	var dto assetDTO
	if err := r.c.Post(ctx, "/assets", assetToDTO(asset), &dto); err != nil {
		return nil, err
	}
	a := assetToDomain(dto)
	return &a, nil
}

func (r remoteAssets) Update(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error) {
	var dto assetDTO
	if err := r.c.Put(ctx, "/assets/"+url.PathEscape(id), assetPatchToDTO(patch), &dto); err != nil {
		return nil, err
	}
	if dto.ID == "" {
		return nil, nil
	}
	a := assetToDomain(dto)
	return &a, nil
}

type remoteKnowledge struct{ *Remote }

func (r remoteKnowledge) List(ctx context.Context) ([]domain.Article, error) {
	var dtos []articleDTO
	if err := r.c.Get(ctx, "/knowledge", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Article, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, articleToDomain(d))
	}
	return out, nil
}

func (r remoteKnowledge) Search(ctx context.Context, query string) ([]domain.Article, error) {
	var dtos []articleDTO
	if err := r.c.Get(ctx, "/knowledge/search?q="+url.QueryEscape(query), &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Article, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, articleToDomain(d))
	}
	return out, nil
}

func (r remoteKnowledge) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	var dto articleDTO
	if err := r.c.Post(ctx, "/knowledge", articleToDTO(a), &dto); err != nil {
		return nil, err
	}
	out := articleToDomain(dto)
	return &out, nil
}

type remoteNotifications struct{ *Remote }

func (r remoteNotifications) List(ctx context.Context) ([]domain.Notification, error) {
	var dtos []notificationDTO
	if err := r.c.Get(ctx, "/notifications", &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, notificationToDomain(d))
	}
	return out, nil
}

func (r remoteNotifications) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var dtos []notificationDTO
	if err := r.c.Get(ctx, "/notifications/user/"+url.PathEscape(userID), &dtos); err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, notificationToDomain(d))
	}
	return out, nil
}

func (r remoteNotifications) UnreadCount(ctx context.Context, userID string) (int, error) {
	var res struct {
		Count int `json:"count"`
	}
	if err := r.c.Get(ctx, "/notifications/user/"+url.PathEscape(userID)+"/unread", &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (r remoteNotifications) Create(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	var dto notificationDTO
	if err := r.c.Post(ctx, "/notifications", notificationToDTO(n), &dto); err != nil {
		return nil, err
	}
	out := notificationToDomain(dto)
	return &out, nil
}

func (r remoteNotifications) MarkRead(ctx context.Context, id string) error {
	return r.c.Post(ctx, "/notifications/"+url.PathEscape(id)+"/read", struct{}{}, nil)
}

func (r remoteNotifications) MarkAllRead(ctx context.Context, userID string) error {
	return r.c.Post(ctx, "/notifications/user/"+url.PathEscape(userID)+"/read-all", struct{}{}, nil)
}

func (r remoteNotifications) Preferences(ctx context.Context, userID string) (*domain.NotificationPreferences, error) {
	return nil, notImplemented("notifications.Preferences")
}

func (r remoteNotifications) SavePreferences(ctx context.Context, prefs domain.NotificationPreferences) error {
	return r.c.Post(ctx, "/notifications/preferences", prefs, nil)
}

// Automation rules are managed server-side. Listing is safe to serve empty,
// toggling is not.
type remoteAutomation struct{ *Remote }

func (r remoteAutomation) List(ctx context.Context) ([]domain.AutomationRule, error) {
	return []domain.AutomationRule{}, nil
}

func (r remoteAutomation) Toggle(ctx context.Context, id string) (*domain.AutomationRule, error) {
	return nil, notImplemented("automation.Toggle")
}

// Field drafts are device-local by contract and never sync to a server.
type remoteFieldOps struct{ *Remote }

func (r remoteFieldOps) Drafts(ctx context.Context) ([]domain.FieldDraft, error) {
	return []domain.FieldDraft{}, nil
}

func (r remoteFieldOps) SaveDraft(ctx context.Context, d domain.FieldDraft) (*domain.FieldDraft, error) {
	return nil, notImplemented("fieldOps.SaveDraft")
}

func (r remoteFieldOps) RemoveDraft(ctx context.Context, id string) error {
	return notImplemented("fieldOps.RemoveDraft")
}

func (r remoteFieldOps) ClearDrafts(ctx context.Context) error {
	return notImplemented("fieldOps.ClearDrafts")
}
