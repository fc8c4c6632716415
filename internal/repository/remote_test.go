package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/enjaz/internal/apiclient"
	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/session"
)

func newRemote(t *testing.T, handler http.Handler) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRemoteProvider(apiclient.New(srv.URL, session.NewStore("")))
}

func TestRemote_WorkItemListMapsWireShape(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/work-items", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{
			"id": "WI-9", "title": "Pump test", "description": "d",
			"type": "Task", "priority": "High", "status": "In Progress",
			"project_id": "P001", "assignee_id": "U-2", "due_date": "2024-04-01",
			"comments": [{"id": "c1", "user_id": "U-1", "user_name": "K", "text": "on it", "timestamp": "2024-03-02T09:00:00Z"}],
			"tags": ["mep"], "version": 3,
			"created_at": "2024-03-01T08:00:00Z", "updated_at": "2024-03-02T09:00:00Z"
		}]`))
	}))

	items, err := p.WorkItems.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, "WI-9", got.ID)
	assert.Equal(t, domain.TypeTask, got.Type)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.Equal(t, "P001", got.ProjectID)
	assert.Equal(t, "U-2", got.AssigneeID)
	assert.Equal(t, "2024-04-01", got.DueDate)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "on it", got.Comments[0].Text)
	assert.Equal(t, 3, got.Version)
}

func TestRemote_CreateSendsSnakeCaseBody(t *testing.T) {
	var received map[string]any
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/work-items", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"id": "WI-10", "title": "Pour slab", "comments": [], "tags": []}`))
	}))

	item := domain.WorkItem{Title: "Pour slab", Type: domain.TypeApproval, ProjectID: "P001", DueDate: "2024-05-01"}
	created, err := p.WorkItems.Create(context.Background(), item)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "WI-10", created.ID)

	assert.Equal(t, "Pour slab", received["title"])
	assert.Equal(t, "Approval Case", received["type"])
	assert.Equal(t, "P001", received["project_id"])
	assert.Equal(t, "2024-05-01", received["due_date"])
	_, camel := received["projectId"]
	assert.False(t, camel, "wire shape is snake_case")
}

func TestRemote_UpdateStatusUsesPatchEndpoint(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/work-items/WI-9/status", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Done", body["status"])
		w.Write([]byte(`{"id": "WI-9", "status": "Done", "comments": [], "tags": []}`))
	}))

	got, err := p.WorkItems.UpdateStatus(context.Background(), "WI-9", domain.StatusDone)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.StatusDone, got.Status)
}

func TestRemote_EmptyIDResponseMeansNotFound(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	got, err := p.WorkItems.Update(context.Background(), "WI-missing", domain.WorkItemPatch{Title: domain.Ptr("x")})
	require.NoError(t, err)
	assert.Nil(t, got)

	user, err := p.Users.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestRemote_StockAdjustment(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/materials/MAT-1/stock", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 30.0, body["quantity"])
		assert.Equal(t, "Outbound", body["type"])
		assert.Equal(t, "issued", body["note"])
		assert.Equal(t, "U-1", body["performedBy"])
		w.Write([]byte(`{"id": "MAT-1", "name": "Cement", "currentStock": 70}`))
	}))

	mat, err := p.Materials.AdjustStock(context.Background(), "MAT-1", 30, domain.MovementOutbound, "issued", "U-1")
	require.NoError(t, err)
	require.NotNil(t, mat)
	assert.Equal(t, 70.0, mat.CurrentStock)
}

func TestRemote_PayrollEndpoints(t *testing.T) {
	var paths []string
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.RequestURI())
		switch {
		case r.URL.Path == "/payroll" || r.URL.Path == "/payroll/generate":
			w.Write([]byte(`[{"id": "PAY-EMP-1-March-2024", "employeeId": "EMP-1", "month": "March", "year": 2024, "status": "Draft"}]`))
		default:
			w.Write([]byte(`{"id": "PAY-EMP-1-March-2024", "status": "Approved"}`))
		}
	}))
	ctx := context.Background()

	listed, err := p.Payroll.ListPeriod(ctx, "March", 2024)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	generated, err := p.Payroll.GeneratePeriod(ctx, "March", 2024)
	require.NoError(t, err)
	require.Len(t, generated, 1)
	assert.Equal(t, domain.PayrollDraft, generated[0].Status)

	approved, err := p.Payroll.Approve(ctx, "PAY-EMP-1-March-2024")
	require.NoError(t, err)
	assert.Equal(t, domain.PayrollApproved, approved.Status)

	require.Len(t, paths, 3)
	assert.Equal(t, "GET /payroll?month=March&year=2024", paths[0])
	assert.Equal(t, "POST /payroll/generate", paths[1])
	assert.Equal(t, "POST /payroll/PAY-EMP-1-March-2024/approve", paths[2])
}

func TestRemote_NotificationRouting(t *testing.T) {
	var paths []string
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/notifications/user/U-1/unread":
			w.Write([]byte(`{"count": 4}`))
		default:
			w.Write([]byte(`{}`))
		}
	}))
	ctx := context.Background()

	n, err := p.Notifications.UnreadCount(ctx, "U-1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, p.Notifications.MarkAllRead(ctx, "U-1"))

	assert.Equal(t, []string{
		"GET /notifications/user/U-1/unread",
		"POST /notifications/user/U-1/read-all",
	}, paths)
}

func TestRemote_UnbackedOperationsFailTyped(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	ctx := context.Background()

	_, err := p.Notifications.Preferences(ctx, "U-1")
	require.ErrorIs(t, err, apiclient.ErrNotImplemented)

	_, err = p.Automation.Toggle(ctx, "r1")
	require.ErrorIs(t, err, apiclient.ErrNotImplemented)

	_, err = p.FieldOps.SaveDraft(ctx, domain.FieldDraft{Title: "t"})
	require.ErrorIs(t, err, apiclient.ErrNotImplemented)

	// Reads without a backend serve safe empties rather than failing.
	rules, err := p.Automation.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, rules)

	drafts, err := p.FieldOps.Drafts(ctx)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestRemote_StakeholderQueryScoping(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rfis", r.URL.Path)
		require.Equal(t, "P001", r.URL.Query().Get("projectId"))
		w.Write([]byte(`[{"id": "RFI-1", "projectId": "P001", "rfiNo": "RFI-001", "subject": "Rebar spacing", "status": "Open"}]`))
	}))

	rfis, err := p.Stakeholders.Rfis(context.Background(), "P001")
	require.NoError(t, err)
	require.Len(t, rfis, 1)
	assert.Equal(t, "RFI-001", rfis[0].RfiNo)
}

func TestRemote_AIFacade(t *testing.T) {
	p := newRemote(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ai/analyze-work-item":
			w.Write([]byte(`{"analysis": "Blocked on rebar inspection."}`))
		case "/ai/suggest-priority":
			w.Write([]byte(`{"priority": "Critical"}`))
		case "/ai/analyze-notification":
			w.Write([]byte(`{"priority": "high", "category": "approval", "summary": "Needs your sign-off."}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	ctx := context.Background()

	item := domain.WorkItem{ID: "WI-1", Title: "t"}
	analysis, err := p.AI.AnalyzeWorkItem(ctx, &item)
	require.NoError(t, err)
	assert.Equal(t, "Blocked on rebar inspection.", analysis)

	prio, err := p.AI.SuggestPriority(ctx, "Crane near miss", "boom swung over walkway")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityCritical, prio)

	cls, err := p.AI.ClassifyNotification(ctx, "Approval needed", "PO-1043 awaits you")
	require.NoError(t, err)
	require.NotNil(t, cls)
	assert.Equal(t, domain.NotifHigh, cls.Priority)
	assert.Equal(t, domain.CategoryApproval, cls.Category)
}
