package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/llm"
)

type mockLLMClient struct {
	response string
	err      error

	lastTask   llm.TaskType
	lastSystem string
	lastPrompt string
}

func (m *mockLLMClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastTask = req.Task
	m.lastSystem = req.SystemPrompt
	m.lastPrompt = req.UserPrompt
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "test"}, nil
}

func (m *mockLLMClient) Available(ctx context.Context) bool { return m.err == nil }

func TestAnalyzeWorkItem_SendsItemAsContext(t *testing.T) {
	client := &mockLLMClient{response: "Blocked on the pending PM approval; chase step AS-2."}
	svc := NewService(client)

	item := domain.WorkItem{ID: "WI-1", Title: "Concrete pour approval", Status: domain.StatusPendingApproval}
	got, err := svc.AnalyzeWorkItem(context.Background(), &item)

	require.NoError(t, err)
	assert.Equal(t, "Blocked on the pending PM approval; chase step AS-2.", got)
	assert.Equal(t, llm.TaskAnalyze, client.lastTask)
	assert.Contains(t, client.lastPrompt, "Concrete pour approval")
}

func TestAnalyzeWorkItem_SurfacesClientError(t *testing.T) {
	svc := NewService(&mockLLMClient{err: llm.ErrOllamaUnavailable})

	item := domain.WorkItem{ID: "WI-1"}
	_, err := svc.AnalyzeWorkItem(context.Background(), &item)

	assert.ErrorIs(t, err, llm.ErrOllamaUnavailable)
}

func TestSuggestPriority_ValidResponse(t *testing.T) {
	client := &mockLLMClient{response: `{"priority": "Critical"}`}
	svc := NewService(client)

	got, err := svc.SuggestPriority(context.Background(), "Crane near miss", "boom swung over walkway")

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityCritical, got)
	assert.Equal(t, llm.TaskPriority, client.lastTask)
}

func TestSuggestPriority_FencedResponse(t *testing.T) {
	client := &mockLLMClient{response: "```json\n{\"priority\": \"High\"}\n```"}
	svc := NewService(client)

	got, err := svc.SuggestPriority(context.Background(), "t", "d")

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, got)
}

func TestSuggestPriority_FallsBackToMedium(t *testing.T) {
	cases := map[string]*mockLLMClient{
		"client error":     {err: llm.ErrTimeout},
		"not json":         {response: "probably high?"},
		"unknown priority": {response: `{"priority": "Urgent"}`},
	}
	for name, client := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(client)
			got, err := svc.SuggestPriority(context.Background(), "t", "d")
			require.NoError(t, err)
			assert.Equal(t, domain.PriorityMedium, got)
		})
	}
}

func TestClassifyNotification_ValidResponse(t *testing.T) {
	client := &mockLLMClient{response: `{"priority": "high", "category": "approval", "summary": "PO-1043 needs your sign-off."}`}
	svc := NewService(client)

	got, err := svc.ClassifyNotification(context.Background(), "Approval needed", "PO-1043 awaits you")

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.NotifHigh, got.Priority)
	assert.Equal(t, domain.CategoryApproval, got.Category)
	assert.Equal(t, "PO-1043 needs your sign-off.", got.Summary)
	assert.Equal(t, llm.TaskClassify, client.lastTask)
}

func TestClassifyNotification_RejectsOutOfTaxonomy(t *testing.T) {
	cases := map[string]string{
		"bad priority": `{"priority": "urgent", "category": "task"}`,
		"bad category": `{"priority": "high", "category": "gossip"}`,
		"missing both": `{"summary": "something happened"}`,
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewService(&mockLLMClient{response: resp})
			_, err := svc.ClassifyNotification(context.Background(), "t", "m")
			assert.ErrorIs(t, err, llm.ErrInvalidOutput)
		})
	}
}

func TestClassifyNotification_SurfacesClientError(t *testing.T) {
	svc := NewService(&mockLLMClient{err: llm.ErrTimeout})
	_, err := svc.ClassifyNotification(context.Background(), "t", "m")
	assert.ErrorIs(t, err, llm.ErrTimeout)
}

func TestExecutiveBrief_IncludesPortfolio(t *testing.T) {
	client := &mockLLMClient{response: "Portfolio healthy; P002 trending over budget."}
	svc := NewService(client)

	items := []domain.WorkItem{{ID: "WI-1", Title: "Pour slab"}}
	projects := []domain.Project{{ID: "P002", Name: "King Salman Road Extension", Budget: 78_500_000}}
	got, err := svc.ExecutiveBrief(context.Background(), items, projects)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, llm.TaskBrief, client.lastTask)
	assert.Contains(t, client.lastPrompt, "King Salman Road Extension")
	assert.Contains(t, client.lastPrompt, "Pour slab")
}

func TestDailyReport_UsesReportTask(t *testing.T) {
	client := &mockLLMClient{response: "Works proceeded on schedule."}
	svc := NewService(client)

	log := domain.DailyLog{ID: "LOG-1", ProjectID: "P001", ManpowerCount: 42, Content: "slab pour level 9"}
	got, err := svc.DailyReport(context.Background(), &log)

	require.NoError(t, err)
	assert.Equal(t, "Works proceeded on schedule.", got)
	assert.Equal(t, llm.TaskReport, client.lastTask)
	assert.Contains(t, client.lastPrompt, "slab pour level 9")
}

func TestAsk_GroundsOnProvidedItems(t *testing.T) {
	client := &mockLLMClient{response: "Two items remain open on Al Narjis."}
	svc := NewService(client)

	items := []domain.WorkItem{{ID: "WI-1", Title: "Scaffold inspection"}}
	got, err := svc.Ask(context.Background(), "what is still open?", items)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, llm.TaskAsk, client.lastTask)
	assert.Contains(t, client.lastPrompt, "what is still open?")
	assert.Contains(t, client.lastPrompt, "Scaffold inspection")
}
