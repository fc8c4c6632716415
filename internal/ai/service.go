package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/llm"
)

// Service generates analysis and report text from domain data through a
// language model. It implements the AI facade consumed by the repository
// provider; every method degrades explicitly rather than inventing data.
type Service struct {
	client llm.LLMClient
}

// NewService creates the AI facade over an LLM client.
func NewService(client llm.LLMClient) *Service {
	return &Service{client: client}
}

func (s *Service) generate(ctx context.Context, task llm.TaskType, system, user string) (string, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         task,
		SystemPrompt: system,
		UserPrompt:   user,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text), nil
}

// AnalyzeWorkItem produces a short narrative assessment of one work item.
func (s *Service) AnalyzeWorkItem(ctx context.Context, item *domain.WorkItem) (string, error) {
	data, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding work item: %w", err)
	}
	return s.generate(ctx, llm.TaskAnalyze, analyzeSystemPrompt, "Work item:\n\n"+string(data))
}

type priorityPayload struct {
	Priority string `json:"priority"`
}

var validPriorities = map[domain.Priority]bool{
	domain.PriorityCritical: true,
	domain.PriorityHigh:     true,
	domain.PriorityMedium:   true,
	domain.PriorityLow:      true,
}

// SuggestPriority classifies a new item's priority from its title and
// description. Any model failure falls back to Medium: triage must never
// block item creation.
func (s *Service) SuggestPriority(ctx context.Context, title, description string) (domain.Priority, error) {
	user := fmt.Sprintf("Title: %s\nDescription: %s", title, description)
	text, err := s.generate(ctx, llm.TaskPriority, prioritySystemPrompt, user)
	if err != nil {
		return domain.PriorityMedium, nil
	}
	payload, err := llm.ExtractJSON(text, func(p priorityPayload) error {
		if !validPriorities[domain.Priority(p.Priority)] {
			return fmt.Errorf("unknown priority %q", p.Priority)
		}
		return nil
	})
	if err != nil {
		return domain.PriorityMedium, nil
	}
	return domain.Priority(payload.Priority), nil
}

// ExecutiveBrief summarizes the whole portfolio for leadership.
func (s *Service) ExecutiveBrief(ctx context.Context, items []domain.WorkItem, projects []domain.Project) (string, error) {
	payload := struct {
		WorkItems []domain.WorkItem `json:"workItems"`
		Projects  []domain.Project  `json:"projects"`
	}{items, projects}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding portfolio: %w", err)
	}
	return s.generate(ctx, llm.TaskBrief, briefSystemPrompt, "Portfolio data:\n\n"+string(data))
}

// FinancialInsight narrates budget posture across projects.
func (s *Service) FinancialInsight(ctx context.Context, projects []domain.Project) (string, error) {
	data, err := json.MarshalIndent(projects, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding projects: %w", err)
	}
	return s.generate(ctx, llm.TaskInsight, insightSystemPrompt, "Projects:\n\n"+string(data))
}

// DailyReport turns a structured daily log into the formal report narrative.
func (s *Service) DailyReport(ctx context.Context, log *domain.DailyLog) (string, error) {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding daily log: %w", err)
	}
	return s.generate(ctx, llm.TaskReport, reportSystemPrompt, "Daily log:\n\n"+string(data))
}

var validNotifPriorities = map[domain.NotificationPriority]bool{
	domain.NotifCritical: true, domain.NotifHigh: true,
	domain.NotifNormal: true, domain.NotifLow: true,
}

var validNotifCategories = map[domain.NotificationCategory]bool{
	domain.CategorySystem: true, domain.CategoryTask: true,
	domain.CategoryApproval: true, domain.CategorySecurity: true,
	domain.CategoryMention: true,
}

// ClassifyNotification triages a notification into the fixed priority and
// category taxonomy. Unlike priority suggestion there is no silent fallback:
// a malformed classification surfaces as an error so the caller keeps the
// notification unclassified.
func (s *Service) ClassifyNotification(ctx context.Context, title, message string) (*domain.NotificationClassification, error) {
	user := fmt.Sprintf("Title: %s\nMessage: %s", title, message)
	text, err := s.generate(ctx, llm.TaskClassify, classifySystemPrompt, user)
	if err != nil {
		return nil, err
	}
	cls, err := llm.ExtractJSON(text, func(c domain.NotificationClassification) error {
		if !validNotifPriorities[c.Priority] {
			return fmt.Errorf("unknown priority %q", c.Priority)
		}
		if !validNotifCategories[c.Category] {
			return fmt.Errorf("unknown category %q", c.Category)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cls, nil
}

// Ask answers a free-form question grounded in the given work items.
func (s *Service) Ask(ctx context.Context, question string, items []domain.WorkItem) (string, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("encoding context: %w", err)
	}
	user := fmt.Sprintf("Question: %s\n\nWork items:\n%s", question, string(data))
	return s.generate(ctx, llm.TaskAsk, askSystemPrompt, user)
}
