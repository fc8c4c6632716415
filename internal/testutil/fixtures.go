package testutil

import (
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
)

// WorkItemFixture returns a minimal valid work item for tests that need one
// without caring about its contents.
func WorkItemFixture(title string) domain.WorkItem {
	return domain.WorkItem{
		Title:       title,
		Description: "fixture",
		Type:        domain.TypeTask,
		Priority:    domain.PriorityMedium,
		Status:      domain.StatusOpen,
		ProjectID:   "P001",
	}
}

// ThreeStepChain returns a pending 3-step approval chain.
func ThreeStepChain() []domain.ApprovalStep {
	return []domain.ApprovalStep{
		{ID: "AS-1", ApproverID: "U-1", ApproverName: "Supervisor", Role: "Site Supervisor", Decision: domain.DecisionPending},
		{ID: "AS-2", ApproverID: "U-2", ApproverName: "Manager", Role: "Project Manager", Decision: domain.DecisionPending},
		{ID: "AS-3", ApproverID: "U-4", ApproverName: "Director", Role: "Executive Director", Decision: domain.DecisionPending},
	}
}

// MaterialFixture returns a material with a known stock level.
func MaterialFixture(name string, stock float64) domain.Material {
	return domain.Material{
		Name:         name,
		Unit:         "ton",
		CurrentStock: stock,
		MinThreshold: 10,
		Category:     "Test",
		UnitPrice:    100,
		Location:     "Warehouse",
		Version:      1,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}
