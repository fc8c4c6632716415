package domain

import "time"

type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsSystem   bool      `json:"isSystem,omitempty"`
}

type ApprovalStep struct {
	ID           string           `json:"id"`
	ApproverID   string           `json:"approverId"`
	ApproverName string           `json:"approverName"`
	Role         string           `json:"role"`
	Decision     ApprovalDecision `json:"decision"`
	DecisionDate *time.Time       `json:"decisionDate,omitempty"`
	Comments     string           `json:"comments,omitempty"`
}

type Subtask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type WorkItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        WorkItemType `json:"type"`
	Priority    Priority     `json:"priority"`
	Status      Status       `json:"status"`
	ProjectID   string       `json:"projectId"`
	AssigneeID  string       `json:"assigneeId,omitempty"`
	CreatorID   string       `json:"creatorId,omitempty"`
	AssetID     string       `json:"assetId,omitempty"`
	DueDate     string       `json:"dueDate,omitempty"`

	Comments      []Comment      `json:"comments"`
	Tags          []string       `json:"tags"`
	ApprovalChain []ApprovalStep `json:"approvalChain,omitempty"`
	Subtasks      []Subtask      `json:"subtasks,omitempty"`
	Attachments   []string       `json:"attachments,omitempty"`
	Location      *GeoPoint      `json:"location,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RecordDecision applies a decision to the identified approval step and
// returns the overall status the item should transition to. The chain rule:
// any rejected step rejects the whole item; the item is approved only once
// every step is approved; otherwise the current status stands.
func (w *WorkItem) RecordDecision(stepID string, decision ApprovalDecision, comments string, now time.Time) bool {
	found := false
	for i := range w.ApprovalChain {
		if w.ApprovalChain[i].ID != stepID {
			continue
		}
		w.ApprovalChain[i].Decision = decision
		w.ApprovalChain[i].Comments = comments
		t := now
		w.ApprovalChain[i].DecisionDate = &t
		found = true
	}
	if !found {
		return false
	}
	w.Status = resolveChain(w.ApprovalChain, w.Status)
	return true
}

func resolveChain(chain []ApprovalStep, current Status) Status {
	if len(chain) == 0 {
		return current
	}
	allApproved := true
	for _, s := range chain {
		if s.Decision == DecisionRejected {
			return StatusRejected
		}
		if s.Decision != DecisionApproved {
			allApproved = false
		}
	}
	if allApproved {
		return StatusApproved
	}
	return current
}

// WorkItemPatch is a partial update to a work item. Nil fields are ignored.
type WorkItemPatch struct {
	Title         *string
	Description   *string
	Type          *WorkItemType
	Priority      *Priority
	Status        *Status
	ProjectID     *string
	AssigneeID    *string
	DueDate       *string
	Tags          []string
	Comments      []Comment
	ApprovalChain []ApprovalStep
	Subtasks      []Subtask
	Attachments   []string
}

// Apply copies the set fields of the patch onto w. Versioning and the
// updated-at stamp are the caller's responsibility.
func (p WorkItemPatch) Apply(w *WorkItem) {
	if p.Title != nil {
		w.Title = *p.Title
	}
	if p.Description != nil {
		w.Description = *p.Description
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.Priority != nil {
		w.Priority = *p.Priority
	}
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.ProjectID != nil {
		w.ProjectID = *p.ProjectID
	}
	if p.AssigneeID != nil {
		w.AssigneeID = *p.AssigneeID
	}
	if p.DueDate != nil {
		w.DueDate = *p.DueDate
	}
	if p.Tags != nil {
		w.Tags = p.Tags
	}
	if p.Comments != nil {
		w.Comments = p.Comments
	}
	if p.ApprovalChain != nil {
		w.ApprovalChain = p.ApprovalChain
	}
	if p.Subtasks != nil {
		w.Subtasks = p.Subtasks
	}
	if p.Attachments != nil {
		w.Attachments = p.Attachments
	}
}
