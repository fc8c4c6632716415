package domain

import "time"

type Milestone struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DueDate  string `json:"dueDate"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type Project struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Code             string        `json:"code"`
	Location         string        `json:"location"`
	Status           ProjectStatus `json:"status"`
	Health           ProjectHealth `json:"health"`
	Budget           float64       `json:"budget"`
	Spent            float64       `json:"spent"`
	StartDate        string        `json:"startDate"`
	EndDate          string        `json:"endDate"`
	ManagerID        string        `json:"managerId"`
	TeamIDs          []string      `json:"teamIds"`
	ClientID         string        `json:"clientId,omitempty"`
	ConsultantID     string        `json:"consultantId,omitempty"`
	SubcontractorIDs []string      `json:"subcontractorIds,omitempty"`
	Milestones       []Milestone   `json:"milestones,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProjectPatch is a partial update to a project. Nil fields are ignored.
type ProjectPatch struct {
	Name       *string
	Location   *string
	Status     *ProjectStatus
	Health     *ProjectHealth
	Budget     *float64
	Spent      *float64
	EndDate    *string
	ManagerID  *string
	TeamIDs    []string
	Milestones []Milestone
}

func (p ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Location != nil {
		pr.Location = *p.Location
	}
	if p.Status != nil {
		pr.Status = *p.Status
	}
	if p.Health != nil {
		pr.Health = *p.Health
	}
	if p.Budget != nil {
		pr.Budget = *p.Budget
	}
	if p.Spent != nil {
		pr.Spent = *p.Spent
	}
	if p.EndDate != nil {
		pr.EndDate = *p.EndDate
	}
	if p.ManagerID != nil {
		pr.ManagerID = *p.ManagerID
	}
	if p.TeamIDs != nil {
		pr.TeamIDs = p.TeamIDs
	}
	if p.Milestones != nil {
		pr.Milestones = p.Milestones
	}
}
