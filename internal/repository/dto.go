package repository

import (
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
)

// Wire shapes for the HTTP backend. The server speaks snake_case; the domain
// structs keep their own encoding for the local store. Only the high-traffic
// aggregates get mappers, the rest of the entities share one wire shape with
// the domain.

type commentDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsSystem   bool      `json:"is_system,omitempty"`
}

type approvalStepDTO struct {
	ID           string     `json:"id"`
	ApproverID   string     `json:"approver_id"`
	ApproverName string     `json:"approver_name"`
	Role         string     `json:"role"`
	Decision     string     `json:"decision"`
	DecisionDate *time.Time `json:"decision_date,omitempty"`
	Comments     string     `json:"comments,omitempty"`
}

type subtaskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

type geoPointDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type workItemDTO struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Type          string            `json:"type"`
	Priority      string            `json:"priority"`
	Status        string            `json:"status"`
	ProjectID     string            `json:"project_id"`
	AssigneeID    string            `json:"assignee_id,omitempty"`
	CreatorID     string            `json:"creator_id,omitempty"`
	AssetID       string            `json:"asset_id,omitempty"`
	DueDate       string            `json:"due_date,omitempty"`
	Comments      []commentDTO      `json:"comments"`
	Tags          []string          `json:"tags"`
	ApprovalChain []approvalStepDTO `json:"approval_chain,omitempty"`
	Subtasks      []subtaskDTO      `json:"subtasks,omitempty"`
	Attachments   []string          `json:"attachments,omitempty"`
	Location      *geoPointDTO      `json:"location,omitempty"`
	Version       int               `json:"version"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func workItemToDomain(d workItemDTO) domain.WorkItem {
	w := domain.WorkItem{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Type:        domain.WorkItemType(d.Type),
		Priority:    domain.Priority(d.Priority),
		Status:      domain.Status(d.Status),
		ProjectID:   d.ProjectID,
		AssigneeID:  d.AssigneeID,
		CreatorID:   d.CreatorID,
		AssetID:     d.AssetID,
		DueDate:     d.DueDate,
		Tags:        d.Tags,
		Attachments: d.Attachments,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	w.Comments = make([]domain.Comment, 0, len(d.Comments))
	for _, c := range d.Comments {
		w.Comments = append(w.Comments, domain.Comment{
			ID: c.ID, UserID: c.UserID, UserName: c.UserName, UserAvatar: c.UserAvatar,
			Text: c.Text, Timestamp: c.Timestamp, IsSystem: c.IsSystem,
		})
	}
	for _, s := range d.ApprovalChain {
		w.ApprovalChain = append(w.ApprovalChain, domain.ApprovalStep{
			ID: s.ID, ApproverID: s.ApproverID, ApproverName: s.ApproverName,
			Role: s.Role, Decision: domain.ApprovalDecision(s.Decision),
			DecisionDate: s.DecisionDate, Comments: s.Comments,
		})
	}
	for _, s := range d.Subtasks {
		w.Subtasks = append(w.Subtasks, domain.Subtask{ID: s.ID, Title: s.Title, IsCompleted: s.IsCompleted})
	}
	if d.Location != nil {
		w.Location = &domain.GeoPoint{Lat: d.Location.Lat, Lng: d.Location.Lng}
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return w
}

func workItemToDTO(w domain.WorkItem) workItemDTO {
	d := workItemDTO{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Type:        string(w.Type),
		Priority:    string(w.Priority),
		Status:      string(w.Status),
		ProjectID:   w.ProjectID,
		AssigneeID:  w.AssigneeID,
		CreatorID:   w.CreatorID,
		AssetID:     w.AssetID,
		DueDate:     w.DueDate,
		Tags:        w.Tags,
		Attachments: w.Attachments,
		Version:     w.Version,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
	d.Comments = make([]commentDTO, 0, len(w.Comments))
	for _, c := range w.Comments {
		d.Comments = append(d.Comments, commentDTO{
			ID: c.ID, UserID: c.UserID, UserName: c.UserName, UserAvatar: c.UserAvatar,
			Text: c.Text, Timestamp: c.Timestamp, IsSystem: c.IsSystem,
		})
	}
	for _, s := range w.ApprovalChain {
		d.ApprovalChain = append(d.ApprovalChain, approvalStepDTO{
			ID: s.ID, ApproverID: s.ApproverID, ApproverName: s.ApproverName,
			Role: s.Role, Decision: string(s.Decision),
			DecisionDate: s.DecisionDate, Comments: s.Comments,
		})
	}
	for _, s := range w.Subtasks {
		d.Subtasks = append(d.Subtasks, subtaskDTO{ID: s.ID, Title: s.Title, IsCompleted: s.IsCompleted})
	}
	if w.Location != nil {
		d.Location = &geoPointDTO{Lat: w.Location.Lat, Lng: w.Location.Lng}
	}
	return d
}

// workItemPatchDTO carries only the set fields of a partial update.
type workItemPatchDTO struct {
	Title         *string           `json:"title,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Type          *string           `json:"type,omitempty"`
	Priority      *string           `json:"priority,omitempty"`
	Status        *string           `json:"status,omitempty"`
	ProjectID     *string           `json:"project_id,omitempty"`
	AssigneeID    *string           `json:"assignee_id,omitempty"`
	DueDate       *string           `json:"due_date,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	ApprovalChain []approvalStepDTO `json:"approval_chain,omitempty"`
	Subtasks      []subtaskDTO      `json:"subtasks,omitempty"`
	Attachments   []string          `json:"attachments,omitempty"`
}

func workItemPatchToDTO(p domain.WorkItemPatch) workItemPatchDTO {
	d := workItemPatchDTO{
		Title:       p.Title,
		Description: p.Description,
		ProjectID:   p.ProjectID,
		AssigneeID:  p.AssigneeID,
		DueDate:     p.DueDate,
		Tags:        p.Tags,
		Attachments: p.Attachments,
	}
	if p.Type != nil {
		d.Type = domain.Ptr(string(*p.Type))
	}
	if p.Priority != nil {
		d.Priority = domain.Ptr(string(*p.Priority))
	}
	if p.Status != nil {
		d.Status = domain.Ptr(string(*p.Status))
	}
	for _, s := range p.ApprovalChain {
		d.ApprovalChain = append(d.ApprovalChain, approvalStepDTO{
			ID: s.ID, ApproverID: s.ApproverID, ApproverName: s.ApproverName,
			Role: s.Role, Decision: string(s.Decision),
			DecisionDate: s.DecisionDate, Comments: s.Comments,
		})
	}
	for _, s := range p.Subtasks {
		d.Subtasks = append(d.Subtasks, subtaskDTO{ID: s.ID, Title: s.Title, IsCompleted: s.IsCompleted})
	}
	return d
}

type milestoneDTO struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

type projectDTO struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Code             string         `json:"code"`
	Location         string         `json:"location"`
	Status           string         `json:"status"`
	Health           string         `json:"health"`
	Budget           float64        `json:"budget"`
	Spent            float64        `json:"spent"`
	StartDate        string         `json:"start_date"`
	EndDate          string         `json:"end_date"`
	ManagerID        string         `json:"manager_id"`
	TeamIDs          []string       `json:"team_ids"`
	ClientID         string         `json:"client_id,omitempty"`
	ConsultantID     string         `json:"consultant_id,omitempty"`
	SubcontractorIDs []string       `json:"subcontractor_ids,omitempty"`
	Milestones       []milestoneDTO `json:"milestones,omitempty"`
	Version          int            `json:"version"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func projectToDomain(d projectDTO) domain.Project {
	p := domain.Project{
		ID: d.ID, Name: d.Name, Code: d.Code, Location: d.Location,
		Status: domain.ProjectStatus(d.Status), Health: domain.ProjectHealth(d.Health),
		Budget: d.Budget, Spent: d.Spent,
		StartDate: d.StartDate, EndDate: d.EndDate,
		ManagerID: d.ManagerID, TeamIDs: d.TeamIDs,
		ClientID: d.ClientID, ConsultantID: d.ConsultantID, SubcontractorIDs: d.SubcontractorIDs,
		Version: d.Version, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
	for _, m := range d.Milestones {
		p.Milestones = append(p.Milestones, domain.Milestone{
			ID: m.ID, Title: m.Title, DueDate: m.DueDate, Status: m.Status, Progress: m.Progress,
		})
	}
	return p
}

type projectPatchDTO struct {
	Name       *string        `json:"name,omitempty"`
	Location   *string        `json:"location,omitempty"`
	Status     *string        `json:"status,omitempty"`
	Health     *string        `json:"health,omitempty"`
	Budget     *float64       `json:"budget,omitempty"`
	Spent      *float64       `json:"spent,omitempty"`
	EndDate    *string        `json:"end_date,omitempty"`
	ManagerID  *string        `json:"manager_id,omitempty"`
	TeamIDs    []string       `json:"team_ids,omitempty"`
	Milestones []milestoneDTO `json:"milestones,omitempty"`
}

func projectPatchToDTO(p domain.ProjectPatch) projectPatchDTO {
	d := projectPatchDTO{
		Name: p.Name, Location: p.Location,
		Budget: p.Budget, Spent: p.Spent, EndDate: p.EndDate,
		ManagerID: p.ManagerID, TeamIDs: p.TeamIDs,
	}
	if p.Status != nil {
		d.Status = domain.Ptr(string(*p.Status))
	}
	if p.Health != nil {
		d.Health = domain.Ptr(string(*p.Health))
	}
	for _, m := range p.Milestones {
		d.Milestones = append(d.Milestones, milestoneDTO{
			ID: m.ID, Title: m.Title, DueDate: m.DueDate, Status: m.Status, Progress: m.Progress,
		})
	}
	return d
}

type userDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	JoinDate   string `json:"join_date,omitempty"`
	Department string `json:"department,omitempty"`
}

func userToDomain(d userDTO) domain.User {
	return domain.User{
		ID: d.ID, Name: d.Name, Role: d.Role, Avatar: d.Avatar,
		Email: d.Email, Phone: d.Phone, JoinDate: d.JoinDate, Department: d.Department,
	}
}

type assetDTO struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	SerialNumber       string    `json:"serial_number"`
	Category           string    `json:"category"`
	Status             string    `json:"status"`
	Location           string    `json:"location"`
	PurchaseDate       string    `json:"purchase_date,omitempty"`
	Value              float64   `json:"value"`
	LastMaintenance    string    `json:"last_maintenance,omitempty"`
	AssignedToUserID   string    `json:"assigned_to_user_id,omitempty"`
	AssignedToUserName string    `json:"assigned_to_user_name,omitempty"`
	Version            int       `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func assetToDomain(d assetDTO) domain.Asset {
	return domain.Asset{
		ID: d.ID, Name: d.Name, SerialNumber: d.SerialNumber,
		Category: domain.AssetCategory(d.Category), Status: domain.AssetStatus(d.Status),
		Location: d.Location, PurchaseDate: d.PurchaseDate, Value: d.Value,
		LastMaintenance: d.LastMaintenance,
		AssignedToUserID: d.AssignedToUserID, AssignedToUserName: d.AssignedToUserName,
		Version: d.Version, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt,
	}
}

func assetToDTO(a domain.Asset) assetDTO {
	return assetDTO{
		ID: a.ID, Name: a.Name, SerialNumber: a.SerialNumber,
		Category: string(a.Category), Status: string(a.Status),
		Location: a.Location, PurchaseDate: a.PurchaseDate, Value: a.Value,
		LastMaintenance: a.LastMaintenance,
		AssignedToUserID: a.AssignedToUserID, AssignedToUserName: a.AssignedToUserName,
		Version: a.Version, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt,
	}
}

type assetPatchDTO struct {
	Name               *string  `json:"name,omitempty"`
	Status             *string  `json:"status,omitempty"`
	Location           *string  `json:"location,omitempty"`
	Value              *float64 `json:"value,omitempty"`
	LastMaintenance    *string  `json:"last_maintenance,omitempty"`
	AssignedToUserID   *string  `json:"assigned_to_user_id,omitempty"`
	AssignedToUserName *string  `json:"assigned_to_user_name,omitempty"`
}

func assetPatchToDTO(p domain.AssetPatch) assetPatchDTO {
	d := assetPatchDTO{
		Name: p.Name, Location: p.Location, Value: p.Value,
		LastMaintenance: p.LastMaintenance,
		AssignedToUserID: p.AssignedToUserID, AssignedToUserName: p.AssignedToUserName,
	}
	if p.Status != nil {
		d.Status = domain.Ptr(string(*p.Status))
	}
	return d
}

type articleDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	AuthorName  string    `json:"author_name"`
	LastUpdated time.Time `json:"last_updated"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"`
}

func articleToDomain(d articleDTO) domain.Article {
	return domain.Article{
		ID: d.ID, Title: d.Title, Category: d.Category, AuthorName: d.AuthorName,
		LastUpdated: d.LastUpdated, Tags: d.Tags, Content: d.Content,
	}
}

func articleToDTO(a domain.Article) articleDTO {
	return articleDTO{
		ID: a.ID, Title: a.Title, Category: a.Category, AuthorName: a.AuthorName,
		LastUpdated: a.LastUpdated, Tags: a.Tags, Content: a.Content,
	}
}

type notificationDTO struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Type          string    `json:"type"`
	Priority      string    `json:"priority"`
	Category      string    `json:"category"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
	RelatedItemID string    `json:"related_item_id,omitempty"`
	AISummary     string    `json:"ai_summary,omitempty"`
}

func notificationToDomain(d notificationDTO) domain.Notification {
	return domain.Notification{
		ID: d.ID, UserID: d.UserID, Title: d.Title, Message: d.Message, Type: d.Type,
		Priority: domain.NotificationPriority(d.Priority),
		Category: domain.NotificationCategory(d.Category),
		IsRead:   d.IsRead, CreatedAt: d.CreatedAt,
		RelatedItemID: d.RelatedItemID, AISummary: d.AISummary,
	}
}

func notificationToDTO(n domain.Notification) notificationDTO {
	return notificationDTO{
		ID: n.ID, UserID: n.UserID, Title: n.Title, Message: n.Message, Type: n.Type,
		Priority: string(n.Priority), Category: string(n.Category),
		IsRead: n.IsRead, CreatedAt: n.CreatedAt,
		RelatedItemID: n.RelatedItemID, AISummary: n.AISummary,
	}
}
