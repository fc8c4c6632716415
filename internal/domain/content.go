package domain

import "time"

type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ProjectID    string    `json:"projectId"`
	URL          string    `json:"url"`
	Category     string    `json:"category"`
	Size         string    `json:"size"`
	Type         string    `json:"type"`
	UploaderID   string    `json:"uploaderId"`
	UploaderName string    `json:"uploaderName"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type TaskPin struct {
	ID         string       `json:"id"`
	WorkItemID string       `json:"workItemId"`
	X          float64      `json:"x"`
	Y          float64      `json:"y"`
	Type       WorkItemType `json:"type"`
	Priority   Priority     `json:"priority"`
}

type Blueprint struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"imageUrl"`
	Version   string    `json:"version"`
	Pins      []TaskPin `json:"pins"`
}

type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	AuthorName  string    `json:"authorName"`
	LastUpdated time.Time `json:"lastUpdated"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"`
}

type Notification struct {
	ID            string               `json:"id"`
	UserID        string               `json:"userId"`
	Title         string               `json:"title"`
	Message       string               `json:"message"`
	Type          string               `json:"type"`
	Priority      NotificationPriority `json:"priority"`
	Category      NotificationCategory `json:"category"`
	IsRead        bool                 `json:"isRead"`
	CreatedAt     time.Time            `json:"createdAt"`
	RelatedItemID string               `json:"relatedItemId,omitempty"`
	AISummary     string               `json:"aiSummary,omitempty"`
}

type ChannelPreference struct {
	Email bool `json:"email"`
	InApp bool `json:"inApp"`
	Push  bool `json:"push"`
}

type NotificationPreferences struct {
	UserID     string `json:"userId"`
	DndEnabled bool   `json:"dndEnabled"`
	Channels   struct {
		Critical ChannelPreference `json:"critical"`
		Mentions ChannelPreference `json:"mentions"`
		Updates  ChannelPreference `json:"updates"`
	} `json:"channels"`
}

// DefaultPreferences mirrors the settings a user gets before ever saving any.
func DefaultPreferences() NotificationPreferences {
	p := NotificationPreferences{UserID: "default"}
	p.Channels.Critical = ChannelPreference{Email: true, InApp: true, Push: true}
	p.Channels.Mentions = ChannelPreference{Email: true, InApp: true, Push: true}
	p.Channels.Updates = ChannelPreference{Email: false, InApp: true, Push: false}
	return p
}

// NotificationClassification is the constrained shape returned by the AI
// classifier: priority and category are required, summary is optional.
type NotificationClassification struct {
	Priority NotificationPriority `json:"priority"`
	Category NotificationCategory `json:"category"`
	Summary  string               `json:"summary,omitempty"`
}

type AutomationRule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsEnabled   bool   `json:"isEnabled"`
	Trigger     string `json:"trigger"`
}

// FieldDraft is an unsynced work item draft captured on a field device. It is
// a subset of WorkItem: only what the capture form collects.
type FieldDraft struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Type        WorkItemType `json:"type,omitempty"`
	Priority    Priority     `json:"priority,omitempty"`
	ProjectID   string       `json:"projectId,omitempty"`
	Location    *GeoPoint    `json:"location,omitempty"`
	SavedAt     time.Time    `json:"savedAt"`
}
