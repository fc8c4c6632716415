package domain

import "time"

type Asset struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	SerialNumber       string        `json:"serialNumber"`
	Category           AssetCategory `json:"category"`
	Status             AssetStatus   `json:"status"`
	Location           string        `json:"location"`
	PurchaseDate       string        `json:"purchaseDate,omitempty"`
	Value              float64       `json:"value"`
	LastMaintenance    string        `json:"lastMaintenance,omitempty"`
	AssignedToUserID   string        `json:"assignedToUserId,omitempty"`
	AssignedToUserName string        `json:"assignedToUserName,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssetPatch is a partial update to an asset. Nil fields are ignored.
type AssetPatch struct {
	Name               *string
	Status             *AssetStatus
	Location           *string
	Value              *float64
	LastMaintenance    *string
	AssignedToUserID   *string
	AssignedToUserName *string
}

func (p AssetPatch) Apply(a *Asset) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Value != nil {
		a.Value = *p.Value
	}
	if p.LastMaintenance != nil {
		a.LastMaintenance = *p.LastMaintenance
	}
	if p.AssignedToUserID != nil {
		a.AssignedToUserID = *p.AssignedToUserID
	}
	if p.AssignedToUserName != nil {
		a.AssignedToUserName = *p.AssignedToUserName
	}
}
