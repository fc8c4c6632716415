package domain

import "time"

type Material struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	CurrentStock float64 `json:"currentStock"`
	MinThreshold float64 `json:"minThreshold"`
	Category     string  `json:"category"`
	UnitPrice    float64 `json:"unitPrice"`
	Location     string  `json:"location"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BelowThreshold reports whether stock has fallen under the reorder level.
func (m *Material) BelowThreshold() bool {
	return m.CurrentStock < m.MinThreshold
}

type StockMovement struct {
	ID          string            `json:"id"`
	MaterialID  string            `json:"materialId"`
	Quantity    float64           `json:"quantity"`
	Direction   MovementDirection `json:"type"`
	Note        string            `json:"note"`
	PerformedBy string            `json:"performedBy"`
	CreatedAt   time.Time         `json:"createdAt"`
}
