package domain

import "time"

type Vendor struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Category      VendorCategory `json:"category"`
	Trade         string         `json:"trade"`
	ContactPerson string         `json:"contactPerson"`
	Phone         string         `json:"phone"`
	Email         string         `json:"email"`
	Rating        float64        `json:"rating"`
	Status        string         `json:"status"`
	PaymentTerms  string         `json:"paymentTerms,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VendorPatch is a partial update to a vendor. Nil fields are ignored.
type VendorPatch struct {
	Name          *string
	Category      *VendorCategory
	Trade         *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Rating        *float64
	Status        *string
	PaymentTerms  *string
}

func (p VendorPatch) Apply(v *Vendor) {
	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Category != nil {
		v.Category = *p.Category
	}
	if p.Trade != nil {
		v.Trade = *p.Trade
	}
	if p.ContactPerson != nil {
		v.ContactPerson = *p.ContactPerson
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Rating != nil {
		v.Rating = *p.Rating
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.PaymentTerms != nil {
		v.PaymentTerms = *p.PaymentTerms
	}
}

type POLine struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type PurchaseOrder struct {
	ID             string         `json:"id"`
	PONumber       string         `json:"poNumber"`
	ProjectID      string         `json:"projectId"`
	ProjectName    string         `json:"projectName"`
	VendorID       string         `json:"vendorId"`
	VendorName     string         `json:"vendorName"`
	VendorCategory VendorCategory `json:"vendorCategory"`
	IssueDate      string         `json:"issueDate"`
	DeliveryDate   string         `json:"deliveryDate,omitempty"`
	Items          []POLine       `json:"items"`
	Subtotal       float64        `json:"subtotal"`
	Tax            float64        `json:"tax"`
	GrandTotal     float64        `json:"grandTotal"`
	Status         POStatus       `json:"status"`
	PaymentStatus  string         `json:"paymentStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
}

type Contract struct {
	ID             string    `json:"id"`
	ContractNumber string    `json:"contractNumber"`
	Title          string    `json:"title"`
	VendorID       string    `json:"vendorId"`
	VendorName     string    `json:"vendorName"`
	ProjectID      string    `json:"projectId"`
	Value          float64   `json:"value"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	Status         string    `json:"status"`
	Type           string    `json:"type"`
	CreatedAt      time.Time `json:"createdAt"`
}

type PettyCashRecord struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	AccountantID string    `json:"accountantId"`
	VendorName   string    `json:"vendorName"`
	Amount       float64   `json:"amount"`
	Description  string    `json:"description"`
	ReceiptURL   string    `json:"receiptUrl,omitempty"`
	Date         string    `json:"date"`
	Category     string    `json:"category"`
	CreatedAt    time.Time `json:"createdAt"`
}
