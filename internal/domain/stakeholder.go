package domain

import "time"

type Client struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Company          string   `json:"company,omitempty"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Avatar           string   `json:"avatar"`
	LinkedProjectIDs []string `json:"linkedProjectIds"`
}

type ChangeOrder struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"projectId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ImpactOnBudget   float64   `json:"impactOnBudget"`
	ImpactOnDuration int       `json:"impactOnDuration"`
	Status           string    `json:"status"`
	RequestedBy      string    `json:"requestedBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Rfi struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	RfiNo       string     `json:"rfiNo"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	DrawingRef  string     `json:"drawingRef,omitempty"`
	Status      string     `json:"status"`
	Response    string     `json:"response,omitempty"`
	RespondedBy string     `json:"respondedBy,omitempty"`
	RespondedAt *time.Time `json:"respondedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type MaterialSubmittal struct {
	ID                string    `json:"id"`
	ProjectID         string    `json:"projectId"`
	SubmittalNo       string    `json:"submittalNo"`
	MaterialName      string    `json:"materialName"`
	Manufacturer      string    `json:"manufacturer"`
	SpecificationRef  string    `json:"specificationRef,omitempty"`
	Status            string    `json:"status"`
	ConsultantComment string    `json:"consultantComment,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Subcontractor struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Trade              string  `json:"trade"`
	ContactName        string  `json:"contactName"`
	Phone              string  `json:"phone"`
	PerformanceScore   float64 `json:"performanceScore"`
	TotalContractValue float64 `json:"totalContractValue"`
	PaidAmount         float64 `json:"paidAmount"`
}

type PaymentCertificate struct {
	ID                 string    `json:"id"`
	ProjectID          string    `json:"projectId"`
	SubcontractorID    string    `json:"subcontractorId"`
	SubcontractorName  string    `json:"subcontractorName"`
	Period             string    `json:"period"`
	ClaimedPercentage  float64   `json:"claimedPercentage"`
	ApprovedPercentage float64   `json:"approvedPercentage"`
	Amount             float64   `json:"amount"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Ncr struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"projectId"`
	SubcontractorID string     `json:"subcontractorId"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Severity        string     `json:"severity"`
	Status          string     `json:"status"`
	IssuedBy        string     `json:"issuedBy"`
	CreatedAt       time.Time  `json:"createdAt"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty"`
}

type Permit struct {
	ID          string `json:"id"`
	ProjectID   string `json:"projectId"`
	Authority   string `json:"authority"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	IssueDate   string `json:"issueDate"`
	ExpiryDate  string `json:"expiryDate"`
	DocumentURL string `json:"documentUrl,omitempty"`
}

type LetterOfGuarantee struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"projectId"`
	BankName   string  `json:"bankName"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	IssueDate  string  `json:"issueDate"`
	ExpiryDate string  `json:"expiryDate"`
	Status     string  `json:"status"`
}
