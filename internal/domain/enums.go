package domain

type Status string

const (
	StatusOpen            Status = "Open"
	StatusInProgress      Status = "In Progress"
	StatusPendingApproval Status = "Pending Approval"
	StatusApproved        Status = "Approved"
	StatusRejected        Status = "Rejected"
	StatusDone            Status = "Done"
)

// ValidStatuses is the canonical set of accepted work item status strings.
var ValidStatuses = map[Status]bool{
	StatusOpen: true, StatusInProgress: true, StatusPendingApproval: true,
	StatusApproved: true, StatusRejected: true, StatusDone: true,
}

type WorkItemType string

const (
	TypeTask            WorkItemType = "Task"
	TypeTicket          WorkItemType = "Ticket"
	TypeServiceRequest  WorkItemType = "Service Request"
	TypeIncident        WorkItemType = "Incident"
	TypeApproval        WorkItemType = "Approval Case"
	TypeCustody         WorkItemType = "Custody"
	TypeObservation     WorkItemType = "Safety Observation"
	TypeComplaint       WorkItemType = "Complaint"
	TypeSuggestion      WorkItemType = "Suggestion"
	TypeMaterialRequest WorkItemType = "Material Request"
)

type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

type ApprovalDecision string

const (
	DecisionPending  ApprovalDecision = "Pending"
	DecisionApproved ApprovalDecision = "Approved"
	DecisionRejected ApprovalDecision = "Rejected"
)

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "Planning"
	ProjectActive    ProjectStatus = "Active"
	ProjectOnHold    ProjectStatus = "On Hold"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectDelayed   ProjectStatus = "Delayed"
)

type ProjectHealth string

const (
	HealthGood     ProjectHealth = "Good"
	HealthAtRisk   ProjectHealth = "At Risk"
	HealthCritical ProjectHealth = "Critical"
)

type AssetCategory string

const (
	AssetHeavyEquipment AssetCategory = "Heavy Equipment"
	AssetVehicle        AssetCategory = "Vehicle"
	AssetIT             AssetCategory = "IT & Digital"
	AssetTools          AssetCategory = "Tools"
	AssetOther          AssetCategory = "Other"
)

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "Available"
	AssetInUse       AssetStatus = "In Use"
	AssetMaintenance AssetStatus = "Maintenance"
	AssetLost        AssetStatus = "Lost"
	AssetRetired     AssetStatus = "Retired"
)

type VendorCategory string

const (
	VendorAgreement VendorCategory = "Agreement"
	VendorCredit    VendorCategory = "Credit"
	VendorCash      VendorCategory = "Cash"
)

type MovementDirection string

const (
	MovementInbound  MovementDirection = "Inbound"
	MovementOutbound MovementDirection = "Outbound"
)

type PayrollStatus string

const (
	PayrollDraft    PayrollStatus = "Draft"
	PayrollApproved PayrollStatus = "Approved"
	PayrollPaid     PayrollStatus = "Paid"
)

type POStatus string

const (
	PODraft             POStatus = "Draft"
	POSent              POStatus = "Sent"
	POPartiallyReceived POStatus = "Partially Received"
	POReceived          POStatus = "Received"
	POCancelled         POStatus = "Cancelled"
)

type NotificationPriority string

const (
	NotifCritical NotificationPriority = "critical"
	NotifHigh     NotificationPriority = "high"
	NotifNormal   NotificationPriority = "normal"
	NotifLow      NotificationPriority = "low"
)

type NotificationCategory string

const (
	CategorySystem   NotificationCategory = "system"
	CategoryTask     NotificationCategory = "task"
	CategoryApproval NotificationCategory = "approval"
	CategorySecurity NotificationCategory = "security"
	CategoryMention  NotificationCategory = "mention"
)
