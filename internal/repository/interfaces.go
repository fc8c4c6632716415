package repository

import (
	"context"

	"github.com/alexanderramin/enjaz/internal/domain"
)

// Update operations return (nil, nil) when the id does not exist: callers
// distinguish "not found" from failure without a sentinel error. Every Get
// follows the same convention.

type WorkItemRepo interface {
	List(ctx context.Context) ([]domain.WorkItem, error)
	Get(ctx context.Context, id string) (*domain.WorkItem, error)
	Create(ctx context.Context, item domain.WorkItem) (*domain.WorkItem, error)
	Update(ctx context.Context, id string, patch domain.WorkItemPatch) (*domain.WorkItem, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.WorkItem, error)
	AddComment(ctx context.Context, id string, comment domain.Comment) (*domain.WorkItem, error)
	SubmitApproval(ctx context.Context, id, stepID string, decision domain.ApprovalDecision, comments string) (*domain.WorkItem, error)
}

type ProjectRepo interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error)
}

type UserRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	Current(ctx context.Context) (*domain.User, error)
	Switch(ctx context.Context, id string) (*domain.User, error)
}

type AssetRepo interface {
	List(ctx context.Context) ([]domain.Asset, error)
	Get(ctx context.Context, id string) (*domain.Asset, error)
	Create(ctx context.Context, asset domain.Asset) (*domain.Asset, error)
	Update(ctx context.Context, id string, patch domain.AssetPatch) (*domain.Asset, error)
}

type MaterialRepo interface {
	List(ctx context.Context) ([]domain.Material, error)
	Get(ctx context.Context, id string) (*domain.Material, error)
	Create(ctx context.Context, m domain.Material) (*domain.Material, error)
	// AdjustStock moves stock in or out and appends a movement record.
	AdjustStock(ctx context.Context, id string, qty float64, direction domain.MovementDirection, note, performedBy string) (*domain.Material, error)
	Movements(ctx context.Context, materialID string) ([]domain.StockMovement, error)
}

type DailyLogRepo interface {
	List(ctx context.Context) ([]domain.DailyLog, error)
	Get(ctx context.Context, id string) (*domain.DailyLog, error)
	Create(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error)
	Approve(ctx context.Context, id string) (*domain.DailyLog, error)
}

type EmployeeRepo interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id string) (*domain.Employee, error)
	Create(ctx context.Context, e domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error)
}

type PayrollRepo interface {
	ListPeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error)
	// GeneratePeriod derives one draft record per employee. Records have
	// deterministic ids so regenerating a period upserts rather than
	// duplicating.
	GeneratePeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error)
	Approve(ctx context.Context, id string) (*domain.PayrollRecord, error)
	MarkPaid(ctx context.Context, id string) (*domain.PayrollRecord, error)
}

type VendorRepo interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	Get(ctx context.Context, id string) (*domain.Vendor, error)
	Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error)
	Update(ctx context.Context, id string, patch domain.VendorPatch) (*domain.Vendor, error)
	ListByCategory(ctx context.Context, category domain.VendorCategory) ([]domain.Vendor, error)
}

type ProcurementRepo interface {
	PurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error)
	UpdatePurchaseOrderStatus(ctx context.Context, id string, status domain.POStatus) (*domain.PurchaseOrder, error)
	Contracts(ctx context.Context) ([]domain.Contract, error)
	CreateContract(ctx context.Context, c domain.Contract) (*domain.Contract, error)
	PettyCash(ctx context.Context) ([]domain.PettyCashRecord, error)
	CreatePettyCash(ctx context.Context, r domain.PettyCashRecord) (*domain.PettyCashRecord, error)
}

type StakeholderRepo interface {
	Clients(ctx context.Context) ([]domain.Client, error)

	ChangeOrders(ctx context.Context, projectID string) ([]domain.ChangeOrder, error)
	CreateChangeOrder(ctx context.Context, co domain.ChangeOrder) (*domain.ChangeOrder, error)
	UpdateChangeOrderStatus(ctx context.Context, id, status string) (*domain.ChangeOrder, error)

	Rfis(ctx context.Context, projectID string) ([]domain.Rfi, error)
	CreateRfi(ctx context.Context, r domain.Rfi) (*domain.Rfi, error)
	// UpdateRfiStatus records the transition and, when response is non-empty,
	// the consultant's answer and identity.
	UpdateRfiStatus(ctx context.Context, id, status, response, respondedBy string) (*domain.Rfi, error)

	Submittals(ctx context.Context, projectID string) ([]domain.MaterialSubmittal, error)
	CreateSubmittal(ctx context.Context, s domain.MaterialSubmittal) (*domain.MaterialSubmittal, error)
	UpdateSubmittalStatus(ctx context.Context, id, status, comment string) (*domain.MaterialSubmittal, error)

	Subcontractors(ctx context.Context) ([]domain.Subcontractor, error)

	PaymentCertificates(ctx context.Context, projectID string) ([]domain.PaymentCertificate, error)
	CreatePaymentCertificate(ctx context.Context, pc domain.PaymentCertificate) (*domain.PaymentCertificate, error)
	UpdateCertificateStatus(ctx context.Context, id, status string, approvedPercentage *float64) (*domain.PaymentCertificate, error)

	Ncrs(ctx context.Context, projectID string) ([]domain.Ncr, error)
	CreateNcr(ctx context.Context, n domain.Ncr) (*domain.Ncr, error)
	UpdateNcrStatus(ctx context.Context, id, status string) (*domain.Ncr, error)

	Permits(ctx context.Context, projectID string) ([]domain.Permit, error)
	CreatePermit(ctx context.Context, p domain.Permit) (*domain.Permit, error)

	LettersOfGuarantee(ctx context.Context, projectID string) ([]domain.LetterOfGuarantee, error)
	CreateLetterOfGuarantee(ctx context.Context, lg domain.LetterOfGuarantee) (*domain.LetterOfGuarantee, error)
}

type DocumentRepo interface {
	List(ctx context.Context) ([]domain.Document, error)
	ListByProject(ctx context.Context, projectID string) ([]domain.Document, error)
	Upload(ctx context.Context, doc domain.Document) (*domain.Document, error)
	Delete(ctx context.Context, id string) error
	Blueprints(ctx context.Context, projectID string) ([]domain.Blueprint, error)
	// SetPins replaces the blueprint's whole pin set.
	SetPins(ctx context.Context, blueprintID string, pins []domain.TaskPin) (*domain.Blueprint, error)
}

type KnowledgeRepo interface {
	List(ctx context.Context) ([]domain.Article, error)
	Search(ctx context.Context, query string) ([]domain.Article, error)
	Create(ctx context.Context, a domain.Article) (*domain.Article, error)
}

type NotificationRepo interface {
	List(ctx context.Context) ([]domain.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	Create(ctx context.Context, n domain.Notification) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) error
	Preferences(ctx context.Context, userID string) (*domain.NotificationPreferences, error)
	SavePreferences(ctx context.Context, prefs domain.NotificationPreferences) error
}

type AutomationRepo interface {
	List(ctx context.Context) ([]domain.AutomationRule, error)
	Toggle(ctx context.Context, id string) (*domain.AutomationRule, error)
}

// FieldOpsRepo holds unsynced drafts captured on a field device. Drafts are
// device-local by contract and never leave the local store.
type FieldOpsRepo interface {
	Drafts(ctx context.Context) ([]domain.FieldDraft, error)
	SaveDraft(ctx context.Context, d domain.FieldDraft) (*domain.FieldDraft, error)
	RemoveDraft(ctx context.Context, id string) error
	ClearDrafts(ctx context.Context) error
}

type AiService interface {
	AnalyzeWorkItem(ctx context.Context, item *domain.WorkItem) (string, error)
	SuggestPriority(ctx context.Context, title, description string) (domain.Priority, error)
	ExecutiveBrief(ctx context.Context, items []domain.WorkItem, projects []domain.Project) (string, error)
	FinancialInsight(ctx context.Context, projects []domain.Project) (string, error)
	DailyReport(ctx context.Context, log *domain.DailyLog) (string, error)
	ClassifyNotification(ctx context.Context, title, message string) (*domain.NotificationClassification, error)
	Ask(ctx context.Context, question string, items []domain.WorkItem) (string, error)
}

// Provider bundles every repository behind one resolved backend. It is built
// once at startup from configuration and handed to consumers whole.
type Provider struct {
	WorkItems     WorkItemRepo
	Projects      ProjectRepo
	Users         UserRepo
	Assets        AssetRepo
	Materials     MaterialRepo
	DailyLogs     DailyLogRepo
	Employees     EmployeeRepo
	Payroll       PayrollRepo
	Vendors       VendorRepo
	Procurement   ProcurementRepo
	Stakeholders  StakeholderRepo
	Documents     DocumentRepo
	Knowledge     KnowledgeRepo
	Notifications NotificationRepo
	Automation    AutomationRepo
	FieldOps      FieldOpsRepo
	AI            AiService

	// InvalidateCache drops any read-through cache the backend keeps. It is
	// a no-op for backends without one.
	InvalidateCache func()
}
