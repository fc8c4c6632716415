package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/alexanderramin/enjaz/internal/domain"
)

type remoteMaterials struct{ *Remote }

func (r remoteMaterials) List(ctx context.Context) ([]domain.Material, error) {
	var out []domain.Material
	err := r.c.Get(ctx, "/materials", &out)
	return out, err
}

func (r remoteMaterials) Get(ctx context.Context, id string) (*domain.Material, error) {
	var m domain.Material
	if err := r.c.Get(ctx, "/materials/"+url.PathEscape(id), &m); err != nil {
		return nil, err
	}
	if m.ID == "" {
		return nil, nil
	}
	return &m, nil
}

func (r remoteMaterials) Create(ctx context.Context, m domain.Material) (*domain.Material, error) {
	var out domain.Material
	if err := r.c.Post(ctx, "/materials", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteMaterials) AdjustStock(ctx context.Context, id string, qty float64, direction domain.MovementDirection, note, performedBy string) (*domain.Material, error) {
	body := map[string]any{
		"quantity": qty, "type": direction, "note": note, "performedBy": performedBy,
	}
	var out domain.Material
	if err := r.c.Patch(ctx, "/materials/"+url.PathEscape(id)+"/stock", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteMaterials) Movements(ctx context.Context, materialID string) ([]domain.StockMovement, error) {
	var out []domain.StockMovement
	err := r.c.Get(ctx, "/materials/"+url.PathEscape(materialID)+"/movements", &out)
	return out, err
}

type remoteDailyLogs struct{ *Remote }

func (r remoteDailyLogs) List(ctx context.Context) ([]domain.DailyLog, error) {
	var out []domain.DailyLog
	err := r.c.Get(ctx, "/daily-logs", &out)
	return out, err
}

func (r remoteDailyLogs) Get(ctx context.Context, id string) (*domain.DailyLog, error) {
	var l domain.DailyLog
	if err := r.c.Get(ctx, "/daily-logs/"+url.PathEscape(id), &l); err != nil {
		return nil, err
	}
	if l.ID == "" {
		return nil, nil
	}
	return &l, nil
}

func (r remoteDailyLogs) Create(ctx context.Context, log domain.DailyLog) (*domain.DailyLog, error) {
	var out domain.DailyLog
	if err := r.c.Post(ctx, "/daily-logs", log, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteDailyLogs) Approve(ctx context.Context, id string) (*domain.DailyLog, error) {
	var out domain.DailyLog
	if err := r.c.Post(ctx, "/daily-logs/"+url.PathEscape(id)+"/approve", struct{}{}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

type remoteEmployees struct{ *Remote }

func (r remoteEmployees) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.c.Get(ctx, "/employees", &out)
	return out, err
}

func (r remoteEmployees) Get(ctx context.Context, id string) (*domain.Employee, error) {
	var e domain.Employee
	if err := r.c.Get(ctx, "/employees/"+url.PathEscape(id), &e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, nil
	}
	return &e, nil
}

func (r remoteEmployees) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	var out domain.Employee
	if err := r.c.Post(ctx, "/employees", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteEmployees) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	body := map[string]any{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Role != nil {
		body["role"] = *patch.Role
	}
	if patch.Department != nil {
		body["department"] = *patch.Department
	}
	if patch.BaseSalary != nil {
		body["baseSalary"] = *patch.BaseSalary
	}
	if patch.HourlyRate != nil {
		body["hourlyRate"] = *patch.HourlyRate
	}
	if patch.Status != nil {
		body["status"] = *patch.Status
	}
	if patch.CurrentProject != nil {
		body["currentProject"] = *patch.CurrentProject
	}
	var out domain.Employee
	if err := r.c.Put(ctx, "/employees/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

type remotePayroll struct{ *Remote }

func (r remotePayroll) ListPeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error) {
	var out []domain.PayrollRecord
	q := url.Values{"month": {month}, "year": {strconv.Itoa(year)}}
	err := r.c.Get(ctx, "/payroll?"+q.Encode(), &out)
	return out, err
}

func (r remotePayroll) GeneratePeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error) {
	var out []domain.PayrollRecord
	body := map[string]any{"month": month, "year": year}
	err := r.c.Post(ctx, "/payroll/generate", body, &out)
	return out, err
}

func (r remotePayroll) Approve(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	var out domain.PayrollRecord
	if err := r.c.Post(ctx, "/payroll/"+url.PathEscape(id)+"/approve", struct{}{}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remotePayroll) MarkPaid(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	var out domain.PayrollRecord
	if err := r.c.Post(ctx, "/payroll/"+url.PathEscape(id)+"/pay", struct{}{}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

type remoteVendors struct{ *Remote }

func (r remoteVendors) List(ctx context.Context) ([]domain.Vendor, error) {
	var out []domain.Vendor
	err := r.c.Get(ctx, "/vendors", &out)
	return out, err
}

func (r remoteVendors) Get(ctx context.Context, id string) (*domain.Vendor, error) {
	var v domain.Vendor
	if err := r.c.Get(ctx, "/vendors/"+url.PathEscape(id), &v); err != nil {
		return nil, err
	}
	if v.ID == "" {
		return nil, nil
	}
	return &v, nil
}

func (r remoteVendors) Create(ctx context.Context, v domain.Vendor) (*domain.Vendor, error) {
	var out domain.Vendor
	if err := r.c.Post(ctx, "/vendors", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteVendors) Update(ctx context.Context, id string, patch domain.VendorPatch) (*domain.Vendor, error) {
	body := map[string]any{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Category != nil {
		body["category"] = *patch.Category
	}
	if patch.Trade != nil {
		body["trade"] = *patch.Trade
	}
	if patch.ContactPerson != nil {
		body["contactPerson"] = *patch.ContactPerson
	}
	if patch.Phone != nil {
		body["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		body["email"] = *patch.Email
	}
	if patch.Rating != nil {
		body["rating"] = *patch.Rating
	}
	if patch.Status != nil {
		body["status"] = *patch.Status
	}
	if patch.PaymentTerms != nil {
		body["paymentTerms"] = *patch.PaymentTerms
	}
	var out domain.Vendor
	if err := r.c.Put(ctx, "/vendors/"+url.PathEscape(id), body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteVendors) ListByCategory(ctx context.Context, category domain.VendorCategory) ([]domain.Vendor, error) {
	var out []domain.Vendor
	err := r.c.Get(ctx, "/vendors/category/"+url.PathEscape(string(category)), &out)
	return out, err
}

type remoteProcurement struct{ *Remote }

func (r remoteProcurement) PurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	var out []domain.PurchaseOrder
	err := r.c.Get(ctx, "/procurement/po", &out)
	return out, err
}

func (r remoteProcurement) CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) (*domain.PurchaseOrder, error) {
	var out domain.PurchaseOrder
	if err := r.c.Post(ctx, "/procurement/po", po, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteProcurement) UpdatePurchaseOrderStatus(ctx context.Context, id string, status domain.POStatus) (*domain.PurchaseOrder, error) {
	var out domain.PurchaseOrder
	body := map[string]string{"status": string(status)}
	if err := r.c.Patch(ctx, "/procurement/po/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteProcurement) Contracts(ctx context.Context) ([]domain.Contract, error) {
	var out []domain.Contract
	err := r.c.Get(ctx, "/procurement/contracts", &out)
	return out, err
}

func (r remoteProcurement) CreateContract(ctx context.Context, c domain.Contract) (*domain.Contract, error) {
	var out domain.Contract
	if err := r.c.Post(ctx, "/procurement/contracts", c, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteProcurement) PettyCash(ctx context.Context) ([]domain.PettyCashRecord, error) {
	var out []domain.PettyCashRecord
	err := r.c.Get(ctx, "/procurement/petty-cash", &out)
	return out, err
}

func (r remoteProcurement) CreatePettyCash(ctx context.Context, rec domain.PettyCashRecord) (*domain.PettyCashRecord, error) {
	var out domain.PettyCashRecord
	if err := r.c.Post(ctx, "/procurement/petty-cash", rec, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type remoteStakeholders struct{ *Remote }

func (r remoteStakeholders) Clients(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	err := r.c.Get(ctx, "/clients", &out)
	return out, err
}

func (r remoteStakeholders) ChangeOrders(ctx context.Context, projectID string) ([]domain.ChangeOrder, error) {
	var out []domain.ChangeOrder
	err := r.c.Get(ctx, "/change-orders?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreateChangeOrder(ctx context.Context, co domain.ChangeOrder) (*domain.ChangeOrder, error) {
	var out domain.ChangeOrder
	if err := r.c.Post(ctx, "/change-orders", co, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) UpdateChangeOrderStatus(ctx context.Context, id, status string) (*domain.ChangeOrder, error) {
	var out domain.ChangeOrder
	if err := r.c.Patch(ctx, "/change-orders/"+url.PathEscape(id)+"/status", map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteStakeholders) Rfis(ctx context.Context, projectID string) ([]domain.Rfi, error) {
	var out []domain.Rfi
	err := r.c.Get(ctx, "/rfis?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreateRfi(ctx context.Context, rfi domain.Rfi) (*domain.Rfi, error) {
	var out domain.Rfi
	if err := r.c.Post(ctx, "/rfis", rfi, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) UpdateRfiStatus(ctx context.Context, id, status, response, respondedBy string) (*domain.Rfi, error) {
	var out domain.Rfi
	body := map[string]string{"status": status, "response": response, "respondedBy": respondedBy}
	if err := r.c.Patch(ctx, "/rfis/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteStakeholders) Submittals(ctx context.Context, projectID string) ([]domain.MaterialSubmittal, error) {
	var out []domain.MaterialSubmittal
	err := r.c.Get(ctx, "/submittals?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreateSubmittal(ctx context.Context, s domain.MaterialSubmittal) (*domain.MaterialSubmittal, error) {
	var out domain.MaterialSubmittal
	if err := r.c.Post(ctx, "/submittals", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) UpdateSubmittalStatus(ctx context.Context, id, status, comment string) (*domain.MaterialSubmittal, error) {
	var out domain.MaterialSubmittal
	body := map[string]string{"status": status, "consultantComment": comment}
	if err := r.c.Patch(ctx, "/submittals/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteStakeholders) Subcontractors(ctx context.Context) ([]domain.Subcontractor, error) {
	var out []domain.Subcontractor
	err := r.c.Get(ctx, "/subcontractors", &out)
	return out, err
}

func (r remoteStakeholders) PaymentCertificates(ctx context.Context, projectID string) ([]domain.PaymentCertificate, error) {
	var out []domain.PaymentCertificate
	err := r.c.Get(ctx, "/certificates?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreatePaymentCertificate(ctx context.Context, pc domain.PaymentCertificate) (*domain.PaymentCertificate, error) {
	var out domain.PaymentCertificate
	if err := r.c.Post(ctx, "/certificates", pc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) UpdateCertificateStatus(ctx context.Context, id, status string, approvedPercentage *float64) (*domain.PaymentCertificate, error) {
	var out domain.PaymentCertificate
	body := map[string]any{"status": status}
	if approvedPercentage != nil {
		body["approvedPercentage"] = *approvedPercentage
	}
	if err := r.c.Patch(ctx, "/certificates/"+url.PathEscape(id)+"/status", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteStakeholders) Ncrs(ctx context.Context, projectID string) ([]domain.Ncr, error) {
	var out []domain.Ncr
	err := r.c.Get(ctx, "/ncrs?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreateNcr(ctx context.Context, n domain.Ncr) (*domain.Ncr, error) {
	var out domain.Ncr
	if err := r.c.Post(ctx, "/ncrs", n, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) UpdateNcrStatus(ctx context.Context, id, status string) (*domain.Ncr, error) {
	var out domain.Ncr
	if err := r.c.Patch(ctx, "/ncrs/"+url.PathEscape(id)+"/status", map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

func (r remoteStakeholders) Permits(ctx context.Context, projectID string) ([]domain.Permit, error) {
	var out []domain.Permit
	err := r.c.Get(ctx, "/permits?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreatePermit(ctx context.Context, p domain.Permit) (*domain.Permit, error) {
	var out domain.Permit
	if err := r.c.Post(ctx, "/permits", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteStakeholders) LettersOfGuarantee(ctx context.Context, projectID string) ([]domain.LetterOfGuarantee, error) {
	var out []domain.LetterOfGuarantee
	err := r.c.Get(ctx, "/lgs?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteStakeholders) CreateLetterOfGuarantee(ctx context.Context, lg domain.LetterOfGuarantee) (*domain.LetterOfGuarantee, error) {
	var out domain.LetterOfGuarantee
	if err := r.c.Post(ctx, "/lgs", lg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type remoteDocuments struct{ *Remote }

func (r remoteDocuments) List(ctx context.Context) ([]domain.Document, error) {
	var out []domain.Document
	err := r.c.Get(ctx, "/documents", &out)
	return out, err
}

func (r remoteDocuments) ListByProject(ctx context.Context, projectID string) ([]domain.Document, error) {
	var out []domain.Document
	err := r.c.Get(ctx, "/documents/project/"+url.PathEscape(projectID), &out)
	return out, err
}

func (r remoteDocuments) Upload(ctx context.Context, doc domain.Document) (*domain.Document, error) {
	var out domain.Document
	if err := r.c.Post(ctx, "/documents/upload", doc, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r remoteDocuments) Delete(ctx context.Context, id string) error {
	return r.c.Delete(ctx, "/documents/"+url.PathEscape(id))
}

func (r remoteDocuments) Blueprints(ctx context.Context, projectID string) ([]domain.Blueprint, error) {
	var out []domain.Blueprint
	err := r.c.Get(ctx, "/blueprints?projectId="+url.QueryEscape(projectID), &out)
	return out, err
}

func (r remoteDocuments) SetPins(ctx context.Context, blueprintID string, pins []domain.TaskPin) (*domain.Blueprint, error) {
	var out domain.Blueprint
	body := map[string]any{"pins": pins}
	if err := r.c.Put(ctx, "/blueprints/"+url.PathEscape(blueprintID)+"/pins", body, &out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, nil
	}
	return &out, nil
}

// remoteAI runs the text generation on the server. The client just carries
// structured context over and unwraps the single-field responses.
type remoteAI struct{ *Remote }

func (r remoteAI) AnalyzeWorkItem(ctx context.Context, item *domain.WorkItem) (string, error) {
	var res struct {
		Analysis string `json:"analysis"`
	}
	if err := r.c.Post(ctx, "/ai/analyze-work-item", workItemToDTO(*item), &res); err != nil {
		return "", err
	}
	return res.Analysis, nil
}

func (r remoteAI) SuggestPriority(ctx context.Context, title, description string) (domain.Priority, error) {
	var res struct {
		Priority string `json:"priority"`
	}
	body := map[string]string{"title": title, "description": description}
	if err := r.c.Post(ctx, "/ai/suggest-priority", body, &res); err != nil {
		return "", err
	}
	return domain.Priority(res.Priority), nil
}

func (r remoteAI) ExecutiveBrief(ctx context.Context, items []domain.WorkItem, projects []domain.Project) (string, error) {
	var res struct {
		Brief string `json:"brief"`
	}
	body := map[string]any{"workItems": items, "projects": projects}
	if err := r.c.Post(ctx, "/ai/executive-brief", body, &res); err != nil {
		return "", err
	}
	return res.Brief, nil
}

func (r remoteAI) FinancialInsight(ctx context.Context, projects []domain.Project) (string, error) {
	var res struct {
		Insight string `json:"insight"`
	}
	if err := r.c.Post(ctx, "/ai/financial-insight", map[string]any{"projects": projects}, &res); err != nil {
		return "", err
	}
	return res.Insight, nil
}

func (r remoteAI) DailyReport(ctx context.Context, log *domain.DailyLog) (string, error) {
	var res struct {
		Report string `json:"report"`
	}
	if err := r.c.Post(ctx, "/ai/generate-daily-report", log, &res); err != nil {
		return "", err
	}
	return res.Report, nil
}

func (r remoteAI) ClassifyNotification(ctx context.Context, title, message string) (*domain.NotificationClassification, error) {
	var res domain.NotificationClassification
	body := map[string]string{"title": title, "message": message}
	if err := r.c.Post(ctx, "/ai/analyze-notification", body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r remoteAI) Ask(ctx context.Context, question string, items []domain.WorkItem) (string, error) {
	var res struct {
		Answer string `json:"answer"`
	}
	body := map[string]any{"question": question, "context": items}
	if err := r.c.Post(ctx, "/ai/ask-wiki", body, &res); err != nil {
		return "", err
	}
	return res.Answer, nil
}
