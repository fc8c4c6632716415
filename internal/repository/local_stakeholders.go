package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localStakeholders struct{ *Local }

func (r localStakeholders) Clients(ctx context.Context) ([]domain.Client, error) {
	return ensure(ctx, r.Local, store.CollClients, func(c domain.Client) string { return c.ID }, seedClients)
}

func (r localStakeholders) ChangeOrders(ctx context.Context, projectID string) ([]domain.ChangeOrder, error) {
	all, err := store.All[domain.ChangeOrder](ctx, r.store, store.CollChangeOrders)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(co domain.ChangeOrder) bool { return co.ProjectID == projectID }), nil
}

func (r localStakeholders) CreateChangeOrder(ctx context.Context, co domain.ChangeOrder) (*domain.ChangeOrder, error) {
	co.ID = domain.NewID(domain.PrefixChangeOrder)
	co.CreatedAt = time.Now().UTC()
	if co.Status == "" {
		co.Status = "Pending"
	}
	if err := store.PutDoc(ctx, r.store, store.CollChangeOrders, co.ID, co); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &co, nil
}

func (r localStakeholders) UpdateChangeOrderStatus(ctx context.Context, id, status string) (*domain.ChangeOrder, error) {
	all, err := store.All[domain.ChangeOrder](ctx, r.store, store.CollChangeOrders)
	if err != nil {
		return nil, err
	}
	co := findByID(all, func(c domain.ChangeOrder) string { return c.ID }, id)
	if co == nil {
		return nil, nil
	}
	co.Status = status
	if err := store.PutDoc(ctx, r.store, store.CollChangeOrders, co.ID, *co); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return co, nil
}

func (r localStakeholders) Rfis(ctx context.Context, projectID string) ([]domain.Rfi, error) {
	all, err := store.All[domain.Rfi](ctx, r.store, store.CollRfis)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(rf domain.Rfi) bool { return rf.ProjectID == projectID }), nil
}

func (r localStakeholders) CreateRfi(ctx context.Context, rfi domain.Rfi) (*domain.Rfi, error) {
	rfi.ID = domain.NewID(domain.PrefixRfi)
	rfi.CreatedAt = time.Now().UTC()
	if rfi.Status == "" {
		rfi.Status = "Open"
	}
	if err := store.PutDoc(ctx, r.store, store.CollRfis, rfi.ID, rfi); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &rfi, nil
}

func (r localStakeholders) UpdateRfiStatus(ctx context.Context, id, status, response, respondedBy string) (*domain.Rfi, error) {
	all, err := store.All[domain.Rfi](ctx, r.store, store.CollRfis)
	if err != nil {
		return nil, err
	}
	rfi := findByID(all, func(rf domain.Rfi) string { return rf.ID }, id)
	if rfi == nil {
		return nil, nil
	}
	rfi.Status = status
	if response != "" {
		now := time.Now().UTC()
		rfi.Response = response
		rfi.RespondedBy = respondedBy
		rfi.RespondedAt = &now
	}
	if err := store.PutDoc(ctx, r.store, store.CollRfis, rfi.ID, *rfi); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return rfi, nil
}

func (r localStakeholders) Submittals(ctx context.Context, projectID string) ([]domain.MaterialSubmittal, error) {
	all, err := store.All[domain.MaterialSubmittal](ctx, r.store, store.CollSubmittals)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(s domain.MaterialSubmittal) bool { return s.ProjectID == projectID }), nil
}

func (r localStakeholders) CreateSubmittal(ctx context.Context, s domain.MaterialSubmittal) (*domain.MaterialSubmittal, error) {
	s.ID = domain.NewID(domain.PrefixSubmittal)
	s.CreatedAt = time.Now().UTC()
	if s.Status == "" {
		s.Status = "Submitted"
	}
	if err := store.PutDoc(ctx, r.store, store.CollSubmittals, s.ID, s); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &s, nil
}

func (r localStakeholders) UpdateSubmittalStatus(ctx context.Context, id, status, comment string) (*domain.MaterialSubmittal, error) {
	all, err := store.All[domain.MaterialSubmittal](ctx, r.store, store.CollSubmittals)
	if err != nil {
		return nil, err
	}
	s := findByID(all, func(x domain.MaterialSubmittal) string { return x.ID }, id)
	if s == nil {
		return nil, nil
	}
	s.Status = status
	if comment != "" {
		s.ConsultantComment = comment
	}
	if err := store.PutDoc(ctx, r.store, store.CollSubmittals, s.ID, *s); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return s, nil
}

func (r localStakeholders) Subcontractors(ctx context.Context) ([]domain.Subcontractor, error) {
	return ensure(ctx, r.Local, store.CollSubcontractors, func(s domain.Subcontractor) string { return s.ID }, seedSubcontractors)
}

func (r localStakeholders) PaymentCertificates(ctx context.Context, projectID string) ([]domain.PaymentCertificate, error) {
	all, err := store.All[domain.PaymentCertificate](ctx, r.store, store.CollCertificates)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(pc domain.PaymentCertificate) bool { return pc.ProjectID == projectID }), nil
}

func (r localStakeholders) CreatePaymentCertificate(ctx context.Context, pc domain.PaymentCertificate) (*domain.PaymentCertificate, error) {
	pc.ID = domain.NewID(domain.PrefixCertificate)
	pc.CreatedAt = time.Now().UTC()
	if pc.Status == "" {
		pc.Status = "Submitted"
	}
	if err := store.PutDoc(ctx, r.store, store.CollCertificates, pc.ID, pc); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &pc, nil
}

func (r localStakeholders) UpdateCertificateStatus(ctx context.Context, id, status string, approvedPercentage *float64) (*domain.PaymentCertificate, error) {
	all, err := store.All[domain.PaymentCertificate](ctx, r.store, store.CollCertificates)
	if err != nil {
		return nil, err
	}
	pc := findByID(all, func(x domain.PaymentCertificate) string { return x.ID }, id)
	if pc == nil {
		return nil, nil
	}
	pc.Status = status
	if approvedPercentage != nil {
		pc.ApprovedPercentage = *approvedPercentage
	}
	if err := store.PutDoc(ctx, r.store, store.CollCertificates, pc.ID, *pc); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return pc, nil
}

func (r localStakeholders) Ncrs(ctx context.Context, projectID string) ([]domain.Ncr, error) {
	all, err := store.All[domain.Ncr](ctx, r.store, store.CollNcrs)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(n domain.Ncr) bool { return n.ProjectID == projectID }), nil
}

func (r localStakeholders) CreateNcr(ctx context.Context, n domain.Ncr) (*domain.Ncr, error) {
	n.ID = domain.NewID(domain.PrefixNcr)
	n.CreatedAt = time.Now().UTC()
	if n.Status == "" {
		n.Status = "Open"
	}
	if err := store.PutDoc(ctx, r.store, store.CollNcrs, n.ID, n); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &n, nil
}

func (r localStakeholders) UpdateNcrStatus(ctx context.Context, id, status string) (*domain.Ncr, error) {
	all, err := store.All[domain.Ncr](ctx, r.store, store.CollNcrs)
	if err != nil {
		return nil, err
	}
	n := findByID(all, func(x domain.Ncr) string { return x.ID }, id)
	if n == nil {
		return nil, nil
	}
	n.Status = status
	if status == "Resolved" {
		now := time.Now().UTC()
		n.ResolvedAt = &now
	} else {
		n.ResolvedAt = nil
	}
	if err := store.PutDoc(ctx, r.store, store.CollNcrs, n.ID, *n); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return n, nil
}

func (r localStakeholders) Permits(ctx context.Context, projectID string) ([]domain.Permit, error) {
	all, err := ensure(ctx, r.Local, store.CollPermits, func(p domain.Permit) string { return p.ID }, seedPermits)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(p domain.Permit) bool { return p.ProjectID == projectID }), nil
}

func (r localStakeholders) CreatePermit(ctx context.Context, p domain.Permit) (*domain.Permit, error) {
	p.ID = domain.NewID(domain.PrefixPermit)
	if p.Status == "" {
		p.Status = "Active"
	}
	if err := store.PutDoc(ctx, r.store, store.CollPermits, p.ID, p); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &p, nil
}

func (r localStakeholders) LettersOfGuarantee(ctx context.Context, projectID string) ([]domain.LetterOfGuarantee, error) {
	all, err := ensure(ctx, r.Local, store.CollLgs, func(lg domain.LetterOfGuarantee) string { return lg.ID }, seedLetters)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(lg domain.LetterOfGuarantee) bool { return lg.ProjectID == projectID }), nil
}

func (r localStakeholders) CreateLetterOfGuarantee(ctx context.Context, lg domain.LetterOfGuarantee) (*domain.LetterOfGuarantee, error) {
	lg.ID = domain.NewID(domain.PrefixLG)
	if lg.Status == "" {
		lg.Status = "Active"
	}
	if err := store.PutDoc(ctx, r.store, store.CollLgs, lg.ID, lg); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &lg, nil
}
