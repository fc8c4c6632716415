package repository

import (
	"context"

	"github.com/alexanderramin/enjaz/internal/domain"
	"github.com/alexanderramin/enjaz/internal/store"
)

type localEmployees struct{ *Local }

func (r localEmployees) List(ctx context.Context) ([]domain.Employee, error) {
	return ensure(ctx, r.Local, store.CollEmployees, func(e domain.Employee) string { return e.ID }, seedEmployees)
}

func (r localEmployees) Get(ctx context.Context, id string) (*domain.Employee, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	return findByID(all, func(e domain.Employee) string { return e.ID }, id), nil
}

func (r localEmployees) Create(ctx context.Context, e domain.Employee) (*domain.Employee, error) {
	e.ID = domain.NewID(domain.PrefixEmployee)
	e.Version = 1
	now := domain.Touch(e.CreatedAt)
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Status == "" {
		e.Status = "Active"
	}
	if err := store.PutDoc(ctx, r.store, store.CollEmployees, e.ID, e); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return &e, nil
}

func (r localEmployees) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	e, err := r.Get(ctx, id)
	if err != nil || e == nil {
		return nil, err
	}
	patch.Apply(e)
	e.Version++
	e.UpdatedAt = domain.Touch(e.UpdatedAt)
	if err := store.PutDoc(ctx, r.store, store.CollEmployees, e.ID, *e); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return e, nil
}

type localPayroll struct{ *Local }

func (r localPayroll) ListPeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error) {
	all, err := store.All[domain.PayrollRecord](ctx, r.store, store.CollPayroll)
	if err != nil {
		return nil, err
	}
	return filterBy(all, func(p domain.PayrollRecord) bool {
		return p.Month == month && p.Year == year
	}), nil
}

func (r localPayroll) GeneratePeriod(ctx context.Context, month string, year int) ([]domain.PayrollRecord, error) {
	emps, err := localEmployees{r.Local}.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.PayrollRecord, 0, len(emps))
	for i := range emps {
		records = append(records, domain.GeneratePayrollRecord(&emps[i], month, year))
	}
	err = r.store.WithinTx(ctx, func(ctx context.Context, tx store.DBTX) error {
		for _, rec := range records {
			if err := store.PutDocTx(ctx, tx, store.CollPayroll, rec.ID, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.invalidateCache()
	return records, nil
}

func (r localPayroll) setStatus(ctx context.Context, id string, status domain.PayrollStatus) (*domain.PayrollRecord, error) {
	all, err := store.All[domain.PayrollRecord](ctx, r.store, store.CollPayroll)
	if err != nil {
		return nil, err
	}
	rec := findByID(all, func(p domain.PayrollRecord) string { return p.ID }, id)
	if rec == nil {
		return nil, nil
	}
	rec.Status = status
	if err := store.PutDoc(ctx, r.store, store.CollPayroll, rec.ID, *rec); err != nil {
		return nil, err
	}
	r.invalidateCache()
	return rec, nil
}

func (r localPayroll) Approve(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	return r.setStatus(ctx, id, domain.PayrollApproved)
}

func (r localPayroll) MarkPaid(ctx context.Context, id string) (*domain.PayrollRecord, error) {
	return r.setStatus(ctx, id, domain.PayrollPaid)
}
