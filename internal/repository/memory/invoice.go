package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

type InvoiceRepo struct {
	s *Store
}

func NewInvoiceRepo(s *Store) *InvoiceRepo {
	return &InvoiceRepo{s: s}
}

func (r *InvoiceRepo) Create(_ context.Context, inv *domain.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *inv
	cp.Items = append([]domain.LineItem(nil), inv.Items...)
	cp.Payments = nil
	r.s.invoices[inv.ID] = &cp
	r.s.payments[inv.ID] = nil
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*domain.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	return r.view(inv), nil
}

func (r *InvoiceRepo) ListByMember(_ context.Context, memberID string) ([]*domain.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Invoice, 0)
	for _, inv := range r.s.invoices {
		if inv.MemberID == memberID {
			res = append(res, r.view(inv))
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].IssuedAt.After(res[j].IssuedAt) })
	return res, nil
}

// RecordPayment recomputes the paid amount from the payment log under the
// invoice lock, then appends the payment and updates the status together.
func (r *InvoiceRepo) RecordPayment(_ context.Context, p *domain.Payment) (*domain.Invoice, error) {
	unlock := r.s.locks.Lock(invoiceKey(p.InvoiceID))
	defer unlock()

	r.s.mu.RLock()
	inv, ok := r.s.invoices[p.InvoiceID]
	if !ok {
		r.s.mu.RUnlock()
		return nil, domain.ErrInvoiceNotFound
	}
	current := r.view(inv)
	r.s.mu.RUnlock()

	next, err := current.ApplyPayment(current.Paid(), p.Amount)
	if err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.payments[p.InvoiceID] = append(r.s.payments[p.InvoiceID], *p)
	inv.Status = next
	inv.UpdatedAt = time.Now().UTC()
	return r.view(inv), nil
}

// view copies an invoice together with its payment log. Caller holds s.mu.
func (r *InvoiceRepo) view(inv *domain.Invoice) *domain.Invoice {
	cp := *inv
	cp.Items = append([]domain.LineItem(nil), inv.Items...)
	cp.Payments = append([]domain.Payment(nil), r.s.payments[inv.ID]...)
	return &cp
}
