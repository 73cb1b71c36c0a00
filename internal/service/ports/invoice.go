package ports

import (
	"context"

	"github.com/stpnv0/GymOps/internal/domain"
)

// InvoiceRepo stores invoices with their items and append-only payments.
type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Invoice, error)
	RecordPayment(ctx context.Context, p *domain.Payment) (*domain.Invoice, error)
}
