package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BillingService struct {
	invoiceRepo ports.InvoiceRepo
	directory   ports.DirectoryRepo
	notifier    ports.MemberNotifier
	logger      logger.Logger
}

func NewBillingService(
	invoiceRepo ports.InvoiceRepo,
	directory ports.DirectoryRepo,
	notifier ports.MemberNotifier,
	logger logger.Logger,
) *BillingService {
	return &BillingService{
		invoiceRepo: invoiceRepo,
		directory:   directory,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BillingService) CreateInvoice(ctx context.Context, p domain.Principal, input domain.CreateInvoiceInput) (*domain.Invoice, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetMember(ctx, input.MemberID); err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	invoiceID := uuid.New().String()
	items := make([]domain.LineItem, 0, len(input.Items))
	for i, it := range input.Items {
		if strings.TrimSpace(it.Description) == "" {
			return nil, fmt.Errorf("%w: item %d: description is required", domain.ErrValidation, i)
		}
		items = append(items, domain.LineItem{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	total, err := domain.TotalOf(items)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	invoice := &domain.Invoice{
		ID:          invoiceID,
		MemberID:    input.MemberID,
		IssuedAt:    now,
		DueDate:     input.DueDate,
		TotalAmount: total,
		Status:      domain.StatusFor(0, total),
		Notes:       input.Notes,
		Items:       items,
		Payments:    []domain.Payment{},
		UpdatedAt:   now,
	}
	if err = s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	s.logger.Info("invoice created",
		logger.String("invoice_id", invoice.ID),
		logger.String("member_id", invoice.MemberID),
		logger.Int64("total", int64(invoice.TotalAmount)),
	)

	return invoice, nil
}

func (s *BillingService) GetInvoice(ctx context.Context, p domain.Principal, id string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = requireMember(p, invoice.MemberID); err != nil {
		return nil, err
	}
	return invoice, nil
}

// Remaining returns total minus the payment log, recomputed on every call.
func (s *BillingService) Remaining(ctx context.Context, p domain.Principal, id string) (domain.Money, error) {
	invoice, err := s.GetInvoice(ctx, p, id)
	if err != nil {
		return 0, err
	}
	return invoice.Remaining(), nil
}

func (s *BillingService) ListMemberInvoices(ctx context.Context, p domain.Principal, memberID string) ([]*domain.Invoice, error) {
	if err := requireMember(p, memberID); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListByMember(ctx, memberID)
}

func (s *BillingService) RecordPayment(ctx context.Context, p domain.Principal, input domain.RecordPaymentInput) (*domain.Invoice, error) {
	current, err := s.invoiceRepo.GetByID(ctx, input.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err = requireMember(p, current.MemberID); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		ID:        uuid.New().String(),
		InvoiceID: input.InvoiceID,
		Amount:    input.Amount,
		Method:    input.Method,
		Reference: input.Reference,
		PaidAt:    time.Now().UTC(),
	}
	invoice, err := s.invoiceRepo.RecordPayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.String("invoice_id", invoice.ID),
		logger.String("payment_id", payment.ID),
		logger.Int64("amount", int64(payment.Amount)),
		logger.String("status", string(invoice.Status)),
	)

	member, err := s.directory.GetMember(ctx, invoice.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", invoice.MemberID),
			logger.String("error", err.Error()),
		)
		return invoice, nil
	}

	go s.notifier.NotifyPaymentRecorded(context.WithoutCancel(ctx), member, invoice, payment)

	return invoice, nil
}
