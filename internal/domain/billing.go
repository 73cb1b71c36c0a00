package domain

import (
	"fmt"
	"math"
	"time"
)

// Money is an amount in minor currency units (cents). Arithmetic stays in
// integers.
type Money int64

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "PENDING"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceStatusPending: {InvoiceStatusPartial, InvoiceStatusPaid},
	InvoiceStatusPartial: {InvoiceStatusPartial, InvoiceStatusPaid},
}

func (s InvoiceStatus) CanTransitionTo(to InvoiceStatus) bool {
	for _, next := range invoiceTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type LineItem struct {
	ID          string `json:"id"`
	InvoiceID   string `json:"invoice_id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   Money  `json:"unit_price"`
}

func (li LineItem) Amount() Money {
	return Money(int64(li.Quantity) * int64(li.UnitPrice))
}

type Payment struct {
	ID        string    `json:"id"`
	InvoiceID string    `json:"invoice_id"`
	Amount    Money     `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	PaidAt    time.Time `json:"paid_at"`
}

type Invoice struct {
	ID          string        `json:"id"`
	MemberID    string        `json:"member_id"`
	IssuedAt    time.Time     `json:"issued_at"`
	DueDate     *time.Time    `json:"due_date"`
	TotalAmount Money         `json:"total_amount"`
	Status      InvoiceStatus `json:"status"`
	Notes       string        `json:"notes"`
	Items       []LineItem    `json:"items"`
	Payments    []Payment     `json:"payments"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Paid sums the payment log. It is never stored.
func (inv *Invoice) Paid() Money {
	var sum Money
	for _, p := range inv.Payments {
		sum += p.Amount
	}
	return sum
}

// Remaining is the derived balance: total minus the payment log.
func (inv *Invoice) Remaining() Money {
	return inv.TotalAmount - inv.Paid()
}

// StatusFor derives the invoice status from the amount paid so far.
func StatusFor(paid, total Money) InvoiceStatus {
	switch {
	case paid >= total:
		return InvoiceStatusPaid
	case paid > 0:
		return InvoiceStatusPartial
	default:
		return InvoiceStatusPending
	}
}

// ApplyPayment checks a new payment against the balance observed under the
// invoice lock and returns the status the invoice moves to.
func (inv *Invoice) ApplyPayment(paidSoFar, amount Money) (InvoiceStatus, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	if amount > inv.TotalAmount-paidSoFar {
		return "", ErrOverpayment
	}
	next := StatusFor(paidSoFar+amount, inv.TotalAmount)
	if !inv.Status.CanTransitionTo(next) {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// TotalOf computes Σ quantity × unit price and validates the items. Totals
// that do not fit in Money are rejected rather than wrapped.
func TotalOf(items []LineItem) (Money, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("%w: invoice must have at least one item", ErrValidation)
	}
	var total Money
	for i, it := range items {
		if it.Quantity <= 0 {
			return 0, fmt.Errorf("%w: item %d: quantity must be positive", ErrValidation, i)
		}
		if it.UnitPrice < 0 {
			return 0, fmt.Errorf("%w: item %d: unit price must not be negative", ErrValidation, i)
		}
		if it.UnitPrice > 0 && int64(it.Quantity) > math.MaxInt64/int64(it.UnitPrice) {
			return 0, fmt.Errorf("%w: item %d: amount is too large", ErrValidation, i)
		}
		amount := it.Amount()
		if total > math.MaxInt64-amount {
			return 0, fmt.Errorf("%w: invoice total is too large", ErrValidation)
		}
		total += amount
	}
	return total, nil
}

type LineItemInput struct {
	Description string
	Quantity    int
	UnitPrice   Money
}

type CreateInvoiceInput struct {
	MemberID string
	DueDate  *time.Time
	Notes    string
	Items    []LineItemInput
}

type RecordPaymentInput struct {
	InvoiceID string
	Amount    Money
	Method    string
	Reference string
}
