package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "100.00", Money(10000).String())
	assert.Equal(t, "0.05", Money(5).String())
	assert.Equal(t, "-12.30", Money(-1230).String())
}

func TestTotalOf(t *testing.T) {
	total, err := TotalOf([]LineItem{
		{Description: "Pass", Quantity: 2, UnitPrice: 2500},
		{Description: "Towel", Quantity: 1, UnitPrice: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, Money(5000), total)

	_, err = TotalOf(nil)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = TotalOf([]LineItem{{Quantity: 0, UnitPrice: 1}})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = TotalOf([]LineItem{{Quantity: 1, UnitPrice: -1}})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTotalOf_RejectsOverflow(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
	}{
		{name: "line amount", items: []LineItem{{Quantity: 2, UnitPrice: math.MaxInt64/2 + 1}}},
		{name: "running sum", items: []LineItem{
			{Quantity: 1, UnitPrice: math.MaxInt64 - 5},
			{Quantity: 1, UnitPrice: 10},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TotalOf(tt.items)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	total, err := TotalOf([]LineItem{{Quantity: 1, UnitPrice: math.MaxInt64}})
	require.NoError(t, err)
	assert.Equal(t, Money(math.MaxInt64), total)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, InvoiceStatusPending, StatusFor(0, 10000))
	assert.Equal(t, InvoiceStatusPartial, StatusFor(6000, 10000))
	assert.Equal(t, InvoiceStatusPaid, StatusFor(10000, 10000))
	assert.Equal(t, InvoiceStatusPaid, StatusFor(0, 0))
}

func TestInvoice_ApplyPayment(t *testing.T) {
	inv := &Invoice{TotalAmount: 10000, Status: InvoiceStatusPending}

	tests := []struct {
		name    string
		status  InvoiceStatus
		paid    Money
		amount  Money
		want    InvoiceStatus
		wantErr error
	}{
		{name: "first partial", status: InvoiceStatusPending, paid: 0, amount: 6000, want: InvoiceStatusPartial},
		{name: "settles", status: InvoiceStatusPartial, paid: 6000, amount: 4000, want: InvoiceStatusPaid},
		{name: "overpays", status: InvoiceStatusPartial, paid: 6000, amount: 4100, wantErr: ErrOverpayment},
		{name: "zero", status: InvoiceStatusPending, paid: 0, amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative", status: InvoiceStatusPending, paid: 0, amount: -5, wantErr: ErrInvalidAmount},
		{name: "already paid", status: InvoiceStatusPaid, paid: 10000, amount: 1, wantErr: ErrOverpayment},
		{name: "huge amount", status: InvoiceStatusPartial, paid: 6000, amount: math.MaxInt64 - 10, wantErr: ErrOverpayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv.Status = tt.status
			got, err := inv.ApplyPayment(tt.paid, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvoice_Remaining(t *testing.T) {
	inv := &Invoice{TotalAmount: 10000, Payments: []Payment{{Amount: 6000}, {Amount: 1500}}}

	assert.Equal(t, Money(7500), inv.Paid())
	assert.Equal(t, Money(2500), inv.Remaining())
}

func TestInvoiceStatus_Transitions(t *testing.T) {
	assert.True(t, InvoiceStatusPending.CanTransitionTo(InvoiceStatusPartial))
	assert.True(t, InvoiceStatusPartial.CanTransitionTo(InvoiceStatusPartial))
	assert.True(t, InvoiceStatusPartial.CanTransitionTo(InvoiceStatusPaid))
	assert.False(t, InvoiceStatusPaid.CanTransitionTo(InvoiceStatusPartial))
	assert.False(t, InvoiceStatusPartial.CanTransitionTo(InvoiceStatusPending))
}
