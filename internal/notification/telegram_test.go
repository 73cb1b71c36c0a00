package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestPaymentRecordedText(t *testing.T) {
	inv := &domain.Invoice{
		TotalAmount: 10000,
		Status:      domain.InvoiceStatusPartial,
		Payments:    []domain.Payment{{Amount: 6000}},
	}

	text := paymentRecordedText(inv, &domain.Payment{Amount: 6000})

	assert.Contains(t, text, "Amount: 60.00")
	assert.Contains(t, text, "Invoice total: 100.00")
	assert.Contains(t, text, "Remaining: 40.00")
	assert.Contains(t, text, "Status: PARTIAL")
}

func TestPTBookedText(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC)
	s := &domain.PTSession{StartsAt: start, EndsAt: start.Add(30 * time.Minute)}

	text := ptBookedText(s)

	assert.Contains(t, text, "Type: personal training")
	assert.Contains(t, text, "02.03.2026 09:15 - 09:45")
}

func TestClassCancelledText(t *testing.T) {
	c := &domain.ClassSession{Name: "Spin", StartsAt: time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)}

	assert.Contains(t, classCancelledText(c), "Class: Spin")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	assert.NotPanics(t, func() {
		n.NotifyClassCancelled(context.Background(), &domain.Member{TelegramChatID: &chatID}, &domain.ClassSession{Name: "Yoga"})
	})
}
