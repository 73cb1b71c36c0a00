package ports

import (
	"context"

	"github.com/stpnv0/GymOps/internal/domain"
)

type MemberNotifier interface {
	NotifyPTSessionBooked(ctx context.Context, member *domain.Member, session *domain.PTSession)
	NotifyPTSessionCancelled(ctx context.Context, member *domain.Member, session *domain.PTSession)
	NotifyClassCancelled(ctx context.Context, member *domain.Member, class *domain.ClassSession)
	NotifyPaymentRecorded(ctx context.Context, member *domain.Member, invoice *domain.Invoice, payment *domain.Payment)
}
