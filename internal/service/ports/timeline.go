package ports

import (
	"context"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

// TimelineRepo owns availability slots and PT sessions. Mutations lock the
// trainer's timeline.
type TimelineRepo interface {
	AddSlot(ctx context.Context, slot *domain.AvailabilitySlot) error
	GetSlot(ctx context.Context, id string) (*domain.AvailabilitySlot, error)
	DeleteSlot(ctx context.Context, trainerID, slotID string) error
	ListSlots(ctx context.Context, trainerID string) ([]*domain.AvailabilitySlot, error)
	Book(ctx context.Context, s *domain.PTSession) error
	GetSession(ctx context.Context, id string) (*domain.PTSession, error)
	TransitionSession(ctx context.Context, id string, to domain.SessionStatus) (*domain.PTSession, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.PTSession, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]*domain.PTSession, error)
	CompletePast(ctx context.Context, now time.Time) (int, error)
}
