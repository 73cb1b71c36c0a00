package ports

import (
	"context"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

// ClassRepo owns class sessions and enrollments. Create, Enroll, Unenroll and
// Transition each run as one atomic step on their unit of mutation.
type ClassRepo interface {
	Create(ctx context.Context, c *domain.ClassSession) error
	GetByID(ctx context.Context, id string) (*domain.ClassSession, error)
	Enroll(ctx context.Context, e *domain.Enrollment) (*domain.ClassSession, error)
	Unenroll(ctx context.Context, classID, memberID string) (*domain.ClassSession, error)
	Transition(ctx context.Context, classID string, to domain.SessionStatus) (*domain.ClassSession, error)
	ListEnrolledMembers(ctx context.Context, classID string) ([]string, error)
	ListAvailable(ctx context.Context, now time.Time) ([]*domain.ClassListing, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.ClassListing, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]*domain.ClassListing, error)
	CompletePast(ctx context.Context, now time.Time) (int, error)
}
