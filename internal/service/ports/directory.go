package ports

import (
	"context"

	"github.com/stpnv0/GymOps/internal/domain"
)

type DirectoryRepo interface {
	CreateMember(ctx context.Context, m *domain.Member) error
	GetMember(ctx context.Context, id string) (*domain.Member, error)
	SearchMembers(ctx context.Context, name string) ([]*domain.Member, error)
	CreateTrainer(ctx context.Context, t *domain.Trainer) error
	GetTrainer(ctx context.Context, id string) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]*domain.Trainer, error)
	CreateRoom(ctx context.Context, r *domain.Room) error
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}
