package ports

import (
	"context"

	"github.com/stpnv0/GymOps/internal/domain"
)

type EquipmentRepo interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context, roomID string) ([]*domain.Equipment, error)
	GetLog(ctx context.Context, logID string) (*domain.MaintenanceLog, error)
	ListLogs(ctx context.Context, equipmentID string) ([]*domain.MaintenanceLog, error)
	OpenLog(ctx context.Context, log *domain.MaintenanceLog) (*domain.Equipment, error)
	StartRepair(ctx context.Context, equipmentID string) (*domain.Equipment, error)
	Resolve(ctx context.Context, logID, notes string) (*domain.MaintenanceLog, *domain.Equipment, error)
}
