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

type AssetService struct {
	repo      ports.EquipmentRepo
	directory ports.DirectoryRepo
	logger    logger.Logger
}

func NewAssetService(repo ports.EquipmentRepo, directory ports.DirectoryRepo, logger logger.Logger) *AssetService {
	return &AssetService{
		repo:      repo,
		directory: directory,
		logger:    logger,
	}
}

func (s *AssetService) CreateEquipment(ctx context.Context, p domain.Principal, input domain.CreateEquipmentInput) (*domain.Equipment, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, err := s.directory.GetRoom(ctx, input.RoomID); err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}

	now := time.Now().UTC()
	equipment := &domain.Equipment{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		RoomID:    input.RoomID,
		Status:    domain.EquipmentOperational,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	s.logger.Info("equipment created",
		logger.String("equipment_id", equipment.ID),
		logger.String("room_id", equipment.RoomID),
	)

	return equipment, nil
}

func (s *AssetService) GetEquipment(ctx context.Context, id string) (*domain.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AssetService) ListEquipment(ctx context.Context, roomID string) ([]*domain.Equipment, error) {
	return s.repo.List(ctx, roomID)
}

func (s *AssetService) ListMaintenanceLogs(ctx context.Context, equipmentID string) ([]*domain.MaintenanceLog, error) {
	if _, err := s.repo.GetByID(ctx, equipmentID); err != nil {
		return nil, err
	}
	return s.repo.ListLogs(ctx, equipmentID)
}

// LogMaintenance may be reported by any authenticated role.
func (s *AssetService) LogMaintenance(ctx context.Context, p domain.Principal, equipmentID, issue string) (*domain.MaintenanceLog, *domain.Equipment, error) {
	if !p.Role.Valid() {
		return nil, nil, domain.ErrUnauthorized
	}
	if strings.TrimSpace(issue) == "" {
		return nil, nil, fmt.Errorf("%w: issue_description is required", domain.ErrValidation)
	}

	log := &domain.MaintenanceLog{
		ID:               uuid.New().String(),
		EquipmentID:      equipmentID,
		IssueDescription: strings.TrimSpace(issue),
		Status:           domain.MaintenanceOpen,
		ReportedBy:       string(p.Role) + ":" + p.SubjectID,
		CreatedAt:        time.Now().UTC(),
	}
	equipment, err := s.repo.OpenLog(ctx, log)
	if err != nil {
		return nil, nil, fmt.Errorf("log maintenance: %w", err)
	}

	s.logger.Info("maintenance logged",
		logger.String("log_id", log.ID),
		logger.String("equipment_id", equipmentID),
		logger.String("status", string(equipment.Status)),
	)

	return log, equipment, nil
}

func (s *AssetService) StartRepair(ctx context.Context, p domain.Principal, equipmentID string) (*domain.Equipment, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	equipment, err := s.repo.StartRepair(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("start repair: %w", err)
	}

	s.logger.Info("repair started", logger.String("equipment_id", equipmentID))

	return equipment, nil
}

func (s *AssetService) ResolveMaintenance(ctx context.Context, p domain.Principal, logID, notes string) (*domain.MaintenanceLog, *domain.Equipment, error) {
	if err := requireAdmin(p); err != nil {
		return nil, nil, err
	}

	log, equipment, err := s.repo.Resolve(ctx, logID, strings.TrimSpace(notes))
	if err != nil {
		return nil, nil, fmt.Errorf("resolve maintenance: %w", err)
	}

	s.logger.Info("maintenance resolved",
		logger.String("log_id", log.ID),
		logger.String("equipment_id", equipment.ID),
	)

	return log, equipment, nil
}
