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

type DirectoryService struct {
	repo   ports.DirectoryRepo
	logger logger.Logger
}

func NewDirectoryService(repo ports.DirectoryRepo, logger logger.Logger) *DirectoryService {
	return &DirectoryService{
		repo:   repo,
		logger: logger,
	}
}

func validatePerson(first, last, email string) error {
	if strings.TrimSpace(first) == "" || strings.TrimSpace(last) == "" {
		return fmt.Errorf("%w: first_name and last_name are required", domain.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	return nil
}

func (s *DirectoryService) CreateMember(ctx context.Context, p domain.Principal, input domain.CreateMemberInput) (*domain.Member, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if err := validatePerson(input.FirstName, input.LastName, input.Email); err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:             uuid.New().String(),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:          input.Phone,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	s.logger.Info("member created", logger.String("member_id", member.ID))

	return member, nil
}

func (s *DirectoryService) CreateTrainer(ctx context.Context, p domain.Principal, input domain.CreateTrainerInput) (*domain.Trainer, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if err := validatePerson(input.FirstName, input.LastName, input.Email); err != nil {
		return nil, err
	}

	trainer := &domain.Trainer{
		ID:            uuid.New().String(),
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Certification: input.Certification,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.CreateTrainer(ctx, trainer); err != nil {
		return nil, fmt.Errorf("create trainer: %w", err)
	}

	s.logger.Info("trainer created", logger.String("trainer_id", trainer.ID))

	return trainer, nil
}

func (s *DirectoryService) CreateRoom(ctx context.Context, p domain.Principal, input domain.CreateRoomInput) (*domain.Room, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	room := &domain.Room{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		Capacity:  input.Capacity,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room created",
		logger.String("room_id", room.ID),
		logger.Int("capacity", room.Capacity),
	)

	return room, nil
}

// GetMember is open to staff and to the member themselves.
func (s *DirectoryService) GetMember(ctx context.Context, p domain.Principal, id string) (*domain.Member, error) {
	if requireStaff(p) != nil && !p.IsMember(id) {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetMember(ctx, id)
}

func (s *DirectoryService) SearchMembers(ctx context.Context, p domain.Principal, name string) ([]*domain.Member, error) {
	if err := requireStaff(p); err != nil {
		return nil, err
	}
	return s.repo.SearchMembers(ctx, strings.TrimSpace(name))
}

func (s *DirectoryService) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	return s.repo.GetTrainer(ctx, id)
}

func (s *DirectoryService) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	return s.repo.ListTrainers(ctx)
}

func (s *DirectoryService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *DirectoryService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.ListRooms(ctx)
}
