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

type ScheduleService struct {
	classRepo    ports.ClassRepo
	timelineRepo ports.TimelineRepo
	directory    ports.DirectoryRepo
	notifier     ports.MemberNotifier
	logger       logger.Logger
}

func NewScheduleService(
	classRepo ports.ClassRepo,
	timelineRepo ports.TimelineRepo,
	directory ports.DirectoryRepo,
	notifier ports.MemberNotifier,
	logger logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		classRepo:    classRepo,
		timelineRepo: timelineRepo,
		directory:    directory,
		notifier:     notifier,
		logger:       logger,
	}
}

// --- Classes ---

func (s *ScheduleService) CreateClass(ctx context.Context, p domain.Principal, input domain.CreateClassInput) (*domain.ClassSession, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.Duration < 0 {
		return nil, fmt.Errorf("%w: duration must be positive", domain.ErrValidation)
	}

	if _, err := s.directory.GetTrainer(ctx, input.TrainerID); err != nil {
		return nil, fmt.Errorf("check trainer: %w", err)
	}
	room, err := s.directory.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("check room: %w", err)
	}
	if input.Capacity > room.Capacity {
		return nil, fmt.Errorf("%w: capacity exceeds room capacity of %d", domain.ErrValidation, room.Capacity)
	}

	duration := input.Duration
	if duration == 0 {
		duration = domain.DefaultClassDuration
	}

	now := time.Now().UTC()
	class := &domain.ClassSession{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(input.Name),
		TrainerID: input.TrainerID,
		RoomID:    input.RoomID,
		StartsAt:  input.StartsAt.UTC(),
		Duration:  duration,
		Capacity:  input.Capacity,
		Status:    domain.SessionStatusScheduled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.classRepo.Create(ctx, class); err != nil {
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.logger.Info("class created",
		logger.String("class_id", class.ID),
		logger.String("trainer_id", class.TrainerID),
		logger.String("room_id", class.RoomID),
		logger.Int("capacity", class.Capacity),
	)

	return class, nil
}

func (s *ScheduleService) GetClass(ctx context.Context, id string) (*domain.ClassSession, error) {
	return s.classRepo.GetByID(ctx, id)
}

func (s *ScheduleService) EnrollMember(ctx context.Context, p domain.Principal, memberID, classID string) (*domain.ClassSession, error) {
	if err := requireMember(p, memberID); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetMember(ctx, memberID); err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	class, err := s.classRepo.Enroll(ctx, &domain.Enrollment{
		MemberID:  memberID,
		ClassID:   classID,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("enroll: %w", err)
	}

	s.logger.Info("member enrolled",
		logger.String("class_id", classID),
		logger.String("member_id", memberID),
		logger.Int("enrolled", class.EnrolledCount),
		logger.Int("capacity", class.Capacity),
	)

	return class, nil
}

// UnenrollMember is allowed in any class status so members can withdraw from
// cancelled classes.
func (s *ScheduleService) UnenrollMember(ctx context.Context, p domain.Principal, memberID, classID string) (*domain.ClassSession, error) {
	if err := requireMember(p, memberID); err != nil {
		return nil, err
	}

	class, err := s.classRepo.Unenroll(ctx, classID, memberID)
	if err != nil {
		return nil, fmt.Errorf("unenroll: %w", err)
	}

	s.logger.Info("member unenrolled",
		logger.String("class_id", classID),
		logger.String("member_id", memberID),
	)

	return class, nil
}

func (s *ScheduleService) CancelClass(ctx context.Context, p domain.Principal, classID string) (*domain.ClassSession, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	class, err := s.classRepo.Transition(ctx, classID, domain.SessionStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel class: %w", err)
	}

	s.logger.Info("class cancelled", logger.String("class_id", classID))

	go s.notifyClassCancelled(context.WithoutCancel(ctx), class)

	return class, nil
}

func (s *ScheduleService) CompleteClass(ctx context.Context, p domain.Principal, classID string) (*domain.ClassSession, error) {
	if err := requireAdmin(p); err != nil {
		return nil, err
	}

	class, err := s.classRepo.Transition(ctx, classID, domain.SessionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("complete class: %w", err)
	}

	s.logger.Info("class completed", logger.String("class_id", classID))

	return class, nil
}

func (s *ScheduleService) notifyClassCancelled(ctx context.Context, class *domain.ClassSession) {
	memberIDs, err := s.classRepo.ListEnrolledMembers(ctx, class.ID)
	if err != nil {
		s.logger.Error("failed to list enrolled members for cancel notification",
			logger.String("class_id", class.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, id := range memberIDs {
		member, err := s.directory.GetMember(ctx, id)
		if err != nil {
			s.logger.Error("failed to get member for cancel notification",
				logger.String("member_id", id),
			)
			continue
		}
		s.notifier.NotifyClassCancelled(ctx, member, class)
	}
}

func (s *ScheduleService) ListAvailableClasses(ctx context.Context) ([]*domain.ClassListing, error) {
	return s.classRepo.ListAvailable(ctx, time.Now().UTC())
}

func (s *ScheduleService) ListMemberClasses(ctx context.Context, p domain.Principal, memberID string) ([]*domain.ClassListing, error) {
	if err := requireMember(p, memberID); err != nil {
		return nil, err
	}
	return s.classRepo.ListByMember(ctx, memberID)
}

func (s *ScheduleService) ListTrainerClasses(ctx context.Context, trainerID string) ([]*domain.ClassListing, error) {
	return s.classRepo.ListByTrainer(ctx, trainerID)
}

// --- Trainer availability ---

func (s *ScheduleService) DefineAvailability(ctx context.Context, p domain.Principal, input domain.DefineAvailabilityInput) (*domain.AvailabilitySlot, error) {
	if err := requireTrainer(p, input.TrainerID); err != nil {
		return nil, err
	}
	if _, err := s.directory.GetTrainer(ctx, input.TrainerID); err != nil {
		return nil, fmt.Errorf("check trainer: %w", err)
	}

	slot := &domain.AvailabilitySlot{
		ID:        uuid.New().String(),
		TrainerID: input.TrainerID,
		StartsAt:  input.StartsAt.UTC(),
		EndsAt:    input.EndsAt.UTC(),
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.timelineRepo.AddSlot(ctx, slot); err != nil {
		return nil, fmt.Errorf("define availability: %w", err)
	}

	s.logger.Info("availability defined",
		logger.String("slot_id", slot.ID),
		logger.String("trainer_id", slot.TrainerID),
	)

	return slot, nil
}

func (s *ScheduleService) DeleteAvailability(ctx context.Context, p domain.Principal, trainerID, slotID string) error {
	if err := requireTrainer(p, trainerID); err != nil {
		return err
	}

	if err := s.timelineRepo.DeleteSlot(ctx, trainerID, slotID); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}

	s.logger.Info("availability deleted",
		logger.String("slot_id", slotID),
		logger.String("trainer_id", trainerID),
	)

	return nil
}

func (s *ScheduleService) ListAvailability(ctx context.Context, trainerID string) ([]*domain.AvailabilitySlot, error) {
	return s.timelineRepo.ListSlots(ctx, trainerID)
}

// --- Personal training ---

func (s *ScheduleService) BookPTSession(ctx context.Context, p domain.Principal, input domain.BookPTSessionInput) (*domain.PTSession, error) {
	if err := requireMember(p, input.MemberID); err != nil {
		return nil, err
	}

	member, err := s.directory.GetMember(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}
	if _, err = s.directory.GetTrainer(ctx, input.TrainerID); err != nil {
		return nil, fmt.Errorf("check trainer: %w", err)
	}
	if input.RoomID != nil {
		if _, err = s.directory.GetRoom(ctx, *input.RoomID); err != nil {
			return nil, fmt.Errorf("check room: %w", err)
		}
	}

	now := time.Now().UTC()
	session := &domain.PTSession{
		ID:          uuid.New().String(),
		MemberID:    input.MemberID,
		TrainerID:   input.TrainerID,
		RoomID:      input.RoomID,
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      input.EndsAt.UTC(),
		SessionType: input.SessionType,
		Notes:       input.Notes,
		Status:      domain.SessionStatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = s.timelineRepo.Book(ctx, session); err != nil {
		return nil, fmt.Errorf("book pt session: %w", err)
	}

	s.logger.Info("pt session booked",
		logger.String("session_id", session.ID),
		logger.String("member_id", session.MemberID),
		logger.String("trainer_id", session.TrainerID),
	)

	go s.notifier.NotifyPTSessionBooked(context.WithoutCancel(ctx), member, session)

	return session, nil
}

// CancelPTSession is open to the booking member, the session's trainer and admin.
func (s *ScheduleService) CancelPTSession(ctx context.Context, p domain.Principal, sessionID string) (*domain.PTSession, error) {
	current, err := s.timelineRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.IsMember(current.MemberID) && !p.IsTrainer(current.TrainerID) {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.timelineRepo.TransitionSession(ctx, sessionID, domain.SessionStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("cancel pt session: %w", err)
	}

	s.logger.Info("pt session cancelled",
		logger.String("session_id", session.ID),
		logger.String("cancelled_by", string(p.Role)),
	)

	member, err := s.directory.GetMember(ctx, session.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", session.MemberID),
			logger.String("error", err.Error()),
		)
		return session, nil
	}

	go s.notifier.NotifyPTSessionCancelled(context.WithoutCancel(ctx), member, session)

	return session, nil
}

func (s *ScheduleService) GetPTSession(ctx context.Context, p domain.Principal, sessionID string) (*domain.PTSession, error) {
	session, err := s.timelineRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.IsMember(session.MemberID) && !p.IsTrainer(session.TrainerID) {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

func (s *ScheduleService) ListMemberPTSessions(ctx context.Context, p domain.Principal, memberID string) ([]*domain.PTSession, error) {
	if err := requireMember(p, memberID); err != nil {
		return nil, err
	}
	return s.timelineRepo.ListByMember(ctx, memberID)
}

func (s *ScheduleService) ListTrainerPTSessions(ctx context.Context, p domain.Principal, trainerID string) ([]*domain.PTSession, error) {
	if err := requireTrainer(p, trainerID); err != nil {
		return nil, err
	}
	return s.timelineRepo.ListByTrainer(ctx, trainerID)
}

// CompletePast moves classes and PT sessions that ended before now to COMPLETED.
func (s *ScheduleService) CompletePast(ctx context.Context, now time.Time) (int, error) {
	classes, err := s.classRepo.CompletePast(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("complete past classes: %w", err)
	}

	sessions, err := s.timelineRepo.CompletePast(ctx, now)
	if err != nil {
		return classes, fmt.Errorf("complete past pt sessions: %w", err)
	}

	if classes+sessions > 0 {
		s.logger.Info("past sessions completed",
			logger.Int("classes", classes),
			logger.Int("pt_sessions", sessions),
		)
	}

	return classes + sessions, nil
}
