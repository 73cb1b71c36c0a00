package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

// TimelineRepo serializes every mutation of one trainer's timeline. Room and
// member timelines are checked but not locked on their own.
type TimelineRepo struct {
	s *Store
}

func NewTimelineRepo(s *Store) *TimelineRepo {
	return &TimelineRepo{s: s}
}

func (r *TimelineRepo) AddSlot(_ context.Context, slot *domain.AvailabilitySlot) error {
	unlock := r.s.locks.Lock(trainerKey(slot.TrainerID))
	defer unlock()

	r.s.mu.RLock()
	snap := r.s.snapshot(slot.TrainerID, nil, "")
	r.s.mu.RUnlock()

	if err := domain.CheckNewSlot(slot, snap.TrainerSlots); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *slot
	r.s.slots[slot.ID] = &cp
	return nil
}

func (r *TimelineRepo) GetSlot(_ context.Context, id string) (*domain.AvailabilitySlot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	slot, ok := r.s.slots[id]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	cp := *slot
	return &cp, nil
}

func (r *TimelineRepo) DeleteSlot(_ context.Context, trainerID, slotID string) error {
	unlock := r.s.locks.Lock(trainerKey(trainerID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	slot, ok := r.s.slots[slotID]
	if !ok || slot.TrainerID != trainerID {
		return domain.ErrSlotNotFound
	}
	if err := domain.CheckSlotRemoval(slot, r.s.snapshot(trainerID, nil, "").TrainerSessions); err != nil {
		return err
	}
	delete(r.s.slots, slotID)
	return nil
}

func (r *TimelineRepo) ListSlots(_ context.Context, trainerID string) ([]*domain.AvailabilitySlot, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.AvailabilitySlot, 0)
	for _, slot := range r.s.slots {
		if slot.TrainerID == trainerID {
			cp := *slot
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartsAt.Before(res[j].StartsAt) })
	return res, nil
}

// Book serializes on the trainer only. Room and member timelines are checked
// against the snapshot but not locked, so two concurrent bookings of one
// member with different trainers can both pass the member check.
func (r *TimelineRepo) Book(_ context.Context, sess *domain.PTSession) error {
	unlock := r.s.locks.Lock(trainerKey(sess.TrainerID))
	defer unlock()

	r.s.mu.RLock()
	snap := r.s.snapshot(sess.TrainerID, sess.RoomID, sess.MemberID)
	r.s.mu.RUnlock()

	if err := domain.CheckPTBooking(sess, snap); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.sessions[sess.ID] = copySession(sess)
	return nil
}

func (r *TimelineRepo) GetSession(_ context.Context, id string) (*domain.PTSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sess, ok := r.s.sessions[id]
	if !ok {
		return nil, domain.ErrPTSessionNotFound
	}
	return copySession(sess), nil
}

func (r *TimelineRepo) TransitionSession(ctx context.Context, id string, to domain.SessionStatus) (*domain.PTSession, error) {
	current, err := r.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := r.s.locks.Lock(trainerKey(current.TrainerID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sess := r.s.sessions[id]
	if !sess.Status.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}
	sess.Status = to
	sess.UpdatedAt = time.Now().UTC()
	return copySession(sess), nil
}

func (r *TimelineRepo) ListByMember(_ context.Context, memberID string) ([]*domain.PTSession, error) {
	return r.filter(func(s *domain.PTSession) bool { return s.MemberID == memberID }), nil
}

func (r *TimelineRepo) ListByTrainer(_ context.Context, trainerID string) ([]*domain.PTSession, error) {
	return r.filter(func(s *domain.PTSession) bool { return s.TrainerID == trainerID }), nil
}

func (r *TimelineRepo) CompletePast(ctx context.Context, now time.Time) (int, error) {
	due := r.filter(func(s *domain.PTSession) bool {
		return s.Status == domain.SessionStatusScheduled && !s.EndsAt.After(now)
	})

	completed := 0
	for _, s := range due {
		if _, err := r.TransitionSession(ctx, s.ID, domain.SessionStatusCompleted); err == nil {
			completed++
		}
	}
	return completed, nil
}

func (r *TimelineRepo) filter(keep func(*domain.PTSession) bool) []*domain.PTSession {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.PTSession, 0)
	for _, sess := range r.s.sessions {
		if keep(sess) {
			res = append(res, copySession(sess))
		}
	}
	sortSessions(res)
	return res
}
