package memory

import (
	"context"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

type ClassRepo struct {
	s *Store
}

func NewClassRepo(s *Store) *ClassRepo {
	return &ClassRepo{s: s}
}

// Create places the class on its trainer's timeline; the trainer lock is the
// same one PT bookings take.
func (r *ClassRepo) Create(_ context.Context, c *domain.ClassSession) error {
	unlock := r.s.locks.Lock(trainerKey(c.TrainerID))
	defer unlock()

	r.s.mu.RLock()
	roomID := c.RoomID
	snap := r.s.snapshot(c.TrainerID, &roomID, "")
	r.s.mu.RUnlock()

	if err := domain.CheckClassPlacement(c, snap); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *c
	cp.EnrolledCount = 0
	r.s.classes[c.ID] = &cp
	r.s.enrollments[c.ID] = make(map[string]domain.Enrollment)
	return nil
}

func (r *ClassRepo) GetByID(_ context.Context, id string) (*domain.ClassSession, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.classes[id]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	return r.s.classView(c), nil
}

func (r *ClassRepo) Enroll(_ context.Context, e *domain.Enrollment) (*domain.ClassSession, error) {
	unlock := r.s.locks.Lock(classKey(e.ClassID))
	defer unlock()

	r.s.mu.RLock()
	c, ok := r.s.classes[e.ClassID]
	if !ok {
		r.s.mu.RUnlock()
		return nil, domain.ErrClassNotFound
	}
	view := r.s.classView(c)
	_, already := r.s.enrollments[e.ClassID][e.MemberID]
	r.s.mu.RUnlock()

	if err := view.CheckEnroll(already); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.enrollments[e.ClassID][e.MemberID] = *e
	return r.s.classView(r.s.classes[e.ClassID]), nil
}

func (r *ClassRepo) Unenroll(_ context.Context, classID, memberID string) (*domain.ClassSession, error) {
	unlock := r.s.locks.Lock(classKey(classID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.classes[classID]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	if _, enrolled := r.s.enrollments[classID][memberID]; !enrolled {
		return nil, domain.ErrNotEnrolled
	}
	delete(r.s.enrollments[classID], memberID)
	return r.s.classView(c), nil
}

func (r *ClassRepo) Transition(_ context.Context, classID string, to domain.SessionStatus) (*domain.ClassSession, error) {
	unlock := r.s.locks.Lock(classKey(classID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.classes[classID]
	if !ok {
		return nil, domain.ErrClassNotFound
	}
	if !c.Status.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	return r.s.classView(c), nil
}

func (r *ClassRepo) ListEnrolledMembers(_ context.Context, classID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.classes[classID]; !ok {
		return nil, domain.ErrClassNotFound
	}
	res := make([]string, 0, len(r.s.enrollments[classID]))
	for memberID := range r.s.enrollments[classID] {
		res = append(res, memberID)
	}
	return res, nil
}

func (r *ClassRepo) ListAvailable(_ context.Context, now time.Time) ([]*domain.ClassListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ClassListing, 0)
	for _, c := range r.s.classes {
		if c.Status != domain.SessionStatusScheduled || !c.StartsAt.After(now) {
			continue
		}
		if len(r.s.enrollments[c.ID]) >= c.Capacity {
			continue
		}
		res = append(res, r.s.listing(c))
	}
	sortListings(res)
	return res, nil
}

func (r *ClassRepo) ListByMember(_ context.Context, memberID string) ([]*domain.ClassListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ClassListing, 0)
	for classID, members := range r.s.enrollments {
		if _, ok := members[memberID]; ok {
			res = append(res, r.s.listing(r.s.classes[classID]))
		}
	}
	sortListings(res)
	return res, nil
}

func (r *ClassRepo) ListByTrainer(_ context.Context, trainerID string) ([]*domain.ClassListing, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.ClassListing, 0)
	for _, c := range r.s.classes {
		if c.TrainerID == trainerID {
			res = append(res, r.s.listing(c))
		}
	}
	sortListings(res)
	return res, nil
}

func (r *ClassRepo) CompletePast(ctx context.Context, now time.Time) (int, error) {
	r.s.mu.RLock()
	var due []string
	for _, c := range r.s.classes {
		if c.Status == domain.SessionStatusScheduled && !c.EndsAt().After(now) {
			due = append(due, c.ID)
		}
	}
	r.s.mu.RUnlock()

	completed := 0
	for _, id := range due {
		if _, err := r.Transition(ctx, id, domain.SessionStatusCompleted); err == nil {
			completed++
		}
	}
	return completed, nil
}
