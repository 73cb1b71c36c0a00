package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/stpnv0/GymOps/internal/domain"
)

type DirectoryRepo struct {
	s *Store
}

func NewDirectoryRepo(s *Store) *DirectoryRepo {
	return &DirectoryRepo{s: s}
}

func (r *DirectoryRepo) CreateMember(_ context.Context, m *domain.Member) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.members {
		if strings.EqualFold(other.Email, m.Email) {
			return fmt.Errorf("%w: email is already registered", domain.ErrValidation)
		}
	}
	cp := *m
	r.s.members[m.ID] = &cp
	return nil
}

func (r *DirectoryRepo) GetMember(_ context.Context, id string) (*domain.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *DirectoryRepo) SearchMembers(_ context.Context, name string) ([]*domain.Member, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	needle := strings.ToLower(name)
	res := make([]*domain.Member, 0)
	for _, m := range r.s.members {
		if strings.Contains(strings.ToLower(m.FirstName), needle) ||
			strings.Contains(strings.ToLower(m.LastName), needle) {
			cp := *m
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].LastName < res[j].LastName })
	return res, nil
}

func (r *DirectoryRepo) CreateTrainer(_ context.Context, t *domain.Trainer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.trainers {
		if strings.EqualFold(other.Email, t.Email) {
			return fmt.Errorf("%w: email is already registered", domain.ErrValidation)
		}
	}
	cp := *t
	r.s.trainers[t.ID] = &cp
	return nil
}

func (r *DirectoryRepo) GetTrainer(_ context.Context, id string) (*domain.Trainer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.trainers[id]
	if !ok {
		return nil, domain.ErrTrainerNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *DirectoryRepo) ListTrainers(_ context.Context) ([]*domain.Trainer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Trainer, 0, len(r.s.trainers))
	for _, t := range r.s.trainers {
		cp := *t
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].LastName < res[j].LastName })
	return res, nil
}

func (r *DirectoryRepo) CreateRoom(_ context.Context, room *domain.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, other := range r.s.rooms {
		if strings.EqualFold(other.Name, room.Name) {
			return fmt.Errorf("%w: room name is already taken", domain.ErrValidation)
		}
	}
	cp := *room
	r.s.rooms[room.ID] = &cp
	return nil
}

func (r *DirectoryRepo) GetRoom(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, domain.ErrRoomNotFound
	}
	cp := *room
	return &cp, nil
}

func (r *DirectoryRepo) ListRooms(_ context.Context) ([]*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Room, 0, len(r.s.rooms))
	for _, room := range r.s.rooms {
		cp := *room
		res = append(res, &cp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}
