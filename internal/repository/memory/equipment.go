package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

type EquipmentRepo struct {
	s *Store
}

func NewEquipmentRepo(s *Store) *EquipmentRepo {
	return &EquipmentRepo{s: s}
}

func (r *EquipmentRepo) Create(_ context.Context, e *domain.Equipment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp := *e
	r.s.equipment[e.ID] = &cp
	return nil
}

func (r *EquipmentRepo) GetByID(_ context.Context, id string) (*domain.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.equipment[id]
	if !ok {
		return nil, domain.ErrEquipmentNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EquipmentRepo) List(_ context.Context, roomID string) ([]*domain.Equipment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Equipment, 0)
	for _, e := range r.s.equipment {
		if roomID == "" || e.RoomID == roomID {
			cp := *e
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}

func (r *EquipmentRepo) GetLog(_ context.Context, logID string) (*domain.MaintenanceLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.logs[logID]
	if !ok {
		return nil, domain.ErrMaintenanceNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *EquipmentRepo) ListLogs(_ context.Context, equipmentID string) ([]*domain.MaintenanceLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.MaintenanceLog, 0)
	for _, l := range r.s.logs {
		if l.EquipmentID == equipmentID {
			cp := *l
			res = append(res, &cp)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.Before(res[j].CreatedAt) })
	return res, nil
}

func (r *EquipmentRepo) OpenLog(_ context.Context, log *domain.MaintenanceLog) (*domain.Equipment, error) {
	unlock := r.s.locks.Lock(equipmentKey(log.EquipmentID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.equipment[log.EquipmentID]
	if !ok {
		return nil, domain.ErrEquipmentNotFound
	}
	if err := e.CheckLogMaintenance(r.openLog(e.ID)); err != nil {
		return nil, err
	}

	cp := *log
	r.s.logs[log.ID] = &cp
	e.Status = domain.EquipmentMaintenanceRequested
	e.UpdatedAt = time.Now().UTC()

	out := *e
	return &out, nil
}

func (r *EquipmentRepo) StartRepair(_ context.Context, equipmentID string) (*domain.Equipment, error) {
	unlock := r.s.locks.Lock(equipmentKey(equipmentID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.equipment[equipmentID]
	if !ok {
		return nil, domain.ErrEquipmentNotFound
	}
	if err := e.CheckStartRepair(r.openLog(e.ID)); err != nil {
		return nil, err
	}

	e.Status = domain.EquipmentUnderRepair
	e.UpdatedAt = time.Now().UTC()

	out := *e
	return &out, nil
}

func (r *EquipmentRepo) Resolve(ctx context.Context, logID, notes string) (*domain.MaintenanceLog, *domain.Equipment, error) {
	found, err := r.GetLog(ctx, logID)
	if err != nil {
		return nil, nil, err
	}

	unlock := r.s.locks.Lock(equipmentKey(found.EquipmentID))
	defer unlock()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l := r.s.logs[logID]
	e, ok := r.s.equipment[l.EquipmentID]
	if !ok {
		return nil, nil, domain.ErrEquipmentNotFound
	}
	if err := e.CheckResolve(l); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	l.Status = domain.MaintenanceResolved
	l.ResolvedAt = &now
	l.ResolutionNotes = notes
	e.Status = domain.EquipmentOperational
	e.UpdatedAt = now

	outLog, outEq := *l, *e
	return &outLog, &outEq, nil
}

// openLog returns the OPEN log of an equipment. Caller holds s.mu.
func (r *EquipmentRepo) openLog(equipmentID string) *domain.MaintenanceLog {
	for _, l := range r.s.logs {
		if l.EquipmentID == equipmentID && l.Status == domain.MaintenanceOpen {
			return l
		}
	}
	return nil
}
