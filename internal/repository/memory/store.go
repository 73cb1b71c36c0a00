// Package memory is an in-process implementation of the service ports. Maps
// are guarded by one RWMutex; read-then-write commands additionally hold a
// per-entity lock for their unit of mutation (class, trainer timeline,
// invoice, equipment), so commands on different entities do not serialize.
package memory

import (
	"sort"
	"sync"

	"github.com/stpnv0/GymOps/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	locks *keyedMutex

	members  map[string]*domain.Member
	trainers map[string]*domain.Trainer
	rooms    map[string]*domain.Room

	classes     map[string]*domain.ClassSession
	enrollments map[string]map[string]domain.Enrollment // class id -> member id

	slots    map[string]*domain.AvailabilitySlot
	sessions map[string]*domain.PTSession

	invoices map[string]*domain.Invoice
	payments map[string][]domain.Payment // invoice id -> append-only log

	equipment map[string]*domain.Equipment
	logs      map[string]*domain.MaintenanceLog
}

func NewStore() *Store {
	return &Store{
		locks:       newKeyedMutex(),
		members:     make(map[string]*domain.Member),
		trainers:    make(map[string]*domain.Trainer),
		rooms:       make(map[string]*domain.Room),
		classes:     make(map[string]*domain.ClassSession),
		enrollments: make(map[string]map[string]domain.Enrollment),
		slots:       make(map[string]*domain.AvailabilitySlot),
		sessions:    make(map[string]*domain.PTSession),
		invoices:    make(map[string]*domain.Invoice),
		payments:    make(map[string][]domain.Payment),
		equipment:   make(map[string]*domain.Equipment),
		logs:        make(map[string]*domain.MaintenanceLog),
	}
}

func classKey(id string) string     { return "class:" + id }
func trainerKey(id string) string   { return "trainer:" + id }
func invoiceKey(id string) string   { return "invoice:" + id }
func equipmentKey(id string) string { return "equipment:" + id }

// keyedMutex hands out one mutex per key and forgets it once nobody holds or
// waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyLock)}
}

func (k *keyedMutex) Lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

// classView copies a class and fills the enrollment projection. Caller holds s.mu.
func (s *Store) classView(c *domain.ClassSession) *domain.ClassSession {
	cp := *c
	cp.EnrolledCount = len(s.enrollments[c.ID])
	return &cp
}

// listing enriches a class with directory names. Caller holds s.mu.
func (s *Store) listing(c *domain.ClassSession) *domain.ClassListing {
	l := &domain.ClassListing{Class: *s.classView(c)}
	if t, ok := s.trainers[c.TrainerID]; ok {
		l.TrainerName = t.FullName()
	}
	if r, ok := s.rooms[c.RoomID]; ok {
		l.RoomName = r.Name
	}
	return l
}

// snapshot collects the scheduled timelines touching a trainer, a room and a
// member. Caller holds s.mu.
func (s *Store) snapshot(trainerID string, roomID *string, memberID string) domain.TimelineSnapshot {
	var snap domain.TimelineSnapshot

	for _, slot := range s.slots {
		if slot.TrainerID == trainerID {
			cp := *slot
			snap.TrainerSlots = append(snap.TrainerSlots, &cp)
		}
	}

	for _, sess := range s.sessions {
		if sess.Status != domain.SessionStatusScheduled {
			continue
		}
		cp := copySession(sess)
		if sess.TrainerID == trainerID {
			snap.TrainerSessions = append(snap.TrainerSessions, cp)
		}
		if roomID != nil && sess.RoomID != nil && *sess.RoomID == *roomID {
			snap.RoomSessions = append(snap.RoomSessions, cp)
		}
		if memberID != "" && sess.MemberID == memberID {
			snap.MemberSessions = append(snap.MemberSessions, cp)
		}
	}

	for _, c := range s.classes {
		if c.Status != domain.SessionStatusScheduled {
			continue
		}
		cp := *c
		if c.TrainerID == trainerID {
			snap.TrainerClasses = append(snap.TrainerClasses, &cp)
		}
		if roomID != nil && c.RoomID == *roomID {
			snap.RoomClasses = append(snap.RoomClasses, &cp)
		}
	}

	return snap
}

func copySession(sess *domain.PTSession) *domain.PTSession {
	cp := *sess
	if sess.RoomID != nil {
		room := *sess.RoomID
		cp.RoomID = &room
	}
	return &cp
}

func sortListings(res []*domain.ClassListing) {
	sort.Slice(res, func(i, j int) bool {
		return res[i].Class.StartsAt.Before(res[j].Class.StartsAt)
	})
}

func sortSessions(res []*domain.PTSession) {
	sort.Slice(res, func(i, j int) bool {
		return res[i].StartsAt.Before(res[j].StartsAt)
	})
}
