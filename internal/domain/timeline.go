package domain

import "time"

type AvailabilitySlot struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *AvailabilitySlot) Interval() Interval {
	return Interval{Start: s.StartsAt, End: s.EndsAt}
}

type PTSession struct {
	ID          string        `json:"id"`
	MemberID    string        `json:"member_id"`
	TrainerID   string        `json:"trainer_id"`
	RoomID      *string       `json:"room_id"`
	StartsAt    time.Time     `json:"starts_at"`
	EndsAt      time.Time     `json:"ends_at"`
	SessionType string        `json:"session_type"`
	Notes       string        `json:"notes"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (s *PTSession) Interval() Interval {
	return Interval{Start: s.StartsAt, End: s.EndsAt}
}

type DefineAvailabilityInput struct {
	TrainerID string
	StartsAt  time.Time
	EndsAt    time.Time
	Notes     string
}

type BookPTSessionInput struct {
	MemberID    string
	TrainerID   string
	RoomID      *string
	StartsAt    time.Time
	EndsAt      time.Time
	SessionType string
	Notes       string
}

// CheckNewSlot rejects an invalid range or an overlap with any of the
// trainer's existing slots.
func CheckNewSlot(slot *AvailabilitySlot, existing []*AvailabilitySlot) error {
	iv := slot.Interval()
	if !iv.Valid() {
		return ErrInvalidRange
	}
	for _, other := range existing {
		if other.ID != slot.ID && iv.Overlaps(other.Interval()) {
			return ErrSlotOverlap
		}
	}
	return nil
}

// CheckSlotRemoval rejects deleting a slot that still hosts a scheduled session.
func CheckSlotRemoval(slot *AvailabilitySlot, trainerSessions []*PTSession) error {
	for _, s := range trainerSessions {
		if s.Status == SessionStatusScheduled && s.Interval().Within(slot.Interval()) {
			return ErrSlotInUse
		}
	}
	return nil
}

// TimelineSnapshot is everything a booking is validated against, read under
// the trainer lock. Only SCHEDULED sessions and classes are expected, but the
// checks filter by status anyway.
type TimelineSnapshot struct {
	TrainerSlots    []*AvailabilitySlot
	TrainerSessions []*PTSession
	TrainerClasses  []*ClassSession
	RoomSessions    []*PTSession
	RoomClasses     []*ClassSession
	MemberSessions  []*PTSession
}

// CheckPTBooking applies the booking rules in order: range, trainer,
// availability, room, member. A request overlapping a booked session reports
// the conflict even when it also runs past the slot.
func CheckPTBooking(s *PTSession, snap TimelineSnapshot) error {
	iv := s.Interval()
	if !iv.Valid() {
		return ErrInvalidRange
	}

	if sessionsOverlap(iv, snap.TrainerSessions, s.ID) || classesOverlap(iv, snap.TrainerClasses) {
		return ErrTrainerConflict
	}

	covered := false
	for _, slot := range snap.TrainerSlots {
		if iv.Within(slot.Interval()) {
			covered = true
			break
		}
	}
	if !covered {
		return ErrOutsideAvailability
	}

	if s.RoomID != nil {
		if sessionsOverlap(iv, snap.RoomSessions, s.ID) || classesOverlap(iv, snap.RoomClasses) {
			return ErrRoomConflict
		}
	}

	if sessionsOverlap(iv, snap.MemberSessions, s.ID) {
		return ErrMemberConflict
	}

	return nil
}

// CheckClassPlacement validates a new class against its trainer's and room's
// scheduled timelines.
func CheckClassPlacement(c *ClassSession, snap TimelineSnapshot) error {
	iv := c.Interval()
	if !iv.Valid() {
		return ErrInvalidRange
	}
	if sessionsOverlap(iv, snap.TrainerSessions, "") || classesOverlap(iv, snap.TrainerClasses) {
		return ErrTrainerConflict
	}
	if sessionsOverlap(iv, snap.RoomSessions, "") || classesOverlap(iv, snap.RoomClasses) {
		return ErrRoomConflict
	}
	return nil
}

func sessionsOverlap(iv Interval, sessions []*PTSession, skipID string) bool {
	for _, o := range sessions {
		if o.ID == skipID || o.Status != SessionStatusScheduled {
			continue
		}
		if iv.Overlaps(o.Interval()) {
			return true
		}
	}
	return false
}

func classesOverlap(iv Interval, classes []*ClassSession) bool {
	for _, c := range classes {
		if c.Status != SessionStatusScheduled {
			continue
		}
		if iv.Overlaps(c.Interval()) {
			return true
		}
	}
	return false
}
