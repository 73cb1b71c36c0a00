package domain

import "time"

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "SCHEDULED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
	SessionStatusCompleted SessionStatus = "COMPLETED"
)

// sessionTransitions is shared by class sessions and PT sessions.
var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionStatusScheduled: {SessionStatusCancelled, SessionStatusCompleted},
}

func (s SessionStatus) CanTransitionTo(to SessionStatus) bool {
	for _, next := range sessionTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s SessionStatus) Terminal() bool {
	return len(sessionTransitions[s]) == 0
}

const DefaultClassDuration = 60 * time.Minute

type ClassSession struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	TrainerID     string        `json:"trainer_id"`
	RoomID        string        `json:"room_id"`
	StartsAt      time.Time     `json:"starts_at"`
	Duration      time.Duration `json:"duration"`
	Capacity      int           `json:"capacity"`
	Status        SessionStatus `json:"status"`
	EnrolledCount int           `json:"enrolled_count"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (c *ClassSession) EndsAt() time.Time {
	return c.StartsAt.Add(c.Duration)
}

func (c *ClassSession) Interval() Interval {
	return Interval{Start: c.StartsAt, End: c.EndsAt()}
}

func (c *ClassSession) AvailableSpots() int {
	if c.EnrolledCount >= c.Capacity {
		return 0
	}
	return c.Capacity - c.EnrolledCount
}

// CheckEnroll validates an enrollment against the class state observed under
// the class lock.
func (c *ClassSession) CheckEnroll(alreadyEnrolled bool) error {
	if c.Status != SessionStatusScheduled {
		return ErrClassNotOpen
	}
	if alreadyEnrolled {
		return ErrAlreadyEnrolled
	}
	if c.EnrolledCount >= c.Capacity {
		return ErrClassFull
	}
	return nil
}

type Enrollment struct {
	MemberID  string    `json:"member_id"`
	ClassID   string    `json:"class_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassListing is a read projection of a class enriched with directory names.
type ClassListing struct {
	Class       ClassSession `json:"class"`
	TrainerName string       `json:"trainer_name"`
	RoomName    string       `json:"room_name"`
}

type CreateClassInput struct {
	Name      string
	TrainerID string
	RoomID    string
	StartsAt  time.Time
	Duration  time.Duration
	Capacity  int
}
