package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleMocks struct {
	classes   *mocks.MockClassRepo
	timeline  *mocks.MockTimelineRepo
	directory *mocks.MockDirectoryRepo
	notifier  *mocks.MockMemberNotifier
	svc       *ScheduleService
}

func newScheduleMocks(t *testing.T) scheduleMocks {
	m := scheduleMocks{
		classes:   mocks.NewMockClassRepo(t),
		timeline:  mocks.NewMockTimelineRepo(t),
		directory: mocks.NewMockDirectoryRepo(t),
		notifier:  mocks.NewMockMemberNotifier(t),
	}
	m.svc = NewScheduleService(m.classes, m.timeline, m.directory, m.notifier, newTestLogger(t))
	return m
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestScheduleService_CreateClass_DefaultsDuration(t *testing.T) {
	m := newScheduleMocks(t)
	start := time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

	m.directory.EXPECT().GetTrainer(mock.Anything, "t1").Return(&domain.Trainer{ID: "t1"}, nil)
	m.directory.EXPECT().GetRoom(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Capacity: 20}, nil)
	m.classes.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.ClassSession")).Return(nil)

	c, err := m.svc.CreateClass(context.Background(), admin, domain.CreateClassInput{
		Name: "Yoga", TrainerID: "t1", RoomID: "r1", StartsAt: start, Capacity: 10,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultClassDuration, c.Duration)
	assert.Equal(t, domain.SessionStatusScheduled, c.Status)
	assert.Equal(t, start.Add(time.Hour), c.EndsAt())
}

func TestScheduleService_CreateClass_CapacityAboveRoom(t *testing.T) {
	m := newScheduleMocks(t)

	m.directory.EXPECT().GetTrainer(mock.Anything, "t1").Return(&domain.Trainer{ID: "t1"}, nil)
	m.directory.EXPECT().GetRoom(mock.Anything, "r1").Return(&domain.Room{ID: "r1", Capacity: 5}, nil)

	_, err := m.svc.CreateClass(context.Background(), admin, domain.CreateClassInput{
		Name: "Spin", TrainerID: "t1", RoomID: "r1", StartsAt: time.Now(), Capacity: 6,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScheduleService_CreateClass_TrainerNotFound(t *testing.T) {
	m := newScheduleMocks(t)

	m.directory.EXPECT().GetTrainer(mock.Anything, "t1").Return(nil, domain.ErrTrainerNotFound)

	_, err := m.svc.CreateClass(context.Background(), admin, domain.CreateClassInput{
		Name: "Spin", TrainerID: "t1", RoomID: "r1", StartsAt: time.Now(), Capacity: 6,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "NOT_FOUND", domain.ErrorCode(err))
}

func TestScheduleService_EnrollMember_OtherMemberForbidden(t *testing.T) {
	m := newScheduleMocks(t)

	_, err := m.svc.EnrollMember(context.Background(), memberP("m2"), "m1", "c1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestScheduleService_EnrollMember_PropagatesClassFull(t *testing.T) {
	m := newScheduleMocks(t)

	m.directory.EXPECT().GetMember(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	m.classes.EXPECT().Enroll(mock.Anything, mock.Anything).Return(nil, domain.ErrClassFull)

	_, err := m.svc.EnrollMember(context.Background(), memberP("m1"), "m1", "c1")

	assert.ErrorIs(t, err, domain.ErrClassFull)
	assert.Equal(t, "CLASS_FULL", domain.ErrorCode(err))
}

func TestScheduleService_CancelClass_NotifiesEnrolledMembers(t *testing.T) {
	m := newScheduleMocks(t)
	class := &domain.ClassSession{ID: "c1", Name: "Spin", Status: domain.SessionStatusCancelled}
	member := &domain.Member{ID: "m1"}

	done := make(chan struct{})
	m.classes.EXPECT().Transition(mock.Anything, "c1", domain.SessionStatusCancelled).Return(class, nil)
	m.classes.EXPECT().ListEnrolledMembers(mock.Anything, "c1").Return([]string{"gone", "m1"}, nil)
	m.directory.EXPECT().GetMember(mock.Anything, "m1").Return(member, nil)
	m.directory.EXPECT().GetMember(mock.Anything, "gone").Return(nil, domain.ErrMemberNotFound)
	m.notifier.EXPECT().NotifyClassCancelled(mock.Anything, member, class).
		Run(func(context.Context, *domain.Member, *domain.ClassSession) { close(done) }).
		Return()

	got, err := m.svc.CancelClass(context.Background(), admin, "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, got.Status)
	waitFor(t, done)
}

func TestScheduleService_CancelClass_NotAdmin(t *testing.T) {
	m := newScheduleMocks(t)

	_, err := m.svc.CancelClass(context.Background(), trainerP("t1"), "c1")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestScheduleService_DefineAvailability_OtherTrainerForbidden(t *testing.T) {
	m := newScheduleMocks(t)

	_, err := m.svc.DefineAvailability(context.Background(), trainerP("t2"), domain.DefineAvailabilityInput{TrainerID: "t1"})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestScheduleService_BookPTSession_NotifiesMember(t *testing.T) {
	m := newScheduleMocks(t)
	member := &domain.Member{ID: "m1"}
	start := time.Date(2030, 1, 1, 9, 15, 0, 0, time.UTC)

	done := make(chan struct{})
	m.directory.EXPECT().GetMember(mock.Anything, "m1").Return(member, nil)
	m.directory.EXPECT().GetTrainer(mock.Anything, "t1").Return(&domain.Trainer{ID: "t1"}, nil)
	m.timeline.EXPECT().Book(mock.Anything, mock.AnythingOfType("*domain.PTSession")).Return(nil)
	m.notifier.EXPECT().NotifyPTSessionBooked(mock.Anything, member, mock.Anything).
		Run(func(context.Context, *domain.Member, *domain.PTSession) { close(done) }).
		Return()

	s, err := m.svc.BookPTSession(context.Background(), memberP("m1"), domain.BookPTSessionInput{
		MemberID: "m1", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(30 * time.Minute),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusScheduled, s.Status)
	assert.NotEmpty(t, s.ID)
	waitFor(t, done)
}

func TestScheduleService_BookPTSession_RoomNotFound(t *testing.T) {
	m := newScheduleMocks(t)
	room := "r9"

	m.directory.EXPECT().GetMember(mock.Anything, "m1").Return(&domain.Member{ID: "m1"}, nil)
	m.directory.EXPECT().GetTrainer(mock.Anything, "t1").Return(&domain.Trainer{ID: "t1"}, nil)
	m.directory.EXPECT().GetRoom(mock.Anything, "r9").Return(nil, domain.ErrRoomNotFound)

	_, err := m.svc.BookPTSession(context.Background(), admin, domain.BookPTSessionInput{
		MemberID: "m1", TrainerID: "t1", RoomID: &room,
	})

	assert.ErrorIs(t, err, domain.ErrRoomNotFound)
}

func TestScheduleService_CancelPTSession_Access(t *testing.T) {
	session := &domain.PTSession{ID: "s1", MemberID: "m1", TrainerID: "t1", Status: domain.SessionStatusScheduled}

	t.Run("unrelated member", func(t *testing.T) {
		m := newScheduleMocks(t)
		m.timeline.EXPECT().GetSession(mock.Anything, "s1").Return(session, nil)

		_, err := m.svc.CancelPTSession(context.Background(), memberP("m2"), "s1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unrelated trainer", func(t *testing.T) {
		m := newScheduleMocks(t)
		m.timeline.EXPECT().GetSession(mock.Anything, "s1").Return(session, nil)

		_, err := m.svc.CancelPTSession(context.Background(), trainerP("t2"), "s1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("session trainer", func(t *testing.T) {
		m := newScheduleMocks(t)
		cancelled := *session
		cancelled.Status = domain.SessionStatusCancelled
		member := &domain.Member{ID: "m1"}

		done := make(chan struct{})
		m.timeline.EXPECT().GetSession(mock.Anything, "s1").Return(session, nil)
		m.timeline.EXPECT().TransitionSession(mock.Anything, "s1", domain.SessionStatusCancelled).Return(&cancelled, nil)
		m.directory.EXPECT().GetMember(mock.Anything, "m1").Return(member, nil)
		m.notifier.EXPECT().NotifyPTSessionCancelled(mock.Anything, member, &cancelled).
			Run(func(context.Context, *domain.Member, *domain.PTSession) { close(done) }).
			Return()

		got, err := m.svc.CancelPTSession(context.Background(), trainerP("t1"), "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.SessionStatusCancelled, got.Status)
		waitFor(t, done)
	})
}

func TestScheduleService_CompletePast(t *testing.T) {
	m := newScheduleMocks(t)
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	m.classes.EXPECT().CompletePast(mock.Anything, now).Return(2, nil)
	m.timeline.EXPECT().CompletePast(mock.Anything, now).Return(3, nil)

	n, err := m.svc.CompletePast(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestScheduleService_CompletePast_ClassError(t *testing.T) {
	m := newScheduleMocks(t)

	m.classes.EXPECT().CompletePast(mock.Anything, mock.Anything).Return(0, errors.New("db down"))

	_, err := m.svc.CompletePast(context.Background(), time.Now())

	assert.Error(t, err)
	assert.Equal(t, "INTERNAL", domain.ErrorCode(err))
}
