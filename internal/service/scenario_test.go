package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/repository/memory"
	"github.com/stpnv0/GymOps/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type gym struct {
	directory *DirectoryService
	schedule  *ScheduleService
	billing   *BillingService
	assets    *AssetService
}

func newGym(t *testing.T) *gym {
	log := newTestLogger(t)
	store := memory.NewStore()
	directoryRepo := memory.NewDirectoryRepo(store)

	notifier := mocks.NewMockMemberNotifier(t)
	notifier.EXPECT().NotifyPTSessionBooked(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyPTSessionCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyClassCancelled(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyPaymentRecorded(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()

	return &gym{
		directory: NewDirectoryService(directoryRepo, log),
		schedule:  NewScheduleService(memory.NewClassRepo(store), memory.NewTimelineRepo(store), directoryRepo, notifier, log),
		billing:   NewBillingService(memory.NewInvoiceRepo(store), directoryRepo, notifier, log),
		assets:    NewAssetService(memory.NewEquipmentRepo(store), directoryRepo, log),
	}
}

func (g *gym) member(t *testing.T, email string) *domain.Member {
	t.Helper()
	m, err := g.directory.CreateMember(context.Background(), admin, domain.CreateMemberInput{
		FirstName: "Test", LastName: "Member", Email: email,
	})
	require.NoError(t, err)
	return m
}

func (g *gym) trainer(t *testing.T, email string) *domain.Trainer {
	t.Helper()
	tr, err := g.directory.CreateTrainer(context.Background(), admin, domain.CreateTrainerInput{
		FirstName: "Test", LastName: "Trainer", Email: email,
	})
	require.NoError(t, err)
	return tr
}

func (g *gym) room(t *testing.T, capacity int) *domain.Room {
	t.Helper()
	r, err := g.directory.CreateRoom(context.Background(), admin, domain.CreateRoomInput{Name: "Studio", Capacity: capacity})
	require.NoError(t, err)
	return r
}

var day = time.Date(2030, 5, 6, 0, 0, 0, 0, time.UTC)

func clock(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func TestScenario_ClassCapacity(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	tr := g.trainer(t, "coach@gym.test")
	room := g.room(t, 20)
	a, b, c := g.member(t, "a@gym.test"), g.member(t, "b@gym.test"), g.member(t, "c@gym.test")

	class, err := g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "HIIT", TrainerID: tr.ID, RoomID: room.ID, StartsAt: clock(18, 0), Capacity: 2,
	})
	require.NoError(t, err)

	_, err = g.schedule.EnrollMember(ctx, memberP(a.ID), a.ID, class.ID)
	require.NoError(t, err)
	got, err := g.schedule.EnrollMember(ctx, memberP(b.ID), b.ID, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableSpots())

	_, err = g.schedule.EnrollMember(ctx, memberP(c.ID), c.ID, class.ID)
	assert.ErrorIs(t, err, domain.ErrClassFull)

	_, err = g.schedule.EnrollMember(ctx, memberP(a.ID), a.ID, class.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyEnrolled)

	got, err = g.schedule.UnenrollMember(ctx, memberP(b.ID), b.ID, class.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.EnrolledCount)

	_, err = g.schedule.EnrollMember(ctx, memberP(c.ID), c.ID, class.ID)
	require.NoError(t, err)
}

func TestScenario_CancelledClassClosesEnrollment(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	tr := g.trainer(t, "coach@gym.test")
	room := g.room(t, 10)
	a := g.member(t, "a@gym.test")

	class, err := g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "Yoga", TrainerID: tr.ID, RoomID: room.ID, StartsAt: clock(7, 0), Capacity: 5,
	})
	require.NoError(t, err)
	_, err = g.schedule.EnrollMember(ctx, memberP(a.ID), a.ID, class.ID)
	require.NoError(t, err)

	cancelled, err := g.schedule.CancelClass(ctx, admin, class.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, cancelled.Status)

	_, err = g.schedule.EnrollMember(ctx, memberP(a.ID), a.ID, class.ID)
	assert.ErrorIs(t, err, domain.ErrClassNotOpen)

	_, err = g.schedule.CancelClass(ctx, admin, class.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = g.schedule.UnenrollMember(ctx, memberP(a.ID), a.ID, class.ID)
	assert.NoError(t, err)
}

func TestScenario_PartialPaymentsAndOverpayment(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	m := g.member(t, "payer@gym.test")

	inv, err := g.billing.CreateInvoice(ctx, admin, domain.CreateInvoiceInput{
		MemberID: m.ID,
		Items:    []domain.LineItemInput{{Description: "Quarterly pass", Quantity: 1, UnitPrice: 10000}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPending, inv.Status)

	inv, err = g.billing.RecordPayment(ctx, memberP(m.ID), domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 6000, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPartial, inv.Status)
	assert.Equal(t, domain.Money(4000), inv.Remaining())

	_, err = g.billing.RecordPayment(ctx, memberP(m.ID), domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 4100, Method: "card"})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	remaining, err := g.billing.Remaining(ctx, memberP(m.ID), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(4000), remaining)

	_, err = g.billing.RecordPayment(ctx, admin, domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 0, Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	inv, err = g.billing.RecordPayment(ctx, admin, domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 4000, Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
	assert.Equal(t, domain.Money(0), inv.Remaining())
	assert.Len(t, inv.Payments, 2)

	_, err = g.billing.RecordPayment(ctx, admin, domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 1, Method: "cash"})
	assert.ErrorIs(t, err, domain.ErrOverpayment)
}

func TestScenario_HugeAmountsNeverWrap(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	m := g.member(t, "big@gym.test")

	_, err := g.billing.CreateInvoice(ctx, admin, domain.CreateInvoiceInput{
		MemberID: m.ID,
		Items:    []domain.LineItemInput{{Description: "Lifetime", Quantity: 2, UnitPrice: math.MaxInt64/2 + 1}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	inv, err := g.billing.CreateInvoice(ctx, admin, domain.CreateInvoiceInput{
		MemberID: m.ID,
		Items:    []domain.LineItemInput{{Description: "Drop-in", Quantity: 1, UnitPrice: 100}},
	})
	require.NoError(t, err)

	_, err = g.billing.RecordPayment(ctx, admin, domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: 60})
	require.NoError(t, err)

	_, err = g.billing.RecordPayment(ctx, admin, domain.RecordPaymentInput{InvoiceID: inv.ID, Amount: math.MaxInt64 - 10})
	assert.ErrorIs(t, err, domain.ErrOverpayment)

	remaining, err := g.billing.Remaining(ctx, admin, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Money(40), remaining)
}

func TestScenario_PTBookingWithinAvailability(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	tr := g.trainer(t, "coach@gym.test")
	a, b := g.member(t, "a@gym.test"), g.member(t, "b@gym.test")

	slot, err := g.schedule.DefineAvailability(ctx, trainerP(tr.ID), domain.DefineAvailabilityInput{
		TrainerID: tr.ID, StartsAt: clock(9, 0), EndsAt: clock(10, 0),
	})
	require.NoError(t, err)

	_, err = g.schedule.DefineAvailability(ctx, trainerP(tr.ID), domain.DefineAvailabilityInput{
		TrainerID: tr.ID, StartsAt: clock(9, 30), EndsAt: clock(11, 0),
	})
	assert.ErrorIs(t, err, domain.ErrSlotOverlap)

	first, err := g.schedule.BookPTSession(ctx, memberP(a.ID), domain.BookPTSessionInput{
		MemberID: a.ID, TrainerID: tr.ID, StartsAt: clock(9, 15), EndsAt: clock(9, 45),
	})
	require.NoError(t, err)

	_, err = g.schedule.BookPTSession(ctx, memberP(b.ID), domain.BookPTSessionInput{
		MemberID: b.ID, TrainerID: tr.ID, StartsAt: clock(9, 30), EndsAt: clock(10, 15),
	})
	assert.ErrorIs(t, err, domain.ErrTrainerConflict)

	_, err = g.schedule.BookPTSession(ctx, memberP(b.ID), domain.BookPTSessionInput{
		MemberID: b.ID, TrainerID: tr.ID, StartsAt: clock(10, 0), EndsAt: clock(10, 30),
	})
	assert.ErrorIs(t, err, domain.ErrOutsideAvailability)

	second, err := g.schedule.BookPTSession(ctx, memberP(b.ID), domain.BookPTSessionInput{
		MemberID: b.ID, TrainerID: tr.ID, StartsAt: clock(9, 45), EndsAt: clock(10, 0),
	})
	require.NoError(t, err, "back-to-back sessions do not overlap")

	err = g.schedule.DeleteAvailability(ctx, trainerP(tr.ID), tr.ID, slot.ID)
	assert.ErrorIs(t, err, domain.ErrSlotInUse)

	_, err = g.schedule.CancelPTSession(ctx, memberP(a.ID), first.ID)
	require.NoError(t, err)
	_, err = g.schedule.CancelPTSession(ctx, trainerP(tr.ID), second.ID)
	require.NoError(t, err)

	_, err = g.schedule.CancelPTSession(ctx, memberP(a.ID), first.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	err = g.schedule.DeleteAvailability(ctx, trainerP(tr.ID), tr.ID, slot.ID)
	assert.NoError(t, err)
}

func TestScenario_RoomAndMemberConflicts(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	t1, t2 := g.trainer(t, "one@gym.test"), g.trainer(t, "two@gym.test")
	room := g.room(t, 2)
	m := g.member(t, "m@gym.test")

	for _, tr := range []*domain.Trainer{t1, t2} {
		_, err := g.schedule.DefineAvailability(ctx, admin, domain.DefineAvailabilityInput{
			TrainerID: tr.ID, StartsAt: clock(8, 0), EndsAt: clock(12, 0),
		})
		require.NoError(t, err)
	}

	_, err := g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "Stretch", TrainerID: t1.ID, RoomID: room.ID, StartsAt: clock(10, 0), Capacity: 2,
	})
	require.NoError(t, err)

	_, err = g.schedule.BookPTSession(ctx, memberP(m.ID), domain.BookPTSessionInput{
		MemberID: m.ID, TrainerID: t2.ID, RoomID: &room.ID, StartsAt: clock(10, 30), EndsAt: clock(11, 30),
	})
	assert.ErrorIs(t, err, domain.ErrRoomConflict)

	_, err = g.schedule.BookPTSession(ctx, memberP(m.ID), domain.BookPTSessionInput{
		MemberID: m.ID, TrainerID: t1.ID, StartsAt: clock(8, 0), EndsAt: clock(9, 0),
	})
	require.NoError(t, err)

	_, err = g.schedule.BookPTSession(ctx, memberP(m.ID), domain.BookPTSessionInput{
		MemberID: m.ID, TrainerID: t2.ID, StartsAt: clock(8, 30), EndsAt: clock(9, 30),
	})
	assert.ErrorIs(t, err, domain.ErrMemberConflict)

	_, err = g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "Core", TrainerID: t1.ID, RoomID: room.ID, StartsAt: clock(8, 30), Capacity: 2,
	})
	assert.ErrorIs(t, err, domain.ErrTrainerConflict)
}

func TestScenario_MaintenanceCycle(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	room := g.room(t, 10)
	tr := g.trainer(t, "coach@gym.test")

	e, err := g.assets.CreateEquipment(ctx, admin, domain.CreateEquipmentInput{Name: "Treadmill", RoomID: room.ID})
	require.NoError(t, err)

	log, e, err := g.assets.LogMaintenance(ctx, trainerP(tr.ID), e.ID, "belt slipping")
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentMaintenanceRequested, e.Status)

	_, _, err = g.assets.LogMaintenance(ctx, admin, e.ID, "noise")
	assert.ErrorIs(t, err, domain.ErrMaintenanceAlreadyOpen)

	e, err = g.assets.StartRepair(ctx, admin, e.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentUnderRepair, e.Status)

	_, err = g.assets.StartRepair(ctx, admin, e.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	resolved, e, err := g.assets.ResolveMaintenance(ctx, admin, log.ID, "replaced belt")
	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceResolved, resolved.Status)
	assert.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, domain.EquipmentOperational, e.Status)

	_, _, err = g.assets.ResolveMaintenance(ctx, admin, log.ID, "again")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, _, err = g.assets.LogMaintenance(ctx, admin, e.ID, "display flicker")
	require.NoError(t, err)

	logs, err := g.assets.ListMaintenanceLogs(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestScenario_CompletePast(t *testing.T) {
	g := newGym(t)
	ctx := context.Background()
	tr := g.trainer(t, "coach@gym.test")
	room := g.room(t, 10)
	m := g.member(t, "m@gym.test")

	class, err := g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "Early", TrainerID: tr.ID, RoomID: room.ID, StartsAt: clock(6, 0), Capacity: 5,
	})
	require.NoError(t, err)
	_, err = g.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
		Name: "Late", TrainerID: tr.ID, RoomID: room.ID, StartsAt: clock(20, 0), Capacity: 5,
	})
	require.NoError(t, err)

	_, err = g.schedule.DefineAvailability(ctx, admin, domain.DefineAvailabilityInput{
		TrainerID: tr.ID, StartsAt: clock(8, 0), EndsAt: clock(9, 0),
	})
	require.NoError(t, err)
	session, err := g.schedule.BookPTSession(ctx, memberP(m.ID), domain.BookPTSessionInput{
		MemberID: m.ID, TrainerID: tr.ID, StartsAt: clock(8, 0), EndsAt: clock(9, 0),
	})
	require.NoError(t, err)

	n, err := g.schedule.CompletePast(ctx, clock(12, 0))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := g.schedule.GetClass(ctx, class.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCompleted, got.Status)

	s, err := g.schedule.GetPTSession(ctx, memberP(m.ID), session.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCompleted, s.Status)

	_, err = g.schedule.CancelPTSession(ctx, memberP(m.ID), session.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	n, err = g.schedule.CompletePast(ctx, clock(12, 0))
	require.NoError(t, err)
	assert.Zero(t, n)
}
