package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2030, 1, 1, 9, 0, 0, 0, time.UTC)

// race runs fn n times concurrently and counts successes and rejections
// matching want.
func race(t *testing.T, n int, want error, fn func(i int) error) (ok, rejected int) {
	t.Helper()
	var okN, rejectedN atomic.Int32
	var wg sync.WaitGroup
	gate := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-gate
			err := fn(i)
			switch {
			case err == nil:
				okN.Add(1)
			case errors.Is(err, want):
				rejectedN.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	close(gate)
	wg.Wait()

	return int(okN.Load()), int(rejectedN.Load())
}

func TestClassRepo_ConcurrentEnrollRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	repo := NewClassRepo(NewStore())
	require.NoError(t, repo.Create(ctx, &domain.ClassSession{
		ID: "c1", TrainerID: "t1", RoomID: "r1", StartsAt: start, Duration: time.Hour,
		Capacity: 5, Status: domain.SessionStatusScheduled,
	}))

	ok, full := race(t, 50, domain.ErrClassFull, func(i int) error {
		_, err := repo.Enroll(ctx, &domain.Enrollment{ClassID: "c1", MemberID: fmt.Sprintf("m%d", i)})
		return err
	})

	assert.Equal(t, 5, ok)
	assert.Equal(t, 45, full)

	c, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 5, c.EnrolledCount)

	members, err := repo.ListEnrolledMembers(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, members, 5)
}

func TestInvoiceRepo_ConcurrentPaymentsNeverOverpay(t *testing.T) {
	ctx := context.Background()
	repo := NewInvoiceRepo(NewStore())
	require.NoError(t, repo.Create(ctx, &domain.Invoice{
		ID: "i1", MemberID: "m1", TotalAmount: 10000, Status: domain.InvoiceStatusPending,
	}))

	ok, over := race(t, 40, domain.ErrOverpayment, func(i int) error {
		_, err := repo.RecordPayment(ctx, &domain.Payment{ID: fmt.Sprintf("p%d", i), InvoiceID: "i1", Amount: 3000})
		return err
	})

	assert.Equal(t, 3, ok)
	assert.Equal(t, 37, over)

	inv, err := repo.GetByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, domain.Money(9000), inv.Paid())
	assert.Equal(t, domain.Money(1000), inv.Remaining())
	assert.Equal(t, domain.InvoiceStatusPartial, inv.Status)
}

func TestTimelineRepo_ConcurrentBookingsOfOneSlot(t *testing.T) {
	ctx := context.Background()
	repo := NewTimelineRepo(NewStore())
	require.NoError(t, repo.AddSlot(ctx, &domain.AvailabilitySlot{
		ID: "s1", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(time.Hour),
	}))

	ok, conflicts := race(t, 20, domain.ErrTrainerConflict, func(i int) error {
		return repo.Book(ctx, &domain.PTSession{
			ID: fmt.Sprintf("p%d", i), MemberID: fmt.Sprintf("m%d", i), TrainerID: "t1",
			StartsAt: start.Add(15 * time.Minute), EndsAt: start.Add(45 * time.Minute),
			Status: domain.SessionStatusScheduled,
		})
	})

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, conflicts)

	sessions, err := repo.ListByTrainer(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

// Member timelines are not locked, so only sequential bookings of one member
// with two trainers are guaranteed to see each other.
func TestTimelineRepo_MemberConflictAcrossTrainers(t *testing.T) {
	ctx := context.Background()
	repo := NewTimelineRepo(NewStore())
	for _, trainer := range []string{"t1", "t2"} {
		require.NoError(t, repo.AddSlot(ctx, &domain.AvailabilitySlot{
			ID: "s-" + trainer, TrainerID: trainer, StartsAt: start, EndsAt: start.Add(time.Hour),
		}))
	}

	require.NoError(t, repo.Book(ctx, &domain.PTSession{
		ID: "p1", MemberID: "m1", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(30 * time.Minute),
		Status: domain.SessionStatusScheduled,
	}))

	err := repo.Book(ctx, &domain.PTSession{
		ID: "p2", MemberID: "m1", TrainerID: "t2", StartsAt: start.Add(15 * time.Minute), EndsAt: start.Add(45 * time.Minute),
		Status: domain.SessionStatusScheduled,
	})
	assert.ErrorIs(t, err, domain.ErrMemberConflict)
}

func TestEquipmentRepo_ConcurrentLogMaintenance(t *testing.T) {
	ctx := context.Background()
	repo := NewEquipmentRepo(NewStore())
	require.NoError(t, repo.Create(ctx, &domain.Equipment{ID: "e1", RoomID: "r1", Status: domain.EquipmentOperational}))

	ok, open := race(t, 20, domain.ErrMaintenanceAlreadyOpen, func(i int) error {
		_, err := repo.OpenLog(ctx, &domain.MaintenanceLog{
			ID: fmt.Sprintf("l%d", i), EquipmentID: "e1", Status: domain.MaintenanceOpen, CreatedAt: start,
		})
		return err
	})

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, open)

	logs, err := repo.ListLogs(ctx, "e1")
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestTimelineRepo_TransitionSession(t *testing.T) {
	ctx := context.Background()
	repo := NewTimelineRepo(NewStore())
	require.NoError(t, repo.AddSlot(ctx, &domain.AvailabilitySlot{
		ID: "s1", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(time.Hour),
	}))
	require.NoError(t, repo.Book(ctx, &domain.PTSession{
		ID: "p1", MemberID: "m1", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(time.Hour),
		Status: domain.SessionStatusScheduled,
	}))

	s, err := repo.TransitionSession(ctx, "p1", domain.SessionStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, s.Status)

	_, err = repo.TransitionSession(ctx, "p1", domain.SessionStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = repo.TransitionSession(ctx, "missing", domain.SessionStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.Book(ctx, &domain.PTSession{
		ID: "p2", MemberID: "m2", TrainerID: "t1", StartsAt: start, EndsAt: start.Add(time.Hour),
		Status: domain.SessionStatusScheduled,
	}), "a cancelled session frees its time")
}

func TestKeyedMutex_ReleasesKeys(t *testing.T) {
	k := newKeyedMutex()

	unlock := k.Lock("a")
	unlock()

	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks)
}

func TestDirectoryRepo_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewDirectoryRepo(NewStore())

	require.NoError(t, repo.CreateMember(ctx, &domain.Member{ID: "m1", Email: "a@gym.test"}))
	err := repo.CreateMember(ctx, &domain.Member{ID: "m2", Email: "a@gym.test"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = repo.GetMember(ctx, "m3")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}
