package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	slotCols    = []string{"id", "trainer_id", "starts_at", "ends_at", "notes", "created_at"}
	sessionCols = []string{"id", "member_id", "trainer_id", "room_id", "starts_at", "ends_at", "session_type", "notes", "status", "created_at", "updated_at"}
	equipCols   = []string{"id", "name", "room_id", "status", "created_at", "updated_at"}
	logCols     = []string{"id", "equipment_id", "issue_description", "status", "reported_by", "created_at", "resolved_at", "resolution_notes"}
)

func expectTrainerLock(mock sqlmock.Sqlmock, trainerID string) {
	mock.ExpectQuery(`SELECT id FROM trainers WHERE id = \$1 FOR UPDATE`).
		WithArgs(trainerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(trainerID))
}

// snapshotRows holds what the three snapshot queries return.
type snapshotRows struct {
	slots    *sqlmock.Rows
	sessions *sqlmock.Rows
	classes  *sqlmock.Rows
}

func emptySnapshot() snapshotRows {
	return snapshotRows{
		slots:    sqlmock.NewRows(slotCols),
		sessions: sqlmock.NewRows(sessionCols),
		classes:  sqlmock.NewRows(classCols),
	}
}

func expectSnapshot(mock sqlmock.Sqlmock, trainerID string, roomID, memberID any, rows snapshotRows) {
	mock.ExpectQuery(`FROM availability_slots WHERE trainer_id = \$1`).
		WithArgs(trainerID).
		WillReturnRows(rows.slots)
	mock.ExpectQuery(`FROM pt_sessions WHERE status = \$1 AND \(trainer_id = \$2 OR room_id = \$3 OR member_id = \$4\)`).
		WithArgs("SCHEDULED", trainerID, roomID, memberID).
		WillReturnRows(rows.sessions)
	mock.ExpectQuery(`FROM class_sessions c WHERE c.status = \$1 AND \(c.trainer_id = \$2 OR c.room_id = \$3\)`).
		WithArgs("SCHEDULED", trainerID, roomID).
		WillReturnRows(rows.classes)
}

func ptSession(id, member string, from, to time.Duration) *domain.PTSession {
	return &domain.PTSession{
		ID: id, MemberID: member, TrainerID: "t1",
		StartsAt: ts.Add(from), EndsAt: ts.Add(to),
		Status: domain.SessionStatusScheduled, CreatedAt: ts, UpdatedAt: ts,
	}
}

func TestTimelineRepository_AddSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", nil, nil, emptySnapshot())
	mock.ExpectExec(`INSERT INTO availability_slots`).
		WithArgs("s1", "t1", ts, ts.Add(time.Hour), "", ts).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddSlot(context.Background(), &domain.AvailabilitySlot{
		ID: "s1", TrainerID: "t1", StartsAt: ts, EndsAt: ts.Add(time.Hour), CreatedAt: ts,
	})

	assert.NoError(t, err)
}

func TestTimelineRepository_AddSlot_Overlap(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	snap := emptySnapshot()
	snap.slots.AddRow("s0", "t1", ts, ts.Add(time.Hour), "", ts)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", nil, nil, snap)
	mock.ExpectRollback()

	err := repo.AddSlot(context.Background(), &domain.AvailabilitySlot{
		ID: "s1", TrainerID: "t1", StartsAt: ts.Add(30 * time.Minute), EndsAt: ts.Add(90 * time.Minute), CreatedAt: ts,
	})

	assert.ErrorIs(t, err, domain.ErrSlotOverlap)
}

func TestTimelineRepository_AddSlot_UnknownTrainer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT id FROM trainers WHERE id = \$1 FOR UPDATE`).
		WithArgs("t9").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := repo.AddSlot(context.Background(), &domain.AvailabilitySlot{
		ID: "s1", TrainerID: "t9", StartsAt: ts, EndsAt: ts.Add(time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrTrainerNotFound)
}

func TestTimelineRepository_Book(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	snap := emptySnapshot()
	snap.slots.AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", nil, "m1", snap)
	mock.ExpectExec(`INSERT INTO pt_sessions`).
		WithArgs("p1", "m1", "t1", nil, ts.Add(15*time.Minute), ts.Add(45*time.Minute), "", "", "SCHEDULED", ts, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Book(context.Background(), ptSession("p1", "m1", 15*time.Minute, 45*time.Minute))

	assert.NoError(t, err)
}

func TestTimelineRepository_Book_TrainerConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	snap := emptySnapshot()
	snap.slots.AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts)
	snap.sessions.AddRow("p0", "m0", "t1", nil, ts.Add(15*time.Minute), ts.Add(45*time.Minute), "", "", "SCHEDULED", ts, ts)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", nil, "m1", snap)
	mock.ExpectRollback()

	err := repo.Book(context.Background(), ptSession("p1", "m1", 30*time.Minute, 75*time.Minute))

	assert.ErrorIs(t, err, domain.ErrTrainerConflict)
}

func TestTimelineRepository_Book_RoomConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	snap := emptySnapshot()
	snap.slots.AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts)
	snap.classes.AddRow("c1", "Spin", "t2", "r1", ts, int64(3600), 10, "SCHEDULED", ts, ts)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", "r1", "m1", snap)
	mock.ExpectRollback()

	s := ptSession("p1", "m1", 0, 30*time.Minute)
	room := "r1"
	s.RoomID = &room

	err := repo.Book(context.Background(), s)

	assert.ErrorIs(t, err, domain.ErrRoomConflict)
}

func TestTimelineRepository_DeleteSlot_InUse(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	snap := emptySnapshot()
	snap.slots.AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts)
	snap.sessions.AddRow("p1", "m1", "t1", nil, ts, ts.Add(30*time.Minute), "", "", "SCHEDULED", ts, ts)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	mock.ExpectQuery(`FROM availability_slots WHERE id = \$1 AND trainer_id = \$2`).
		WithArgs("s1", "t1").
		WillReturnRows(sqlmock.NewRows(slotCols).AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts))
	expectSnapshot(mock, "t1", nil, nil, snap)
	mock.ExpectRollback()

	err := repo.DeleteSlot(context.Background(), "t1", "s1")

	assert.ErrorIs(t, err, domain.ErrSlotInUse)
}

func TestTimelineRepository_DeleteSlot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	mock.ExpectQuery(`FROM availability_slots WHERE id = \$1 AND trainer_id = \$2`).
		WithArgs("s1", "t1").
		WillReturnRows(sqlmock.NewRows(slotCols).AddRow("s1", "t1", ts, ts.Add(time.Hour), "", ts))
	expectSnapshot(mock, "t1", nil, nil, emptySnapshot())
	mock.ExpectExec(`DELETE FROM availability_slots WHERE id = \$1`).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteSlot(context.Background(), "t1", "s1"))
}

func TestTimelineRepository_TransitionSession(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	row := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows(sessionCols).
			AddRow("p1", "m1", "t1", nil, ts, ts.Add(time.Hour), "", "", status, ts, ts)
	}

	mock.ExpectQuery(`FROM pt_sessions WHERE id = \$1`).WithArgs("p1").WillReturnRows(row("SCHEDULED"))
	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	mock.ExpectQuery(`FROM pt_sessions WHERE id = \$1`).WithArgs("p1").WillReturnRows(row("SCHEDULED"))
	mock.ExpectExec(`UPDATE pt_sessions SET status = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("p1", "CANCELLED", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	s, err := repo.TransitionSession(context.Background(), "p1", domain.SessionStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCancelled, s.Status)
}

func TestTimelineRepository_TransitionSession_ReloadsUnderLock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTimelineRepo(db)

	row := func(status string) *sqlmock.Rows {
		return sqlmock.NewRows(sessionCols).
			AddRow("p1", "m1", "t1", nil, ts, ts.Add(time.Hour), "", "", status, ts, ts)
	}

	// Cancelled by someone else between the unlocked read and the lock.
	mock.ExpectQuery(`FROM pt_sessions WHERE id = \$1`).WithArgs("p1").WillReturnRows(row("SCHEDULED"))
	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	mock.ExpectQuery(`FROM pt_sessions WHERE id = \$1`).WithArgs("p1").WillReturnRows(row("CANCELLED"))
	mock.ExpectRollback()

	_, err := repo.TransitionSession(context.Background(), "p1", domain.SessionStatusCancelled)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestClassRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClassRepo(db)

	mock.ExpectBegin()
	expectTrainerLock(mock, "t1")
	expectSnapshot(mock, "t1", "r1", nil, emptySnapshot())
	mock.ExpectExec(`INSERT INTO class_sessions`).
		WithArgs("c1", "Spin", "t1", "r1", ts, float64(3600), int64(12), "SCHEDULED", ts, ts).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), &domain.ClassSession{
		ID: "c1", Name: "Spin", TrainerID: "t1", RoomID: "r1", StartsAt: ts, Duration: time.Hour,
		Capacity: 12, Status: domain.SessionStatusScheduled, CreatedAt: ts, UpdatedAt: ts,
	})

	assert.NoError(t, err)
}

func TestClassRepository_Create_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(snapshotRows)
		wantErr error
	}{
		{
			name: "trainer busy with pt session",
			setup: func(s snapshotRows) {
				s.sessions.AddRow("p1", "m1", "t1", nil, ts.Add(30*time.Minute), ts.Add(90*time.Minute), "", "", "SCHEDULED", ts, ts)
			},
			wantErr: domain.ErrTrainerConflict,
		},
		{
			name: "room taken by another class",
			setup: func(s snapshotRows) {
				s.classes.AddRow("c0", "Yoga", "t2", "r1", ts.Add(-30*time.Minute), int64(3600), 10, "SCHEDULED", ts, ts)
			},
			wantErr: domain.ErrRoomConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewClassRepo(db)

			snap := emptySnapshot()
			tt.setup(snap)

			mock.ExpectBegin()
			expectTrainerLock(mock, "t1")
			expectSnapshot(mock, "t1", "r1", nil, snap)
			mock.ExpectRollback()

			err := repo.Create(context.Background(), &domain.ClassSession{
				ID: "c1", Name: "Spin", TrainerID: "t1", RoomID: "r1", StartsAt: ts, Duration: time.Hour,
				Capacity: 12, Status: domain.SessionStatusScheduled,
			})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEquipmentRepository_StartRepair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEquipmentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM equipment WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(equipCols).AddRow("e1", "Rower", "r1", "MAINTENANCE_REQUESTED", ts, ts))
	mock.ExpectQuery(`FROM maintenance_logs WHERE equipment_id = \$1 AND status = \$2`).
		WithArgs("e1", "OPEN").
		WillReturnRows(sqlmock.NewRows(logCols).AddRow("l1", "e1", "belt", "OPEN", "trainer:t1", ts, nil, nil))
	mock.ExpectExec(`UPDATE equipment SET status = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("e1", "UNDER_REPAIR", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	e, err := repo.StartRepair(context.Background(), "e1")

	require.NoError(t, err)
	assert.Equal(t, domain.EquipmentUnderRepair, e.Status)
}

func TestEquipmentRepository_StartRepair_NoOpenLog(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEquipmentRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM equipment WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(equipCols).AddRow("e1", "Rower", "r1", "OPERATIONAL", ts, ts))
	mock.ExpectQuery(`FROM maintenance_logs WHERE equipment_id = \$1 AND status = \$2`).
		WithArgs("e1", "OPEN").
		WillReturnRows(sqlmock.NewRows(logCols))
	mock.ExpectRollback()

	_, err := repo.StartRepair(context.Background(), "e1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEquipmentRepository_Resolve(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEquipmentRepo(db)

	open := sqlmock.NewRows(logCols).AddRow("l1", "e1", "belt", "OPEN", "trainer:t1", ts, nil, nil)

	mock.ExpectQuery(`FROM maintenance_logs WHERE id = \$1`).WithArgs("l1").WillReturnRows(open)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM equipment WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(equipCols).AddRow("e1", "Rower", "r1", "UNDER_REPAIR", ts, ts))
	mock.ExpectQuery(`FROM maintenance_logs WHERE equipment_id = \$1 AND status = \$2`).
		WithArgs("e1", "OPEN").
		WillReturnRows(sqlmock.NewRows(logCols).AddRow("l1", "e1", "belt", "OPEN", "trainer:t1", ts, nil, nil))
	mock.ExpectQuery(`FROM maintenance_logs WHERE id = \$1`).
		WithArgs("l1").
		WillReturnRows(sqlmock.NewRows(logCols).AddRow("l1", "e1", "belt", "OPEN", "trainer:t1", ts, nil, nil))
	mock.ExpectExec(`UPDATE maintenance_logs SET status = \$2, resolved_at = \$3, resolution_notes = \$4 WHERE id = \$1`).
		WithArgs("l1", "RESOLVED", sqlmock.AnyArg(), "belt replaced").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE equipment SET status = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("e1", "OPERATIONAL", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	l, e, err := repo.Resolve(context.Background(), "l1", "belt replaced")

	require.NoError(t, err)
	assert.Equal(t, domain.MaintenanceResolved, l.Status)
	require.NotNil(t, l.ResolvedAt)
	assert.Equal(t, "belt replaced", l.ResolutionNotes)
	assert.Equal(t, domain.EquipmentOperational, e.Status)
}

func TestEquipmentRepository_Resolve_AlreadyResolved(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEquipmentRepo(db)

	resolved := func() *sqlmock.Rows {
		return sqlmock.NewRows(logCols).AddRow("l1", "e1", "belt", "RESOLVED", "trainer:t1", ts, ts, "fixed")
	}

	mock.ExpectQuery(`FROM maintenance_logs WHERE id = \$1`).WithArgs("l1").WillReturnRows(resolved())
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM equipment WHERE id = \$1 FOR UPDATE`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(equipCols).AddRow("e1", "Rower", "r1", "OPERATIONAL", ts, ts))
	mock.ExpectQuery(`FROM maintenance_logs WHERE equipment_id = \$1 AND status = \$2`).
		WithArgs("e1", "OPEN").
		WillReturnRows(sqlmock.NewRows(logCols))
	mock.ExpectQuery(`FROM maintenance_logs WHERE id = \$1`).WithArgs("l1").WillReturnRows(resolved())
	mock.ExpectRollback()

	_, _, err := repo.Resolve(context.Background(), "l1", "again")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
