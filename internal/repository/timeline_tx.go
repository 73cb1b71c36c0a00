package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

// lockTrainer takes the row lock that serializes all mutations of a
// trainer's timeline: availability, PT bookings and class placement.
func lockTrainer(ctx context.Context, tx *sql.Tx, trainerID string) error {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM trainers WHERE id = $1 FOR UPDATE`, trainerID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTrainerNotFound
		}
		return fmt.Errorf("lock trainer: %w", err)
	}
	return nil
}

const slotColumns = `id, trainer_id, starts_at, ends_at, notes, created_at`

func scanSlot(row rowScanner) (*domain.AvailabilitySlot, error) {
	var s domain.AvailabilitySlot
	if err := row.Scan(&s.ID, &s.TrainerID, &s.StartsAt, &s.EndsAt, &s.Notes, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

const sessionColumns = `id, member_id, trainer_id, room_id, starts_at, ends_at, session_type, notes, status, created_at, updated_at`

func scanSession(row rowScanner) (*domain.PTSession, error) {
	var (
		s      domain.PTSession
		roomID sql.NullString
	)
	if err := row.Scan(
		&s.ID, &s.MemberID, &s.TrainerID, &roomID, &s.StartsAt, &s.EndsAt,
		&s.SessionType, &s.Notes, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if roomID.Valid {
		s.RoomID = &roomID.String
	}
	return &s, nil
}

const classColumns = `c.id, c.name, c.trainer_id, c.room_id, c.starts_at,
		EXTRACT(EPOCH FROM c.duration)::bigint, c.capacity, c.status, c.created_at, c.updated_at`

func scanClass(row rowScanner, extra ...any) (*domain.ClassSession, error) {
	var (
		c               domain.ClassSession
		durationSeconds int64
	)
	dest := []any{
		&c.ID, &c.Name, &c.TrainerID, &c.RoomID, &c.StartsAt,
		&durationSeconds, &c.Capacity, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	c.Duration = time.Duration(durationSeconds) * time.Second
	return &c, nil
}

// loadSnapshot reads the scheduled timelines a booking or class placement is
// validated against. Must run inside the transaction holding the trainer lock.
func loadSnapshot(ctx context.Context, tx *sql.Tx, trainerID string, roomID *string, memberID string) (domain.TimelineSnapshot, error) {
	var snap domain.TimelineSnapshot

	slotRows, err := tx.QueryContext(ctx,
		`SELECT `+slotColumns+` FROM availability_slots WHERE trainer_id = $1`, trainerID)
	if err != nil {
		return snap, fmt.Errorf("load slots: %w", err)
	}
	for slotRows.Next() {
		s, err := scanSlot(slotRows)
		if err != nil {
			slotRows.Close()
			return snap, fmt.Errorf("scan slot: %w", err)
		}
		snap.TrainerSlots = append(snap.TrainerSlots, s)
	}
	slotRows.Close()
	if err = slotRows.Err(); err != nil {
		return snap, fmt.Errorf("load slots: %w", err)
	}

	sessRows, err := tx.QueryContext(ctx,
		`SELECT `+sessionColumns+`
		 FROM pt_sessions
		 WHERE status = $1 AND (trainer_id = $2 OR room_id = $3 OR member_id = $4)`,
		domain.SessionStatusScheduled, trainerID, nullableRef(roomID), nullable(memberID),
	)
	if err != nil {
		return snap, fmt.Errorf("load sessions: %w", err)
	}
	for sessRows.Next() {
		s, err := scanSession(sessRows)
		if err != nil {
			sessRows.Close()
			return snap, fmt.Errorf("scan session: %w", err)
		}
		if s.TrainerID == trainerID {
			snap.TrainerSessions = append(snap.TrainerSessions, s)
		}
		if roomID != nil && s.RoomID != nil && *s.RoomID == *roomID {
			snap.RoomSessions = append(snap.RoomSessions, s)
		}
		if memberID != "" && s.MemberID == memberID {
			snap.MemberSessions = append(snap.MemberSessions, s)
		}
	}
	sessRows.Close()
	if err = sessRows.Err(); err != nil {
		return snap, fmt.Errorf("load sessions: %w", err)
	}

	classRows, err := tx.QueryContext(ctx,
		`SELECT `+classColumns+`
		 FROM class_sessions c
		 WHERE c.status = $1 AND (c.trainer_id = $2 OR c.room_id = $3)`,
		domain.SessionStatusScheduled, trainerID, nullableRef(roomID),
	)
	if err != nil {
		return snap, fmt.Errorf("load classes: %w", err)
	}
	defer classRows.Close()
	for classRows.Next() {
		c, err := scanClass(classRows)
		if err != nil {
			return snap, fmt.Errorf("scan class: %w", err)
		}
		if c.TrainerID == trainerID {
			snap.TrainerClasses = append(snap.TrainerClasses, c)
		}
		if roomID != nil && c.RoomID == *roomID {
			snap.RoomClasses = append(snap.RoomClasses, c)
		}
	}

	return snap, classRows.Err()
}
