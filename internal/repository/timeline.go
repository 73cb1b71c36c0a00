package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type TimelineRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTimelineRepo(db *dbpg.DB) *TimelineRepository {
	return &TimelineRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

func (r *TimelineRepository) AddSlot(ctx context.Context, slot *domain.AvailabilitySlot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTrainer(ctx, tx, slot.TrainerID); err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, tx, slot.TrainerID, nil, "")
	if err != nil {
		return err
	}
	if err = domain.CheckNewSlot(slot, snap.TrainerSlots); err != nil {
		return err
	}

	query := `INSERT INTO availability_slots (` + slotColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(ctx, query, slot.ID, slot.TrainerID, slot.StartsAt, slot.EndsAt, slot.Notes, slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}

	return tx.Commit()
}

func (r *TimelineRepository) GetSlot(ctx context.Context, id string) (*domain.AvailabilitySlot, error) {
	query := `SELECT ` + slotColumns + ` FROM availability_slots WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	slot, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return slot, nil
}

func (r *TimelineRepository) DeleteSlot(ctx context.Context, trainerID, slotID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTrainer(ctx, tx, trainerID); err != nil {
		return err
	}

	slot, err := scanSlot(tx.QueryRowContext(ctx,
		`SELECT `+slotColumns+` FROM availability_slots WHERE id = $1 AND trainer_id = $2`, slotID, trainerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("get slot: %w", err)
	}

	snap, err := loadSnapshot(ctx, tx, trainerID, nil, "")
	if err != nil {
		return err
	}
	if err = domain.CheckSlotRemoval(slot, snap.TrainerSessions); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM availability_slots WHERE id = $1`, slotID); err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	return tx.Commit()
}

func (r *TimelineRepository) ListSlots(ctx context.Context, trainerID string) ([]*domain.AvailabilitySlot, error) {
	query := `SELECT ` + slotColumns + ` FROM availability_slots WHERE trainer_id = $1 ORDER BY starts_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, trainerID)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, slot)
	}

	return res, rows.Err()
}

// Book serializes on the trainer only. Room and member timelines are checked
// against the snapshot but not locked, so two concurrent bookings of one
// member with different trainers can both pass the member check.
func (r *TimelineRepository) Book(ctx context.Context, s *domain.PTSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTrainer(ctx, tx, s.TrainerID); err != nil {
		return err
	}

	snap, err := loadSnapshot(ctx, tx, s.TrainerID, s.RoomID, s.MemberID)
	if err != nil {
		return err
	}
	if err = domain.CheckPTBooking(s, snap); err != nil {
		return err
	}

	query := `INSERT INTO pt_sessions (` + sessionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, query,
		s.ID, s.MemberID, s.TrainerID, nullableRef(s.RoomID), s.StartsAt, s.EndsAt,
		s.SessionType, s.Notes, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return fmt.Errorf("%w: member or room does not exist", domain.ErrNotFound)
		}
		return fmt.Errorf("insert pt session: %w", err)
	}

	return tx.Commit()
}

func (r *TimelineRepository) GetSession(ctx context.Context, id string) (*domain.PTSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM pt_sessions WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get pt session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPTSessionNotFound
		}
		return nil, fmt.Errorf("scan pt session: %w", err)
	}

	return s, nil
}

func (r *TimelineRepository) TransitionSession(ctx context.Context, id string, to domain.SessionStatus) (*domain.PTSession, error) {
	current, err := r.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTrainer(ctx, tx, current.TrainerID); err != nil {
		return nil, err
	}

	s, err := scanSession(tx.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM pt_sessions WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("reload pt session: %w", err)
	}
	if !s.Status.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if _, err = tx.ExecContext(ctx, `UPDATE pt_sessions SET status = $2, updated_at = $3 WHERE id = $1`, id, to, now); err != nil {
		return nil, fmt.Errorf("update pt session status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	s.Status = to
	s.UpdatedAt = now
	return s, nil
}

func (r *TimelineRepository) list(ctx context.Context, query string, args ...any) ([]*domain.PTSession, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pt sessions: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.PTSession, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pt session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *TimelineRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.PTSession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM pt_sessions WHERE member_id = $1 ORDER BY starts_at`, memberID)
}

func (r *TimelineRepository) ListByTrainer(ctx context.Context, trainerID string) ([]*domain.PTSession, error) {
	return r.list(ctx, `SELECT `+sessionColumns+` FROM pt_sessions WHERE trainer_id = $1 ORDER BY starts_at`, trainerID)
}

func (r *TimelineRepository) CompletePast(ctx context.Context, now time.Time) (int, error) {
	query := `UPDATE pt_sessions
			  SET status = $2, updated_at = $3
			  WHERE status = $1 AND ends_at <= $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		domain.SessionStatusScheduled, domain.SessionStatusCompleted, now,
	)
	if err != nil {
		return 0, fmt.Errorf("complete past pt sessions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pt sessions rows affected: %w", err)
	}

	return int(rows), nil
}
