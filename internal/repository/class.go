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

type ClassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClassRepo(db *dbpg.DB) *ClassRepository {
	return &ClassRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const enrolledCount = `(SELECT COUNT(*) FROM enrollments e WHERE e.class_id = c.id)`

func (r *ClassRepository) Create(ctx context.Context, c *domain.ClassSession) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockTrainer(ctx, tx, c.TrainerID); err != nil {
		return err
	}

	roomID := c.RoomID
	snap, err := loadSnapshot(ctx, tx, c.TrainerID, &roomID, "")
	if err != nil {
		return err
	}
	if err = domain.CheckClassPlacement(c, snap); err != nil {
		return err
	}

	query := `INSERT INTO class_sessions (id, name, trainer_id, room_id, starts_at, duration, capacity, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, make_interval(secs => $6), $7, $8, $9, $10)`
	_, err = tx.ExecContext(
		ctx, query,
		c.ID, c.Name, c.TrainerID, c.RoomID, c.StartsAt, c.Duration.Seconds(),
		c.Capacity, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("insert class: %w", err)
	}

	return tx.Commit()
}

func (r *ClassRepository) GetByID(ctx context.Context, id string) (*domain.ClassSession, error) {
	query := `SELECT ` + classColumns + `, ` + enrolledCount + `
			  FROM class_sessions c
			  WHERE c.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get class: %w", err)
	}

	var count int
	c, err := scanClass(row, &count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("scan class: %w", err)
	}
	c.EnrolledCount = count

	return c, nil
}

// lockClass reads the class row under FOR UPDATE and counts its enrollments.
// The count is a projection of the enrollment rows, never a stored counter.
func lockClass(ctx context.Context, tx *sql.Tx, classID string) (*domain.ClassSession, error) {
	query := `SELECT ` + classColumns + ` FROM class_sessions c WHERE c.id = $1 FOR UPDATE`
	c, err := scanClass(tx.QueryRowContext(ctx, query, classID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("lock class: %w", err)
	}

	countQuery := `SELECT COUNT(*) FROM enrollments WHERE class_id = $1`
	if err = tx.QueryRowContext(ctx, countQuery, classID).Scan(&c.EnrolledCount); err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	return c, nil
}

func (r *ClassRepository) Enroll(ctx context.Context, e *domain.Enrollment) (*domain.ClassSession, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c, err := lockClass(ctx, tx, e.ClassID)
	if err != nil {
		return nil, err
	}

	var already bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM enrollments WHERE class_id = $1 AND member_id = $2)`
	if err = tx.QueryRowContext(ctx, existsQuery, e.ClassID, e.MemberID).Scan(&already); err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}

	if err = c.CheckEnroll(already); err != nil {
		return nil, err
	}

	query := `INSERT INTO enrollments (class_id, member_id, created_at) VALUES ($1, $2, $3)`
	if _, err = tx.ExecContext(ctx, query, e.ClassID, e.MemberID, e.CreatedAt); err != nil {
		switch pgCode(err) {
		case pgUniqueViolation:
			return nil, domain.ErrAlreadyEnrolled
		case pgForeignKeyViolation:
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	c.EnrolledCount++
	return c, nil
}

func (r *ClassRepository) Unenroll(ctx context.Context, classID, memberID string) (*domain.ClassSession, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c, err := lockClass(ctx, tx, classID)
	if err != nil {
		return nil, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM enrollments WHERE class_id = $1 AND member_id = $2`, classID, memberID)
	if err != nil {
		return nil, fmt.Errorf("delete enrollment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("enrollment rows affected: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrNotEnrolled
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	c.EnrolledCount--
	return c, nil
}

func (r *ClassRepository) Transition(ctx context.Context, classID string, to domain.SessionStatus) (*domain.ClassSession, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	c, err := lockClass(ctx, tx, classID)
	if err != nil {
		return nil, err
	}
	if !c.Status.CanTransitionTo(to) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	query := `UPDATE class_sessions SET status = $2, updated_at = $3 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, classID, to, now); err != nil {
		return nil, fmt.Errorf("update class status: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	c.Status = to
	c.UpdatedAt = now
	return c, nil
}

func (r *ClassRepository) ListEnrolledMembers(ctx context.Context, classID string) ([]string, error) {
	query := `SELECT member_id FROM enrollments WHERE class_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, classID)
	if err != nil {
		return nil, fmt.Errorf("list enrolled members: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan member id: %w", err)
		}
		res = append(res, id)
	}

	return res, rows.Err()
}

const listingSelect = `SELECT ` + classColumns + `, ` + enrolledCount + `,
		t.first_name || ' ' || t.last_name, r.name
	FROM class_sessions c
	JOIN trainers t ON t.id = c.trainer_id
	JOIN rooms r ON r.id = c.room_id`

func (r *ClassRepository) listings(ctx context.Context, query string, args ...any) ([]*domain.ClassListing, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.ClassListing, 0)
	for rows.Next() {
		var (
			l     domain.ClassListing
			count int
		)
		c, err := scanClass(rows, &count, &l.TrainerName, &l.RoomName)
		if err != nil {
			return nil, fmt.Errorf("scan class listing: %w", err)
		}
		c.EnrolledCount = count
		l.Class = *c
		res = append(res, &l)
	}

	return res, rows.Err()
}

func (r *ClassRepository) ListAvailable(ctx context.Context, now time.Time) ([]*domain.ClassListing, error) {
	query := listingSelect + `
		WHERE c.status = $1 AND c.starts_at > $2 AND ` + enrolledCount + ` < c.capacity
		ORDER BY c.starts_at`
	return r.listings(ctx, query, domain.SessionStatusScheduled, now)
}

func (r *ClassRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.ClassListing, error) {
	query := listingSelect + `
		JOIN enrollments en ON en.class_id = c.id
		WHERE en.member_id = $1
		ORDER BY c.starts_at`
	return r.listings(ctx, query, memberID)
}

func (r *ClassRepository) ListByTrainer(ctx context.Context, trainerID string) ([]*domain.ClassListing, error) {
	query := listingSelect + `
		WHERE c.trainer_id = $1
		ORDER BY c.starts_at`
	return r.listings(ctx, query, trainerID)
}

func (r *ClassRepository) CompletePast(ctx context.Context, now time.Time) (int, error) {
	query := `UPDATE class_sessions
			  SET status = $2, updated_at = $3
			  WHERE status = $1 AND starts_at + duration <= $3`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		domain.SessionStatusScheduled, domain.SessionStatusCompleted, now,
	)
	if err != nil {
		return 0, fmt.Errorf("complete past classes: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("classes rows affected: %w", err)
	}

	return int(rows), nil
}
