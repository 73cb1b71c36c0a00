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

type EquipmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEquipmentRepo(db *dbpg.DB) *EquipmentRepository {
	return &EquipmentRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const (
	equipmentColumns = `id, name, room_id, status, created_at, updated_at`
	logColumns       = `id, equipment_id, issue_description, status, reported_by, created_at, resolved_at, resolution_notes`
)

func scanEquipment(row rowScanner) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := row.Scan(&e.ID, &e.Name, &e.RoomID, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}

func scanLog(row rowScanner) (*domain.MaintenanceLog, error) {
	var (
		l     domain.MaintenanceLog
		notes sql.NullString
	)
	if err := row.Scan(
		&l.ID, &l.EquipmentID, &l.IssueDescription, &l.Status,
		&l.ReportedBy, &l.CreatedAt, &l.ResolvedAt, &notes,
	); err != nil {
		return nil, err
	}
	l.ResolutionNotes = notes.String
	return &l, nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (` + equipmentColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, e.ID, e.Name, e.RoomID, e.Status, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrRoomNotFound
		}
		return fmt.Errorf("insert equipment: %w", err)
	}

	return nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment: %w", err)
	}

	e, err := scanEquipment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, fmt.Errorf("scan equipment: %w", err)
	}

	return e, nil
}

func (r *EquipmentRepository) List(ctx context.Context, roomID string) ([]*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + `
			  FROM equipment
			  WHERE $1::uuid IS NULL OR room_id = $1
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, nullable(roomID))
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EquipmentRepository) GetLog(ctx context.Context, logID string) (*domain.MaintenanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM maintenance_logs WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, logID)
	if err != nil {
		return nil, fmt.Errorf("get maintenance log: %w", err)
	}

	l, err := scanLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("scan maintenance log: %w", err)
	}

	return l, nil
}

func (r *EquipmentRepository) ListLogs(ctx context.Context, equipmentID string) ([]*domain.MaintenanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM maintenance_logs WHERE equipment_id = $1 ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list maintenance logs: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.MaintenanceLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan maintenance log: %w", err)
		}
		res = append(res, l)
	}

	return res, rows.Err()
}

func lockEquipment(ctx context.Context, tx *sql.Tx, id string) (*domain.Equipment, *domain.MaintenanceLog, error) {
	e, err := scanEquipment(tx.QueryRowContext(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrEquipmentNotFound
		}
		return nil, nil, fmt.Errorf("lock equipment: %w", err)
	}

	open, err := scanLog(tx.QueryRowContext(ctx,
		`SELECT `+logColumns+` FROM maintenance_logs WHERE equipment_id = $1 AND status = $2`,
		id, domain.MaintenanceOpen))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return e, nil, nil
		}
		return nil, nil, fmt.Errorf("get open log: %w", err)
	}

	return e, open, nil
}

func updateEquipmentStatus(ctx context.Context, tx *sql.Tx, e *domain.Equipment, to domain.EquipmentStatus, now time.Time) error {
	_, err := tx.ExecContext(ctx, `UPDATE equipment SET status = $2, updated_at = $3 WHERE id = $1`, e.ID, to, now)
	if err != nil {
		return fmt.Errorf("update equipment status: %w", err)
	}
	e.Status = to
	e.UpdatedAt = now
	return nil
}

func (r *EquipmentRepository) OpenLog(ctx context.Context, log *domain.MaintenanceLog) (*domain.Equipment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e, open, err := lockEquipment(ctx, tx, log.EquipmentID)
	if err != nil {
		return nil, err
	}
	if err = e.CheckLogMaintenance(open); err != nil {
		return nil, err
	}

	query := `INSERT INTO maintenance_logs (` + logColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query,
		log.ID, log.EquipmentID, log.IssueDescription, log.Status,
		log.ReportedBy, log.CreatedAt, log.ResolvedAt, log.ResolutionNotes,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return nil, domain.ErrMaintenanceAlreadyOpen
		}
		return nil, fmt.Errorf("insert maintenance log: %w", err)
	}

	if err = updateEquipmentStatus(ctx, tx, e, domain.EquipmentMaintenanceRequested, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

func (r *EquipmentRepository) StartRepair(ctx context.Context, equipmentID string) (*domain.Equipment, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e, open, err := lockEquipment(ctx, tx, equipmentID)
	if err != nil {
		return nil, err
	}
	if err = e.CheckStartRepair(open); err != nil {
		return nil, err
	}

	if err = updateEquipmentStatus(ctx, tx, e, domain.EquipmentUnderRepair, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

func (r *EquipmentRepository) Resolve(ctx context.Context, logID, notes string) (*domain.MaintenanceLog, *domain.Equipment, error) {
	found, err := r.GetLog(ctx, logID)
	if err != nil {
		return nil, nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	e, _, err := lockEquipment(ctx, tx, found.EquipmentID)
	if err != nil {
		return nil, nil, err
	}

	l, err := scanLog(tx.QueryRowContext(ctx, `SELECT `+logColumns+` FROM maintenance_logs WHERE id = $1`, logID))
	if err != nil {
		return nil, nil, fmt.Errorf("reload maintenance log: %w", err)
	}
	if err = e.CheckResolve(l); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`UPDATE maintenance_logs SET status = $2, resolved_at = $3, resolution_notes = $4 WHERE id = $1`,
		logID, domain.MaintenanceResolved, now, notes)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve maintenance log: %w", err)
	}

	if err = updateEquipmentStatus(ctx, tx, e, domain.EquipmentOperational, now); err != nil {
		return nil, nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	l.Status = domain.MaintenanceResolved
	l.ResolvedAt = &now
	l.ResolutionNotes = notes
	return l, e, nil
}
