package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type DirectoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDirectoryRepo(db *dbpg.DB) *DirectoryRepository {
	return &DirectoryRepository{
		db:       db,
		strategy: newStrategy(),
	}
}

const memberColumns = `id, first_name, last_name, email, phone, telegram_chat_id, created_at`

func scanMember(row rowScanner) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.TelegramChatID, &m.CreatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *DirectoryRepository) CreateMember(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (` + memberColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.TelegramChatID, m.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: email is already registered", domain.ErrValidation)
		}
		return fmt.Errorf("insert member: %w", err)
	}

	return nil
}

func (r *DirectoryRepository) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get member: %w", err)
	}

	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("scan member: %w", err)
	}

	return m, nil
}

func (r *DirectoryRepository) SearchMembers(ctx context.Context, name string) ([]*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE first_name ILIKE $1 OR last_name ILIKE $1
			  ORDER BY last_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, "%"+name+"%")
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Member, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		res = append(res, m)
	}

	return res, rows.Err()
}

const trainerColumns = `id, first_name, last_name, email, certification, created_at`

func scanTrainer(row rowScanner) (*domain.Trainer, error) {
	var t domain.Trainer
	if err := row.Scan(&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.Certification, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DirectoryRepository) CreateTrainer(ctx context.Context, t *domain.Trainer) error {
	query := `INSERT INTO trainers (` + trainerColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		t.ID, t.FirstName, t.LastName, t.Email, t.Certification, t.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: email is already registered", domain.ErrValidation)
		}
		return fmt.Errorf("insert trainer: %w", err)
	}

	return nil
}

func (r *DirectoryRepository) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get trainer: %w", err)
	}

	t, err := scanTrainer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTrainerNotFound
		}
		return nil, fmt.Errorf("scan trainer: %w", err)
	}

	return t, nil
}

func (r *DirectoryRepository) ListTrainers(ctx context.Context) ([]*domain.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers ORDER BY last_name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Trainer, 0)
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func (r *DirectoryRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (id, name, capacity, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, room.ID, room.Name, room.Capacity, room.CreatedAt)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return fmt.Errorf("%w: room name is already taken", domain.ErrValidation)
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *DirectoryRepository) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	query := `SELECT id, name, capacity, created_at FROM rooms WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}

	var room domain.Room
	if err = row.Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoomNotFound
		}
		return nil, fmt.Errorf("scan room: %w", err)
	}

	return &room, nil
}

func (r *DirectoryRepository) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	query := `SELECT id, name, capacity, created_at FROM rooms ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(&room.ID, &room.Name, &room.Capacity, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, &room)
	}

	return res, rows.Err()
}
