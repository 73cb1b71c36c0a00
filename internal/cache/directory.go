// Package cache decorates the directory repository with a Redis read-through
// cache. Redis failures are logged and fall back to the repository.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Directory struct {
	ports.DirectoryRepo

	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewDirectory(repo ports.DirectoryRepo, client *redis.Client, ttl time.Duration, log logger.Logger) *Directory {
	return &Directory{
		DirectoryRepo: repo,
		client:        client,
		ttl:           ttl,
		logger:        log,
	}
}

func memberKey(id string) string  { return "gymops:member:" + id }
func trainerKey(id string) string { return "gymops:trainer:" + id }
func roomKey(id string) string    { return "gymops:room:" + id }

func (d *Directory) CreateMember(ctx context.Context, m *domain.Member) error {
	if err := d.DirectoryRepo.CreateMember(ctx, m); err != nil {
		return err
	}
	d.set(ctx, memberKey(m.ID), m)
	return nil
}

func (d *Directory) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	var m domain.Member
	if d.get(ctx, memberKey(id), &m) {
		return &m, nil
	}

	found, err := d.DirectoryRepo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	d.set(ctx, memberKey(id), found)
	return found, nil
}

func (d *Directory) CreateTrainer(ctx context.Context, t *domain.Trainer) error {
	if err := d.DirectoryRepo.CreateTrainer(ctx, t); err != nil {
		return err
	}
	d.set(ctx, trainerKey(t.ID), t)
	return nil
}

func (d *Directory) GetTrainer(ctx context.Context, id string) (*domain.Trainer, error) {
	var t domain.Trainer
	if d.get(ctx, trainerKey(id), &t) {
		return &t, nil
	}

	found, err := d.DirectoryRepo.GetTrainer(ctx, id)
	if err != nil {
		return nil, err
	}
	d.set(ctx, trainerKey(id), found)
	return found, nil
}

func (d *Directory) CreateRoom(ctx context.Context, r *domain.Room) error {
	if err := d.DirectoryRepo.CreateRoom(ctx, r); err != nil {
		return err
	}
	d.set(ctx, roomKey(r.ID), r)
	return nil
}

func (d *Directory) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	var r domain.Room
	if d.get(ctx, roomKey(id), &r) {
		return &r, nil
	}

	found, err := d.DirectoryRepo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	d.set(ctx, roomKey(id), found)
	return found, nil
}

func (d *Directory) get(ctx context.Context, key string, dst any) bool {
	raw, err := d.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			d.logger.Warn("directory cache read failed",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
		}
		return false
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		d.logger.Warn("directory cache entry is corrupt",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}
	return true
}

func (d *Directory) set(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err = d.client.Set(ctx, key, raw, d.ttl).Err(); err != nil {
		d.logger.Warn("directory cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}
