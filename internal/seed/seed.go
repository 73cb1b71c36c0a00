// Package seed loads a YAML description of a gym and creates it through the
// services as an administrator.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/yaml.v3"
)

// File is the seed document. Entities reference each other by Key.
type File struct {
	Rooms        []Room         `yaml:"rooms"`
	Trainers     []Trainer      `yaml:"trainers"`
	Members      []Member       `yaml:"members"`
	Equipment    []Equipment    `yaml:"equipment"`
	Availability []Availability `yaml:"availability"`
	Classes      []Class        `yaml:"classes"`
}

type Room struct {
	Key      string `yaml:"key"`
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

type Trainer struct {
	Key           string `yaml:"key"`
	FirstName     string `yaml:"first_name"`
	LastName      string `yaml:"last_name"`
	Email         string `yaml:"email"`
	Certification string `yaml:"certification"`
}

type Member struct {
	Key            string `yaml:"key"`
	FirstName      string `yaml:"first_name"`
	LastName       string `yaml:"last_name"`
	Email          string `yaml:"email"`
	Phone          string `yaml:"phone"`
	TelegramChatID *int64 `yaml:"telegram_chat_id"`
}

type Equipment struct {
	Name string `yaml:"name"`
	Room string `yaml:"room"`
}

type Availability struct {
	Trainer  string    `yaml:"trainer"`
	StartsAt time.Time `yaml:"starts_at"`
	EndsAt   time.Time `yaml:"ends_at"`
	Notes    string    `yaml:"notes"`
}

type Class struct {
	Name            string    `yaml:"name"`
	Trainer         string    `yaml:"trainer"`
	Room            string    `yaml:"room"`
	StartsAt        time.Time `yaml:"starts_at"`
	DurationMinutes int       `yaml:"duration_minutes"`
	Capacity        int       `yaml:"capacity"`
}

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}
	return &f, nil
}

type directoryCreator interface {
	CreateMember(ctx context.Context, p domain.Principal, input domain.CreateMemberInput) (*domain.Member, error)
	CreateTrainer(ctx context.Context, p domain.Principal, input domain.CreateTrainerInput) (*domain.Trainer, error)
	CreateRoom(ctx context.Context, p domain.Principal, input domain.CreateRoomInput) (*domain.Room, error)
}

type scheduleCreator interface {
	CreateClass(ctx context.Context, p domain.Principal, input domain.CreateClassInput) (*domain.ClassSession, error)
	DefineAvailability(ctx context.Context, p domain.Principal, input domain.DefineAvailabilityInput) (*domain.AvailabilitySlot, error)
}

type equipmentCreator interface {
	CreateEquipment(ctx context.Context, p domain.Principal, input domain.CreateEquipmentInput) (*domain.Equipment, error)
}

// Result maps seed keys to the ids the services assigned.
type Result struct {
	Rooms        map[string]string
	Trainers     map[string]string
	Members      map[string]string
	Equipment    int
	Availability int
	Classes      int
}

type Seeder struct {
	directory directoryCreator
	schedule  scheduleCreator
	assets    equipmentCreator
	logger    logger.Logger
}

func NewSeeder(directory directoryCreator, schedule scheduleCreator, assets equipmentCreator, logger logger.Logger) *Seeder {
	return &Seeder{
		directory: directory,
		schedule:  schedule,
		assets:    assets,
		logger:    logger,
	}
}

var admin = domain.Principal{Role: domain.RoleAdmin, SubjectID: "seed"}

// Apply creates the file's entities in dependency order and stops at the
// first rejected command.
func (s *Seeder) Apply(ctx context.Context, f *File) (*Result, error) {
	res := &Result{
		Rooms:    make(map[string]string, len(f.Rooms)),
		Trainers: make(map[string]string, len(f.Trainers)),
		Members:  make(map[string]string, len(f.Members)),
	}

	for _, r := range f.Rooms {
		room, err := s.directory.CreateRoom(ctx, admin, domain.CreateRoomInput{Name: r.Name, Capacity: r.Capacity})
		if err != nil {
			return res, fmt.Errorf("room %q: %w", r.Key, err)
		}
		res.Rooms[r.Key] = room.ID
	}

	for _, t := range f.Trainers {
		trainer, err := s.directory.CreateTrainer(ctx, admin, domain.CreateTrainerInput{
			FirstName:     t.FirstName,
			LastName:      t.LastName,
			Email:         t.Email,
			Certification: t.Certification,
		})
		if err != nil {
			return res, fmt.Errorf("trainer %q: %w", t.Key, err)
		}
		res.Trainers[t.Key] = trainer.ID
	}

	for _, m := range f.Members {
		member, err := s.directory.CreateMember(ctx, admin, domain.CreateMemberInput{
			FirstName:      m.FirstName,
			LastName:       m.LastName,
			Email:          m.Email,
			Phone:          m.Phone,
			TelegramChatID: m.TelegramChatID,
		})
		if err != nil {
			return res, fmt.Errorf("member %q: %w", m.Key, err)
		}
		res.Members[m.Key] = member.ID
	}

	for _, e := range f.Equipment {
		roomID, err := lookup(res.Rooms, "room", e.Room)
		if err != nil {
			return res, fmt.Errorf("equipment %q: %w", e.Name, err)
		}
		if _, err = s.assets.CreateEquipment(ctx, admin, domain.CreateEquipmentInput{Name: e.Name, RoomID: roomID}); err != nil {
			return res, fmt.Errorf("equipment %q: %w", e.Name, err)
		}
		res.Equipment++
	}

	for i, a := range f.Availability {
		trainerID, err := lookup(res.Trainers, "trainer", a.Trainer)
		if err != nil {
			return res, fmt.Errorf("availability #%d: %w", i+1, err)
		}
		_, err = s.schedule.DefineAvailability(ctx, admin, domain.DefineAvailabilityInput{
			TrainerID: trainerID,
			StartsAt:  a.StartsAt.UTC(),
			EndsAt:    a.EndsAt.UTC(),
			Notes:     a.Notes,
		})
		if err != nil {
			return res, fmt.Errorf("availability #%d: %w", i+1, err)
		}
		res.Availability++
	}

	for _, c := range f.Classes {
		trainerID, err := lookup(res.Trainers, "trainer", c.Trainer)
		if err != nil {
			return res, fmt.Errorf("class %q: %w", c.Name, err)
		}
		roomID, err := lookup(res.Rooms, "room", c.Room)
		if err != nil {
			return res, fmt.Errorf("class %q: %w", c.Name, err)
		}
		_, err = s.schedule.CreateClass(ctx, admin, domain.CreateClassInput{
			Name:      c.Name,
			TrainerID: trainerID,
			RoomID:    roomID,
			StartsAt:  c.StartsAt.UTC(),
			Duration:  time.Duration(c.DurationMinutes) * time.Minute,
			Capacity:  c.Capacity,
		})
		if err != nil {
			return res, fmt.Errorf("class %q: %w", c.Name, err)
		}
		res.Classes++
	}

	s.logger.Info("seed applied",
		logger.Int("rooms", len(res.Rooms)),
		logger.Int("trainers", len(res.Trainers)),
		logger.Int("members", len(res.Members)),
		logger.Int("equipment", res.Equipment),
		logger.Int("availability", res.Availability),
		logger.Int("classes", res.Classes),
	)

	return res, nil
}

func lookup(ids map[string]string, kind, key string) (string, error) {
	id, ok := ids[key]
	if !ok {
		return "", fmt.Errorf("%w: unknown %s key %q", domain.ErrValidation, kind, key)
	}
	return id, nil
}
