package domain

import "time"

type Member struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (m *Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

type Trainer struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Email         string    `json:"email"`
	Certification string    `json:"certification"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t *Trainer) FullName() string {
	return t.FirstName + " " + t.LastName
}

type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateMemberInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	TelegramChatID *int64
}

type CreateTrainerInput struct {
	FirstName     string
	LastName      string
	Email         string
	Certification string
}

type CreateRoomInput struct {
	Name     string
	Capacity int
}
