package dto

import (
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type TrainerResponse struct {
	ID            string `json:"id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Certification string `json:"certification,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type RoomResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type ClassResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TrainerID       string `json:"trainer_id"`
	RoomID          string `json:"room_id"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at"`
	DurationMinutes int    `json:"duration_minutes"`
	Capacity        int    `json:"capacity"`
	EnrolledCount   int    `json:"enrolled_count"`
	AvailableSpots  int    `json:"available_spots"`
	Status          string `json:"status"`
}

type ClassListingResponse struct {
	ClassResponse
	TrainerName string `json:"trainer_name"`
	RoomName    string `json:"room_name"`
}

type SlotResponse struct {
	ID        string `json:"id"`
	TrainerID string `json:"trainer_id"`
	StartsAt  string `json:"starts_at"`
	EndsAt    string `json:"ends_at"`
	Notes     string `json:"notes,omitempty"`
}

type PTSessionResponse struct {
	ID          string  `json:"id"`
	MemberID    string  `json:"member_id"`
	TrainerID   string  `json:"trainer_id"`
	RoomID      *string `json:"room_id,omitempty"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      string  `json:"ends_at"`
	SessionType string  `json:"session_type,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Status      string  `json:"status"`
}

type LineItemResponse struct {
	ID             string `json:"id"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	AmountCents    int64  `json:"amount_cents"`
}

type PaymentResponse struct {
	ID          string `json:"id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method,omitempty"`
	Reference   string `json:"reference,omitempty"`
	PaidAt      string `json:"paid_at"`
}

type InvoiceResponse struct {
	ID             string             `json:"id"`
	MemberID       string             `json:"member_id"`
	IssuedAt       string             `json:"issued_at"`
	DueDate        *string            `json:"due_date,omitempty"`
	Status         string             `json:"status"`
	Notes          string             `json:"notes,omitempty"`
	TotalCents     int64              `json:"total_cents"`
	PaidCents      int64              `json:"paid_cents"`
	RemainingCents int64              `json:"remaining_cents"`
	Items          []LineItemResponse `json:"items"`
	Payments       []PaymentResponse  `json:"payments"`
}

type EquipmentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RoomID    string `json:"room_id"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updated_at"`
}

type MaintenanceLogResponse struct {
	ID               string  `json:"id"`
	EquipmentID      string  `json:"equipment_id"`
	IssueDescription string  `json:"issue_description"`
	Status           string  `json:"status"`
	ReportedBy       string  `json:"reported_by"`
	CreatedAt        string  `json:"created_at"`
	ResolvedAt       *string `json:"resolved_at,omitempty"`
	ResolutionNotes  string  `json:"resolution_notes,omitempty"`
}

type MaintenanceResponse struct {
	Log       MaintenanceLogResponse `json:"log"`
	Equipment EquipmentResponse      `json:"equipment"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      formatTime(m.CreatedAt),
	}
}

func ToTrainerResponse(t *domain.Trainer) TrainerResponse {
	return TrainerResponse{
		ID:            t.ID,
		FirstName:     t.FirstName,
		LastName:      t.LastName,
		Email:         t.Email,
		Certification: t.Certification,
		CreatedAt:     formatTime(t.CreatedAt),
	}
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func ToClassResponse(c *domain.ClassSession) ClassResponse {
	return ClassResponse{
		ID:              c.ID,
		Name:            c.Name,
		TrainerID:       c.TrainerID,
		RoomID:          c.RoomID,
		StartsAt:        formatTime(c.StartsAt),
		EndsAt:          formatTime(c.EndsAt()),
		DurationMinutes: int(c.Duration.Minutes()),
		Capacity:        c.Capacity,
		EnrolledCount:   c.EnrolledCount,
		AvailableSpots:  c.AvailableSpots(),
		Status:          string(c.Status),
	}
}

func ToClassListingResponse(l *domain.ClassListing) ClassListingResponse {
	return ClassListingResponse{
		ClassResponse: ToClassResponse(&l.Class),
		TrainerName:   l.TrainerName,
		RoomName:      l.RoomName,
	}
}

func ToSlotResponse(s *domain.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		TrainerID: s.TrainerID,
		StartsAt:  formatTime(s.StartsAt),
		EndsAt:    formatTime(s.EndsAt),
		Notes:     s.Notes,
	}
}

func ToPTSessionResponse(s *domain.PTSession) PTSessionResponse {
	return PTSessionResponse{
		ID:          s.ID,
		MemberID:    s.MemberID,
		TrainerID:   s.TrainerID,
		RoomID:      s.RoomID,
		StartsAt:    formatTime(s.StartsAt),
		EndsAt:      formatTime(s.EndsAt),
		SessionType: s.SessionType,
		Notes:       s.Notes,
		Status:      string(s.Status),
	}
}

func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, LineItemResponse{
			ID:             it.ID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: int64(it.UnitPrice),
			AmountCents:    int64(it.Amount()),
		})
	}

	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		payments = append(payments, PaymentResponse{
			ID:          p.ID,
			AmountCents: int64(p.Amount),
			Method:      p.Method,
			Reference:   p.Reference,
			PaidAt:      formatTime(p.PaidAt),
		})
	}

	return InvoiceResponse{
		ID:             inv.ID,
		MemberID:       inv.MemberID,
		IssuedAt:       formatTime(inv.IssuedAt),
		DueDate:        formatTimePtr(inv.DueDate),
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		TotalCents:     int64(inv.TotalAmount),
		PaidCents:      int64(inv.Paid()),
		RemainingCents: int64(inv.Remaining()),
		Items:          items,
		Payments:       payments,
	}
}

func ToEquipmentResponse(e *domain.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:        e.ID,
		Name:      e.Name,
		RoomID:    e.RoomID,
		Status:    string(e.Status),
		UpdatedAt: formatTime(e.UpdatedAt),
	}
}

func ToMaintenanceLogResponse(l *domain.MaintenanceLog) MaintenanceLogResponse {
	return MaintenanceLogResponse{
		ID:               l.ID,
		EquipmentID:      l.EquipmentID,
		IssueDescription: l.IssueDescription,
		Status:           string(l.Status),
		ReportedBy:       l.ReportedBy,
		CreatedAt:        formatTime(l.CreatedAt),
		ResolvedAt:       formatTimePtr(l.ResolvedAt),
		ResolutionNotes:  l.ResolutionNotes,
	}
}
