package dto

type CreateMemberRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type CreateTrainerRequest struct {
	FirstName     string `json:"first_name" binding:"required"`
	LastName      string `json:"last_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Certification string `json:"certification"`
}

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type CreateClassRequest struct {
	Name            string `json:"name" binding:"required"`
	TrainerID       string `json:"trainer_id" binding:"required,uuid"`
	RoomID          string `json:"room_id" binding:"required,uuid"`
	StartsAt        string `json:"starts_at" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"gte=0"`
	Capacity        int    `json:"capacity" binding:"required,gt=0"`
}

type EnrollmentRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

type DefineAvailabilityRequest struct {
	StartsAt string `json:"starts_at" binding:"required"`
	EndsAt   string `json:"ends_at" binding:"required"`
	Notes    string `json:"notes"`
}

type BookPTSessionRequest struct {
	MemberID    string  `json:"member_id" binding:"required,uuid"`
	TrainerID   string  `json:"trainer_id" binding:"required,uuid"`
	RoomID      *string `json:"room_id" binding:"omitempty,uuid"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	EndsAt      string  `json:"ends_at" binding:"required"`
	SessionType string  `json:"session_type"`
	Notes       string  `json:"notes"`
}

type LineItemRequest struct {
	Description    string `json:"description" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required,gt=0"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"gte=0"`
}

type CreateInvoiceRequest struct {
	MemberID string            `json:"member_id" binding:"required,uuid"`
	DueDate  string            `json:"due_date"`
	Notes    string            `json:"notes"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1,dive"`
}

type RecordPaymentRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Reference   string `json:"reference"`
}

type CreateEquipmentRequest struct {
	Name   string `json:"name" binding:"required"`
	RoomID string `json:"room_id" binding:"required,uuid"`
}

type LogMaintenanceRequest struct {
	IssueDescription string `json:"issue_description" binding:"required"`
}

type ResolveMaintenanceRequest struct {
	ResolutionNotes string `json:"resolution_notes"`
}
