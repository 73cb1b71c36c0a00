package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/handler/dto"
	"github.com/stpnv0/GymOps/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type DirectorySvc interface {
	CreateMember(ctx context.Context, p domain.Principal, input domain.CreateMemberInput) (*domain.Member, error)
	CreateTrainer(ctx context.Context, p domain.Principal, input domain.CreateTrainerInput) (*domain.Trainer, error)
	CreateRoom(ctx context.Context, p domain.Principal, input domain.CreateRoomInput) (*domain.Room, error)
	GetMember(ctx context.Context, p domain.Principal, id string) (*domain.Member, error)
	SearchMembers(ctx context.Context, p domain.Principal, name string) ([]*domain.Member, error)
	GetTrainer(ctx context.Context, id string) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]*domain.Trainer, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

type ScheduleSvc interface {
	CreateClass(ctx context.Context, p domain.Principal, input domain.CreateClassInput) (*domain.ClassSession, error)
	GetClass(ctx context.Context, id string) (*domain.ClassSession, error)
	EnrollMember(ctx context.Context, p domain.Principal, memberID, classID string) (*domain.ClassSession, error)
	UnenrollMember(ctx context.Context, p domain.Principal, memberID, classID string) (*domain.ClassSession, error)
	CancelClass(ctx context.Context, p domain.Principal, classID string) (*domain.ClassSession, error)
	CompleteClass(ctx context.Context, p domain.Principal, classID string) (*domain.ClassSession, error)
	ListAvailableClasses(ctx context.Context) ([]*domain.ClassListing, error)
	ListMemberClasses(ctx context.Context, p domain.Principal, memberID string) ([]*domain.ClassListing, error)
	ListTrainerClasses(ctx context.Context, trainerID string) ([]*domain.ClassListing, error)

	DefineAvailability(ctx context.Context, p domain.Principal, input domain.DefineAvailabilityInput) (*domain.AvailabilitySlot, error)
	DeleteAvailability(ctx context.Context, p domain.Principal, trainerID, slotID string) error
	ListAvailability(ctx context.Context, trainerID string) ([]*domain.AvailabilitySlot, error)

	BookPTSession(ctx context.Context, p domain.Principal, input domain.BookPTSessionInput) (*domain.PTSession, error)
	CancelPTSession(ctx context.Context, p domain.Principal, sessionID string) (*domain.PTSession, error)
	GetPTSession(ctx context.Context, p domain.Principal, sessionID string) (*domain.PTSession, error)
	ListMemberPTSessions(ctx context.Context, p domain.Principal, memberID string) ([]*domain.PTSession, error)
	ListTrainerPTSessions(ctx context.Context, p domain.Principal, trainerID string) ([]*domain.PTSession, error)
}

type BillingSvc interface {
	CreateInvoice(ctx context.Context, p domain.Principal, input domain.CreateInvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, p domain.Principal, id string) (*domain.Invoice, error)
	Remaining(ctx context.Context, p domain.Principal, id string) (domain.Money, error)
	ListMemberInvoices(ctx context.Context, p domain.Principal, memberID string) ([]*domain.Invoice, error)
	RecordPayment(ctx context.Context, p domain.Principal, input domain.RecordPaymentInput) (*domain.Invoice, error)
}

type AssetSvc interface {
	CreateEquipment(ctx context.Context, p domain.Principal, input domain.CreateEquipmentInput) (*domain.Equipment, error)
	GetEquipment(ctx context.Context, id string) (*domain.Equipment, error)
	ListEquipment(ctx context.Context, roomID string) ([]*domain.Equipment, error)
	ListMaintenanceLogs(ctx context.Context, equipmentID string) ([]*domain.MaintenanceLog, error)
	LogMaintenance(ctx context.Context, p domain.Principal, equipmentID, issue string) (*domain.MaintenanceLog, *domain.Equipment, error)
	StartRepair(ctx context.Context, p domain.Principal, equipmentID string) (*domain.Equipment, error)
	ResolveMaintenance(ctx context.Context, p domain.Principal, logID, notes string) (*domain.MaintenanceLog, *domain.Equipment, error)
}

// RejectionRecorder counts rejected commands by error kind.
type RejectionRecorder interface {
	RecordRejection(code string)
}

type Handler struct {
	directoryService DirectorySvc
	scheduleService  ScheduleSvc
	billingService   BillingSvc
	assetService     AssetSvc
	rejections       RejectionRecorder
}

// NewHandler wires the HTTP handlers. rejections may be nil.
func NewHandler(
	directoryService DirectorySvc,
	scheduleService ScheduleSvc,
	billingService BillingSvc,
	assetService AssetSvc,
	rejections RejectionRecorder,
) *Handler {
	return &Handler{
		directoryService: directoryService,
		scheduleService:  scheduleService,
		billingService:   billingService,
		assetService:     assetService,
		rejections:       rejections,
	}
}

func (h *Handler) caller(c *ginext.Context) (domain.Principal, bool) {
	p, ok := middleware.Principal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing principal", Code: "UNAUTHENTICATED"})
	}
	return p, ok
}

// pathID reads a uuid path parameter and writes a 400 when it is malformed.
func pathID(c *ginext.Context, param, what string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		badRequest(c, "invalid "+what+" id")
		return "", false
	}
	return id, true
}

func parseTime(c *ginext.Context, field, value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		badRequest(c, "invalid "+field+" format, expected RFC3339")
		return time.Time{}, false
	}
	return t.UTC(), true
}

func badRequest(c *ginext.Context, msg string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg, Code: "VALIDATION"})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	code := domain.ErrorCode(err)
	status := statusFor(code)
	if status == http.StatusInternalServerError {
		c.JSON(status, dto.ErrorResponse{Error: "internal server error", Code: code})
		return
	}

	if h.rejections != nil {
		h.rejections.RecordRejection(code)
	}
	c.JSON(status, dto.ErrorResponse{Error: err.Error(), Code: code})
}

func statusFor(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "UNAUTHORIZED":
		return http.StatusForbidden
	case "VALIDATION", "INVALID_RANGE", "INVALID_AMOUNT":
		return http.StatusBadRequest
	case "INTERNAL":
		return http.StatusInternalServerError
	default:
		return http.StatusConflict
	}
}
