package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrMemberNotFound      = fmt.Errorf("member %w", ErrNotFound)
	ErrTrainerNotFound     = fmt.Errorf("trainer %w", ErrNotFound)
	ErrRoomNotFound        = fmt.Errorf("room %w", ErrNotFound)
	ErrClassNotFound       = fmt.Errorf("class %w", ErrNotFound)
	ErrSlotNotFound        = fmt.Errorf("availability slot %w", ErrNotFound)
	ErrPTSessionNotFound   = fmt.Errorf("pt session %w", ErrNotFound)
	ErrInvoiceNotFound     = fmt.Errorf("invoice %w", ErrNotFound)
	ErrEquipmentNotFound   = fmt.Errorf("equipment %w", ErrNotFound)
	ErrMaintenanceNotFound = fmt.Errorf("maintenance log %w", ErrNotFound)
)

// Scheduling engine: classes.
var (
	ErrClassFull       = errors.New("class is full")
	ErrAlreadyEnrolled = errors.New("member is already enrolled in this class")
	ErrClassNotOpen    = errors.New("class is not open for enrollment")
	ErrNotEnrolled     = errors.New("member is not enrolled in this class")
)

// Scheduling engine: trainer timeline.
var (
	ErrSlotOverlap         = errors.New("availability slot overlaps an existing slot")
	ErrSlotInUse           = errors.New("availability slot has scheduled sessions")
	ErrOutsideAvailability = errors.New("session is outside trainer availability")
	ErrTrainerConflict     = errors.New("trainer is already booked for this time")
	ErrRoomConflict        = errors.New("room is already booked for this time")
	ErrMemberConflict      = errors.New("member is already booked for this time")
	ErrInvalidRange        = errors.New("start must be before end")
)

// Billing ledger.
var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	ErrOverpayment   = errors.New("payment exceeds remaining balance")
)

// Asset lifecycle.
var (
	ErrMaintenanceAlreadyOpen = errors.New("equipment already has an open maintenance log")
	ErrInvalidTransition      = errors.New("invalid state transition")
)

var (
	ErrUnauthorized = errors.New("not permitted for this role")
	ErrValidation   = errors.New("validation error")
)

// ErrorCode returns the stable error kind reported to API clients.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrClassFull):
		return "CLASS_FULL"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "ALREADY_ENROLLED"
	case errors.Is(err, ErrClassNotOpen):
		return "CLASS_NOT_OPEN"
	case errors.Is(err, ErrNotEnrolled):
		return "NOT_ENROLLED"
	case errors.Is(err, ErrSlotOverlap):
		return "SLOT_OVERLAP"
	case errors.Is(err, ErrSlotInUse):
		return "SLOT_IN_USE"
	case errors.Is(err, ErrOutsideAvailability):
		return "OUTSIDE_AVAILABILITY"
	case errors.Is(err, ErrTrainerConflict):
		return "TRAINER_CONFLICT"
	case errors.Is(err, ErrRoomConflict):
		return "ROOM_CONFLICT"
	case errors.Is(err, ErrMemberConflict):
		return "MEMBER_CONFLICT"
	case errors.Is(err, ErrInvalidRange):
		return "INVALID_RANGE"
	case errors.Is(err, ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, ErrOverpayment):
		return "OVERPAYMENT"
	case errors.Is(err, ErrMaintenanceAlreadyOpen):
		return "MAINTENANCE_ALREADY_OPEN"
	case errors.Is(err, ErrInvalidTransition):
		return "INVALID_STATE_TRANSITION"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrValidation):
		return "VALIDATION"
	default:
		return "INTERNAL"
	}
}
