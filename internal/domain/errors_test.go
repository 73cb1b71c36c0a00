package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: nil, want: ""},
		{err: ErrInvoiceNotFound, want: "NOT_FOUND"},
		{err: fmt.Errorf("enroll: %w", ErrClassFull), want: "CLASS_FULL"},
		{err: ErrAlreadyEnrolled, want: "ALREADY_ENROLLED"},
		{err: ErrClassNotOpen, want: "CLASS_NOT_OPEN"},
		{err: ErrNotEnrolled, want: "NOT_ENROLLED"},
		{err: ErrSlotOverlap, want: "SLOT_OVERLAP"},
		{err: ErrSlotInUse, want: "SLOT_IN_USE"},
		{err: ErrOutsideAvailability, want: "OUTSIDE_AVAILABILITY"},
		{err: ErrTrainerConflict, want: "TRAINER_CONFLICT"},
		{err: ErrRoomConflict, want: "ROOM_CONFLICT"},
		{err: ErrMemberConflict, want: "MEMBER_CONFLICT"},
		{err: ErrInvalidRange, want: "INVALID_RANGE"},
		{err: ErrInvalidAmount, want: "INVALID_AMOUNT"},
		{err: fmt.Errorf("record payment: %w", ErrOverpayment), want: "OVERPAYMENT"},
		{err: ErrMaintenanceAlreadyOpen, want: "MAINTENANCE_ALREADY_OPEN"},
		{err: ErrInvalidTransition, want: "INVALID_STATE_TRANSITION"},
		{err: ErrUnauthorized, want: "UNAUTHORIZED"},
		{err: fmt.Errorf("%w: name is required", ErrValidation), want: "VALIDATION"},
		{err: errors.New("connection reset"), want: "INTERNAL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorCode(tt.err), "%v", tt.err)
	}
}

func TestPrincipal(t *testing.T) {
	member := Principal{Role: RoleMember, SubjectID: "m1"}
	trainer := Principal{Role: RoleTrainer, SubjectID: "m1"}

	assert.True(t, member.IsMember("m1"))
	assert.False(t, member.IsTrainer("m1"))
	assert.False(t, trainer.IsMember("m1"))
	assert.True(t, trainer.IsTrainer("m1"))
	assert.False(t, Role("owner").Valid())
}
