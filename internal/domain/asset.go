package domain

import "time"

type EquipmentStatus string

const (
	EquipmentOperational          EquipmentStatus = "OPERATIONAL"
	EquipmentMaintenanceRequested EquipmentStatus = "MAINTENANCE_REQUESTED"
	EquipmentUnderRepair          EquipmentStatus = "UNDER_REPAIR"
)

// Equipment cycles through these states indefinitely; there is no terminal state.
var equipmentTransitions = map[EquipmentStatus][]EquipmentStatus{
	EquipmentOperational:          {EquipmentMaintenanceRequested},
	EquipmentMaintenanceRequested: {EquipmentUnderRepair, EquipmentOperational},
	EquipmentUnderRepair:          {EquipmentOperational},
}

func (s EquipmentStatus) CanTransitionTo(to EquipmentStatus) bool {
	for _, next := range equipmentTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s EquipmentStatus) InMaintenance() bool {
	return s == EquipmentMaintenanceRequested || s == EquipmentUnderRepair
}

type MaintenanceStatus string

const (
	MaintenanceOpen     MaintenanceStatus = "OPEN"
	MaintenanceResolved MaintenanceStatus = "RESOLVED"
)

type Equipment struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	RoomID    string          `json:"room_id"`
	Status    EquipmentStatus `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type MaintenanceLog struct {
	ID               string            `json:"id"`
	EquipmentID      string            `json:"equipment_id"`
	IssueDescription string            `json:"issue_description"`
	Status           MaintenanceStatus `json:"status"`
	ReportedBy       string            `json:"reported_by"`
	CreatedAt        time.Time         `json:"created_at"`
	ResolvedAt       *time.Time        `json:"resolved_at"`
	ResolutionNotes  string            `json:"resolution_notes"`
}

// CheckLogMaintenance validates opening a new log; openLog is the current
// OPEN log for the equipment, if any.
func (e *Equipment) CheckLogMaintenance(openLog *MaintenanceLog) error {
	if openLog != nil {
		return ErrMaintenanceAlreadyOpen
	}
	if !e.Status.CanTransitionTo(EquipmentMaintenanceRequested) {
		return ErrInvalidTransition
	}
	return nil
}

func (e *Equipment) CheckStartRepair(openLog *MaintenanceLog) error {
	if openLog == nil || !e.Status.CanTransitionTo(EquipmentUnderRepair) {
		return ErrInvalidTransition
	}
	return nil
}

func (e *Equipment) CheckResolve(log *MaintenanceLog) error {
	if log.Status != MaintenanceOpen || log.EquipmentID != e.ID {
		return ErrInvalidTransition
	}
	if !e.Status.InMaintenance() || !e.Status.CanTransitionTo(EquipmentOperational) {
		return ErrInvalidTransition
	}
	return nil
}

type CreateEquipmentInput struct {
	Name   string
	RoomID string
}
