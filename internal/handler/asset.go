package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEquipment(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	eq, err := h.assetService.CreateEquipment(c.Request.Context(), p, domain.CreateEquipmentInput{
		Name:   req.Name,
		RoomID: req.RoomID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEquipmentResponse(eq))
}

func (h *Handler) GetEquipment(c *ginext.Context) {
	id, ok := pathID(c, "id", "equipment")
	if !ok {
		return
	}

	eq, err := h.assetService.GetEquipment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEquipmentResponse(eq))
}

func (h *Handler) ListEquipment(c *ginext.Context) {
	roomID := c.Query("room_id")
	if roomID != "" {
		if _, err := uuid.Parse(roomID); err != nil {
			badRequest(c, "invalid room id")
			return
		}
	}

	items, err := h.assetService.ListEquipment(c.Request.Context(), roomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EquipmentResponse, 0, len(items))
	for _, e := range items {
		resp = append(resp, dto.ToEquipmentResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) LogMaintenance(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "equipment")
	if !ok {
		return
	}

	var req dto.LogMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	log, eq, err := h.assetService.LogMaintenance(c.Request.Context(), p, id, req.IssueDescription)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MaintenanceResponse{
		Log:       dto.ToMaintenanceLogResponse(log),
		Equipment: dto.ToEquipmentResponse(eq),
	})
}

func (h *Handler) ListMaintenanceLogs(c *ginext.Context) {
	id, ok := pathID(c, "id", "equipment")
	if !ok {
		return
	}

	logs, err := h.assetService.ListMaintenanceLogs(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MaintenanceLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.ToMaintenanceLogResponse(l))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StartRepair(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "equipment")
	if !ok {
		return
	}

	eq, err := h.assetService.StartRepair(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEquipmentResponse(eq))
}

func (h *Handler) ResolveMaintenance(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "maintenance log")
	if !ok {
		return
	}

	var req dto.ResolveMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	log, eq, err := h.assetService.ResolveMaintenance(c.Request.Context(), p, id, req.ResolutionNotes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MaintenanceResponse{
		Log:       dto.ToMaintenanceLogResponse(log),
		Equipment: dto.ToEquipmentResponse(eq),
	})
}
