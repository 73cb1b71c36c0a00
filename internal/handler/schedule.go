package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Classes

func (h *Handler) CreateClass(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startsAt, ok := parseTime(c, "starts_at", req.StartsAt)
	if !ok {
		return
	}

	class, err := h.scheduleService.CreateClass(c.Request.Context(), p, domain.CreateClassInput{
		Name:      req.Name,
		TrainerID: req.TrainerID,
		RoomID:    req.RoomID,
		StartsAt:  startsAt,
		Duration:  time.Duration(req.DurationMinutes) * time.Minute,
		Capacity:  req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToClassResponse(class))
}

func (h *Handler) GetClass(c *ginext.Context) {
	id, ok := pathID(c, "id", "class")
	if !ok {
		return
	}

	class, err := h.scheduleService.GetClass(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) ListAvailableClasses(c *ginext.Context) {
	listings, err := h.scheduleService.ListAvailableClasses(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

func (h *Handler) EnrollMember(c *ginext.Context) {
	h.changeEnrollment(c, h.scheduleService.EnrollMember)
}

func (h *Handler) UnenrollMember(c *ginext.Context) {
	h.changeEnrollment(c, h.scheduleService.UnenrollMember)
}

type enrollmentFunc func(ctx context.Context, p domain.Principal, memberID, classID string) (*domain.ClassSession, error)

func (h *Handler) changeEnrollment(c *ginext.Context, fn enrollmentFunc) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	classID, ok := pathID(c, "id", "class")
	if !ok {
		return
	}

	var req dto.EnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	class, err := fn(c.Request.Context(), p, req.MemberID, classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) CancelClass(c *ginext.Context) {
	h.transitionClass(c, h.scheduleService.CancelClass)
}

func (h *Handler) CompleteClass(c *ginext.Context) {
	h.transitionClass(c, h.scheduleService.CompleteClass)
}

type classTransitionFunc func(ctx context.Context, p domain.Principal, classID string) (*domain.ClassSession, error)

func (h *Handler) transitionClass(c *ginext.Context, fn classTransitionFunc) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	classID, ok := pathID(c, "id", "class")
	if !ok {
		return
	}

	class, err := fn(c.Request.Context(), p, classID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToClassResponse(class))
}

func (h *Handler) ListMemberClasses(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "id", "member")
	if !ok {
		return
	}

	listings, err := h.scheduleService.ListMemberClasses(c.Request.Context(), p, memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

func (h *Handler) ListTrainerClasses(c *ginext.Context) {
	trainerID, ok := pathID(c, "id", "trainer")
	if !ok {
		return
	}

	listings, err := h.scheduleService.ListTrainerClasses(c.Request.Context(), trainerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toListingResponses(listings))
}

func toListingResponses(listings []*domain.ClassListing) []dto.ClassListingResponse {
	resp := make([]dto.ClassListingResponse, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, dto.ToClassListingResponse(l))
	}
	return resp
}

// Availability

func (h *Handler) DefineAvailability(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	trainerID, ok := pathID(c, "id", "trainer")
	if !ok {
		return
	}

	var req dto.DefineAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startsAt, ok := parseTime(c, "starts_at", req.StartsAt)
	if !ok {
		return
	}
	endsAt, ok := parseTime(c, "ends_at", req.EndsAt)
	if !ok {
		return
	}

	slot, err := h.scheduleService.DefineAvailability(c.Request.Context(), p, domain.DefineAvailabilityInput{
		TrainerID: trainerID,
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Notes:     req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) DeleteAvailability(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	trainerID, ok := pathID(c, "id", "trainer")
	if !ok {
		return
	}
	slotID, ok := pathID(c, "slot_id", "slot")
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteAvailability(c.Request.Context(), p, trainerID, slotID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListAvailability(c *ginext.Context) {
	trainerID, ok := pathID(c, "id", "trainer")
	if !ok {
		return
	}

	slots, err := h.scheduleService.ListAvailability(c.Request.Context(), trainerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// PT sessions

func (h *Handler) BookPTSession(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.BookPTSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	startsAt, ok := parseTime(c, "starts_at", req.StartsAt)
	if !ok {
		return
	}
	endsAt, ok := parseTime(c, "ends_at", req.EndsAt)
	if !ok {
		return
	}

	session, err := h.scheduleService.BookPTSession(c.Request.Context(), p, domain.BookPTSessionInput{
		MemberID:    req.MemberID,
		TrainerID:   req.TrainerID,
		RoomID:      req.RoomID,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		SessionType: req.SessionType,
		Notes:       req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPTSessionResponse(session))
}

func (h *Handler) GetPTSession(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.scheduleService.GetPTSession(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPTSessionResponse(session))
}

func (h *Handler) CancelPTSession(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.scheduleService.CancelPTSession(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPTSessionResponse(session))
}

func (h *Handler) ListMemberPTSessions(c *ginext.Context) {
	h.listPTSessions(c, "member", h.scheduleService.ListMemberPTSessions)
}

func (h *Handler) ListTrainerPTSessions(c *ginext.Context) {
	h.listPTSessions(c, "trainer", h.scheduleService.ListTrainerPTSessions)
}

type ptListFunc func(ctx context.Context, p domain.Principal, ownerID string) ([]*domain.PTSession, error)

func (h *Handler) listPTSessions(c *ginext.Context, owner string, fn ptListFunc) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	ownerID, ok := pathID(c, "id", owner)
	if !ok {
		return
	}

	sessions, err := fn(c.Request.Context(), p, ownerID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.PTSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToPTSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}
