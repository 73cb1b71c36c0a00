package handler

import (
	"net/http"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	member, err := h.directoryService.CreateMember(c.Request.Context(), p, domain.CreateMemberInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) GetMember(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "member")
	if !ok {
		return
	}

	member, err := h.directoryService.GetMember(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *Handler) SearchMembers(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	members, err := h.directoryService.SearchMembers(c.Request.Context(), p, c.Query("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Trainers

func (h *Handler) CreateTrainer(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	trainer, err := h.directoryService.CreateTrainer(c.Request.Context(), p, domain.CreateTrainerInput{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Certification: req.Certification,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainerResponse(trainer))
}

func (h *Handler) GetTrainer(c *ginext.Context) {
	id, ok := pathID(c, "id", "trainer")
	if !ok {
		return
	}

	trainer, err := h.directoryService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainerResponse(trainer))
}

func (h *Handler) ListTrainers(c *ginext.Context) {
	trainers, err := h.directoryService.ListTrainers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TrainerResponse, 0, len(trainers))
	for _, t := range trainers {
		resp = append(resp, dto.ToTrainerResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

// Rooms

func (h *Handler) CreateRoom(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	room, err := h.directoryService.CreateRoom(c.Request.Context(), p, domain.CreateRoomInput{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) GetRoom(c *ginext.Context) {
	id, ok := pathID(c, "id", "room")
	if !ok {
		return
	}

	room, err := h.directoryService.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	rooms, err := h.directoryService.ListRooms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}
