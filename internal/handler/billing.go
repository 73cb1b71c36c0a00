package handler

import (
	"net/http"
	"time"

	"github.com/stpnv0/GymOps/internal/domain"
	"github.com/stpnv0/GymOps/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateInvoice(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		t, ok := parseTime(c, "due_date", req.DueDate)
		if !ok {
			return
		}
		dueDate = &t
	}

	items := make([]domain.LineItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.LineItemInput{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   domain.Money(it.UnitPriceCents),
		})
	}

	invoice, err := h.billingService.CreateInvoice(c.Request.Context(), p, domain.CreateInvoiceInput{
		MemberID: req.MemberID,
		DueDate:  dueDate,
		Notes:    req.Notes,
		Items:    items,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) GetInvoice(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *Handler) GetInvoiceBalance(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	remaining, err := h.billingService.Remaining(c.Request.Context(), p, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{
		"invoice_id":      id,
		"remaining_cents": int64(remaining),
		"remaining":       remaining.String(),
	})
}

func (h *Handler) ListMemberInvoices(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	memberID, ok := pathID(c, "id", "member")
	if !ok {
		return
	}

	invoices, err := h.billingService.ListMemberInvoices(c.Request.Context(), p, memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		resp = append(resp, dto.ToInvoiceResponse(inv))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RecordPayment(c *ginext.Context) {
	p, ok := h.caller(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "invoice")
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	invoice, err := h.billingService.RecordPayment(c.Request.Context(), p, domain.RecordPaymentInput{
		InvoiceID: id,
		Amount:    domain.Money(req.AmountCents),
		Method:    req.Method,
		Reference: req.Reference,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}
