package handler

import (
	"net/http"
	"strings"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateGuest(c *ginext.Context) {
	var req dto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.Create(c.Request.Context(), domain.GuestInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGuestResponse(guest))
}

func (h *Handler) GetGuest(c *ginext.Context) {
	id, ok := pathID(c, "guest")
	if !ok {
		return
	}

	guest, err := h.guestService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *Handler) SearchGuest(c *ginext.Context) {
	name := strings.TrimSpace(c.Query("name"))
	if name == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "name query parameter is required"})
		return
	}

	guest, err := h.guestService.GetByName(c.Request.Context(), name)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *Handler) ListGuests(c *ginext.Context) {
	guests, err := h.guestService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GuestResponse, 0, len(guests))
	for _, g := range guests {
		resp = append(resp, dto.ToGuestResponse(g))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateGuest(c *ginext.Context) {
	id, ok := pathID(c, "guest")
	if !ok {
		return
	}

	var req dto.GuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	guest, err := h.guestService.Update(c.Request.Context(), id, domain.GuestInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGuestResponse(guest))
}

func (h *Handler) DeleteGuest(c *ginext.Context) {
	id, ok := pathID(c, "guest")
	if !ok {
		return
	}

	if err := h.guestService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
