package handler

import (
	"net/http"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateCourt(c *ginext.Context) {
	var req dto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	court, err := h.courtService.Create(c.Request.Context(), domain.CreateCourtInput{Name: req.Name})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCourtResponse(court))
}

func (h *Handler) GetCourt(c *ginext.Context) {
	id, ok := pathID(c, "tennis court")
	if !ok {
		return
	}

	court, err := h.courtService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourtResponse(court))
}

func (h *Handler) GetCourtSchedules(c *ginext.Context) {
	id, ok := pathID(c, "tennis court")
	if !ok {
		return
	}

	schedules, err := h.scheduleService.ListByCourt(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScheduleResponses(schedules))
}

// GetCourtDetails returns the court together with its slots.
func (h *Handler) GetCourtDetails(c *ginext.Context) {
	id, ok := pathID(c, "tennis court")
	if !ok {
		return
	}

	details, err := h.courtService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCourtDetailsResponse(details))
}

func (h *Handler) ListCourts(c *ginext.Context) {
	courts, err := h.courtService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CourtResponse, 0, len(courts))
	for _, court := range courts {
		resp = append(resp, dto.ToCourtResponse(court))
	}

	c.JSON(http.StatusOK, resp)
}
