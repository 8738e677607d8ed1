package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CourtSvc interface {
	Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error)
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	GetDetails(ctx context.Context, id string) (*domain.CourtDetails, error)
	List(ctx context.Context) ([]*domain.Court, error)
}

type ScheduleSvc interface {
	AddSlot(ctx context.Context, input domain.CreateScheduleInput) (*domain.Schedule, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListByCourt(ctx context.Context, courtID string) ([]*domain.Schedule, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error)
	ListAvailableInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error)
}

type GuestSvc interface {
	Create(ctx context.Context, input domain.GuestInput) (*domain.Guest, error)
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	GetByName(ctx context.Context, name string) (*domain.Guest, error)
	List(ctx context.Context) ([]*domain.Guest, error)
	Update(ctx context.Context, id string, input domain.GuestInput) (*domain.Guest, error)
	Delete(ctx context.Context, id string) error
}

type ReservationSvc interface {
	Book(ctx context.Context, guestID, scheduleID string) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
	Reschedule(ctx context.Context, id, scheduleID string) (*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
}

type Handler struct {
	courtService       CourtSvc
	scheduleService    ScheduleSvc
	guestService       GuestSvc
	reservationService ReservationSvc
}

func NewHandler(
	courtService CourtSvc,
	scheduleService ScheduleSvc,
	guestService GuestSvc,
	reservationService ReservationSvc,
) *Handler {
	return &Handler{
		courtService:       courtService,
		scheduleService:    scheduleService,
		guestService:       guestService,
		reservationService: reservationService,
	}
}

// pathID reads the :id parameter and writes 400 when it is not a UUID.
func pathID(c *ginext.Context, what string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
