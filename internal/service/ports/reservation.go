package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

// ReservationRepo implementations must run Create, Settle and Reschedule as
// single units of work: the active-reservation and status checks they perform
// happen under the same isolation as their writes.
type ReservationRepo interface {
	// Create inserts r unless its schedule already holds an active reservation.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Reservation, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error)
	// Settle persists status, value and refund of r if the stored row is still
	// READY_TO_PLAY, otherwise it returns domain.ErrReservationNotReady.
	Settle(ctx context.Context, r *domain.Reservation) error
	// Reschedule settles prev and creates next atomically.
	Reschedule(ctx context.Context, prev, next *domain.Reservation) error
}
