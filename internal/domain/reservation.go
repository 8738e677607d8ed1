package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusReadyToPlay ReservationStatus = "READY_TO_PLAY"
	ReservationStatusCancelled   ReservationStatus = "CANCELLED"
	ReservationStatusRescheduled ReservationStatus = "RESCHEDULED"
)

// ReservationFee is charged for every booking.
var ReservationFee = decimal.NewFromInt(10)

type Reservation struct {
	ID                    string              `json:"id"`
	GuestID               string              `json:"guest_id"`
	ScheduleID            string              `json:"schedule_id"`
	Status                ReservationStatus   `json:"status"`
	Value                 decimal.Decimal     `json:"value"`
	RefundValue           decimal.NullDecimal `json:"refund_value"`
	PreviousReservationID *string             `json:"previous_reservation_id"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

func (r *Reservation) IsActive() bool {
	return r.Status == ReservationStatusReadyToPlay
}

// Settle moves an active reservation into a terminal status, keeping the
// non-refunded remainder as its value.
func (r *Reservation) Settle(status ReservationStatus, refund decimal.Decimal, at time.Time) {
	r.Status = status
	r.Value = r.Value.Sub(refund)
	r.RefundValue = decimal.NewNullDecimal(refund)
	r.UpdatedAt = at
}
