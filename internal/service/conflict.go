package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/CourtBooker/internal/service/ports"
)

// ConflictChecker answers whether a slot is already taken by an active
// reservation.
type ConflictChecker struct {
	reservationRepo ports.ReservationRepo
}

func NewConflictChecker(reservationRepo ports.ReservationRepo) *ConflictChecker {
	return &ConflictChecker{reservationRepo: reservationRepo}
}

func (c *ConflictChecker) HasActiveReservation(ctx context.Context, scheduleID string) (bool, error) {
	reservations, err := c.reservationRepo.ListBySchedule(ctx, scheduleID)
	if err != nil {
		return false, fmt.Errorf("list reservations by schedule: %w", err)
	}

	for _, r := range reservations {
		if r.IsActive() {
			return true, nil
		}
	}

	return false, nil
}
