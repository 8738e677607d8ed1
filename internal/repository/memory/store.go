// Package memory keeps every entity in process. All mutations of a Store run
// under one lock, so each repository call is a single unit of work.
package memory

import (
	"sync"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	courts       map[string]domain.Court
	schedules    map[string]domain.Schedule
	guests       map[string]domain.Guest
	reservations map[string]domain.Reservation
}

func NewStore() *Store {
	return &Store{
		courts:       make(map[string]domain.Court),
		schedules:    make(map[string]domain.Schedule),
		guests:       make(map[string]domain.Guest),
		reservations: make(map[string]domain.Reservation),
	}
}

func copyReservation(r domain.Reservation) *domain.Reservation {
	if r.PreviousReservationID != nil {
		prev := *r.PreviousReservationID
		r.PreviousReservationID = &prev
	}
	return &r
}
