package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type ReservationRepository struct {
	store *Store
}

func NewReservationRepo(store *Store) *ReservationRepository {
	return &ReservationRepository{store: store}
}

func (r *ReservationRepository) Create(_ context.Context, res *domain.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkInsert(res); err != nil {
		return err
	}

	r.store.reservations[res.ID] = *copyReservation(*res)
	return nil
}

func (r *ReservationRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return copyReservation(res), nil
}

func (r *ReservationRepository) List(_ context.Context) ([]*domain.Reservation, error) {
	return r.filter(func(domain.Reservation) bool { return true }), nil
}

func (r *ReservationRepository) ListBySchedule(_ context.Context, scheduleID string) ([]*domain.Reservation, error) {
	return r.filter(func(res domain.Reservation) bool { return res.ScheduleID == scheduleID }), nil
}

func (r *ReservationRepository) ListInRange(_ context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	return r.filter(func(res domain.Reservation) bool {
		s, ok := r.store.schedules[res.ScheduleID]
		return ok && s.Within(start, end)
	}), nil
}

func (r *ReservationRepository) Settle(_ context.Context, res *domain.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkSettle(res); err != nil {
		return err
	}

	r.store.reservations[res.ID] = *copyReservation(*res)
	return nil
}

func (r *ReservationRepository) Reschedule(_ context.Context, prev, next *domain.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.checkSettle(prev); err != nil {
		return err
	}
	if err := r.checkInsert(next); err != nil {
		return err
	}

	r.store.reservations[prev.ID] = *copyReservation(*prev)
	r.store.reservations[next.ID] = *copyReservation(*next)
	return nil
}

// checkInsert must be called with the write lock held.
func (r *ReservationRepository) checkInsert(res *domain.Reservation) error {
	if _, ok := r.store.guests[res.GuestID]; !ok {
		return domain.ErrGuestNotFound
	}
	if _, ok := r.store.schedules[res.ScheduleID]; !ok {
		return domain.ErrScheduleNotFound
	}
	if !res.IsActive() {
		return nil
	}
	for _, existing := range r.store.reservations {
		if existing.ScheduleID == res.ScheduleID && existing.IsActive() {
			return domain.ErrSlotAlreadyBooked
		}
	}
	return nil
}

// checkSettle must be called with the write lock held.
func (r *ReservationRepository) checkSettle(res *domain.Reservation) error {
	stored, ok := r.store.reservations[res.ID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	if !stored.IsActive() {
		return domain.ErrReservationNotReady
	}
	return nil
}

func (r *ReservationRepository) filter(keep func(domain.Reservation) bool) []*domain.Reservation {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Reservation
	for _, rv := range r.store.reservations {
		if keep(rv) {
			res = append(res, copyReservation(rv))
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})

	return res
}
