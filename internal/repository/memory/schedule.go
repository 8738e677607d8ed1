package memory

import (
	"context"
	"sort"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type ScheduleRepository struct {
	store *Store
}

func NewScheduleRepo(store *Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

func (r *ScheduleRepository) Create(_ context.Context, s *domain.Schedule) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.courts[s.CourtID]; !ok {
		return domain.ErrCourtNotFound
	}
	for _, existing := range r.store.schedules {
		if existing.CourtID == s.CourtID && existing.StartDateTime.Equal(s.StartDateTime) {
			return domain.ErrSlotAlreadyScheduled
		}
	}

	r.store.schedules[s.ID] = *s
	return nil
}

func (r *ScheduleRepository) GetByID(_ context.Context, id string) (*domain.Schedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.schedules[id]
	if !ok {
		return nil, domain.ErrScheduleNotFound
	}
	return &s, nil
}

func (r *ScheduleRepository) GetByCourtAndStart(_ context.Context, courtID string, start time.Time) (*domain.Schedule, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, s := range r.store.schedules {
		if s.CourtID == courtID && s.StartDateTime.Equal(start) {
			return &s, nil
		}
	}
	return nil, domain.ErrScheduleNotFound
}

func (r *ScheduleRepository) List(_ context.Context) ([]*domain.Schedule, error) {
	return r.filter(func(domain.Schedule) bool { return true }), nil
}

func (r *ScheduleRepository) ListByCourt(_ context.Context, courtID string) ([]*domain.Schedule, error) {
	return r.filter(func(s domain.Schedule) bool { return s.CourtID == courtID }), nil
}

func (r *ScheduleRepository) ListInRange(_ context.Context, start, end time.Time) ([]*domain.Schedule, error) {
	return r.filter(func(s domain.Schedule) bool { return s.Within(start, end) }), nil
}

func (r *ScheduleRepository) filter(keep func(domain.Schedule) bool) []*domain.Schedule {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var res []*domain.Schedule
	for _, s := range r.store.schedules {
		if keep(s) {
			s := s
			res = append(res, &s)
		}
	}
	sortSchedules(res)

	return res
}

func sortSchedules(s []*domain.Schedule) {
	sort.Slice(s, func(i, j int) bool {
		if !s[i].StartDateTime.Equal(s[j].StartDateTime) {
			return s[i].StartDateTime.Before(s[j].StartDateTime)
		}
		return s[i].CourtID < s[j].CourtID
	})
}
