package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type GuestRepository struct {
	store *Store
}

func NewGuestRepo(store *Store) *GuestRepository {
	return &GuestRepository{store: store}
}

func (r *GuestRepository) Create(_ context.Context, g *domain.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.nameTaken(g.Name, g.ID) {
		return domain.ErrGuestNameTaken
	}

	r.store.guests[g.ID] = *g
	return nil
}

func (r *GuestRepository) GetByID(_ context.Context, id string) (*domain.Guest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	g, ok := r.store.guests[id]
	if !ok {
		return nil, domain.ErrGuestNotFound
	}
	return &g, nil
}

func (r *GuestRepository) GetByName(_ context.Context, name string) (*domain.Guest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, g := range r.store.guests {
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, domain.ErrGuestNotFound
}

func (r *GuestRepository) List(_ context.Context) ([]*domain.Guest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res := make([]*domain.Guest, 0, len(r.store.guests))
	for _, g := range r.store.guests {
		g := g
		res = append(res, &g)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })

	return res, nil
}

func (r *GuestRepository) Update(_ context.Context, g *domain.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guests[g.ID]; !ok {
		return domain.ErrGuestNotFound
	}
	if r.nameTaken(g.Name, g.ID) {
		return domain.ErrGuestNameTaken
	}

	r.store.guests[g.ID] = *g
	return nil
}

func (r *GuestRepository) Delete(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.guests[id]; !ok {
		return domain.ErrGuestNotFound
	}
	for _, res := range r.store.reservations {
		if res.GuestID == id {
			return domain.ErrGuestHasReservations
		}
	}

	delete(r.store.guests, id)
	return nil
}

// nameTaken must be called with the lock held.
func (r *GuestRepository) nameTaken(name, exceptID string) bool {
	for _, g := range r.store.guests {
		if g.Name == name && g.ID != exceptID {
			return true
		}
	}
	return false
}
