package memory

import (
	"context"
	"sort"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type CourtRepository struct {
	store *Store
}

func NewCourtRepo(store *Store) *CourtRepository {
	return &CourtRepository{store: store}
}

func (r *CourtRepository) Create(_ context.Context, c *domain.Court) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.courts[c.ID] = *c
	return nil
}

func (r *CourtRepository) GetByID(_ context.Context, id string) (*domain.Court, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.courts[id]
	if !ok {
		return nil, domain.ErrCourtNotFound
	}
	return &c, nil
}

func (r *CourtRepository) List(_ context.Context) ([]*domain.Court, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res := make([]*domain.Court, 0, len(r.store.courts))
	for _, c := range r.store.courts {
		c := c
		res = append(res, &c)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })

	return res, nil
}
