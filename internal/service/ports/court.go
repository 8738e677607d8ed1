package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type CourtRepo interface {
	Create(ctx context.Context, c *domain.Court) error
	GetByID(ctx context.Context, id string) (*domain.Court, error)
	List(ctx context.Context) ([]*domain.Court, error)
}
