package ports

import (
	"context"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type GuestRepo interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	GetByName(ctx context.Context, name string) (*domain.Guest, error)
	List(ctx context.Context) ([]*domain.Guest, error)
	Update(ctx context.Context, g *domain.Guest) error
	Delete(ctx context.Context, id string) error
}
