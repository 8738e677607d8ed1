package ports

import (
	"context"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	GetByCourtAndStart(ctx context.Context, courtID string, start time.Time) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	ListByCourt(ctx context.Context, courtID string) ([]*domain.Schedule, error)
	ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error)
}
