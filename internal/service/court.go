package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CourtService struct {
	repo         ports.CourtRepo
	scheduleRepo ports.ScheduleRepo
	clock        ports.Clock
	logger       logger.Logger
}

func NewCourtService(
	repo ports.CourtRepo,
	scheduleRepo ports.ScheduleRepo,
	clock ports.Clock,
	logger logger.Logger,
) *CourtService {
	return &CourtService{
		repo:         repo,
		scheduleRepo: scheduleRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (s *CourtService) Create(ctx context.Context, input domain.CreateCourtInput) (*domain.Court, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	court := &domain.Court{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Create(ctx, court); err != nil {
		return nil, fmt.Errorf("create court: %w", err)
	}

	s.logger.Info("tennis court created",
		logger.String("court_id", court.ID),
		logger.String("name", court.Name),
	)

	return court, nil
}

func (s *CourtService) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	return s.repo.GetByID(ctx, id)
}

// GetDetails returns the court together with its slots ordered by start time.
func (s *CourtService) GetDetails(ctx context.Context, id string) (*domain.CourtDetails, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	schedules, err := s.scheduleRepo.ListByCourt(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	details := &domain.CourtDetails{
		Court:     *court,
		Schedules: make([]domain.Schedule, len(schedules)),
	}
	for i, sc := range schedules {
		details.Schedules[i] = *sc
	}

	return details, nil
}

func (s *CourtService) List(ctx context.Context) ([]*domain.Court, error) {
	return s.repo.List(ctx)
}
