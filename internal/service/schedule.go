package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type ScheduleService struct {
	repo      ports.ScheduleRepo
	courtRepo ports.CourtRepo
	conflicts *ConflictChecker
	clock     ports.Clock
	logger    logger.Logger
}

func NewScheduleService(
	repo ports.ScheduleRepo,
	courtRepo ports.CourtRepo,
	conflicts *ConflictChecker,
	clock ports.Clock,
	logger logger.Logger,
) *ScheduleService {
	return &ScheduleService{
		repo:      repo,
		courtRepo: courtRepo,
		conflicts: conflicts,
		clock:     clock,
		logger:    logger,
	}
}

// AddSlot opens a one-hour slot on a court. Start times are kept at minute
// precision.
func (s *ScheduleService) AddSlot(ctx context.Context, input domain.CreateScheduleInput) (res *domain.Schedule, err error) {
	ctx, span := startSpan(ctx, "ScheduleService.AddSlot", attribute.String("court.id", input.CourtID))
	defer func() { endSpan(span, err) }()

	if input.StartDateTime.IsZero() {
		return nil, domain.ErrStartMissing
	}

	start := input.StartDateTime.Truncate(time.Minute)
	now := s.clock.Now()
	if !start.After(now) {
		return nil, domain.ErrPastSchedule
	}

	if _, err = s.courtRepo.GetByID(ctx, input.CourtID); err != nil {
		return nil, fmt.Errorf("check court: %w", err)
	}

	_, err = s.repo.GetByCourtAndStart(ctx, input.CourtID, start)
	switch {
	case err == nil:
		return nil, domain.ErrSlotAlreadyScheduled
	case !errors.Is(err, domain.ErrScheduleNotFound):
		return nil, fmt.Errorf("check slot: %w", err)
	}

	schedule := &domain.Schedule{
		ID:            uuid.New().String(),
		CourtID:       input.CourtID,
		StartDateTime: start,
		EndDateTime:   start.Add(domain.SlotDuration),
		CreatedAt:     now,
	}
	if err = s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	s.logger.Info("schedule slot added",
		logger.String("schedule_id", schedule.ID),
		logger.String("court_id", schedule.CourtID),
		logger.String("start", schedule.StartDateTime.Format(time.DateTime)),
	)

	return schedule, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScheduleService) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.repo.List(ctx)
}

func (s *ScheduleService) ListByCourt(ctx context.Context, courtID string) ([]*domain.Schedule, error) {
	if _, err := s.courtRepo.GetByID(ctx, courtID); err != nil {
		return nil, fmt.Errorf("check court: %w", err)
	}
	return s.repo.ListByCourt(ctx, courtID)
}

// ListInRange returns slots whose start and end both fall inside [start, end].
func (s *ScheduleService) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.repo.ListInRange(ctx, start, end)
}

// ListAvailableInRange is ListInRange without the slots that hold an active
// reservation.
func (s *ScheduleService) ListAvailableInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error) {
	schedules, err := s.ListInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	available := make([]*domain.Schedule, 0, len(schedules))
	for _, sc := range schedules {
		booked, err := s.conflicts.HasActiveReservation(ctx, sc.ID)
		if err != nil {
			return nil, err
		}
		if !booked {
			available = append(available, sc)
		}
	}

	return available, nil
}

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	}
	if start.After(end) {
		return fmt.Errorf("%w: start date must not be after end date", domain.ErrValidation)
	}
	return nil
}
