package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"go.opentelemetry.io/otel/attribute"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	scheduleRepo    ports.ScheduleRepo
	guestRepo       ports.GuestRepo
	conflicts       *ConflictChecker
	clock           ports.Clock
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	scheduleRepo ports.ScheduleRepo,
	guestRepo ports.GuestRepo,
	conflicts *ConflictChecker,
	clock ports.Clock,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		guestRepo:       guestRepo,
		conflicts:       conflicts,
		clock:           clock,
		logger:          logger,
	}
}

func (s *ReservationService) Book(ctx context.Context, guestID, scheduleID string) (res *domain.Reservation, err error) {
	ctx, span := startSpan(ctx, "ReservationService.Book",
		attribute.String("guest.id", guestID),
		attribute.String("schedule.id", scheduleID),
	)
	defer func() { endSpan(span, err) }()

	r, err := s.newReservation(ctx, guestID, scheduleID)
	if err != nil {
		return nil, err
	}

	// the repository repeats the active-reservation check inside its transaction
	if err = s.reservationRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation booked",
		logger.String("reservation_id", r.ID),
		logger.String("guest_id", guestID),
		logger.String("schedule_id", scheduleID),
	)

	return r, nil
}

func (s *ReservationService) Cancel(ctx context.Context, id string) (res *domain.Reservation, err error) {
	ctx, span := startSpan(ctx, "ReservationService.Cancel", attribute.String("reservation.id", id))
	defer func() { endSpan(span, err) }()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if err = s.release(ctx, r, domain.ReservationStatusCancelled); err != nil {
		return nil, err
	}

	if err = s.reservationRepo.Settle(ctx, r); err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", r.ID),
		logger.String("refund", r.RefundValue.Decimal.String()),
	)

	return r, nil
}

// Reschedule releases the reservation and books its guest on scheduleID. The
// returned reservation is the new one, linked back to the released one.
func (s *ReservationService) Reschedule(ctx context.Context, id, scheduleID string) (res *domain.Reservation, err error) {
	ctx, span := startSpan(ctx, "ReservationService.Reschedule",
		attribute.String("reservation.id", id),
		attribute.String("schedule.id", scheduleID),
	)
	defer func() { endSpan(span, err) }()

	prev, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if prev.ScheduleID == scheduleID {
		return nil, domain.ErrSameSlot
	}

	if err = s.release(ctx, prev, domain.ReservationStatusRescheduled); err != nil {
		return nil, err
	}

	next, err := s.newReservation(ctx, prev.GuestID, scheduleID)
	if err != nil {
		return nil, err
	}
	next.PreviousReservationID = &prev.ID

	if err = s.reservationRepo.Reschedule(ctx, prev, next); err != nil {
		return nil, fmt.Errorf("reschedule reservation: %w", err)
	}

	s.logger.Info("reservation rescheduled",
		logger.String("reservation_id", next.ID),
		logger.String("previous_reservation_id", prev.ID),
		logger.String("schedule_id", scheduleID),
		logger.String("refund", prev.RefundValue.Decimal.String()),
	)

	return next, nil
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.reservationRepo.List(ctx)
}

// ListInRange returns reservations whose slot lies inside [start, end].
func (s *ReservationService) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	return s.reservationRepo.ListInRange(ctx, start, end)
}

// newReservation runs every booking check and returns the unsaved reservation.
func (s *ReservationService) newReservation(ctx context.Context, guestID, scheduleID string) (*domain.Reservation, error) {
	if _, err := s.guestRepo.GetByID(ctx, guestID); err != nil {
		return nil, fmt.Errorf("check guest: %w", err)
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}

	booked, err := s.conflicts.HasActiveReservation(ctx, schedule.ID)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, domain.ErrSlotAlreadyBooked
	}

	now := s.clock.Now()
	if !schedule.StartDateTime.After(now) {
		return nil, domain.ErrSlotNotInFuture
	}

	return &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    guestID,
		ScheduleID: schedule.ID,
		Status:     domain.ReservationStatusReadyToPlay,
		Value:      domain.ReservationFee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// release validates that r can still be given up and applies the refund for
// the remaining notice period. Nothing is persisted.
func (s *ReservationService) release(ctx context.Context, r *domain.Reservation, status domain.ReservationStatus) error {
	if !r.IsActive() {
		return domain.ErrReservationNotReady
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, r.ScheduleID)
	if err != nil {
		return fmt.Errorf("get schedule: %w", err)
	}

	now := s.clock.Now()
	if !schedule.StartDateTime.After(now) {
		return domain.ErrSlotNotInFuture
	}

	refund := domain.ComputeRefund(r.Value, domain.HoursUntil(now, schedule.StartDateTime))
	r.Settle(status, refund, now)

	return nil
}
