package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/clock"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stpnv0/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationDeps struct {
	reservations *mocks.MockReservationRepo
	schedules    *mocks.MockScheduleRepo
	guests       *mocks.MockGuestRepo
	svc          *ReservationService
}

func newReservationDeps(t *testing.T) reservationDeps {
	t.Helper()
	d := reservationDeps{
		reservations: mocks.NewMockReservationRepo(t),
		schedules:    mocks.NewMockScheduleRepo(t),
		guests:       mocks.NewMockGuestRepo(t),
	}
	d.svc = NewReservationService(
		d.reservations,
		d.schedules,
		d.guests,
		NewConflictChecker(d.reservations),
		clock.NewMock(testNow),
		newTestLogger(t),
	)
	return d
}

func slotAt(id string, start time.Time) *domain.Schedule {
	return &domain.Schedule{
		ID:            id,
		CourtID:       "c1",
		StartDateTime: start,
		EndDateTime:   start.Add(domain.SlotDuration),
	}
}

func readyReservation(id, scheduleID string) *domain.Reservation {
	return &domain.Reservation{
		ID:         id,
		GuestID:    "g1",
		ScheduleID: scheduleID,
		Status:     domain.ReservationStatusReadyToPlay,
		Value:      domain.ReservationFee,
	}
}

func TestReservationService_Book_Success(t *testing.T) {
	d := newReservationDeps(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1", Name: "Roger"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s1").Return(nil, nil)
	d.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := d.svc.Book(context.Background(), "g1", "s1")

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "g1", r.GuestID)
	assert.Equal(t, "s1", r.ScheduleID)
	assert.Equal(t, domain.ReservationStatusReadyToPlay, r.Status)
	assert.True(t, r.Value.Equal(decimal.NewFromInt(10)))
	assert.False(t, r.RefundValue.Valid)
	assert.Nil(t, r.PreviousReservationID)
}

func TestReservationService_Book_GuestNotFound(t *testing.T) {
	d := newReservationDeps(t)

	d.guests.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrGuestNotFound)

	_, err := d.svc.Book(context.Background(), "missing", "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Book_ScheduleNotFound(t *testing.T) {
	d := newReservationDeps(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrScheduleNotFound)

	_, err := d.svc.Book(context.Background(), "g1", "missing")

	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestReservationService_Book_SlotTaken(t *testing.T) {
	d := newReservationDeps(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s1").
		Return([]*domain.Reservation{readyReservation("r1", "s1")}, nil)

	_, err := d.svc.Book(context.Background(), "g1", "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_Book_ReleasedReservationsDoNotBlock(t *testing.T) {
	d := newReservationDeps(t)

	cancelled := readyReservation("r1", "s1")
	cancelled.Status = domain.ReservationStatusCancelled
	rescheduled := readyReservation("r2", "s1")
	rescheduled.Status = domain.ReservationStatusRescheduled

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s1").
		Return([]*domain.Reservation{cancelled, rescheduled}, nil)
	d.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := d.svc.Book(context.Background(), "g1", "s1")

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusReadyToPlay, r.Status)
}

func TestReservationService_Book_SlotNotInFuture(t *testing.T) {
	for name, start := range map[string]time.Time{
		"started":      testNow,
		"already over": testNow.Add(-2 * time.Hour),
	} {
		t.Run(name, func(t *testing.T) {
			d := newReservationDeps(t)

			d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
			d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", start), nil)
			d.reservations.EXPECT().ListBySchedule(mock.Anything, "s1").Return(nil, nil)

			_, err := d.svc.Book(context.Background(), "g1", "s1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrSlotNotInFuture)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_Book_LosesRace(t *testing.T) {
	d := newReservationDeps(t)

	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s1").Return(nil, nil)
	d.reservations.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotAlreadyBooked)

	_, err := d.svc.Book(context.Background(), "g1", "s1")

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestReservationService_Cancel_RefundTiers(t *testing.T) {
	tests := []struct {
		name      string
		ahead     time.Duration
		refund    string
		remaining string
	}{
		{name: "full refund", ahead: 48 * time.Hour, refund: "10", remaining: "0"},
		{name: "exactly one day", ahead: 24 * time.Hour, refund: "10", remaining: "0"},
		{name: "three quarters", ahead: 13 * time.Hour, refund: "7.5", remaining: "2.5"},
		{name: "half", ahead: 4 * time.Hour, refund: "5", remaining: "5"},
		{name: "quarter", ahead: 90 * time.Minute, refund: "2.5", remaining: "7.5"},
		{name: "last minutes", ahead: 10 * time.Minute, refund: "2.5", remaining: "7.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newReservationDeps(t)

			d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(readyReservation("r1", "s1"), nil)
			d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(tt.ahead)), nil)
			d.reservations.EXPECT().Settle(mock.Anything, mock.MatchedBy(func(r *domain.Reservation) bool {
				return r.ID == "r1" && r.Status == domain.ReservationStatusCancelled
			})).Return(nil)

			r, err := d.svc.Cancel(context.Background(), "r1")

			require.NoError(t, err)
			assert.Equal(t, domain.ReservationStatusCancelled, r.Status)
			require.True(t, r.RefundValue.Valid)
			assert.True(t, r.RefundValue.Decimal.Equal(decimal.RequireFromString(tt.refund)),
				"refund %s", r.RefundValue.Decimal)
			assert.True(t, r.Value.Equal(decimal.RequireFromString(tt.remaining)),
				"value %s", r.Value)
			assert.Equal(t, testNow, r.UpdatedAt)
		})
	}
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	d := newReservationDeps(t)

	d.reservations.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrReservationNotFound)

	_, err := d.svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Cancel_NotReady(t *testing.T) {
	for _, status := range []domain.ReservationStatus{
		domain.ReservationStatusCancelled,
		domain.ReservationStatusRescheduled,
	} {
		t.Run(string(status), func(t *testing.T) {
			d := newReservationDeps(t)

			r := readyReservation("r1", "s1")
			r.Status = status
			d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)

			_, err := d.svc.Cancel(context.Background(), "r1")

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrReservationNotReady)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestReservationService_Cancel_SlotStarted(t *testing.T) {
	d := newReservationDeps(t)

	r := readyReservation("r1", "s1")
	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(r, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(-30*time.Minute)), nil)

	_, err := d.svc.Cancel(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotNotInFuture)
	assert.Equal(t, domain.ReservationStatusReadyToPlay, r.Status)
	assert.False(t, r.RefundValue.Valid)
}

func TestReservationService_Cancel_ConcurrentCancelWins(t *testing.T) {
	d := newReservationDeps(t)

	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(readyReservation("r1", "s1"), nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.reservations.EXPECT().Settle(mock.Anything, mock.Anything).Return(domain.ErrReservationNotReady)

	_, err := d.svc.Cancel(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrReservationNotReady)
}

func TestReservationService_Reschedule_Success(t *testing.T) {
	d := newReservationDeps(t)

	prev := readyReservation("r1", "s1")
	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(prev, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s2").Return(slotAt("s2", testNow.Add(72*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s2").Return(nil, nil)
	d.reservations.EXPECT().Reschedule(mock.Anything, prev, mock.AnythingOfType("*domain.Reservation")).Return(nil)

	next, err := d.svc.Reschedule(context.Background(), "r1", "s2")

	require.NoError(t, err)
	assert.NotEqual(t, "r1", next.ID)
	assert.Equal(t, "g1", next.GuestID)
	assert.Equal(t, "s2", next.ScheduleID)
	assert.Equal(t, domain.ReservationStatusReadyToPlay, next.Status)
	assert.True(t, next.Value.Equal(domain.ReservationFee))
	require.NotNil(t, next.PreviousReservationID)
	assert.Equal(t, "r1", *next.PreviousReservationID)

	assert.Equal(t, domain.ReservationStatusRescheduled, prev.Status)
	require.True(t, prev.RefundValue.Valid)
	assert.True(t, prev.RefundValue.Decimal.Equal(decimal.NewFromInt(10)))
	assert.True(t, prev.Value.IsZero())
}

func TestReservationService_Reschedule_SameSlot(t *testing.T) {
	d := newReservationDeps(t)

	prev := readyReservation("r1", "s1")
	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(prev, nil)

	_, err := d.svc.Reschedule(context.Background(), "r1", "s1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSameSlot)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.ReservationStatusReadyToPlay, prev.Status)
	assert.False(t, prev.RefundValue.Valid)
}

func TestReservationService_Reschedule_NotReady(t *testing.T) {
	d := newReservationDeps(t)

	prev := readyReservation("r1", "s1")
	prev.Status = domain.ReservationStatusCancelled
	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(prev, nil)

	_, err := d.svc.Reschedule(context.Background(), "r1", "s2")

	assert.ErrorIs(t, err, domain.ErrReservationNotReady)
}

func TestReservationService_Reschedule_TargetTaken(t *testing.T) {
	d := newReservationDeps(t)

	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(readyReservation("r1", "s1"), nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s2").Return(slotAt("s2", testNow.Add(72*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s2").
		Return([]*domain.Reservation{readyReservation("r9", "s2")}, nil)

	_, err := d.svc.Reschedule(context.Background(), "r1", "s2")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
}

func TestReservationService_Reschedule_TargetNotFound(t *testing.T) {
	d := newReservationDeps(t)

	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(readyReservation("r1", "s1"), nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrScheduleNotFound)

	_, err := d.svc.Reschedule(context.Background(), "r1", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReservationService_Reschedule_StoreError(t *testing.T) {
	d := newReservationDeps(t)

	dbErr := errors.New("db error")
	d.reservations.EXPECT().GetByID(mock.Anything, "r1").Return(readyReservation("r1", "s1"), nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s1").Return(slotAt("s1", testNow.Add(48*time.Hour)), nil)
	d.guests.EXPECT().GetByID(mock.Anything, "g1").Return(&domain.Guest{ID: "g1"}, nil)
	d.schedules.EXPECT().GetByID(mock.Anything, "s2").Return(slotAt("s2", testNow.Add(72*time.Hour)), nil)
	d.reservations.EXPECT().ListBySchedule(mock.Anything, "s2").Return(nil, nil)
	d.reservations.EXPECT().Reschedule(mock.Anything, mock.Anything, mock.Anything).Return(dbErr)

	_, err := d.svc.Reschedule(context.Background(), "r1", "s2")

	assert.ErrorIs(t, err, dbErr)
}

func TestReservationService_ListInRange_InvalidRange(t *testing.T) {
	d := newReservationDeps(t)

	_, err := d.svc.ListInRange(context.Background(), testNow, testNow.Add(-time.Minute))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_ListInRange(t *testing.T) {
	d := newReservationDeps(t)

	want := []*domain.Reservation{readyReservation("r1", "s1")}
	d.reservations.EXPECT().ListInRange(mock.Anything, testNow, testNow.Add(time.Hour)).Return(want, nil)

	got, err := d.svc.ListInRange(context.Background(), testNow, testNow.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
