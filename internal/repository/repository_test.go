package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var testNow = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &dbpg.DB{Master: db}, mock
}

func settled(status domain.ReservationStatus) *domain.Reservation {
	r := &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    uuid.New().String(),
		ScheduleID: uuid.New().String(),
		Status:     domain.ReservationStatusReadyToPlay,
		Value:      domain.ReservationFee,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	r.Settle(status, decimal.NewFromInt(10), testNow)
	return r
}

func ready() *domain.Reservation {
	return &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    uuid.New().String(),
		ScheduleID: uuid.New().String(),
		Status:     domain.ReservationStatusReadyToPlay,
		Value:      domain.ReservationFee,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
}

func expectSlotLock(mock sqlmock.Sqlmock, scheduleID string, booked bool) {
	mock.ExpectQuery("SELECT id FROM schedules").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(scheduleID))
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(booked))
}

// --- constraint violations are mapped on the first attempt ---

func TestScheduleRepository_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		code pq.ErrorCode
		want error
	}{
		{name: "duplicate start", code: codeUniqueViolation, want: domain.ErrSlotAlreadyScheduled},
		{name: "unknown court", code: codeForeignKeyViolation, want: domain.ErrCourtNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewScheduleRepo(db)

			mock.ExpectExec("INSERT INTO schedules").WillReturnError(&pq.Error{Code: tt.code})

			err := repo.Create(context.Background(), &domain.Schedule{
				ID:            uuid.New().String(),
				CourtID:       uuid.New().String(),
				StartDateTime: testNow.Add(time.Hour),
				EndDateTime:   testNow.Add(2 * time.Hour),
				CreatedAt:     testNow,
			})

			assert.ErrorIs(t, err, tt.want)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGuestRepository_ConstraintViolations(t *testing.T) {
	ctx := context.Background()
	guest := &domain.Guest{ID: uuid.New().String(), Name: "Roger", CreatedAt: testNow, UpdatedAt: testNow}

	t.Run("create duplicate name", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("INSERT INTO guests").WillReturnError(&pq.Error{Code: codeUniqueViolation})

		err := NewGuestRepo(db).Create(ctx, guest)

		assert.ErrorIs(t, err, domain.ErrGuestNameTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rename to taken name", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE guests").WillReturnError(&pq.Error{Code: codeUniqueViolation})

		err := NewGuestRepo(db).Update(ctx, guest)

		assert.ErrorIs(t, err, domain.ErrGuestNameTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update missing guest", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("UPDATE guests").WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewGuestRepo(db).Update(ctx, guest)

		assert.ErrorIs(t, err, domain.ErrGuestNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete referenced guest", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec("DELETE FROM guests").WillReturnError(&pq.Error{Code: codeForeignKeyViolation})

		err := NewGuestRepo(db).Delete(ctx, guest.ID)

		assert.ErrorIs(t, err, domain.ErrGuestHasReservations)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// --- reservation transactions ---

func TestReservationRepository_Settle(t *testing.T) {
	t.Run("ready reservation", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := settled(domain.ReservationStatusCancelled)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewReservationRepo(db).Settle(context.Background(), res))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already settled", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := settled(domain.ReservationStatusCancelled)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM reservations").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.ReservationStatusCancelled)))
		mock.ExpectRollback()

		err := NewReservationRepo(db).Settle(context.Background(), res)

		assert.ErrorIs(t, err, domain.ErrReservationNotReady)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing reservation", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := settled(domain.ReservationStatusCancelled)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM reservations").WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := NewReservationRepo(db).Settle(context.Background(), res)

		assert.ErrorIs(t, err, domain.ErrReservationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_Create(t *testing.T) {
	t.Run("free slot", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := ready()

		mock.ExpectBegin()
		expectSlotLock(mock, res.ScheduleID, false)
		mock.ExpectExec("INSERT INTO reservations").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewReservationRepo(db).Create(context.Background(), res))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("slot holds an active reservation", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := ready()

		mock.ExpectBegin()
		expectSlotLock(mock, res.ScheduleID, true)
		mock.ExpectRollback()

		err := NewReservationRepo(db).Create(context.Background(), res)

		assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown slot", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM schedules").WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err := NewReservationRepo(db).Create(context.Background(), ready())

		assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("active index rejects insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		res := ready()

		mock.ExpectBegin()
		expectSlotLock(mock, res.ScheduleID, false)
		mock.ExpectExec("INSERT INTO reservations").WillReturnError(&pq.Error{Code: codeUniqueViolation})
		mock.ExpectRollback()

		err := NewReservationRepo(db).Create(context.Background(), res)

		assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReservationRepository_Reschedule(t *testing.T) {
	t.Run("commits both writes", func(t *testing.T) {
		db, mock := newMockDB(t)
		prev := settled(domain.ReservationStatusRescheduled)
		next := ready()
		next.PreviousReservationID = &prev.ID

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 1))
		expectSlotLock(mock, next.ScheduleID, false)
		mock.ExpectExec("INSERT INTO reservations").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, NewReservationRepo(db).Reschedule(context.Background(), prev, next))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("taken target rolls back the release", func(t *testing.T) {
		db, mock := newMockDB(t)
		prev := settled(domain.ReservationStatusRescheduled)
		next := ready()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 1))
		expectSlotLock(mock, next.ScheduleID, true)
		mock.ExpectRollback()

		err := NewReservationRepo(db).Reschedule(context.Background(), prev, next)

		assert.ErrorIs(t, err, domain.ErrSlotAlreadyBooked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("predecessor already settled", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT status FROM reservations").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(string(domain.ReservationStatusRescheduled)))
		mock.ExpectRollback()

		err := NewReservationRepo(db).Reschedule(context.Background(), settled(domain.ReservationStatusRescheduled), ready())

		assert.ErrorIs(t, err, domain.ErrReservationNotReady)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
