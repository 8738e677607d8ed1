package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `r.id, r.guest_id, r.schedule_id, r.status, r.value, r.refund_value,
		r.previous_reservation_id, r.created_at, r.updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{db: db, strategy: defaultStrategy()}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = insertReservation(ctx, tx, res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  ORDER BY r.created_at, r.id`
	return r.list(ctx, query)
}

func (r *ReservationRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  WHERE r.schedule_id = $1
			  ORDER BY r.created_at, r.id`
	return r.list(ctx, query, scheduleID)
}

func (r *ReservationRepository) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations r
			  JOIN schedules s ON s.id = r.schedule_id
			  WHERE s.start_date_time >= $1 AND s.end_date_time <= $2
			  ORDER BY s.start_date_time, r.created_at`
	return r.list(ctx, query, start, end)
}

func (r *ReservationRepository) Settle(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = settleReservation(ctx, tx, res); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) Reschedule(ctx context.Context, prev, next *domain.Reservation) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = settleReservation(ctx, tx, prev); err != nil {
		return err
	}

	if err = insertReservation(ctx, tx, next); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, rv)
	}

	return res, rows.Err()
}

// insertReservation locks the slot row, so concurrent bookings of one slot
// run one after another, and re-checks it for an active reservation.
func insertReservation(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	var locked string
	lockQuery := `SELECT id FROM schedules WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, lockQuery, res.ScheduleID).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrScheduleNotFound
		}
		return fmt.Errorf("lock schedule: %w", err)
	}

	var booked bool
	activeQuery := `SELECT EXISTS (
						SELECT 1 FROM reservations
						WHERE schedule_id = $1 AND status = $2
					)`
	if err := tx.QueryRowContext(ctx, activeQuery, res.ScheduleID, domain.ReservationStatusReadyToPlay).
		Scan(&booked); err != nil {
		return fmt.Errorf("check active reservation: %w", err)
	}
	if booked && res.IsActive() {
		return domain.ErrSlotAlreadyBooked
	}

	query := `INSERT INTO reservations (id, guest_id, schedule_id, status, value, refund_value,
									 previous_reservation_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.ExecContext(
		ctx, query,
		res.ID, res.GuestID, res.ScheduleID, res.Status, res.Value, res.RefundValue,
		res.PreviousReservationID, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return domain.ErrSlotAlreadyBooked
		case codeForeignKeyViolation:
			return domain.ErrGuestNotFound
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

// settleReservation writes the terminal state of res only if the stored row
// is still READY_TO_PLAY.
func settleReservation(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	query := `UPDATE reservations
			  SET status = $2, value = $3, refund_value = $4, updated_at = $5
			  WHERE id = $1 AND status = $6`
	result, err := tx.ExecContext(
		ctx, query,
		res.ID, res.Status, res.Value, res.RefundValue, res.UpdatedAt,
		domain.ReservationStatusReadyToPlay,
	)
	if err != nil {
		return fmt.Errorf("settle reservation: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if n > 0 {
		return nil
	}

	// nothing updated: either the reservation is gone or already settled
	var status string
	checkQuery := `SELECT status FROM reservations WHERE id = $1`
	if err = tx.QueryRowContext(ctx, checkQuery, res.ID).Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("check reservation status: %w", err)
	}

	return domain.ErrReservationNotReady
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := row.Scan(
		&res.ID, &res.GuestID, &res.ScheduleID, &res.Status, &res.Value, &res.RefundValue,
		&res.PreviousReservationID, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}
