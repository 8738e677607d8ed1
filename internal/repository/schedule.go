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

const scheduleColumns = `id, tennis_court_id, start_date_time, end_date_time, created_at`

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db, strategy: defaultStrategy()}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (id, tennis_court_id, start_date_time, end_date_time, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Master.ExecContext(
		ctx, query,
		s.ID, s.CourtID, s.StartDateTime, s.EndDateTime, s.CreatedAt,
	)
	if err != nil {
		switch pqCode(err) {
		case codeUniqueViolation:
			return domain.ErrSlotAlreadyScheduled
		case codeForeignKeyViolation:
			return domain.ErrCourtNotFound
		}
		return fmt.Errorf("insert schedule: %w", err)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *ScheduleRepository) GetByCourtAndStart(ctx context.Context, courtID string, start time.Time) (*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules
			  WHERE tennis_court_id = $1 AND start_date_time = $2`
	return r.getOne(ctx, query, courtID, start)
}

func (r *ScheduleRepository) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules
			  ORDER BY start_date_time, tennis_court_id`
	return r.list(ctx, query)
}

func (r *ScheduleRepository) ListByCourt(ctx context.Context, courtID string) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules
			  WHERE tennis_court_id = $1
			  ORDER BY start_date_time`
	return r.list(ctx, query, courtID)
}

func (r *ScheduleRepository) ListInRange(ctx context.Context, start, end time.Time) ([]*domain.Schedule, error) {
	query := `SELECT ` + scheduleColumns + `
			  FROM schedules
			  WHERE start_date_time >= $1 AND end_date_time <= $2
			  ORDER BY start_date_time, tennis_court_id`
	return r.list(ctx, query, start, end)
}

func (r *ScheduleRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Schedule, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return s, nil
}

func (r *ScheduleRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Schedule, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var res []*domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func scanSchedule(row scanner) (*domain.Schedule, error) {
	var s domain.Schedule
	if err := row.Scan(&s.ID, &s.CourtID, &s.StartDateTime, &s.EndDateTime, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
