package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/CourtBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type GuestRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGuestRepo(db *dbpg.DB) *GuestRepository {
	return &GuestRepository{db: db, strategy: defaultStrategy()}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `INSERT INTO guests (id, name, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)`
	_, err := r.db.Master.ExecContext(ctx, query, g.ID, g.Name, g.CreatedAt, g.UpdatedAt)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return domain.ErrGuestNameTaken
		}
		return fmt.Errorf("insert guest: %w", err)
	}

	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `SELECT id, name, created_at, updated_at
			  FROM guests
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *GuestRepository) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	query := `SELECT id, name, created_at, updated_at
			  FROM guests
			  WHERE name = $1`
	return r.getOne(ctx, query, name)
}

func (r *GuestRepository) List(ctx context.Context) ([]*domain.Guest, error) {
	query := `SELECT id, name, created_at, updated_at
			  FROM guests
			  ORDER BY name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	defer rows.Close()

	var res []*domain.Guest
	for rows.Next() {
		var g domain.Guest
		if err = rows.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan guest: %w", err)
		}
		res = append(res, &g)
	}

	return res, rows.Err()
}

func (r *GuestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `UPDATE guests
			  SET name = $2, updated_at = $3
			  WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, g.ID, g.Name, g.UpdatedAt)
	if err != nil {
		if pqCode(err) == codeUniqueViolation {
			return domain.ErrGuestNameTaken
		}
		return fmt.Errorf("update guest: %w", err)
	}

	return expectOneRow(res, domain.ErrGuestNotFound)
}

func (r *GuestRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM guests WHERE id = $1`
	res, err := r.db.Master.ExecContext(ctx, query, id)
	if err != nil {
		if pqCode(err) == codeForeignKeyViolation {
			return domain.ErrGuestHasReservations
		}
		return fmt.Errorf("delete guest: %w", err)
	}

	return expectOneRow(res, domain.ErrGuestNotFound)
}

func (r *GuestRepository) getOne(ctx context.Context, query string, arg any) (*domain.Guest, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get guest: %w", err)
	}

	var g domain.Guest
	if err = row.Scan(&g.ID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, fmt.Errorf("scan guest: %w", err)
	}

	return &g, nil
}

func expectOneRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}
