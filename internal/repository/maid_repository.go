package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
)

// MaidRepository handles persistence for maids.
type MaidRepository interface {
	List(ctx context.Context, search string) ([]domain.Maid, error)
	GetByID(ctx context.Context, id int64) (*domain.Maid, error)
	Create(ctx context.Context, maid *domain.Maid) error
	Update(ctx context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error)
	Delete(ctx context.Context, id int64) error
}

type maidRepository struct {
	db DB
}

// NewMaidRepository instantiates the repository.
func NewMaidRepository(db DB) MaidRepository {
	return &maidRepository{db: db}
}

const maidColumns = `maid_id, name, to_char(shift_start_time, 'HH24:MI:SS'), to_char(shift_end_time, 'HH24:MI:SS')`

func (r *maidRepository) List(ctx context.Context, search string) ([]domain.Maid, error) {
	query := `SELECT ` + maidColumns + ` FROM maid`
	args := []any{}
	if search != "" {
		args = append(args, containsPattern(search))
		query += ` WHERE name ILIKE $1`
	}
	query += ` ORDER BY maid_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Maid{}
	for rows.Next() {
		var m domain.Maid
		if err := rows.Scan(&m.ID, &m.Name, &m.ShiftStartTime, &m.ShiftEndTime); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *maidRepository) GetByID(ctx context.Context, id int64) (*domain.Maid, error) {
	return getMaid(ctx, r.db, id, false)
}

func getMaid(ctx context.Context, q Querier, id int64, forUpdate bool) (*domain.Maid, error) {
	query := `SELECT ` + maidColumns + ` FROM maid WHERE maid_id=$1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var m domain.Maid
	if err := q.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.ShiftStartTime, &m.ShiftEndTime); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *maidRepository) Create(ctx context.Context, maid *domain.Maid) error {
	const query = `
        INSERT INTO maid (name, shift_start_time, shift_end_time)
        VALUES ($1,$2::time,$3::time)
        RETURNING maid_id`

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, maid.Name, maid.ShiftStartTime, maid.ShiftEndTime).Scan(&maid.ID); err != nil {
			return fmt.Errorf("insert maid: %w", err)
		}
		return nil
	})
}

func (r *maidRepository) Update(ctx context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error) {
	const query = `
        UPDATE maid SET name=$1, shift_start_time=$2::time, shift_end_time=$3::time
        WHERE maid_id=$4`

	var updated *domain.Maid
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := getMaid(ctx, tx, id, true)
		if err != nil {
			return err
		}
		patch.Apply(existing)

		cmd, err := tx.Exec(ctx, query, existing.Name, existing.ShiftStartTime, existing.ShiftEndTime, id)
		if err != nil {
			return fmt.Errorf("update maid: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *maidRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockRow(ctx, tx, "maid", "maid_id", id); err != nil {
			return err
		}
		count, err := countOrdersFor(ctx, tx, "maid_id", id)
		if err != nil {
			return fmt.Errorf("count maid orders: %w", err)
		}
		if count > 0 {
			return ErrHasOrders
		}

		cmd, err := tx.Exec(ctx, `DELETE FROM maid WHERE maid_id=$1`, id)
		if err != nil {
			return fmt.Errorf("delete maid: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
