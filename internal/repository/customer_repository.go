package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
)

// CustomerRepository handles persistence for customers.
type CustomerRepository interface {
	List(ctx context.Context, search string) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type customerRepository struct {
	db DB
}

// NewCustomerRepository instantiates the repository.
func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `customer_id, name, email, phone_number`

func (r *customerRepository) List(ctx context.Context, search string) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer`
	args := []any{}
	if search != "" {
		args = append(args, containsPattern(search))
		query += ` WHERE name ILIKE $1 OR email ILIKE $1 OR phone_number ILIKE $1`
	}
	query += ` ORDER BY customer_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return getCustomer(ctx, r.db, id, false)
}

func getCustomer(ctx context.Context, q Querier, id int64, forUpdate bool) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customer WHERE customer_id=$1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var c domain.Customer
	if err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customer (name, email, phone_number)
        VALUES ($1,$2,$3)
        RETURNING customer_id`

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, customer.Name, customer.Email, customer.PhoneNumber).Scan(&customer.ID); err != nil {
			return fmt.Errorf("insert customer: %w", err)
		}
		return nil
	})
}

func (r *customerRepository) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	const query = `
        UPDATE customer SET name=$1, email=$2, phone_number=$3
        WHERE customer_id=$4`

	var updated *domain.Customer
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := getCustomer(ctx, tx, id, true)
		if err != nil {
			return err
		}
		patch.Apply(existing)

		cmd, err := tx.Exec(ctx, query, existing.Name, existing.Email, existing.PhoneNumber, id)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
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

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockRow(ctx, tx, "customer", "customer_id", id); err != nil {
			return err
		}
		count, err := countOrdersFor(ctx, tx, "customer_id", id)
		if err != nil {
			return fmt.Errorf("count customer orders: %w", err)
		}
		if count > 0 {
			return ErrHasOrders
		}

		cmd, err := tx.Exec(ctx, `DELETE FROM customer WHERE customer_id=$1`, id)
		if err != nil {
			return fmt.Errorf("delete customer: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
