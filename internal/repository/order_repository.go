package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
)

// OrderRepository handles persistence for orders.
type OrderRepository interface {
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderRepository struct {
	db DB
}

// NewOrderRepository instantiates the repository.
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `order_id, customer_id, maid_id, order_date, total_amount`

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(&o.ID, &o.CustomerID, &o.MaidID, &o.OrderDate, &o.TotalAmount)
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	where, args := filter.Where()
	query := `SELECT ` + orderColumns + ` FROM orders` + where + ` ORDER BY order_id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return getOrder(ctx, r.db, id, false)
}

func getOrder(ctx context.Context, q Querier, id int64, forUpdate bool) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_id=$1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var o domain.Order
	if err := scanOrder(q.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// checkReferences resolves the customer first, then the maid; the first miss wins.
// Found rows stay key-share locked until the surrounding transaction ends.
func checkReferences(ctx context.Context, q Querier, customerID, maidID *int64) error {
	if customerID != nil {
		ok, err := lockReference(ctx, q, "customer", "customer_id", *customerID)
		if err != nil {
			return fmt.Errorf("check customer: %w", err)
		}
		if !ok {
			return ErrCustomerNotFound
		}
	}
	if maidID != nil {
		ok, err := lockReference(ctx, q, "maid", "maid_id", *maidID)
		if err != nil {
			return fmt.Errorf("check maid: %w", err)
		}
		if !ok {
			return ErrMaidNotFound
		}
	}
	return nil
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	const query = `
        INSERT INTO orders (customer_id, maid_id, total_amount)
        VALUES ($1,$2,$3)
        RETURNING order_id, order_date, total_amount`

	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkReferences(ctx, tx, &order.CustomerID, &order.MaidID); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, query, order.CustomerID, order.MaidID, order.TotalAmount).Scan(&order.ID, &order.OrderDate, &order.TotalAmount); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
}

// Update applies patch and returns the row as stored, so amounts carry NUMERIC rounding.
func (r *orderRepository) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	const query = `
        UPDATE orders SET customer_id=$1, maid_id=$2, total_amount=$3
        WHERE order_id=$4
        RETURNING ` + orderColumns

	var updated domain.Order
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		existing, err := getOrder(ctx, tx, id, true)
		if err != nil {
			return err
		}
		if err := checkReferences(ctx, tx, patch.CustomerID, patch.MaidID); err != nil {
			return err
		}
		patch.Apply(existing)

		row := tx.QueryRow(ctx, query, existing.CustomerID, existing.MaidID, existing.TotalAmount, id)
		if err := scanOrder(row, &updated); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockRow(ctx, tx, "orders", "order_id", id); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, `DELETE FROM orders WHERE order_id=$1`, id)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		if cmd.RowsAffected() == 0 {
			return ErrNotFound
		}
		return nil
	})
}
