package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Repository failures surfaced to the service layer.
var (
	ErrNotFound         = errors.New("record not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrMaidNotFound     = errors.New("maid not found")
	ErrHasOrders        = errors.New("record is referenced by orders")
)

// Querier is the statement surface shared by a pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DB is satisfied by *pgxpool.Pool.
type DB interface {
	Querier
	Begin(ctx context.Context) (pgx.Tx, error)
}

// withTx runs fn in a transaction, rolling back whenever fn or the commit fails.
func withTx(ctx context.Context, db DB, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// lockRow locks the row with the given id, returning ErrNotFound when it does not exist.
func lockRow(ctx context.Context, q Querier, table, idColumn string, id int64) error {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s=$1 FOR UPDATE", idColumn, table, idColumn)
	var locked int64
	if err := q.QueryRow(ctx, query, id).Scan(&locked); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// lockReference reports whether the row exists and, if so, holds a key-share lock on it
// until the transaction ends so a concurrent delete cannot remove it.
func lockReference(ctx context.Context, q Querier, table, idColumn string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s=$1 FOR KEY SHARE", idColumn, table, idColumn)
	var found int64
	if err := q.QueryRow(ctx, query, id).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func countOrdersFor(ctx context.Context, q Querier, column string, id int64) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM orders WHERE %s=$1", column)
	var count int64
	if err := q.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
