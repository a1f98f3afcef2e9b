package repository

import (
	"fmt"
	"strings"
	"time"
)

// OrderFilter holds the optional predicates of an order listing. Nil fields are not applied.
type OrderFilter struct {
	CustomerID *int64
	MaidID     *int64
	// StartDate is an inclusive lower bound on order_date.
	StartDate *time.Time
	// EndBefore is an exclusive upper bound on order_date.
	EndBefore *time.Time
	MinAmount *float64
	MaxAmount *float64
}

type predicate struct {
	column string
	op     string
	value  any
}

func (f OrderFilter) predicates() []predicate {
	var preds []predicate
	if f.CustomerID != nil {
		preds = append(preds, predicate{"customer_id", "=", *f.CustomerID})
	}
	if f.MaidID != nil {
		preds = append(preds, predicate{"maid_id", "=", *f.MaidID})
	}
	if f.StartDate != nil {
		preds = append(preds, predicate{"order_date", ">=", *f.StartDate})
	}
	if f.EndBefore != nil {
		preds = append(preds, predicate{"order_date", "<", *f.EndBefore})
	}
	if f.MinAmount != nil {
		preds = append(preds, predicate{"total_amount", ">=", *f.MinAmount})
	}
	if f.MaxAmount != nil {
		preds = append(preds, predicate{"total_amount", "<=", *f.MaxAmount})
	}
	return preds
}

// Where renders the conjunction of the supplied predicates with positional parameters.
// It returns an empty clause when no filter is set.
func (f OrderFilter) Where() (string, []any) {
	preds := f.predicates()
	if len(preds) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		args = append(args, p.value)
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", p.column, p.op, len(args)))
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
