package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/repository"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// OrderService validates order input and delegates to the repository.
type OrderService struct {
	orders repository.OrderRepository
}

// NewOrderService constructs the service.
func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// OrderInput describes order creation payload.
type OrderInput struct {
	CustomerID  int64
	MaidID      int64
	TotalAmount float64
}

// OrderListQuery holds the raw listing filters as received. Empty strings are absent.
type OrderListQuery struct {
	CustomerID string
	MaidID     string
	StartDate  string
	EndDate    string
	MinAmount  string
	MaxAmount  string
}

// List returns the orders matching every supplied filter.
func (s *OrderService) List(ctx context.Context, query OrderListQuery) ([]domain.Order, error) {
	filter, err := ParseOrderFilter(query)
	if err != nil {
		return nil, err
	}
	list, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, mapRepoError(err, "order")
	}
	return list, nil
}

// Get fetches one order.
func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "order")
	}
	return order, nil
}

// Create inserts an order after the repository resolves both references.
func (s *OrderService) Create(ctx context.Context, input OrderInput) (*domain.Order, error) {
	if input.CustomerID <= 0 || input.MaidID <= 0 {
		return nil, apperrors.NewValidationError("both customer_id and maid_id are required")
	}
	if err := checkAmount(input.TotalAmount); err != nil {
		return nil, err
	}
	order := &domain.Order{
		CustomerID:  input.CustomerID,
		MaidID:      input.MaidID,
		TotalAmount: input.TotalAmount,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, mapRepoError(err, "order")
	}
	return order, nil
}

// Update merges the supplied fields into the stored order.
func (s *OrderService) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no data provided")
	}
	if patch.CustomerID != nil && *patch.CustomerID <= 0 {
		return nil, apperrors.NewValidationError("customer_id must be a positive integer")
	}
	if patch.MaidID != nil && *patch.MaidID <= 0 {
		return nil, apperrors.NewValidationError("maid_id must be a positive integer")
	}
	if patch.TotalAmount != nil {
		if err := checkAmount(*patch.TotalAmount); err != nil {
			return nil, err
		}
	}
	order, err := s.orders.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, "order")
	}
	return order, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.orders.Delete(ctx, id), "order")
}

// maxAmount is the exclusive magnitude bound of a NUMERIC(10,2) column.
const maxAmount = 1e8

func checkAmount(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.NewValidationError("total_amount must be a number")
	}
	if math.Abs(v) >= maxAmount {
		return apperrors.NewValidationError("total_amount must be less than 100000000")
	}
	return nil
}

// ParseOrderFilter converts raw listing parameters into typed predicates.
// Malformed values fail with a validation error instead of being dropped.
func ParseOrderFilter(q OrderListQuery) (repository.OrderFilter, error) {
	var filter repository.OrderFilter
	var err error

	if filter.CustomerID, err = parseIDParam("customer_id", q.CustomerID); err != nil {
		return filter, err
	}
	if filter.MaidID, err = parseIDParam("maid_id", q.MaidID); err != nil {
		return filter, err
	}
	if filter.MinAmount, err = parseAmountParam("min_amount", q.MinAmount); err != nil {
		return filter, err
	}
	if filter.MaxAmount, err = parseAmountParam("max_amount", q.MaxAmount); err != nil {
		return filter, err
	}

	if v := strings.TrimSpace(q.StartDate); v != "" {
		start, _, err := parseDateParam("start_date", v)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if v := strings.TrimSpace(q.EndDate); v != "" {
		end, dateOnly, err := parseDateParam("end_date", v)
		if err != nil {
			return filter, err
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1)
		} else {
			end = end.Add(time.Microsecond)
		}
		filter.EndBefore = &end
	}
	return filter, nil
}

func parseIDParam(name, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewValidationError(name + " must be a positive integer")
	}
	return &id, nil
}

func parseAmountParam(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperrors.NewValidationError(name + " must be a decimal number")
	}
	return &v, nil
}

// parseDateParam accepts YYYY-MM-DD, "YYYY-MM-DD HH:MM:SS" or RFC 3339.
// dateOnly reports whether the value named a whole day.
func parseDateParam(name, raw string) (t time.Time, dateOnly bool, err error) {
	if t, err = time.Parse(time.DateOnly, raw); err == nil {
		return t, true, nil
	}
	if t, err = time.Parse(time.DateTime, raw); err == nil {
		return t, false, nil
	}
	if t, err = time.Parse(time.RFC3339, raw); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, apperrors.NewValidationError(name + " must be a date (YYYY-MM-DD)")
}
