package http

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/service"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

var orderDate = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

type fakeCustomers struct {
	items      map[int64]domain.Customer
	referenced map[int64]bool
	lastSearch string
	nextID     int64
}

func newFakeCustomers() *fakeCustomers {
	return &fakeCustomers{items: map[int64]domain.Customer{}, referenced: map[int64]bool{}}
}

func (f *fakeCustomers) List(_ context.Context, search string) ([]domain.Customer, error) {
	f.lastSearch = search
	out := make([]domain.Customer, 0, len(f.items))
	for _, c := range f.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCustomers) Get(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer")
	}
	return &c, nil
}

func (f *fakeCustomers) Create(_ context.Context, input service.CustomerInput) (*domain.Customer, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	f.nextID++
	c := domain.Customer{ID: f.nextID, Name: input.Name, Email: input.Email, PhoneNumber: input.PhoneNumber}
	f.items[c.ID] = c
	return &c, nil
}

func (f *fakeCustomers) Update(_ context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no data provided")
	}
	c, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("customer")
	}
	patch.Apply(&c)
	f.items[id] = c
	return &c, nil
}

func (f *fakeCustomers) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.NewNotFound("customer")
	}
	if f.referenced[id] {
		return apperrors.NewConflict("cannot delete customer with existing orders, delete orders first")
	}
	delete(f.items, id)
	return nil
}

type fakeMaids struct {
	items map[int64]domain.Maid
}

func (f *fakeMaids) List(context.Context, string) ([]domain.Maid, error) {
	out := make([]domain.Maid, 0, len(f.items))
	for _, m := range f.items {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeMaids) Get(_ context.Context, id int64) (*domain.Maid, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("maid")
	}
	return &m, nil
}

func (f *fakeMaids) Create(_ context.Context, input service.MaidInput) (*domain.Maid, error) {
	m := domain.Maid{ID: int64(len(f.items) + 1), Name: input.Name, ShiftStartTime: domain.DefaultShiftStart, ShiftEndTime: domain.DefaultShiftEnd}
	f.items[m.ID] = m
	return &m, nil
}

func (f *fakeMaids) Update(_ context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("maid")
	}
	patch.Apply(&m)
	return &m, nil
}

func (f *fakeMaids) Delete(context.Context, int64) error { return nil }

// fakeOrders resolves references against the customer and maid fakes, customer first.
type fakeOrders struct {
	customers *fakeCustomers
	maids     *fakeMaids
	items     map[int64]domain.Order
	lastQuery service.OrderListQuery
	storeErr  error
}

func (f *fakeOrders) List(_ context.Context, q service.OrderListQuery) ([]domain.Order, error) {
	f.lastQuery = q
	if _, err := service.ParseOrderFilter(q); err != nil {
		return nil, err
	}
	if f.storeErr != nil {
		return nil, apperrors.NewStoreError(f.storeErr)
	}
	out := make([]domain.Order, 0, len(f.items))
	for _, o := range f.items {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrders) Get(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("order")
	}
	return &o, nil
}

func (f *fakeOrders) Create(_ context.Context, input service.OrderInput) (*domain.Order, error) {
	if input.CustomerID <= 0 || input.MaidID <= 0 {
		return nil, apperrors.NewValidationError("both customer_id and maid_id are required")
	}
	if _, ok := f.customers.items[input.CustomerID]; !ok {
		return nil, apperrors.NewNotFound("customer")
	}
	if _, ok := f.maids.items[input.MaidID]; !ok {
		return nil, apperrors.NewNotFound("maid")
	}
	o := domain.Order{
		ID:          int64(len(f.items) + 1),
		CustomerID:  input.CustomerID,
		MaidID:      input.MaidID,
		OrderDate:   orderDate,
		TotalAmount: input.TotalAmount,
	}
	f.items[o.ID] = o
	return &o, nil
}

func (f *fakeOrders) Update(_ context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("order")
	}
	patch.Apply(&o)
	f.items[id] = o
	return &o, nil
}

func (f *fakeOrders) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return apperrors.NewNotFound("order")
	}
	delete(f.items, id)
	return nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

var errConnRefused = errors.New("dial tcp: connection refused")
