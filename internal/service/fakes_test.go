package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/repository"
)

// memoryStore mimics the repository contracts, including the referential guards.
type memoryStore struct {
	customers map[int64]domain.Customer
	maids     map[int64]domain.Maid
	orders    map[int64]domain.Order
	nextID    int64
	failWith  error
	lastQuery repository.OrderFilter
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		customers: map[int64]domain.Customer{},
		maids:     map[int64]domain.Maid{},
		orders:    map[int64]domain.Order{},
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) referenced(match func(domain.Order) bool) bool {
	for _, o := range m.orders {
		if match(o) {
			return true
		}
	}
	return false
}

type customerRepo struct{ *memoryStore }

func (r customerRepo) List(_ context.Context, search string) ([]domain.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	out := []domain.Customer{}
	for _, c := range r.customers {
		if search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r customerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r customerRepo) Create(_ context.Context, c *domain.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	c.ID = r.id()
	r.customers[c.ID] = *c
	return nil
}

func (r customerRepo) Update(_ context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&c)
	r.customers[id] = c
	return &c, nil
}

func (r customerRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.customers[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced(func(o domain.Order) bool { return o.CustomerID == id }) {
		return repository.ErrHasOrders
	}
	delete(r.customers, id)
	return nil
}

type maidRepo struct{ *memoryStore }

func (r maidRepo) List(_ context.Context, search string) ([]domain.Maid, error) {
	out := []domain.Maid{}
	for _, m := range r.maids {
		if search == "" || strings.Contains(strings.ToLower(m.Name), strings.ToLower(search)) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r maidRepo) GetByID(_ context.Context, id int64) (*domain.Maid, error) {
	m, ok := r.maids[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r maidRepo) Create(_ context.Context, m *domain.Maid) error {
	m.ID = r.id()
	r.maids[m.ID] = *m
	return nil
}

func (r maidRepo) Update(_ context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error) {
	m, ok := r.maids[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	patch.Apply(&m)
	r.maids[id] = m
	return &m, nil
}

func (r maidRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.maids[id]; !ok {
		return repository.ErrNotFound
	}
	if r.referenced(func(o domain.Order) bool { return o.MaidID == id }) {
		return repository.ErrHasOrders
	}
	delete(r.maids, id)
	return nil
}

type orderRepo struct{ *memoryStore }

func (r orderRepo) List(_ context.Context, filter repository.OrderFilter) ([]domain.Order, error) {
	r.lastQuery = filter
	out := []domain.Order{}
	for _, o := range r.orders {
		if filter.MinAmount != nil && o.TotalAmount < *filter.MinAmount {
			continue
		}
		if filter.MaxAmount != nil && o.TotalAmount > *filter.MaxAmount {
			continue
		}
		if filter.CustomerID != nil && o.CustomerID != *filter.CustomerID {
			continue
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r orderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r orderRepo) checkRefs(customerID, maidID *int64) error {
	if customerID != nil {
		if _, ok := r.customers[*customerID]; !ok {
			return repository.ErrCustomerNotFound
		}
	}
	if maidID != nil {
		if _, ok := r.maids[*maidID]; !ok {
			return repository.ErrMaidNotFound
		}
	}
	return nil
}

func (r orderRepo) Create(_ context.Context, o *domain.Order) error {
	if err := r.checkRefs(&o.CustomerID, &o.MaidID); err != nil {
		return err
	}
	o.ID = r.id()
	r.orders[o.ID] = *o
	return nil
}

func (r orderRepo) Update(_ context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if err := r.checkRefs(patch.CustomerID, patch.MaidID); err != nil {
		return nil, err
	}
	patch.Apply(&o)
	r.orders[id] = o
	return &o, nil
}

func (r orderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.orders[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

var errStoreDown = errors.New("connection refused")
