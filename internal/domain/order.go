package domain

import "time"

// Order links one customer to one maid. Orders are leaf entities.
type Order struct {
	ID          int64
	CustomerID  int64
	MaidID      int64
	OrderDate   time.Time
	TotalAmount float64
}

// OrderPatch carries the fields supplied to an update; nil means keep.
type OrderPatch struct {
	CustomerID  *int64
	MaidID      *int64
	TotalAmount *float64
}

// Apply merges the patch into o.
func (p OrderPatch) Apply(o *Order) {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.MaidID != nil {
		o.MaidID = *p.MaidID
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
}

// Empty reports whether no field was supplied.
func (p OrderPatch) Empty() bool {
	return p.CustomerID == nil && p.MaidID == nil && p.TotalAmount == nil
}
