package dto

import (
	"time"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
)

// OrderRequest is used for both create and partial update.
type OrderRequest struct {
	CustomerID  *int64   `json:"customer_id"`
	MaidID      *int64   `json:"maid_id"`
	TotalAmount *float64 `json:"total_amount"`
}

// Patch converts the request into a partial update.
func (r OrderRequest) Patch() domain.OrderPatch {
	return domain.OrderPatch{CustomerID: r.CustomerID, MaidID: r.MaidID, TotalAmount: r.TotalAmount}
}

// OrderResponse represents an order record. OrderDate is RFC 3339 in UTC.
type OrderResponse struct {
	OrderID     int64     `json:"order_id"`
	CustomerID  int64     `json:"customer_id"`
	MaidID      int64     `json:"maid_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
}

// OrderList is the body of GET /orders.
type OrderList struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count"`
}

// OrderDeleted confirms a removed order.
type OrderDeleted struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// NewOrderResponse maps a domain order to its response.
func NewOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		MaidID:      o.MaidID,
		OrderDate:   o.OrderDate.UTC(),
		TotalAmount: o.TotalAmount,
	}
}

// NewOrderList maps orders in order and counts them.
func NewOrderList(orders []domain.Order) OrderList {
	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, NewOrderResponse(&orders[i]))
	}
	return OrderList{Orders: items, Count: len(items)}
}
