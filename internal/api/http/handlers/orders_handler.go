package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/api/dto"
	"github.com/spec-kit/maid-cafe-service/internal/api/render"
	"github.com/spec-kit/maid-cafe-service/internal/service"
)

// OrdersHandler manages order endpoints.
type OrdersHandler struct {
	service OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService OrderService) *OrdersHandler {
	return &OrdersHandler{service: orderService}
}

// List GET /orders with optional customer_id, maid_id, start_date, end_date,
// min_amount and max_amount filters.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.List(c.UserContext(), parseOrderListQuery(c))
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewOrderList(orders))
}

// Get GET /orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewOrderResponse(order))
}

// Create POST /orders.
func (h *OrdersHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	order, err := h.service.Create(c.UserContext(), service.OrderInput{
		CustomerID:  deref(req.CustomerID),
		MaidID:      deref(req.MaidID),
		TotalAmount: deref(req.TotalAmount),
	})
	if err != nil {
		return err
	}
	return render.Created(c, dto.NewOrderResponse(order))
}

// Update PUT /orders/:id.
func (h *OrdersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.OrderRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	order, err := h.service.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewOrderResponse(order))
}

// Delete DELETE /orders/:id.
func (h *OrdersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return render.OK(c, dto.OrderDeleted{Message: "order deleted successfully", OrderID: id})
}

func parseOrderListQuery(c *fiber.Ctx) service.OrderListQuery {
	return service.OrderListQuery{
		CustomerID: c.Query("customer_id"),
		MaidID:     c.Query("maid_id"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		MinAmount:  c.Query("min_amount"),
		MaxAmount:  c.Query("max_amount"),
	}
}
