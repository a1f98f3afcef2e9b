package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/api/dto"
	"github.com/spec-kit/maid-cafe-service/internal/api/render"
	"github.com/spec-kit/maid-cafe-service/internal/service"
)

// CustomersHandler manages customer endpoints.
type CustomersHandler struct {
	service CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customerService CustomerService) *CustomersHandler {
	return &CustomersHandler{service: customerService}
}

// List GET /customers?q=.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewCustomerList(customers))
}

// Get GET /customers/:id.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewCustomerResponse(customer))
}

// Create POST /customers.
func (h *CustomersHandler) Create(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Create(c.UserContext(), service.CustomerInput{
		Name:        deref(req.Name),
		Email:       deref(req.Email),
		PhoneNumber: deref(req.PhoneNumber),
	})
	if err != nil {
		return err
	}
	return render.Created(c, dto.NewCustomerResponse(customer))
}

// Update PUT /customers/:id.
func (h *CustomersHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.CustomerRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	customer, err := h.service.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewCustomerResponse(customer))
}

// Delete DELETE /customers/:id.
func (h *CustomersHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return render.OK(c, dto.CustomerDeleted{Message: "customer deleted successfully", CustomerID: id})
}
