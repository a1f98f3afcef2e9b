package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/api/dto"
	"github.com/spec-kit/maid-cafe-service/internal/api/render"
	"github.com/spec-kit/maid-cafe-service/internal/service"
)

// MaidsHandler manages maid endpoints.
type MaidsHandler struct {
	service MaidService
}

// NewMaidsHandler constructs handler.
func NewMaidsHandler(maidService MaidService) *MaidsHandler {
	return &MaidsHandler{service: maidService}
}

// List GET /maids?q=.
func (h *MaidsHandler) List(c *fiber.Ctx) error {
	maids, err := h.service.List(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewMaidList(maids))
}

// Get GET /maids/:id.
func (h *MaidsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	maid, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewMaidResponse(maid))
}

// Create POST /maids. Omitted shift times take the service defaults.
func (h *MaidsHandler) Create(c *fiber.Ctx) error {
	var req dto.MaidRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	maid, err := h.service.Create(c.UserContext(), service.MaidInput{
		Name:           deref(req.Name),
		ShiftStartTime: deref(req.ShiftStartTime),
		ShiftEndTime:   deref(req.ShiftEndTime),
	})
	if err != nil {
		return err
	}
	return render.Created(c, dto.NewMaidResponse(maid))
}

// Update PUT /maids/:id.
func (h *MaidsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.MaidRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	maid, err := h.service.Update(c.UserContext(), id, req.Patch())
	if err != nil {
		return err
	}
	return render.OK(c, dto.NewMaidResponse(maid))
}

// Delete DELETE /maids/:id. Maids with orders are refused.
func (h *MaidsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return render.OK(c, dto.MaidDeleted{Message: "maid deleted successfully", MaidID: id})
}
