package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/api/dto"
	"github.com/spec-kit/maid-cafe-service/internal/api/render"
)

const pingTimeout = 2 * time.Second

// Pinger is a dependency whose connectivity can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to health, readiness and api-info requests.
type HealthHandler struct {
	serviceName string
	version     string
	database    Pinger
	cache       Pinger
	now         func() time.Time
}

// NewHealthHandler returns a new handler instance. cache may be nil when Redis is disabled.
func NewHealthHandler(serviceName, version string, database, cache Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		database:    database,
		cache:       cache,
		now:         time.Now,
	}
}

// Health reports liveness and dependency connectivity. It always answers 200.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	database := "connected"
	if h.database == nil || h.database.Ping(ctx) != nil {
		database = "disconnected"
	}

	cache := "disabled"
	if h.cache != nil {
		cache = "connected"
		if err := h.cache.Ping(ctx); err != nil {
			cache = "disconnected"
		}
	}

	return render.OK(c, dto.HealthResponse{
		Status:    "healthy",
		Service:   h.serviceName,
		Database:  database,
		Cache:     cache,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}

// Ready reports readiness. Postgres is required; Redis is reported but optional.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	deps := map[string]string{}
	ready := true

	if h.database == nil {
		deps["postgres"] = "not configured"
		ready = false
	} else if h.database.Ping(ctx) != nil {
		deps["postgres"] = "unreachable"
		ready = false
	} else {
		deps["postgres"] = "ok"
	}

	switch {
	case h.cache == nil:
		deps["redis"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		deps["redis"] = "unreachable"
	default:
		deps["redis"] = "ok"
	}

	if !ready {
		return render.Send(c, fiber.StatusServiceUnavailable, dto.ReadyResponse{Status: "unavailable", Dependencies: deps})
	}
	return render.OK(c, dto.ReadyResponse{Status: "ready", Dependencies: deps})
}

// APIInfo returns the static capability description.
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return render.OK(c, dto.APIInfoResponse{
		Name:        h.serviceName,
		Version:     h.version,
		Description: "CRUD API for managing maid cafe operations",
		Features: []string{
			"JWT authentication",
			"CRUD operations for customers, maids and orders",
			"XML/JSON output formatting",
			"Search and order filtering",
			"Input validation",
			"Error handling",
		},
		Authentication: "POST /login for a token, then pass it as ?token=",
		OutputFormat:   "Add ?format=xml for XML, or ?format=json for JSON (default)",
	})
}
