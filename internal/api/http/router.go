package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/spec-kit/maid-cafe-service/internal/api/http/handlers"
	"github.com/spec-kit/maid-cafe-service/internal/auth"
	"github.com/spec-kit/maid-cafe-service/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Customers *handlers.CustomersHandler
	Maids     *handlers.MaidsHandler
	Orders    *handlers.OrdersHandler
	Gate      *auth.AccessGate
	Metrics   *observability.Metrics
}

// RegisterRoutes wires HTTP routes. The access gate is attached per route so unmatched
// paths still answer 404 rather than 401.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health", cfg.Health.Health)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/api-info", cfg.Health.APIInfo)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	app.Post("/login", cfg.Auth.Login)

	gate := cfg.Gate.Handle
	app.Get("/auth-test", gate, cfg.Auth.Check)

	app.Get("/customers", gate, cfg.Customers.List)
	app.Post("/customers", gate, cfg.Customers.Create)
	app.Get("/customers/:id<int>", gate, cfg.Customers.Get)
	app.Put("/customers/:id<int>", gate, cfg.Customers.Update)
	app.Delete("/customers/:id<int>", gate, cfg.Customers.Delete)

	app.Get("/maids", gate, cfg.Maids.List)
	app.Post("/maids", gate, cfg.Maids.Create)
	app.Get("/maids/:id<int>", gate, cfg.Maids.Get)
	app.Put("/maids/:id<int>", gate, cfg.Maids.Update)
	app.Delete("/maids/:id<int>", gate, cfg.Maids.Delete)

	app.Get("/orders", gate, cfg.Orders.List)
	app.Post("/orders", gate, cfg.Orders.Create)
	app.Get("/orders/:id<int>", gate, cfg.Orders.Get)
	app.Put("/orders/:id<int>", gate, cfg.Orders.Update)
	app.Delete("/orders/:id<int>", gate, cfg.Orders.Delete)
}
