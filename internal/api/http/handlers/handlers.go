package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/service"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// CustomerService is the customer use-case surface the handlers depend on.
type CustomerService interface {
	List(ctx context.Context, search string) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, input service.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// MaidService is the maid use-case surface the handlers depend on.
type MaidService interface {
	List(ctx context.Context, search string) ([]domain.Maid, error)
	Get(ctx context.Context, id int64) (*domain.Maid, error)
	Create(ctx context.Context, input service.MaidInput) (*domain.Maid, error)
	Update(ctx context.Context, id int64, patch domain.MaidPatch) (*domain.Maid, error)
	Delete(ctx context.Context, id int64) error
}

// OrderService is the order use-case surface the handlers depend on.
type OrderService interface {
	List(ctx context.Context, query service.OrderListQuery) ([]domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, input service.OrderInput) (*domain.Order, error)
	Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}

// AuthService exchanges credentials for a session token.
type AuthService interface {
	Login(username, password string) (*service.LoginResult, error)
}

var (
	_ CustomerService = (*service.CustomerService)(nil)
	_ MaidService     = (*service.MaidService)(nil)
	_ OrderService    = (*service.OrderService)(nil)
	_ AuthService     = (*service.AuthService)(nil)
)

func errResourceNotFound() error {
	return apperrors.NewDomainError(apperrors.CodeNotFound, "resource not found", fiber.StatusNotFound)
}

// pathID reads the :id route parameter. Anything but a positive integer is an unknown resource.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errResourceNotFound()
	}
	return id, nil
}

// decodeBody unmarshals a JSON object body into dst. An empty body, null or {} is
// reported as "no data provided".
func decodeBody(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return apperrors.NewValidationError("no data provided")
	}

	decode := c.App().Config().JSONDecoder
	var fields map[string]json.RawMessage
	if err := decode(body, &fields); err != nil {
		return apperrors.NewValidationError("invalid JSON payload")
	}
	if len(fields) == 0 {
		return apperrors.NewValidationError("no data provided")
	}
	if err := decode(body, dst); err != nil {
		return apperrors.NewValidationError("invalid JSON payload")
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
