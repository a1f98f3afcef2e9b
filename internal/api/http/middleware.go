package http

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/maid-cafe-service/internal/api/render"
	"github.com/spec-kit/maid-cafe-service/internal/observability"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// RegisterMiddlewares attaches global middlewares. The request logger is outermost so it
// observes the status written by the error handler.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", observability.RequestID(c)),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = apperrors.NewInternalError(fmt.Errorf("panic: %v", r))
			}
			if err != nil {
				domainErr := toDomainError(err)
				metrics.RecordError(observability.RouteLabel(c), c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= fiber.StatusInternalServerError {
					logger.Error("request failed",
						zap.String("request_id", observability.RequestID(c)),
						zap.String("code", domainErr.Code),
						zap.Error(domainErr),
					)
				}
				err = render.Error(c, domainErr.HTTPStatus, domainErr.Message)
			}
		}()
		return c.Next()
	}
}

// toDomainError also covers errors raised by fiber itself: unmatched routes, failed
// route constraints and oversized bodies.
func toDomainError(err error) *apperrors.DomainError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		switch {
		case fiberErr.Code == fiber.StatusNotFound:
			return apperrors.NewDomainError(apperrors.CodeNotFound, "resource not found", fiber.StatusNotFound)
		case fiberErr.Code == fiber.StatusMethodNotAllowed:
			return apperrors.NewDomainError(apperrors.CodeValidation, "method not allowed", fiberErr.Code)
		case fiberErr.Code == fiber.StatusRequestEntityTooLarge:
			return apperrors.NewDomainError(apperrors.CodeValidation, "request body too large", fiberErr.Code)
		case fiberErr.Code < fiber.StatusInternalServerError:
			return apperrors.NewDomainError(apperrors.CodeValidation, "bad request", fiberErr.Code)
		default:
			return apperrors.ToDomainError(apperrors.NewInternalError(err))
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.ToDomainError(apperrors.NewInternalError(err))
	}
	return apperrors.ToDomainError(err)
}

// errorHandler renders errors that never reach the middleware chain.
func errorHandler(c *fiber.Ctx, err error) error {
	domainErr := toDomainError(err)
	return render.Error(c, domainErr.HTTPStatus, domainErr.Message)
}
