package service

import (
	"errors"
	"fmt"

	"github.com/spec-kit/maid-cafe-service/internal/repository"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// mapRepoError translates repository failures into the service error taxonomy.
func mapRepoError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound(resource)
	case errors.Is(err, repository.ErrCustomerNotFound):
		return apperrors.NewNotFound("customer")
	case errors.Is(err, repository.ErrMaidNotFound):
		return apperrors.NewNotFound("maid")
	case errors.Is(err, repository.ErrHasOrders):
		return apperrors.NewConflict(fmt.Sprintf("cannot delete %s with existing orders, delete orders first", resource))
	default:
		return apperrors.NewStoreError(err)
	}
}
