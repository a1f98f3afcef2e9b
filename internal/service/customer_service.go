package service

import (
	"context"
	"strings"

	"github.com/spec-kit/maid-cafe-service/internal/domain"
	"github.com/spec-kit/maid-cafe-service/internal/repository"
	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// CustomerService validates customer input and delegates to the repository.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService constructs the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// CustomerInput describes customer creation payload.
type CustomerInput struct {
	Name        string
	Email       string
	PhoneNumber string
}

// List returns all customers, or those whose name, email or phone contains search.
func (s *CustomerService) List(ctx context.Context, search string) ([]domain.Customer, error) {
	list, err := s.customers.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, mapRepoError(err, "customer")
	}
	return list, nil
}

// Get fetches one customer.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "customer")
	}
	return customer, nil
}

// Create inserts a customer; name is required.
func (s *CustomerService) Create(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	if err := checkCustomerFields(&input.Name, &input.Email, &input.PhoneNumber); err != nil {
		return nil, err
	}
	customer := &domain.Customer{
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, mapRepoError(err, "customer")
	}
	return customer, nil
}

// Update merges the supplied fields into the stored customer.
func (s *CustomerService) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	if patch.Empty() {
		return nil, apperrors.NewValidationError("no data provided")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if err := checkCustomerFields(patch.Name, patch.Email, patch.PhoneNumber); err != nil {
		return nil, err
	}
	customer, err := s.customers.Update(ctx, id, patch)
	if err != nil {
		return nil, mapRepoError(err, "customer")
	}
	return customer, nil
}

// Delete removes a customer that no order references.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return mapRepoError(s.customers.Delete(ctx, id), "customer")
}
