package dto

import "github.com/spec-kit/maid-cafe-service/internal/domain"

// CustomerRequest is used for both create and partial update. Absent or null fields are nil.
type CustomerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phone_number"`
}

// Patch converts the request into a partial update.
func (r CustomerRequest) Patch() domain.CustomerPatch {
	return domain.CustomerPatch{Name: r.Name, Email: r.Email, PhoneNumber: r.PhoneNumber}
}

// CustomerResponse represents a customer record.
type CustomerResponse struct {
	CustomerID  int64  `json:"customer_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// CustomerList wraps a customer listing.
type CustomerList struct {
	Customers []CustomerResponse `json:"customers"`
	Count     int                `json:"count"`
}

// CustomerDeleted confirms a deletion.
type CustomerDeleted struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id"`
}

// NewCustomerResponse maps the domain record.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

// NewCustomerList maps a listing; an empty listing renders as an empty sequence.
func NewCustomerList(customers []domain.Customer) CustomerList {
	items := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, NewCustomerResponse(&customers[i]))
	}
	return CustomerList{Customers: items, Count: len(items)}
}
