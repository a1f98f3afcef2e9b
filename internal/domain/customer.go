package domain

// Customer is a cafe guest.
type Customer struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber string
}

// CustomerPatch carries the fields supplied to an update; nil means keep.
type CustomerPatch struct {
	Name        *string
	Email       *string
	PhoneNumber *string
}

// Apply merges the patch into c.
func (p CustomerPatch) Apply(c *Customer) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
}

// Empty reports whether no field was supplied.
func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Email == nil && p.PhoneNumber == nil
}
