package service

import (
	"fmt"
	"unicode/utf8"

	apperrors "github.com/spec-kit/maid-cafe-service/pkg/util/errorutil"
)

// Column widths of the VARCHAR columns.
const (
	maxNameLength  = 100
	maxEmailLength = 100
	maxPhoneLength = 20
)

// checkLength rejects values longer than the column holding them. Postgres counts characters.
func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return apperrors.NewValidationError(fmt.Sprintf("%s must be at most %d characters", field, max))
	}
	return nil
}

func checkCustomerFields(name, email, phone *string) error {
	checks := []struct {
		field string
		value *string
		max   int
	}{
		{"name", name, maxNameLength},
		{"email", email, maxEmailLength},
		{"phone_number", phone, maxPhoneLength},
	}
	for _, c := range checks {
		if c.value == nil {
			continue
		}
		if err := checkLength(c.field, *c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}
