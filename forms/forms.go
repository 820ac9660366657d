// Package forms validates raw form input and produces the typed field
// sets the repositories persist. Validation is pure: nothing in this
// package touches the store.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validation failure messages surfaced inline on the page.
var (
	ErrAllFieldsRequired = errors.New("All fields are required.")
	ErrInvalidEmail      = errors.New("Invalid email format.")
	ErrInvalidGender     = errors.New("Invalid gender selection.")
	ErrInvalidPrice      = errors.New("Price must be a positive number.")
	ErrInvalidDuration   = errors.New("Duration must be a positive number.")
	ErrInvalidAmount     = errors.New("Amount must be a positive number.")
	ErrInvalidRating     = errors.New("Rating must be a number between 1 and 5.")
	ErrInvalidStatus     = errors.New("Invalid status selection.")
	ErrInvalidMethod     = errors.New("Invalid payment method selection.")
	ErrInvalidCustomer   = errors.New("Invalid customer selection.")
	ErrInvalidPackage    = errors.New("Invalid tour package selection.")
	ErrInvalidBooking    = errors.New("Invalid booking selection.")
)

// anyEmpty reports whether any field is empty after trimming.
func anyEmpty(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return true
		}
	}
	return false
}

// mapValidationError translates the first validator failure into its
// page message. Fields without a mapping fall back to the generic
// required-fields message.
func mapValidationError(err error, messages map[string]error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if msg, ok := messages[fe.Field()]; ok {
			return msg
		}
	}
	return ErrAllFieldsRequired
}
