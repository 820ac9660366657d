package forms

import (
	"strconv"
	"strings"
)

// BookingInput is the raw add/update booking form. Customer and package
// ids come from the page dropdowns.
type BookingInput struct {
	CustomerID  string `form:"customer_id"`
	PackageID   string `form:"package_id"`
	BookingDate string `form:"booking_date"`
	Status      string `form:"status"`
}

type BookingForm struct {
	CustomerID  uint   `validate:"required"`
	PackageID   uint   `validate:"required"`
	BookingDate string `validate:"required"`
	Status      string `validate:"required,oneof=Pending Confirmed Cancelled"`
}

func ValidateBooking(in BookingInput) (*BookingForm, error) {
	customerRaw := strings.TrimSpace(in.CustomerID)
	packageRaw := strings.TrimSpace(in.PackageID)
	date := strings.TrimSpace(in.BookingDate)
	status := strings.TrimSpace(in.Status)

	if anyEmpty(customerRaw, packageRaw, date, status) {
		return nil, ErrAllFieldsRequired
	}

	customerID, err := strconv.ParseUint(customerRaw, 10, 32)
	if err != nil || customerID == 0 {
		return nil, ErrInvalidCustomer
	}
	packageID, err := strconv.ParseUint(packageRaw, 10, 32)
	if err != nil || packageID == 0 {
		return nil, ErrInvalidPackage
	}

	form := &BookingForm{
		CustomerID:  uint(customerID),
		PackageID:   uint(packageID),
		BookingDate: date,
		Status:      status,
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, map[string]error{
			"Status": ErrInvalidStatus,
		})
	}
	return form, nil
}
