package forms

import (
	"strconv"
	"strings"
)

// FeedbackInput is the raw add/update feedback form.
type FeedbackInput struct {
	CustomerID string `form:"customer_id"`
	PackageID  string `form:"package_id"`
	Rating     string `form:"rating"`
	Comments   string `form:"comments"`
}

type FeedbackForm struct {
	CustomerID uint   `validate:"required"`
	PackageID  uint   `validate:"required"`
	Rating     int    `validate:"required,min=1,max=5"`
	Comments   string `validate:"required"`
}

func ValidateFeedback(in FeedbackInput) (*FeedbackForm, error) {
	customerRaw := strings.TrimSpace(in.CustomerID)
	packageRaw := strings.TrimSpace(in.PackageID)
	ratingRaw := strings.TrimSpace(in.Rating)
	comments := strings.TrimSpace(in.Comments)

	if anyEmpty(customerRaw, packageRaw, ratingRaw, comments) {
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

	// Rating must be a whole number; 4.5 is rejected.
	rating, err := strconv.Atoi(ratingRaw)
	if err != nil {
		return nil, ErrInvalidRating
	}

	form := &FeedbackForm{
		CustomerID: uint(customerID),
		PackageID:  uint(packageID),
		Rating:     rating,
		Comments:   comments,
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, map[string]error{
			"Rating": ErrInvalidRating,
		})
	}
	return form, nil
}
