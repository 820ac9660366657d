package forms

import (
	"strconv"
	"strings"
)

// TourPackageInput is the raw add/update tour package form.
type TourPackageInput struct {
	TourName    string `form:"tour_name"`
	Description string `form:"description"`
	Price       string `form:"price"`
	Duration    string `form:"duration"`
}

type TourPackageForm struct {
	TourName    string  `validate:"required"`
	Description string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
	Duration    int     `validate:"required,gt=0"`
}

func ValidateTourPackage(in TourPackageInput) (*TourPackageForm, error) {
	name := strings.TrimSpace(in.TourName)
	description := strings.TrimSpace(in.Description)
	priceRaw := strings.TrimSpace(in.Price)
	durationRaw := strings.TrimSpace(in.Duration)

	if anyEmpty(name, description, priceRaw, durationRaw) {
		return nil, ErrAllFieldsRequired
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return nil, ErrInvalidPrice
	}
	duration, err := strconv.Atoi(durationRaw)
	if err != nil {
		return nil, ErrInvalidDuration
	}

	form := &TourPackageForm{
		TourName:    name,
		Description: description,
		Price:       price,
		Duration:    duration,
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, map[string]error{
			"Price":    ErrInvalidPrice,
			"Duration": ErrInvalidDuration,
		})
	}
	return form, nil
}
