package forms

import (
	"strings"

	"github.com/exoticlanka/backoffice/models"
)

// CustomerInput is the raw add/update customer form.
type CustomerInput struct {
	CustomerName string `form:"customer_name"`
	Nationality  string `form:"nationality"`
	ContactNo    string `form:"contact_no"`
	Email        string `form:"email"`
	Gender       string `form:"gender"` // display label: Male / Female
}

// CustomerForm is the validated field set, gender already mapped to its
// single-character code.
type CustomerForm struct {
	CustomerName string `validate:"required"`
	Nationality  string `validate:"required"`
	ContactNo    string `validate:"required"`
	Email        string `validate:"required,email"`
	Gender       string `validate:"required,oneof=M F"`
}

// ValidateCustomer checks the raw input and returns the typed form.
func ValidateCustomer(in CustomerInput) (*CustomerForm, error) {
	name := strings.TrimSpace(in.CustomerName)
	nationality := strings.TrimSpace(in.Nationality)
	contact := strings.TrimSpace(in.ContactNo)
	email := strings.TrimSpace(in.Email)
	label := strings.TrimSpace(in.Gender)

	if anyEmpty(name, nationality, contact, email, label) {
		return nil, ErrAllFieldsRequired
	}

	form := &CustomerForm{
		CustomerName: name,
		Nationality:  nationality,
		ContactNo:    contact,
		Email:        email,
		Gender:       genderCode(label),
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, map[string]error{
			"Email":  ErrInvalidEmail,
			"Gender": ErrInvalidGender,
		})
	}
	return form, nil
}

// genderCode maps the display label to the stored char(1) code. Any
// other label yields an empty code, which fails the oneof rule.
func genderCode(label string) string {
	switch label {
	case "Male":
		return models.GenderMale
	case "Female":
		return models.GenderFemale
	}
	return ""
}
