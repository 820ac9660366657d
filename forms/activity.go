package forms

import (
	"strings"
)

// ActivityInput is the raw add/update activity form.
type ActivityInput struct {
	ActivityName string `form:"activity_name"`
	Description  string `form:"description"`
}

type ActivityForm struct {
	ActivityName string `validate:"required"`
	Description  string `validate:"required"`
}

func ValidateActivity(in ActivityInput) (*ActivityForm, error) {
	name := strings.TrimSpace(in.ActivityName)
	description := strings.TrimSpace(in.Description)

	if anyEmpty(name, description) {
		return nil, ErrAllFieldsRequired
	}

	form := &ActivityForm{
		ActivityName: name,
		Description:  description,
	}

	if err := validate.Struct(form); err != nil {
		return nil, mapValidationError(err, nil)
	}
	return form, nil
}
