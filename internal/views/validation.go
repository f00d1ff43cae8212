package views

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals
var validate = newValidator()

func newValidator() *validator.Validate {
	vld := validator.New(validator.WithRequiredStructEnabled())
	vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	return vld
}

// Fields are the editable values of the employee form.
type Fields struct {
	FirstName string `form:"firstName" label:"First Name" validate:"required"`
	LastName  string `form:"lastName"  label:"Last Name"  validate:"required"`
	Email     string `form:"email"     label:"Email"      validate:"required"`
}

// FieldErrors holds the message shown under each field. An empty string means no message.
type FieldErrors struct {
	FirstName string
	LastName  string
	Email     string
}

// Empty reports whether no field carries a message.
func (e FieldErrors) Empty() bool {
	return e == FieldErrors{}
}

// validateFields checks that every field is non-empty. Only presence is checked, not the e-mail format.
func validateFields(fields Fields) FieldErrors {
	var result FieldErrors

	err := validate.Struct(fields)
	if err == nil {
		return result
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return result
	}

	for _, fieldErr := range validationErrors {
		message := fieldErr.Field() + " is required"
		switch fieldErr.StructField() {
		case "FirstName":
			result.FirstName = message
		case "LastName":
			result.LastName = message
		case "Email":
			result.Email = message
		}
	}

	return result
}
