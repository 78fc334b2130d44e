package api

import (
	stdErrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/ps-health/patient-service/errors"
)

var fieldMessages = map[string]string{
	"name":        "Name should not be Empty",
	"email":       "Provide a correct Email",
	"address":     "Empty Address not Allowed",
	"dateofBirth": "Empty Birth Date not Allowed",
}

// RequestValidator adapts go-playground/validator to echo and reports failures
// as a field keyed ValidationError.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() (*RequestValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return nil, err
	}

	return &RequestValidator{validate: validate}, nil
}

func (r *RequestValidator) Validate(i interface{}) error {
	err := r.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !stdErrors.As(err, &fieldErrors) {
		return err
	}

	result := errors.NewValidationError()
	for _, fe := range fieldErrors {
		message, ok := fieldMessages[fe.Field()]
		if !ok {
			message = fe.Error()
		}
		result.Add(fe.Field(), message)
	}
	return result
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
