package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// mobileRegex accepts an optional country code (with - or space) followed
// by 7 to 14 digits.
var mobileRegex = regexp.MustCompile(`^(\+?\d{1,3}[- ]?)?\d{7,14}$`)

// patientIDRegex accepts alphanumeric characters and hyphens, e.g. "PT-001".
var patientIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration errors only occur for empty tag names, which these are not.
	_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobileRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("patientid", func(fl validator.FieldLevel) bool {
		return patientIDRegex.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "mobile":
				errors[field] = field + " must be a valid mobile number"
			case "patientid":
				errors[field] = field + " may only contain letters, digits and hyphens"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
