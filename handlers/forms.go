package handlers

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// AddForm is the title-search form.
type AddForm struct {
	Title string `validate:"required"`
}

// EditForm carries the rating and review submission.
type EditForm struct {
	Rating string `validate:"required,rating"`
	Review string `validate:"required"`
}

// A rating is a non-negative decimal, capped at 10 to match the
// "out of 10" label on the form.
var ratingPattern = regexp.MustCompile(`^[0-9]\d*(\.\d+)?$`)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if !ratingPattern.MatchString(value) {
			return false
		}
		rating, err := strconv.ParseFloat(value, 64)
		return err == nil && rating <= 10
	})
	return v
}

// ValidateForm runs the validator and returns field-level messages keyed by
// struct field name, or nil when the form is valid.
func ValidateForm(form any) map[string]string {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}

	messages := map[string]string{}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validationErrors {
			messages[fieldErr.Field()] = errorMessage(fieldErr.Tag())
		}
	}
	return messages
}

func errorMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "rating":
		return "Please enter a valid rating (0-10)"
	default:
		return "Invalid value"
	}
}
