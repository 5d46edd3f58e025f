package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var (
	validate = validator.New()

	// "A01" — one uppercase letter, two digits.
	categoryCodeRe = regexp.MustCompile(`^[A-Z][0-9]{2}$`)
	// "01" — two digits, scoped per category.
	productCodeRe = regexp.MustCompile(`^[0-9]{2}$`)
)

func init() {
	validate.RegisterValidation("category_code", func(fl validator.FieldLevel) bool {
		return categoryCodeRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("product_code", func(fl validator.FieldLevel) bool {
		return productCodeRe.MatchString(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
