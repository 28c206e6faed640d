package api

import (
	"fittrack/fitness-tracker/internal/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the `enum` binding tag, which accepts any field
// whose type is a domain.Enum holding a known value.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("enum", validateEnum)
}

func validateEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(domain.Enum)
	return ok && e.Valid()
}
