package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/softpro2020/foodland/apperr"
)

var validate = validator.New()

// ValidateStruct runs validator tags on a service input struct and maps
// failures to a field-level validation error. Nothing is written when it
// fails.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	return ValidationErr(err)
}

// ValidationErr converts validator.ValidationErrors (from gin binding or
// a direct validate call) into the application's validation error.
func ValidationErr(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(err, apperr.ErrValidation, err.Error())
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = "failed " + fe.Tag() + " check"
	}
	e := *apperr.ErrValidation
	e.Message = "invalid input"
	e.Fields = fields
	return &e
}

// IsDigits reports whether s consists of exactly n ASCII digits. Phone
// numbers, national codes and guild ids all use this shape.
func IsDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
