// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request DTOs.
package validator

import (
	domainerrors "accounts/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an echo-compatible validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct-level validation tags and converts failures into the
// application's validation error so the error middleware renders them as 400s.
func (v *echoValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
