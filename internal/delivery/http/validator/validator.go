// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	domainerrors "leyenda/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the struct tags on a bound request. Failures surface as a
// validation AppError so the central error handler renders them as 400s.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
