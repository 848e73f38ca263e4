// Package validator adapts go-playground/validator to Echo's Validator
// interface so handlers can call c.Validate on bound input DTOs.
package validator

import (
	domainerrors "blog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps a validator instance for Echo.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the HTTP server.
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Rule violations surface as a 400
// application error with the validator's description in the details.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
