// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "tracker/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for echo.Echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New builds the validator used by every handler's c.Validate call.
func New() *EchoValidator {
	return &EchoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the shared
// validation error so the error handler renders them uniformly.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
