package usecase

import "errors"

// ErrValidation is the parent of every input error. Callers map it to a 400 response.
var ErrValidation = errors.New("validation failed")

// Validation errors. Each one matches ErrValidation with errors.Is.
var (
	ErrMissingField    = validationError("required field is missing")
	ErrInvalidField    = validationError("field has an invalid value")
	ErrDuplicatePhone  = validationError("phone number is already registered")
	ErrUnverifiedPhone = validationError("phone number is not verified")
	ErrCodeNotFound    = validationError("no verification code found for this phone")
	ErrCodeExpired     = validationError("verification code has expired")
	ErrCodeMismatch    = validationError("verification code does not match")
)

// Context keys for error values
const (
	FieldKey = "field"
	ValueKey = "value"
)

type validationErr struct {
	msg string
}

func validationError(msg string) error {
	return &validationErr{msg: msg}
}

func (e *validationErr) Error() string {
	return e.msg
}

func (e *validationErr) Is(target error) bool {
	return target == ErrValidation
}
