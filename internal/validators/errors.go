package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values no validator is registered for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField is returned when a requested field name does not
	// belong to the validated type.
	ErrUnknownField = errors.New("unknown field for validation")

	// ErrInvalidRequest wraps every rule violation. The wrapped ozzo
	// validation.Errors carries the per-field messages.
	ErrInvalidRequest = errors.New("invalid request")
)
