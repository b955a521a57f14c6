package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-autonav/internal/store"
)

// Authentication and authorization outcomes. The transport layer maps each of
// them to a fixed client message that does not tell which check failed.
var (
	// ErrInvalidCredentials covers an unknown identifier and a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountDisabled is returned at login and at per-request
	// authorization when the account exists but is disabled.
	ErrAccountDisabled = errors.New("account is disabled")

	// ErrUnauthenticated covers missing, malformed, forged and expired tokens
	// as well as tokens whose subject no longer exists.
	ErrUnauthenticated = errors.New("missing, invalid, or expired token")

	// ErrForbidden is returned when the principal lacks the required role.
	ErrForbidden = errors.New("insufficient privileges")
)

var (
	// ErrStore wraps persistence failures that are not a missing record or a
	// uniqueness conflict.
	ErrStore = errors.New("storage failure")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidID           = errors.New("invalid identifier")

	// ErrCannotDeleteSelf is returned when an administrator tries to delete
	// their own account.
	ErrCannotDeleteSelf = errors.New("users cannot delete themselves")

	// ErrPasswordChanged is returned when a password rotation lost a race
	// against another rotation of the same account.
	ErrPasswordChanged = errors.New("password was changed concurrently, retry")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// storeError passes through the store errors that carry meaning for clients
// and folds everything else into [ErrStore].
func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrAlreadyExists) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
