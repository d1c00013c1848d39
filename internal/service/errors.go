package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/munch-accounts/internal/store"
	"github.com/MKhiriev/munch-accounts/internal/validators"
)

// Error kinds of the account operations. Every error an AccountService
// returns matches exactly one of the first five with [errors.Is];
// ErrUpdateFailed additionally marks failures of the save step of an update.
var (
	ErrValidation       = errors.New("validation error")
	ErrDuplicateKey     = errors.New("duplicate key")
	ErrNotFound         = errors.New("user not found")
	ErrPasswordMismatch = errors.New("pass does not match")
	ErrStore            = errors.New("store error")

	ErrUpdateFailed = errors.New("error when updating user")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// kindOf converts a store or validation error into its error kind, keeping
// the cause in the chain.
func kindOf(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrValidation), errors.Is(err, store.ErrUnknownField):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, store.ErrDuplicateKey):
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return fmt.Errorf("%w: %w", ErrStore, err)
	}
}
