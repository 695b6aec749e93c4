package entities

import (
	"errors"
	"fmt"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrAddressNotFound  = errors.New("address not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrWishlistNotFound = errors.New("wishlist not found")

	ErrAlreadyInWishlist = errors.New("product already in wishlist")
	ErrEmailTaken        = errors.New("email already registered")
	ErrSlugTaken         = errors.New("slug already exists")

	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAddressNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrWishlistNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyInWishlist) ||
		errors.Is(err, ErrEmailTaken) ||
		errors.Is(err, ErrSlugTaken)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidStatus)
}
