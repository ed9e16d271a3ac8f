package store

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrUnauthorized = errors.New("not authorized")
	ErrSoldOut      = errors.New("event is sold out")
	ErrUserChanged  = errors.New("current user changed")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrOrphanedBooking is reported by AttendeesForEvent when a booking
// points at a user the store does not know.
var ErrOrphanedBooking = errors.New("booking references unknown user")
