// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrBookingNotFound is returned when no booking matches the given ID.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidSubmission is returned when a submission fails validation.
	ErrInvalidSubmission = errors.New("invalid booking submission")

	// ErrAlreadySettled guards against paying for a booking twice.
	ErrAlreadySettled = errors.New("payment for this booking is already settled")
)
