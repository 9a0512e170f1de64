package wizard

import "errors"

var (
	// ErrSessionNotFound is returned when a draft has expired or never existed.
	ErrSessionNotFound = errors.New("wizard session not found or expired")

	// ErrStepGated is returned by Next when the target step's completeness
	// predicate does not hold. The session is left untouched.
	ErrStepGated = errors.New("current selections do not allow advancing to the next step")

	// ErrNotOnReviewStep is returned by Submit from any step but the last.
	ErrNotOnReviewStep = errors.New("booking can only be submitted from the review step")

	// ErrSubmitInProgress guards against double submission of one draft.
	ErrSubmitInProgress = errors.New("a submission for this session is already in progress")

	// ErrPaymentFailed is returned when the simulated payment is declined.
	// The booking record may already exist server-side.
	ErrPaymentFailed = errors.New("payment was declined")

	ErrInvalidHouseProfile = errors.New("unknown house size or frequency")
	ErrInvalidRooms        = errors.New("room counts must be between 0 and 6")
	ErrUnknownService      = errors.New("service not found in catalog")
	ErrNotALaCarte         = errors.New("service is not an a-la-carte add-on")
	ErrNotStandard         = errors.New("service is not a standard service")
	ErrNotInCart           = errors.New("service is not in the cart")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
	ErrInvalidDate         = errors.New("date must be YYYY-MM-DD")
	ErrNoDateSelected      = errors.New("select a date before choosing a time slot")
)
