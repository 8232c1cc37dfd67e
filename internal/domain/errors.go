package domain

import "github.com/cockroachdb/errors"

// ErrInvalidInput marks errors caused by what the guest typed, as opposed to
// unexpected failures. Use InputError to mark and IsInputError to test.
var ErrInvalidInput = errors.New("invalid input")

// Guest-facing messages, printed verbatim after "Input error:".
var (
	ErrInvalidLoyaltyStatus = errors.New("Loyalty status must be 'Gold', 'Silver', or 'None'.")
	ErrRoomUnavailable      = errors.New("Selected room is unavailable or invalid.")
	ErrInvalidDateOrder     = errors.New("Check-out date must be after check-in date.")
	ErrRatingOutOfRange     = errors.New("Rating must be between 1 and 5.")

	ErrRoomNotFound = errors.New("room not found")
)

func InputError(err error) error {
	return errors.Mark(err, ErrInvalidInput)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
