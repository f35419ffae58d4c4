package booking

import "fmt"

// Booking failure codes surfaced to the API.
const (
	CodeValidationError     = "validation_error"
	CodeProviderUnavailable = "provider_unavailable"
	CodeSlotAlreadyBooked   = "slot_already_booked"
	CodePersistenceError    = "persistence_error"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}
