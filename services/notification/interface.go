package notification

import (
	"context"

	"avira/models"
)

// NotificationService delivers booking confirmations. Failures are the
// caller's to log; a failed notification never invalidates a booking.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, conf models.BookingConfirmation) error
}
