package booking

import (
	"context"

	"avira/models"
)

// BookingService exposes the consultation booking flow: slot discovery for
// the 14-day horizon and conflict-checked booking creation.
type BookingService interface {
	// GetSlots resolves the slot view for a consultant and "YYYY-MM-DD" date.
	GetSlots(ctx context.Context, consultantID, date string) (*models.DaySlots, error)
	// GetSelectableDates lists dates offered for booking within the horizon.
	GetSelectableDates(ctx context.Context, consultantID string) ([]string, error)
	// CreateBooking validates, conflict-checks and persists a new booking,
	// then triggers a best-effort confirmation notification. Failures are
	// *BookingError values carrying one of the booking failure codes.
	CreateBooking(ctx context.Context, userID string, req models.CreateBookingRequest) (*models.Booking, error)
	// ListUserBookings retrieves the caller's bookings, newest first.
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	// CreatePaymentIntent creates a Stripe payment intent for the booking.
	CreatePaymentIntent(ctx context.Context, userID, bookingID string) (string, error)
}
