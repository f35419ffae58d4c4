package bookingRepo

import (
	"context"
	"errors"
	"time"

	"avira/models"
)

// ErrSlotTaken is returned when an insert collides with the unique
// (consultant_id, scheduled_at) index over active bookings.
var ErrSlotTaken = errors.New("an active booking already exists for this slot")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record. Returns ErrSlotTaken when an
	// active booking already occupies the same consultant and instant.
	Create(ctx context.Context, booking *models.Booking) error
	// FindActiveAt retrieves an active (pending/confirmed) booking for the
	// consultant at the exact instant, or nil.
	FindActiveAt(ctx context.Context, consultantID string, at time.Time) (*models.Booking, error)
	// ListActiveForDay retrieves active bookings for the consultant within
	// the given calendar day [dayStart, dayStart+24h).
	ListActiveForDay(ctx context.Context, consultantID string, dayStart time.Time) ([]models.Booking, error)
	// ListByUser retrieves all bookings made by the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	// GetByID retrieves a booking by its unique ID, or nil.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// SetPaymentIntent stores the Stripe payment intent ID on the booking.
	SetPaymentIntent(ctx context.Context, id, intentID string) error
}
