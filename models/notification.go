package models

import "time"

// BookingConfirmation carries everything needed to notify a user about a
// newly created booking.
type BookingConfirmation struct {
	BookingID       string    `json:"booking_id"`
	UserEmail       string    `json:"user_email"`
	UserFCMToken    string    `json:"-"`
	ConsultantName  string    `json:"consultant_name"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	DurationMinutes int       `json:"duration_minutes"`
}
