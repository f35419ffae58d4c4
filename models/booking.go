package models

import "time"

// Booking statuses. Only bookings in an active status occupy a slot.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

// Booking represents a scheduled consultation.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	ConsultantID    string    `bson:"consultant_id" json:"consultant_id"`
	ScheduledAt     time.Time `bson:"scheduled_at" json:"scheduled_at"`
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	Status          string    `bson:"status" json:"status"`
	Active          bool      `bson:"active" json:"-"` // true while status is pending/confirmed; backs the unique slot index
	PaymentAmount   float64   `bson:"payment_amount" json:"payment_amount"`
	PaymentStatus   string    `bson:"payment_status" json:"payment_status"`
	PaymentIntentID string    `bson:"payment_intent_id,omitempty" json:"-"`
	Notes           string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// CreateBookingRequest is the payload for booking creation.
type CreateBookingRequest struct {
	ConsultantID    string  `json:"consultant_id"`
	ScheduledAt     string  `json:"scheduled_at"` // ISO-8601
	Notes           string  `json:"notes,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	PaymentAmount   float64 `json:"payment_amount"`
}

// CreateBookingResponse mirrors the edge contract: HTTP 200 with
// success=true, or HTTP 400 with success=false and an error message.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"booking_id,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}
