package models

import "time"

// Consultant is a mental-health professional bookable through the app.
// Clients only ever see the anonymous identifier.
type Consultant struct {
	ID             string    `bson:"id" json:"id"`
	AnonymousID    string    `bson:"anonymous_id" json:"anonymous_id"`
	Name           string    `bson:"name" json:"-"`
	Specialization string    `bson:"specialization" json:"specialization"`
	Bio            string    `bson:"bio" json:"bio"`
	Rating         float64   `bson:"rating" json:"rating"`
	HourlyRate     float64   `bson:"hourly_rate" json:"hourly_rate"`
	IsAvailable    bool      `bson:"is_available" json:"is_available"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// AvailabilityRule is one recurring weekly window of a consultant's
// schedule. Times are "HH:MM" wall-clock strings; DayOfWeek follows
// time.Weekday (0 = Sunday).
type AvailabilityRule struct {
	ConsultantID string `bson:"consultant_id" json:"consultant_id"`
	DayOfWeek    int    `bson:"day_of_week" json:"day_of_week"`
	StartTime    string `bson:"start_time" json:"start_time"`
	EndTime      string `bson:"end_time" json:"end_time"`
}
