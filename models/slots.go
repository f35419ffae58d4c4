package models

// Slot is a fixed 60-minute bookable interval derived from a consultant's
// weekly availability template.
type Slot struct {
	Time      string `json:"time"` // "HH:MM" start of the hour
	Available bool   `json:"available"`
}

// DaySlots is the slot view for one consultant and calendar date.
type DaySlots struct {
	ConsultantID string `json:"consultant_id"`
	Date         string `json:"date"` // "YYYY-MM-DD"
	Slots        []Slot `json:"slots"`
}
