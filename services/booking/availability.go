package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"avira/models"
)

const (
	// SlotMinutes is the fixed slot granularity. Partial-hour rules and
	// other durations are not supported.
	SlotMinutes = 60

	// BookingHorizonDays bounds how far ahead a date can be selected.
	BookingHorizonDays = 14
)

// parseClock converts a "HH:MM" wall-clock string to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

// ruleForWeekday returns the availability rule matching the weekday, or nil.
func ruleForWeekday(rules []models.AvailabilityRule, weekday time.Weekday) *models.AvailabilityRule {
	for i := range rules {
		if rules[i].DayOfWeek == int(weekday) {
			return &rules[i]
		}
	}
	return nil
}

// SlotsForDate resolves the bookable slot view for one calendar date.
// It walks the matching rule's window in fixed 60-minute increments and
// marks a slot unavailable when an active (pending or confirmed) booking
// starts at that exact instant, or when the slot start is not in the
// future relative to now. Cancelled bookings never occupy a slot, even if
// a caller passes them in. Bookings that do not align to a slot boundary
// are not detected here.
func SlotsForDate(rules []models.AvailabilityRule, date time.Time, bookings []models.Booking, now time.Time) ([]models.Slot, error) {
	rule := ruleForWeekday(rules, date.Weekday())
	if rule == nil {
		return nil, nil
	}

	startMin, err := parseClock(rule.StartTime)
	if err != nil {
		return nil, err
	}
	endMin, err := parseClock(rule.EndTime)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			continue
		}
		booked[b.ScheduledAt.In(date.Location()).Format("15:04")] = true
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	var slots []models.Slot
	for min := startMin; min < endMin; min += SlotMinutes {
		slotStart := dayStart.Add(time.Duration(min) * time.Minute)
		clock := slotStart.Format("15:04")
		slots = append(slots, models.Slot{
			Time:      clock,
			Available: !booked[clock] && slotStart.After(now),
		})
	}
	return slots, nil
}

// DateSelectable reports whether a date can be offered for booking: its
// weekday must carry a rule, and it must fall between today and the
// booking horizon inclusive.
func DateSelectable(rules []models.AvailabilityRule, date time.Time, now time.Time) bool {
	if ruleForWeekday(rules, date.Weekday()) == nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return false
	}
	return !day.After(today.AddDate(0, 0, BookingHorizonDays))
}

// SelectableDates lists the selectable dates within the booking horizon,
// formatted "YYYY-MM-DD".
func SelectableDates(rules []models.AvailabilityRule, now time.Time) []string {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var dates []string
	for i := 0; i <= BookingHorizonDays; i++ {
		day := today.AddDate(0, 0, i)
		if DateSelectable(rules, day, now) {
			dates = append(dates, day.Format("2006-01-02"))
		}
	}
	return dates
}
