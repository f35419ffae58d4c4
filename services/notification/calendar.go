package notification

import (
	"fmt"
	"net/url"
	"time"
)

const calendarCompactFormat = "20060102T150405Z"

// GenerateCalendarLink builds a Google Calendar "add event" deep link for
// the session, with start/end rendered as compact UTC timestamps.
func GenerateCalendarLink(title string, start time.Time, durationMinutes int, description string) string {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", title)
	params.Set("dates", fmt.Sprintf("%s/%s",
		start.UTC().Format(calendarCompactFormat),
		end.UTC().Format(calendarCompactFormat)))
	params.Set("details", description)
	params.Set("location", "Video Session (Link will be provided)")

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}
