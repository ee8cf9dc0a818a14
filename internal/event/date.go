package event

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// location is the timezone concert listings are published in.
var location = loadLocation()

func loadLocation() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}

// Location returns the timezone events are anchored in.
func Location() *time.Location {
	return location
}

// Formats with an explicit year are tried first; yearless formats fall back
// to current-year resolution with rollover.
var (
	yearFormats = []string{
		"Mon, Jan 2, 2006",
		"Mon, Jan 2 2006",
		"Jan 2, 2006",
		"Jan 2 2006",
		"01/02/2006",
		"01/02/06",
	}
	yearlessFormats = []string{
		"Mon, Jan 2",
		"Jan 2",
	}
)

// ParseDate parses listing date text like "Thu, Feb 5" into a midnight
// timestamp in the venue timezone. Yearless dates resolve to the current
// year, rolling forward a year when the result would already be in the past
// (listings only ever show upcoming dates). Returns the zero time when no
// known format matches.
func ParseDate(dateText string, now time.Time) time.Time {
	dateText = strings.TrimSpace(dateText)
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range yearFormats {
		if t, err := time.Parse(layout, dateText); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
		}
	}

	for _, layout := range yearlessFormats {
		t, err := time.Parse(layout, dateText)
		if err != nil {
			continue
		}
		candidate := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, location)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
		if candidate.Before(today) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate
	}

	return time.Time{}
}

// doorsPattern matches a clock time like "6:30 pm" anywhere in doors text.
var doorsPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)

// ParseDoors extracts a time-of-day from doors text like "Doors 6:30 pm".
// Returns ok=false when no time is published.
func ParseDoors(text string) (hour, minute int, ok bool) {
	m := doorsPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0, 0, false
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour, minute, true
}

// Start combines a listing date with optional doors text. When no time is
// published the event is all-day, starting at midnight venue time.
func Start(day time.Time, doorsText string) (start time.Time, allDay bool) {
	h, m, ok := ParseDoors(doorsText)
	if !ok {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, location), true
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, location), false
}
