package contextual

import (
	"fmt"
	"time"
)

// EventDateLayout is the calendar date format used by the catalog.
const EventDateLayout = "2006-01-02"

// ParseEventDate parses a YYYY-MM-DD date as midnight UTC.
func ParseEventDate(value string) (time.Time, error) {
	t, err := time.Parse(EventDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid event date %q: %w", value, err)
	}
	return t, nil
}

// DaysUntil returns the number of calendar days from the UTC date of ref to the
// event date. Past events give a negative count.
func DaysUntil(eventDate string, ref time.Time) (int, error) {
	event, err := ParseEventDate(eventDate)
	if err != nil {
		return 0, err
	}
	return daysBetween(truncateToDate(ref), event), nil
}

// IsUpcoming reports whether the event takes place on or after the UTC date of ref.
func IsUpcoming(eventDate string, ref time.Time) (bool, error) {
	days, err := DaysUntil(eventDate, ref)
	if err != nil {
		return false, err
	}
	return days >= 0, nil
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts whole days between two UTC midnights.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
