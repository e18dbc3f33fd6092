package model

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar-day layout used for every bar date.
const DateLayout = "2006-01-02"

// Resolution is the granularity of a bar sequence.
type Resolution string

const (
	Day   Resolution = "D"
	Week  Resolution = "W"
	Month Resolution = "M"
)

// ParseResolution accepts D/W/M (and day/week/month, case-insensitive).
func ParseResolution(s string) (Resolution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day", "daily":
		return Day, nil
	case "w", "week", "weekly":
		return Week, nil
	case "m", "month", "monthly":
		return Month, nil
	default:
		return "", fmt.Errorf("unknown resolution %q (use D, W or M)", s)
	}
}

// Bar represents one OHLCV observation at a given resolution.
// Date is a timezone-naive calendar day stored as UTC midnight.
type Bar struct {
	Date       time.Time
	Open       float64
	High       float64
	Low        float64
	Close      float64
	Volume     float64
	Symbol     string
	Resolution Resolution
}

// DateString returns the bar date as YYYY-MM-DD.
func (b Bar) DateString() string {
	return b.Date.Format(DateLayout)
}

// CalendarDay truncates t to its UTC calendar day.
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses YYYY-MM-DD into a UTC calendar day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}
