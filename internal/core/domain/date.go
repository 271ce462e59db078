package domain

import "time"

// DateLayout is the storage and wire format of due dates.
const DateLayout = "2006-01-02"

// UpcomingWindowDays bounds the upcoming dashboard bucket, counted from today.
const UpcomingWindowDays = 7

// CalendarDate drops the time of day, keeping the date as observed in t's
// own location.
func CalendarDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
