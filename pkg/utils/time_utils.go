package utils

import "time"

// Trip dates travel through the API as plain calendar days.
const TripDateLayout = "2006-01-02"

func ParseTripDate(s string) (time.Time, error) {
	return time.Parse(TripDateLayout, s)
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TripDateLayout)
}

// TripDurationDays counts whole days inclusive of both travel days, so a trip
// starting and ending on the same date lasts one day.
func TripDurationDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
