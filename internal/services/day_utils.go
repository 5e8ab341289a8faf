package services

import "time"

// DateAtLocation truncates an instant to midnight of its calendar day
// in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DateOnlyUTC is the canonical storage form for calendar dates:
// midnight UTC of the instant's UTC calendar day.
func DateOnlyUTC(value time.Time) time.Time {
	year, month, day := value.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// LoadLocationOrUTC resolves an IANA timezone name, degrading to UTC on
// unknown names instead of failing.
func LoadLocationOrUTC(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func daysBetweenDates(earlier time.Time, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
