package timezone

import "time"

// DefaultTimezone is where the distribution centers operate.
const DefaultTimezone = "America/Bogota"

const dayLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to DefaultTimezone, then UTC.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Stamp is the RFC 3339 form of the current time in tz.
func Stamp(tz string) string {
	return NowIn(tz).Format(time.RFC3339)
}

// DayBounds parses a YYYY-MM-DD day in tz and returns [start, next day).
func DayBounds(day, tz string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dayLayout, day, Location(tz))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}
