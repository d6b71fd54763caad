package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location falls back to the clinic default, then UTC.
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

// Format renders t as the clinic reads it, e.g. "01/01/2025 07:00".
func Format(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006 15:04")
}
