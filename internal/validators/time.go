package validators

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var errNotISO8601 = errors.New("not an ISO-8601 value")

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errNotISO8601
	}
	return t.UTC(), nil
}

// parseDateOrInstant accepts a full instant or a bare calendar date. A bare
// date is midnight in loc (UTC when loc is nil); dateOnly tells them apart.
func parseDateOrInstant(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if t, err := parseInstant(s); err == nil {
		return t, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false, errNotISO8601
	}
	return d.UTC(), true, nil
}
