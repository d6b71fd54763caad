// Package reminder schedules appointment reminders on a Redis sorted set
// and delivers them from a periodic sweep.
package reminder

import "time"

// Job asks for a reminder about one appointment. Enqueuing a job for an
// appointment that already has one replaces it.
type Job struct {
	AppointmentID uint
	StartAt       time.Time
}
