package appointment

import (
	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/models"
	"github.com/6laercio/saude-integrada-api/internal/reminder"
)

// ReminderQueue takes reminder jobs without waiting and without failing.
type ReminderQueue interface {
	Enqueue(job reminder.Job)
}

func enqueueReminder(q ReminderQueue, ap *models.Appointment) {
	if q == nil || !domain.Status(ap.Status).Remindable() {
		return
	}
	q.Enqueue(reminder.Job{
		AppointmentID: ap.ID,
		StartAt:       ap.StartAt,
	})
}
