package appointment

import (
	"time"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// Patch is a partial update. Nil fields are left untouched. ClearNotes
// removes the notes and wins over Notes.
type Patch struct {
	PatientID  *uint
	DoctorID   *uint
	StartAt    *time.Time
	Status     *Status
	Notes      *string
	ClearNotes bool
}

func (p Patch) IsEmpty() bool {
	return p.PatientID == nil &&
		p.DoctorID == nil &&
		p.StartAt == nil &&
		p.Status == nil &&
		p.Notes == nil &&
		!p.ClearNotes
}

// ===============================
// Domain Actions
// ===============================

// Schedule places ap at start, normalised to UTC, with its fixed slot.
func Schedule(ap *models.Appointment, start time.Time) {
	w := WindowAt(start.UTC())
	ap.StartAt = w.Start
	ap.EndAt = w.End
}

// Apply copies the supplied fields onto ap.
func Apply(ap *models.Appointment, p Patch) {
	if p.PatientID != nil {
		ap.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		ap.DoctorID = *p.DoctorID
	}
	if p.StartAt != nil {
		Schedule(ap, *p.StartAt)
	}
	if p.Status != nil {
		ap.Status = string(*p.Status)
	}
	switch {
	case p.ClearNotes:
		ap.Notes = nil
	case p.Notes != nil:
		ap.Notes = p.Notes
	}
}

// NeedsSlotCheck reports whether p must go through the conflict check:
// the start moved, or a scheduled appointment changes doctor, or the
// appointment goes back to scheduled.
func NeedsSlotCheck(current *models.Appointment, p Patch) bool {
	if p.StartAt != nil {
		return true
	}

	next := Status(current.Status)
	if p.Status != nil {
		next = *p.Status
	}
	if !next.HoldsSlot() {
		return false
	}

	if p.DoctorID != nil && *p.DoctorID != current.DoctorID {
		return true
	}
	return !Status(current.Status).HoldsSlot()
}

// StartMoved reports whether p reschedules current.
func StartMoved(current *models.Appointment, p Patch) bool {
	return p.StartAt != nil && !p.StartAt.Equal(current.StartAt)
}

func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	return nil
}
