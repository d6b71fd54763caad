package appointment

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type UpdateAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	reminders ReminderQueue
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	reminders ReminderQueue,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		audit:     audit,
		reminders: reminders,
	}
}

// Execute applies only the supplied fields of patch. An empty patch
// returns the appointment unchanged.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id uint,
	patch domain.Patch,
) (*models.Appointment, error) {

	if patch.IsEmpty() {
		return uc.repo.Get(ctx, id)
	}

	var (
		updated *models.Appointment
		moved   bool
	)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if patch.PatientID != nil {
			ok, err := tx.PatientExists(ctx, *patch.PatientID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrPatientNotFound
			}
		}

		doctorID := current.DoctorID
		if patch.DoctorID != nil {
			doctorID = *patch.DoctorID
		}

		check := domain.NeedsSlotCheck(current, patch)
		if patch.DoctorID != nil || check {
			ok, err := tx.LockDoctor(ctx, doctorID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrDoctorNotFound
			}
		}

		if check {
			start := current.StartAt
			if patch.StartAt != nil {
				start = patch.StartAt.UTC()
			}

			conflict, err := domain.NewConflictResolver(tx).HasConflict(
				ctx,
				doctorID,
				domain.WindowAt(start),
				current.ID,
			)
			if err != nil {
				return err
			}
			if conflict {
				return domain.ErrSlotConflict
			}
		}

		moved = domain.StartMoved(current, patch)
		domain.Apply(current, patch)

		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})

	if err != nil {
		if httperr.KindOf(err) == httperr.KindSlotConflict {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				EntityID: &id,
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &updated.ID,
	})
	if moved {
		enqueueReminder(uc.reminders, updated)
	}

	return updated, nil
}
