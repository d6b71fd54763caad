package appointment

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID uint
	DoctorID  uint
	StartAt   time.Time

	// Status defaults to scheduled when empty.
	Status domain.Status
	Notes  *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	reminders ReminderQueue
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	reminders ReminderQueue,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		audit:     audit,
		reminders: reminders,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	status := in.Status
	if status == "" {
		status = domain.InitialStatus()
	}

	ap := &models.Appointment{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Status:    string(status),
		Notes:     in.Notes,
	}
	domain.Schedule(ap, in.StartAt)

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {

		// --------------------------------------------------
		// 1️⃣ Paciente
		// --------------------------------------------------
		ok, err := tx.PatientExists(ctx, in.PatientID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPatientNotFound
		}

		// --------------------------------------------------
		// 2️⃣ Médico (lock serializa agendamentos do médico)
		// --------------------------------------------------
		ok, err = tx.LockDoctor(ctx, in.DoctorID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrDoctorNotFound
		}

		// --------------------------------------------------
		// 3️⃣ Conflito de horário
		// --------------------------------------------------
		conflict, err := domain.NewConflictResolver(tx).HasConflict(
			ctx,
			in.DoctorID,
			domain.WindowAt(ap.StartAt),
			0,
		)
		if err != nil {
			return err
		}
		if conflict {
			return domain.ErrSlotConflict
		}

		// --------------------------------------------------
		// 4️⃣ Criação
		// --------------------------------------------------
		return tx.Create(ctx, ap)
	})

	if err != nil {
		if httperr.KindOf(err) == httperr.KindSlotConflict {
			uc.audit.Dispatch(audit.Event{
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"doctorId": in.DoctorID,
					"start":    ap.StartAt,
					"end":      ap.EndAt,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria + lembrete (fire-and-forget)
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctorId":  ap.DoctorID,
			"patientId": ap.PatientID,
		},
	})
	enqueueReminder(uc.reminders, ap)

	return ap, nil
}
