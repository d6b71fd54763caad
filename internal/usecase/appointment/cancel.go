package appointment

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {
	return transition(ctx, uc.repo, uc.audit, id, domain.Cancel, "appointment_cancelled")
}

// transition loads, changes and saves one appointment in a transaction.
func transition(
	ctx context.Context,
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	id uint,
	action func(*models.Appointment) error,
	event string,
) (*models.Appointment, error) {

	var ap *models.Appointment
	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := action(current); err != nil {
			return err
		}
		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		ap = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	dispatcher.Dispatch(audit.Event{
		Action:   event,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})
	return ap, nil
}
