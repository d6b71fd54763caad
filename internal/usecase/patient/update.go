package patient

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type UpdatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdatePatient(repo domain.Repository, audit *audit.Dispatcher) *UpdatePatient {
	return &UpdatePatient{repo: repo, audit: audit}
}

func (uc *UpdatePatient) Execute(ctx context.Context, id uint, patch domain.Patch) (*models.Patient, error) {
	var p *models.Patient

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if patch.Phone != nil && *patch.Phone != current.Phone {
			taken, err := tx.PhoneTaken(ctx, *patch.Phone, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrPhoneTaken
			}
		}

		domain.Apply(current, patch)
		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		p = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "patient_updated",
		Entity:   "patient",
		EntityID: &p.ID,
	})
	return p, nil
}
