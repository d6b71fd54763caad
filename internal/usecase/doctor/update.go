package doctor

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type UpdateDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateDoctor(repo domain.Repository, audit *audit.Dispatcher) *UpdateDoctor {
	return &UpdateDoctor{repo: repo, audit: audit}
}

func (uc *UpdateDoctor) Execute(ctx context.Context, id uint, patch domain.Patch) (*models.Doctor, error) {
	var d *models.Doctor

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		// o próprio médico não conta como duplicado
		if patch.License != nil && *patch.License != current.License {
			taken, err := tx.LicenseTaken(ctx, *patch.License, id)
			if err != nil {
				return err
			}
			if taken {
				return domain.ErrLicenseTaken
			}
		}

		domain.Apply(current, patch)
		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		d = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "doctor_updated",
		Entity:   "doctor",
		EntityID: &d.ID,
	})
	return d, nil
}
