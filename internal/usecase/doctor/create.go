package doctor

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type CreateDoctorInput struct {
	Name      string
	License   string
	Specialty domain.Specialty
}

type CreateDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateDoctor(repo domain.Repository, audit *audit.Dispatcher) *CreateDoctor {
	return &CreateDoctor{repo: repo, audit: audit}
}

func (uc *CreateDoctor) Execute(ctx context.Context, in CreateDoctorInput) (*models.Doctor, error) {
	d := &models.Doctor{
		Name:      in.Name,
		License:   in.License,
		Specialty: string(in.Specialty),
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		taken, err := tx.LicenseTaken(ctx, in.License, 0)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrLicenseTaken
		}
		return tx.Create(ctx, d)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "doctor_created",
		Entity:   "doctor",
		EntityID: &d.ID,
	})
	return d, nil
}
