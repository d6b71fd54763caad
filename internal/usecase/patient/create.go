package patient

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type CreatePatientInput struct {
	Name            string
	Phone           string
	Email           *string
	BirthDate       *time.Time
	Insurance       *domain.Insurance
	InsuranceNumber *string
}

type CreatePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo domain.Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

func (uc *CreatePatient) Execute(ctx context.Context, in CreatePatientInput) (*models.Patient, error) {
	p := &models.Patient{
		Name:  in.Name,
		Phone: in.Phone,
	}
	domain.Apply(p, domain.Patch{
		Email:           in.Email,
		BirthDate:       in.BirthDate,
		Insurance:       in.Insurance,
		InsuranceNumber: in.InsuranceNumber,
	})

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		taken, err := tx.PhoneTaken(ctx, in.Phone, 0)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrPhoneTaken
		}
		return tx.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "patient_created",
		Entity:   "patient",
		EntityID: &p.ID,
	})
	return p, nil
}
