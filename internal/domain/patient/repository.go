package patient

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

type Filter struct {
	Name      string
	Phone     string
	Insurance *Insurance
}

type Patch struct {
	Name            *string
	Phone           *string
	Email           *string
	BirthDate       *time.Time
	Insurance       *Insurance
	InsuranceNumber *string
}

func Apply(p *models.Patient, in Patch) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Email != nil {
		p.Email = in.Email
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Insurance != nil {
		v := string(*in.Insurance)
		p.InsurancePlan = &v
	}
	if in.InsuranceNumber != nil {
		p.InsuranceNumber = in.InsuranceNumber
	}
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	List(ctx context.Context, f Filter) ([]models.Patient, error)
	Get(ctx context.Context, id uint) (*models.Patient, error)

	// PhoneTaken reports whether another patient (not excludeID) uses phone.
	PhoneTaken(ctx context.Context, phone string, excludeID uint) (bool, error)

	Create(ctx context.Context, p *models.Patient) error
	Update(ctx context.Context, p *models.Patient) error
	Delete(ctx context.Context, id uint) error

	// HasRecords reports appointments or exams pointing at the patient.
	HasRecords(ctx context.Context, id uint) (bool, error)
}
