package patient

import (
	"context"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type ListPatients struct {
	repo domain.Repository
}

func NewListPatients(repo domain.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

func (uc *ListPatients) Execute(ctx context.Context, f domain.Filter) ([]models.Patient, error) {
	return uc.repo.List(ctx, f)
}

type GetPatient struct {
	repo domain.Repository
}

func NewGetPatient(repo domain.Repository) *GetPatient {
	return &GetPatient{repo: repo}
}

func (uc *GetPatient) Execute(ctx context.Context, id uint) (*models.Patient, error) {
	return uc.repo.Get(ctx, id)
}
