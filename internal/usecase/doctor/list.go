package doctor

import (
	"context"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type ListDoctors struct {
	repo domain.Repository
}

func NewListDoctors(repo domain.Repository) *ListDoctors {
	return &ListDoctors{repo: repo}
}

func (uc *ListDoctors) Execute(ctx context.Context, f domain.Filter) ([]models.Doctor, error) {
	return uc.repo.List(ctx, f)
}

type GetDoctor struct {
	repo domain.Repository
}

func NewGetDoctor(repo domain.Repository) *GetDoctor {
	return &GetDoctor{repo: repo}
}

func (uc *GetDoctor) Execute(ctx context.Context, id uint) (*models.Doctor, error) {
	return uc.repo.Get(ctx, id)
}
