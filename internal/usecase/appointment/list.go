package appointment

import (
	"context"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentDTOs(appointments), nil
}

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*dto.AppointmentDTO, error) {
	ap, err := uc.repo.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewAppointmentDTO(*ap)
	return &out, nil
}
