package validators

import (
	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/doctor"
)

type CreateDoctorRequest struct {
	Nome          string `json:"nome" binding:"required,min=3,max=100"`
	CRM           string `json:"crm" binding:"required,min=4,max=20"`
	Especialidade string `json:"especialidade" binding:"required,specialty"`
}

func (r CreateDoctorRequest) Input() usecase.CreateDoctorInput {
	return usecase.CreateDoctorInput{
		Name:      r.Nome,
		License:   r.CRM,
		Specialty: domain.Specialty(r.Especialidade),
	}
}

type UpdateDoctorRequest struct {
	Nome          *string `json:"nome" binding:"omitnil,min=3,max=100"`
	CRM           *string `json:"crm" binding:"omitnil,min=4,max=20"`
	Especialidade *string `json:"especialidade" binding:"omitnil,specialty"`
}

func (r UpdateDoctorRequest) Patch() domain.Patch {
	p := domain.Patch{Name: r.Nome, License: r.CRM}
	if r.Especialidade != nil {
		s := domain.Specialty(*r.Especialidade)
		p.Specialty = &s
	}
	return p
}

type DoctorQuery struct {
	Nome          string `form:"nome"`
	Especialidade string `form:"especialidade" binding:"omitempty,specialty"`
}

func (q DoctorQuery) Filter() domain.Filter {
	f := domain.Filter{Name: q.Nome}
	if q.Especialidade != "" {
		s := domain.Specialty(q.Especialidade)
		f.Specialty = &s
	}
	return f
}
