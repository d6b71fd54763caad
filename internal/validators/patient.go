package validators

import (
	"time"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/patient"
)

type CreatePatientRequest struct {
	Nome           string  `json:"nome" binding:"required,min=3,max=100"`
	Telefone       string  `json:"telefone" binding:"required,min=10,max=15"`
	Email          *string `json:"email" binding:"omitnil,email"`
	DataNascimento *string `json:"dataNascimento" binding:"omitnil,iso8601date"`
	Convenio       *string `json:"convenio" binding:"omitnil,insurance"`
	NumeroConvenio *string `json:"numeroConvenio" binding:"omitnil,max=50"`
}

func (r CreatePatientRequest) Input() usecase.CreatePatientInput {
	return usecase.CreatePatientInput{
		Name:            r.Nome,
		Phone:           r.Telefone,
		Email:           r.Email,
		BirthDate:       birthDate(r.DataNascimento),
		Insurance:       insurance(r.Convenio),
		InsuranceNumber: r.NumeroConvenio,
	}
}

type UpdatePatientRequest struct {
	Nome           *string `json:"nome" binding:"omitnil,min=3,max=100"`
	Telefone       *string `json:"telefone" binding:"omitnil,min=10,max=15"`
	Email          *string `json:"email" binding:"omitnil,email"`
	DataNascimento *string `json:"dataNascimento" binding:"omitnil,iso8601date"`
	Convenio       *string `json:"convenio" binding:"omitnil,insurance"`
	NumeroConvenio *string `json:"numeroConvenio" binding:"omitnil,max=50"`
}

func (r UpdatePatientRequest) Patch() domain.Patch {
	return domain.Patch{
		Name:            r.Nome,
		Phone:           r.Telefone,
		Email:           r.Email,
		BirthDate:       birthDate(r.DataNascimento),
		Insurance:       insurance(r.Convenio),
		InsuranceNumber: r.NumeroConvenio,
	}
}

type PatientQuery struct {
	Nome     string `form:"nome"`
	Telefone string `form:"telefone"`
	Convenio string `form:"convenio" binding:"omitempty,insurance"`
}

func (q PatientQuery) Filter() domain.Filter {
	f := domain.Filter{Name: q.Nome, Phone: q.Telefone}
	if q.Convenio != "" {
		f.Insurance = insurance(&q.Convenio)
	}
	return f
}

// birthDate is a calendar date; it is kept at UTC midnight.
func birthDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, _, err := parseDateOrInstant(*raw, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

func insurance(raw *string) *domain.Insurance {
	if raw == nil {
		return nil
	}
	i := domain.Insurance(*raw)
	return &i
}
