package validators

import (
	"strconv"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/exam"
)

type CreateExamRequest struct {
	PatientID  uint    `json:"patientId" binding:"required,gt=0"`
	Tipo       string  `json:"tipo" binding:"required,min=2,max=100"`
	Data       string  `json:"data" binding:"required,iso8601"`
	Resultado  *string `json:"resultado"`
	Disponivel *bool   `json:"disponivel"`
}

func (r CreateExamRequest) Input() usecase.CreateExamInput {
	in := usecase.CreateExamInput{
		PatientID: r.PatientID,
		Type:      r.Tipo,
		Result:    r.Resultado,
	}
	in.TakenAt, _ = parseInstant(r.Data)
	if r.Disponivel != nil {
		in.Available = *r.Disponivel
	}
	return in
}

type UpdateExamRequest struct {
	PatientID  *uint   `json:"patientId" binding:"omitnil,gt=0"`
	Tipo       *string `json:"tipo" binding:"omitnil,min=2,max=100"`
	Data       *string `json:"data" binding:"omitnil,iso8601"`
	Resultado  *string `json:"resultado"`
	Disponivel *bool   `json:"disponivel"`
}

func (r UpdateExamRequest) Patch() domain.Patch {
	p := domain.Patch{
		PatientID: r.PatientID,
		Type:      r.Tipo,
		Result:    r.Resultado,
		Available: r.Disponivel,
	}
	if r.Data != nil {
		if t, err := parseInstant(*r.Data); err == nil {
			p.TakenAt = &t
		}
	}
	return p
}

type ExamQuery struct {
	PatientID  string `form:"patientId" binding:"omitempty,positive_int"`
	Tipo       string `form:"tipo"`
	Disponivel string `form:"disponivel" binding:"omitempty,oneof=true false"`
}

func (q ExamQuery) Filter() domain.Filter {
	f := domain.Filter{
		PatientID: optionalID(q.PatientID),
		Type:      q.Tipo,
	}
	if q.Disponivel != "" {
		b, _ := strconv.ParseBool(q.Disponivel)
		f.Available = &b
	}
	return f
}
