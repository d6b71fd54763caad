package validators

import (
	"strconv"
	"time"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/appointment"
)

type CreateAppointmentRequest struct {
	PatientID   uint    `json:"patientId" binding:"required,gt=0"`
	DoctorID    uint    `json:"doctorId" binding:"required,gt=0"`
	Data        string  `json:"data" binding:"required,iso8601"`
	Status      *string `json:"status" binding:"omitnil,appointment_status"`
	Observacoes *string `json:"observacoes" binding:"omitnil,max=1000"`
}

func (r CreateAppointmentRequest) Input() usecase.CreateAppointmentInput {
	in := usecase.CreateAppointmentInput{
		PatientID: r.PatientID,
		DoctorID:  r.DoctorID,
		Notes:     r.Observacoes,
	}
	in.StartAt, _ = parseInstant(r.Data)
	if r.Status != nil {
		in.Status = domain.Status(*r.Status)
	}
	return in
}

type UpdateAppointmentRequest struct {
	PatientID   *uint   `json:"patientId" binding:"omitnil,gt=0"`
	DoctorID    *uint   `json:"doctorId" binding:"omitnil,gt=0"`
	Data        *string `json:"data" binding:"omitnil,iso8601"`
	Status      *string `json:"status" binding:"omitnil,appointment_status"`
	Observacoes *string `json:"observacoes" binding:"omitnil,max=1000"`

	clearNotes bool
}

// setNull records "observacoes": null, which clears the notes.
func (r *UpdateAppointmentRequest) setNull(field string) {
	if field == "observacoes" {
		r.clearNotes = true
	}
}

func (r *UpdateAppointmentRequest) Patch() domain.Patch {
	p := domain.Patch{
		PatientID:  r.PatientID,
		DoctorID:   r.DoctorID,
		Notes:      r.Observacoes,
		ClearNotes: r.clearNotes,
	}
	if r.Data != nil {
		if t, err := parseInstant(*r.Data); err == nil {
			p.StartAt = &t
		}
	}
	if r.Status != nil {
		s := domain.Status(*r.Status)
		p.Status = &s
	}
	return p
}

type AppointmentQuery struct {
	PatientID  string `form:"patientId" binding:"omitempty,positive_int"`
	DoctorID   string `form:"doctorId" binding:"omitempty,positive_int"`
	Status     string `form:"status" binding:"omitempty,appointment_status"`
	DataInicio string `form:"dataInicio" binding:"omitempty,iso8601date"`
	DataFim    string `form:"dataFim" binding:"omitempty,iso8601date"`
}

// Filter converts the query. Bare dates are days in loc: dataInicio starts
// at midnight and dataFim covers the whole day.
func (q AppointmentQuery) Filter(loc *time.Location) (domain.Filter, error) {
	var f domain.Filter

	f.PatientID = optionalID(q.PatientID)
	f.DoctorID = optionalID(q.DoctorID)
	if q.Status != "" {
		s := domain.Status(q.Status)
		f.Status = &s
	}
	if q.DataInicio != "" {
		from, _, err := parseDateOrInstant(q.DataInicio, loc)
		if err == nil {
			f.From = &from
		}
	}
	if q.DataFim != "" {
		to, dateOnly, err := parseDateOrInstant(q.DataFim, loc)
		if err == nil {
			if dateOnly {
				to = to.Add(24*time.Hour - time.Nanosecond)
			}
			f.To = &to
		}
	}

	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		verr := &httperr.ValidationError{}
		verr.Add("dataFim", "deve ser posterior a dataInicio")
		return domain.Filter{}, verr
	}
	return f, nil
}

func optionalID(raw string) *uint {
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	id := uint(n)
	return &id
}
