package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

type PatientSnapshot struct {
	ID            uint    `json:"id"`
	Name          string  `json:"nome"`
	Phone         string  `json:"telefone"`
	Email         *string `json:"email"`
	InsurancePlan *string `json:"convenio"`
}

type DoctorSnapshot struct {
	ID        uint   `json:"id"`
	Name      string `json:"nome"`
	License   string `json:"crm"`
	Specialty string `json:"especialidade"`
}

// AppointmentDTO is the appointment row with its doctor and patient
// denormalised alongside.
type AppointmentDTO struct {
	ID        uint      `json:"id"`
	PatientID uint      `json:"patientId"`
	DoctorID  uint      `json:"doctorId"`
	StartAt   time.Time `json:"data"`
	Status    string    `json:"status"`
	Notes     *string   `json:"observacoes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient *PatientSnapshot `json:"paciente"`
	Doctor  *DoctorSnapshot  `json:"medico"`
}

func NewPatientSnapshot(p *models.Patient) *PatientSnapshot {
	if p == nil {
		return nil
	}
	return &PatientSnapshot{
		ID:            p.ID,
		Name:          p.Name,
		Phone:         p.Phone,
		Email:         p.Email,
		InsurancePlan: p.InsurancePlan,
	}
}

func NewDoctorSnapshot(d *models.Doctor) *DoctorSnapshot {
	if d == nil {
		return nil
	}
	return &DoctorSnapshot{
		ID:        d.ID,
		Name:      d.Name,
		License:   d.License,
		Specialty: d.Specialty,
	}
}

func NewAppointmentDTO(ap models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:        ap.ID,
		PatientID: ap.PatientID,
		DoctorID:  ap.DoctorID,
		StartAt:   ap.StartAt,
		Status:    ap.Status,
		Notes:     ap.Notes,
		CreatedAt: ap.CreatedAt,
		UpdatedAt: ap.UpdatedAt,
		Patient:   NewPatientSnapshot(ap.Patient),
		Doctor:    NewDoctorSnapshot(ap.Doctor),
	}
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	return lo.Map(aps, func(ap models.Appointment, _ int) AppointmentDTO {
		return NewAppointmentDTO(ap)
	})
}
