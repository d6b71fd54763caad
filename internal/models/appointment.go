package models

import "time"

// Appointment is the canonical booking row. Patient and Doctor are only
// populated by the joined queries (list / get).
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint     `gorm:"not null;index" json:"patientId"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"paciente,omitempty"`

	DoctorID uint    `gorm:"not null;index:idx_appointments_doctor_start" json:"doctorId"`
	Doctor   *Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"medico,omitempty"`

	StartAt time.Time `gorm:"not null;index:idx_appointments_doctor_start" json:"data"`
	EndAt   time.Time `gorm:"not null" json:"-"`
	Status  string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Notes   *string   `gorm:"type:text" json:"observacoes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
