package models

import "time"

type Exam struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint     `gorm:"not null;index" json:"patientId"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"paciente,omitempty"`

	Type      string    `gorm:"size:100;not null" json:"tipo"`
	TakenAt   time.Time `gorm:"not null" json:"data"`
	Result    *string   `gorm:"type:text" json:"resultado"`
	Available bool      `gorm:"not null;default:false" json:"disponivel"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
