package dto

import (
	"time"

	"github.com/samber/lo"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

type ExamDTO struct {
	ID        uint      `json:"id"`
	PatientID uint      `json:"patientId"`
	Type      string    `json:"tipo"`
	TakenAt   time.Time `json:"data"`
	Result    *string   `json:"resultado"`
	Available bool      `json:"disponivel"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Patient *PatientSnapshot `json:"paciente"`
}

func NewExamDTO(e models.Exam) ExamDTO {
	return ExamDTO{
		ID:        e.ID,
		PatientID: e.PatientID,
		Type:      e.Type,
		TakenAt:   e.TakenAt,
		Result:    e.Result,
		Available: e.Available,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		Patient:   NewPatientSnapshot(e.Patient),
	}
}

func NewExamDTOs(exams []models.Exam) []ExamDTO {
	return lo.Map(exams, func(e models.Exam, _ int) ExamDTO {
		return NewExamDTO(e)
	})
}
