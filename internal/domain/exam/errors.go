package exam

import "github.com/6laercio/saude-integrada-api/internal/httperr"

var (
	ErrNotFound        = httperr.NotFound("EXAM_NOT_FOUND", "Exame não encontrado.")
	ErrPatientNotFound = httperr.InvalidReference("patientId", "Paciente não encontrado.")
)
