package appointment

import "github.com/6laercio/saude-integrada-api/internal/httperr"

var (
	ErrNotFound        = httperr.NotFound("APPOINTMENT_NOT_FOUND", "Agendamento não encontrado.")
	ErrPatientNotFound = httperr.InvalidReference("patientId", "Paciente não encontrado.")
	ErrDoctorNotFound  = httperr.InvalidReference("doctorId", "Médico não encontrado.")
	ErrSlotConflict    = httperr.SlotConflict()
	ErrInvalidState    = httperr.InvalidState("INVALID_STATE", "Transição de status inválida para este agendamento.")
)
