package doctor

import "github.com/6laercio/saude-integrada-api/internal/httperr"

var (
	ErrNotFound        = httperr.NotFound("DOCTOR_NOT_FOUND", "Médico não encontrado.")
	ErrLicenseTaken    = httperr.DuplicateKey("CRM_ALREADY_EXISTS", "crm", "Já existe um médico com este CRM.")
	ErrHasAppointments = httperr.Referenced("DOCTOR_HAS_APPOINTMENTS", "Médico possui agendamentos e não pode ser removido.")
)
