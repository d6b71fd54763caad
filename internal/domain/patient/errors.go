package patient

import "github.com/6laercio/saude-integrada-api/internal/httperr"

var (
	ErrNotFound   = httperr.NotFound("PATIENT_NOT_FOUND", "Paciente não encontrado.")
	ErrPhoneTaken = httperr.DuplicateKey("PHONE_ALREADY_EXISTS", "telefone", "Já existe um paciente com este telefone.")
	ErrHasRecords = httperr.Referenced("PATIENT_HAS_RECORDS", "Paciente possui agendamentos ou exames e não pode ser removido.")
)
