package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	appointmentDomain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
)

func TestAppointmentTranslateWrite_PostgresCodes(t *testing.T) {
	repo := NewAppointmentGormRepository(nil)

	overlap := fmt.Errorf("create appointment: %w", &pgconn.PgError{
		Code:           "23P01",
		ConstraintName: "appointments_no_overlap",
	})
	err := repo.translateWrite(overlap)
	assert.Equal(t, httperr.KindSlotConflict, httperr.KindOf(err))
	assert.ErrorIs(t, err, appointmentDomain.ErrSlotConflict)

	patientFK := fmt.Errorf("create appointment: %w", &pgconn.PgError{
		Code:           "23503",
		ConstraintName: "fk_appointments_patient",
	})
	assert.ErrorIs(t, repo.translateWrite(patientFK), appointmentDomain.ErrPatientNotFound)

	doctorFK := &pgconn.PgError{Code: "23503", ConstraintName: "fk_appointments_doctor"}
	assert.ErrorIs(t, repo.translateWrite(doctorFK), appointmentDomain.ErrDoctorNotFound)

	serialization := fmt.Errorf("commit: %w", &pgconn.PgError{Code: "40001"})
	assert.Equal(t, httperr.KindTransient, httperr.KindOf(repo.translateWrite(serialization)))

	assert.NoError(t, repo.translateWrite(nil))
}
