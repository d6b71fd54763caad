package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Respond(c, err)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_StatusPerKind(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", NotFound("DOCTOR_NOT_FOUND", "Médico não encontrado."), http.StatusNotFound, "DOCTOR_NOT_FOUND"},
		{"invalid reference", InvalidReference("patientId", "Paciente não encontrado."), http.StatusBadRequest, "INVALID_REFERENCE"},
		{"duplicate", DuplicateKey("CRM_ALREADY_EXISTS", "crm", "CRM já cadastrado."), http.StatusConflict, "CRM_ALREADY_EXISTS"},
		{"slot conflict", SlotConflict(), http.StatusConflict, "SLOT_CONFLICT"},
		{"referenced", Referenced("DOCTOR_HAS_APPOINTMENTS", "Médico possui agendamentos."), http.StatusConflict, "DOCTOR_HAS_APPOINTMENTS"},
		{"invalid state", InvalidState("INVALID_STATE", "Transição de status inválida."), http.StatusConflict, "INVALID_STATE"},
		{"transient", Transient(context.DeadlineExceeded), http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"wrapped", fmt.Errorf("create: %w", SlotConflict()), http.StatusConflict, "SLOT_CONFLICT"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := respond(t, tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestRespond_ValidationListsEveryField(t *testing.T) {
	ve := &ValidationError{}
	ve.Add("nome", "obrigatório")
	ve.Add("crm", "mínimo 4 caracteres")

	w, body := respond(t, ve)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)

	fields, ok := body.Details.([]any)
	require.True(t, ok)
	assert.Len(t, fields, 2)
}

func TestRespond_InvalidReferenceNamesField(t *testing.T) {
	_, body := respond(t, InvalidReference("doctorId", "Médico não encontrado."))

	details, ok := body.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "doctorId", details["field"])
}

func TestValidationError_OrNil(t *testing.T) {
	ve := &ValidationError{}
	assert.NoError(t, ve.OrNil())

	ve.Add("data", "data inválida")
	err := ve.OrNil()
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "data")
}

func TestTransient_Unwraps(t *testing.T) {
	err := Transient(context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPostgresClassification(t *testing.T) {
	exclusion := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01", ConstraintName: "appointments_no_overlap"})
	assert.True(t, IsExclusionConflict(exclusion))
	assert.Equal(t, "appointments_no_overlap", ConstraintName(exclusion))

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("23505")))

	assert.True(t, IsTransient(&pgconn.PgError{Code: "40001"}))
	assert.True(t, IsTransient(&pgconn.PgError{Code: "40P01"}))
	assert.True(t, IsTransient(fmt.Errorf("query: %w", context.DeadlineExceeded)))
	assert.False(t, IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsTransient(nil))
}
