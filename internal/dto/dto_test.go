package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

func TestNewAppointmentDTOs_Snapshots(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	rows := []models.Appointment{
		{
			ID: 1, PatientID: 2, DoctorID: 3, StartAt: start, Status: "scheduled",
			Patient: &models.Patient{ID: 2, Name: "Carla Dias", Phone: "11999990001"},
			Doctor:  &models.Doctor{ID: 3, Name: "Ana Souza", License: "CRM1001", Specialty: "Cardiologia"},
		},
		{ID: 4, PatientID: 2, DoctorID: 3, StartAt: start, Status: "cancelled"},
	}

	out := NewAppointmentDTOs(rows)
	require.Len(t, out, 2)
	assert.Equal(t, "Carla Dias", out[0].Patient.Name)
	assert.Equal(t, "CRM1001", out[0].Doctor.License)
	assert.Nil(t, out[1].Patient)

	raw, err := json.Marshal(out[0])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	for _, key := range []string{"id", "patientId", "doctorId", "data", "status", "observacoes", "createdAt", "updatedAt", "paciente", "medico"} {
		assert.Contains(t, body, key)
	}
	assert.Equal(t, "2025-01-01T10:00:00Z", body["data"])
}

func TestNewExamDTOs_Empty(t *testing.T) {
	out := NewExamDTOs(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
