package validators

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
)

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *httperr.ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	out := map[string]string{}
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestDecode_CreateDoctorReportsEveryField(t *testing.T) {
	var req CreateDoctorRequest
	err := Decode([]byte(`{"nome":"Jo","crm":"12","especialidade":"Astrologia"}`), &req)

	got := fields(t, err)
	assert.Len(t, got, 3)
	assert.Contains(t, got, "nome")
	assert.Contains(t, got, "crm")
	assert.Equal(t, "especialidade inválida", got["especialidade"])
}

func TestDecode_EmptyBodyListsRequiredFields(t *testing.T) {
	var req CreateAppointmentRequest
	got := fields(t, Decode(nil, &req))

	assert.Equal(t, "campo obrigatório", got["patientId"])
	assert.Equal(t, "campo obrigatório", got["doctorId"])
	assert.Equal(t, "campo obrigatório", got["data"])
}

func TestDecode_TypeErrorMergedWithRuleErrors(t *testing.T) {
	var req CreateAppointmentRequest
	err := Decode([]byte(`{"patientId":-1,"doctorId":2,"data":"amanhã"}`), &req)

	got := fields(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "deve ser um inteiro positivo", got["patientId"])
	assert.Contains(t, got, "data")
}

func TestDecode_ReportsEveryTypeError(t *testing.T) {
	var req UpdateExamRequest
	got := fields(t, Decode([]byte(`{"tipo":5,"disponivel":"sim","patientId":"3"}`), &req))

	assert.Len(t, got, 3)
	assert.Equal(t, "deve ser um texto", got["tipo"])
	assert.Equal(t, "deve ser true ou false", got["disponivel"])
	assert.Equal(t, "deve ser um inteiro positivo", got["patientId"])
}

func TestDecode_TypeErrorAlongsideValidField(t *testing.T) {
	var req UpdateExamRequest
	got := fields(t, Decode([]byte(`{"tipo":"X","disponivel":1,"resultado":"normal"}`), &req))

	assert.Len(t, got, 2)
	assert.Contains(t, got, "tipo")
	assert.Equal(t, "deve ser true ou false", got["disponivel"])
	require.NotNil(t, req.Resultado)
	assert.Equal(t, "normal", *req.Resultado)
}

func TestDecode_NonObjectBody(t *testing.T) {
	var req CreateDoctorRequest
	got := fields(t, Decode([]byte(`[1,2]`), &req))
	assert.Equal(t, "JSON inválido", got["body"])
}

func TestDecode_MalformedJSON(t *testing.T) {
	var req CreateDoctorRequest
	got := fields(t, Decode([]byte(`{"nome":`), &req))
	assert.Contains(t, got, "body")
}

func TestCreateAppointmentRequest_Input(t *testing.T) {
	var req CreateAppointmentRequest
	require.NoError(t, Decode([]byte(`{"patientId":1,"doctorId":2,"data":"2025-01-10T07:00:00-03:00","observacoes":"retorno"}`), &req))

	in := req.Input()
	assert.Equal(t, uint(1), in.PatientID)
	assert.Equal(t, uint(2), in.DoctorID)
	assert.True(t, in.StartAt.Equal(time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, in.StartAt.Location())
	assert.Empty(t, in.Status)
	assert.Equal(t, "retorno", *in.Notes)
}

func TestUpdateAppointmentRequest_PartialRules(t *testing.T) {
	var req UpdateAppointmentRequest
	require.NoError(t, Decode([]byte(`{"status":"cancelled"}`), &req))

	p := req.Patch()
	assert.Nil(t, p.StartAt)
	assert.Nil(t, p.DoctorID)
	require.NotNil(t, p.Status)
	assert.Equal(t, appointment.StatusCancelled, *p.Status)

	req = UpdateAppointmentRequest{}
	got := fields(t, Decode([]byte(`{"doctorId":0,"status":"agendado"}`), &req))
	assert.Contains(t, got, "doctorId")
	assert.Equal(t, "deve ser um de: scheduled, confirmed, cancelled, completed, no-show", got["status"])
}

func TestUpdateAppointmentRequest_NullClearsNotes(t *testing.T) {
	var req UpdateAppointmentRequest
	require.NoError(t, Decode([]byte(`{"observacoes":null}`), &req))

	p := req.Patch()
	assert.True(t, p.ClearNotes)
	assert.Nil(t, p.Notes)
	assert.False(t, p.IsEmpty())

	req = UpdateAppointmentRequest{}
	require.NoError(t, Decode([]byte(`{"status":"confirmed"}`), &req))
	assert.False(t, req.Patch().ClearNotes, "absent field leaves notes alone")

	req = UpdateAppointmentRequest{}
	require.NoError(t, Decode([]byte(`{}`), &req))
	assert.True(t, req.Patch().IsEmpty())
}

func TestUpdatePatientRequest_EmptyStringStillValidated(t *testing.T) {
	var req UpdatePatientRequest
	got := fields(t, Decode([]byte(`{"nome":"","email":"nope"}`), &req))
	assert.Contains(t, got, "nome")
	assert.Equal(t, "e-mail inválido", got["email"])
}

func TestCreatePatientRequest_BirthDate(t *testing.T) {
	var req CreatePatientRequest
	body := `{"nome":"Carla Dias","telefone":"11999990001","dataNascimento":"1990-05-17","convenio":"Particular"}`
	require.NoError(t, Decode([]byte(body), &req))

	in := req.Input()
	require.NotNil(t, in.BirthDate)
	assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), *in.BirthDate)
	require.NotNil(t, in.Insurance)
	assert.Equal(t, "Particular", string(*in.Insurance))
}

func TestCreateExamRequest_Defaults(t *testing.T) {
	var req CreateExamRequest
	require.NoError(t, Decode([]byte(`{"patientId":3,"tipo":"Hemograma","data":"2025-02-01T08:00:00Z"}`), &req))
	assert.False(t, req.Input().Available)

	req = CreateExamRequest{}
	got := fields(t, Decode([]byte(`{"patientId":3,"tipo":"Hemograma","data":"2025-02-01T08:00:00Z","disponivel":"sim"}`), &req))
	assert.Equal(t, "deve ser true ou false", got["disponivel"])
}

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestBindQuery_Appointment(t *testing.T) {
	var q AppointmentQuery
	require.NoError(t, BindQuery(queryContext("doctorId=7&status=scheduled&dataInicio=2025-01-10&dataFim=2025-01-10"), &q))

	f, err := q.Filter(time.UTC)
	require.NoError(t, err)
	require.NotNil(t, f.DoctorID)
	assert.Equal(t, uint(7), *f.DoctorID)
	assert.Nil(t, f.PatientID)
	assert.Equal(t, appointment.StatusScheduled, *f.Status)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), *f.From)
	assert.Equal(t, time.Date(2025, 1, 10, 23, 59, 59, 999999999, time.UTC), *f.To)
}

func TestBindQuery_RejectsBadValues(t *testing.T) {
	var q AppointmentQuery
	got := fields(t, BindQuery(queryContext("patientId=abc&status=foo&dataFim=ontem"), &q))
	assert.Contains(t, got, "patientId")
	assert.Contains(t, got, "status")
	assert.Contains(t, got, "dataFim")
}

func TestAppointmentQuery_InvertedRange(t *testing.T) {
	q := AppointmentQuery{DataInicio: "2025-01-10T12:00:00Z", DataFim: "2025-01-10T11:00:00Z"}
	_, err := q.Filter(time.UTC)
	assert.Contains(t, fields(t, err), "dataFim")
}

func TestExamQuery_Filter(t *testing.T) {
	var q ExamQuery
	require.NoError(t, BindQuery(queryContext("patientId=3&disponivel=false&tipo=hemo"), &q))

	f := q.Filter()
	assert.Equal(t, uint(3), *f.PatientID)
	assert.False(t, *f.Available)
	assert.Equal(t, "hemo", f.Type)

	q = ExamQuery{}
	assert.Contains(t, fields(t, BindQuery(queryContext("disponivel=talvez"), &q)), "disponivel")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	for _, raw := range []string{"0", "-1", "abc", ""} {
		_, err := ParseID(raw)
		assert.Equal(t, httperr.KindValidation, httperr.KindOf(err), raw)
	}
}
