package exam

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6laercio/saude-integrada-api/internal/dbtest"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/infra/repository"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestExamLifecycle(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	repo := repository.NewExamGormRepository(db)

	patient := models.Patient{Name: "Carla Dias", Phone: "11999990001"}
	require.NoError(t, db.Create(&patient).Error)

	create := NewCreateExam(repo, nil)
	update := NewUpdateExam(repo, nil)
	remove := NewDeleteExam(repo, nil)
	get := NewGetExam(repo)
	list := NewListExams(repo)

	taken := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)

	_, err := create.Execute(ctx, CreateExamInput{PatientID: 99, Type: "Hemograma", TakenAt: taken})
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)
	assert.Equal(t, httperr.KindInvalidReference, httperr.KindOf(err))

	e, err := create.Execute(ctx, CreateExamInput{PatientID: patient.ID, Type: "Hemograma", TakenAt: taken})
	require.NoError(t, err)
	assert.False(t, e.Available)

	// result arrives later
	updated, err := update.Execute(ctx, e.ID, domain.Patch{Result: ptr("normal"), Available: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Available)
	assert.Equal(t, "Hemograma", updated.Type)

	_, err = update.Execute(ctx, e.ID, domain.Patch{PatientID: ptr(uint(99))})
	assert.ErrorIs(t, err, domain.ErrPatientNotFound)

	got, err := get.Execute(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "normal", *got.Result)
	require.NotNil(t, got.Patient)
	assert.Equal(t, "Carla Dias", got.Patient.Name)

	ready, err := list.Execute(ctx, domain.Filter{Available: ptr(true)})
	require.NoError(t, err)
	assert.Len(t, ready, 1)

	require.NoError(t, remove.Execute(ctx, e.ID))
	assert.ErrorIs(t, remove.Execute(ctx, e.ID), domain.ErrNotFound)

	_, err = update.Execute(ctx, e.ID, domain.Patch{Type: ptr("Raio-X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var patients int64
	db.Model(&models.Patient{}).Count(&patients)
	assert.Equal(t, int64(1), patients)
}
