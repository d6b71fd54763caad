package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type ExamGormRepository struct {
	db *gorm.DB
}

func NewExamGormRepository(db *gorm.DB) *ExamGormRepository {
	return &ExamGormRepository{db: db}
}

func (r *ExamGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ExamGormRepository{db: tx})
	})
	return r.translateWrite(err)
}

func (r *ExamGormRepository) PatientExists(
	ctx context.Context,
	patientID uint,
) (bool, error) {
	return exists(ctx, r.db, &models.Patient{}, "id = ?", patientID)
}

func (r *ExamGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Exam, error) {

	q := r.db.WithContext(ctx).Preload("Patient")
	if f.PatientID != nil {
		q = q.Where("patient_id = ?", *f.PatientID)
	}
	if f.Type != "" {
		q = q.Where(`LOWER(type) LIKE ? ESCAPE '\'`, containsPattern(f.Type))
	}
	if f.Available != nil {
		q = q.Where("available = ?", *f.Available)
	}

	var exams []models.Exam
	if err := q.Order("taken_at DESC").Order("id DESC").Find(&exams).Error; err != nil {
		return nil, translate(err)
	}
	return exams, nil
}

func (r *ExamGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Exam, error) {

	var e models.Exam
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &e, nil
}

func (r *ExamGormRepository) GetDetailed(
	ctx context.Context,
	id uint,
) (*models.Exam, error) {

	var e models.Exam
	if err := r.db.WithContext(ctx).Preload("Patient").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &e, nil
}

func (r *ExamGormRepository) Create(
	ctx context.Context,
	e *models.Exam,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error)
}

func (r *ExamGormRepository) Update(
	ctx context.Context,
	e *models.Exam,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error)
}

func (r *ExamGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Exam{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ExamGormRepository) translateWrite(err error) error {
	if isForeignKey(err) {
		return domain.ErrPatientNotFound
	}
	return translate(err)
}

// Compile-time check
var _ domain.Repository = (*ExamGormRepository)(nil)
