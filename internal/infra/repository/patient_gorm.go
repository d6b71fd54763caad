package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PatientGormRepository{db: tx})
	})
	return r.translateWrite(err)
}

func (r *PatientGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Patient, error) {

	q := r.db.WithContext(ctx)
	if f.Name != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(f.Name))
	}
	if f.Phone != "" {
		q = q.Where("phone = ?", f.Phone)
	}
	if f.Insurance != nil {
		q = q.Where("insurance_plan = ?", string(*f.Insurance))
	}

	var patients []models.Patient
	if err := q.Order("name ASC").Find(&patients).Error; err != nil {
		return nil, translate(err)
	}
	return patients, nil
}

func (r *PatientGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PatientGormRepository) PhoneTaken(
	ctx context.Context,
	phone string,
	excludeID uint,
) (bool, error) {
	return exists(ctx, r.db, &models.Patient{}, "phone = ? AND id <> ?", phone, excludeID)
}

func (r *PatientGormRepository) Create(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PatientGormRepository) Update(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Save(p).Error)
}

func (r *PatientGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Patient{}, id)
	if res.Error != nil {
		if isForeignKey(res.Error) {
			return domain.ErrHasRecords
		}
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PatientGormRepository) HasRecords(
	ctx context.Context,
	id uint,
) (bool, error) {

	has, err := exists(ctx, r.db, &models.Appointment{}, "patient_id = ?", id)
	if err != nil || has {
		return has, err
	}
	return exists(ctx, r.db, &models.Exam{}, "patient_id = ?", id)
}

func (r *PatientGormRepository) translateWrite(err error) error {
	if isDuplicate(err) {
		return domain.ErrPhoneTaken
	}
	return translate(err)
}

// Compile-time check
var _ domain.Repository = (*PatientGormRepository)(nil)
