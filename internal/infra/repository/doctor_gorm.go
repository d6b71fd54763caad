package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type DoctorGormRepository struct {
	db *gorm.DB
}

func NewDoctorGormRepository(db *gorm.DB) *DoctorGormRepository {
	return &DoctorGormRepository{db: db}
}

func (r *DoctorGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DoctorGormRepository{db: tx})
	})
	return r.translateWrite(err)
}

func (r *DoctorGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Doctor, error) {

	q := r.db.WithContext(ctx)
	if f.Name != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(f.Name))
	}
	if f.Specialty != nil {
		q = q.Where("specialty = ?", string(*f.Specialty))
	}

	var doctors []models.Doctor
	if err := q.Order("name ASC").Find(&doctors).Error; err != nil {
		return nil, translate(err)
	}
	return doctors, nil
}

func (r *DoctorGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &d, nil
}

func (r *DoctorGormRepository) LicenseTaken(
	ctx context.Context,
	license string,
	excludeID uint,
) (bool, error) {
	return exists(ctx, r.db, &models.Doctor{}, "license = ? AND id <> ?", license, excludeID)
}

func (r *DoctorGormRepository) Create(
	ctx context.Context,
	d *models.Doctor,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Create(d).Error)
}

func (r *DoctorGormRepository) Update(
	ctx context.Context,
	d *models.Doctor,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Save(d).Error)
}

func (r *DoctorGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Doctor{}, id)
	if res.Error != nil {
		if isForeignKey(res.Error) {
			return domain.ErrHasAppointments
		}
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DoctorGormRepository) HasAppointments(
	ctx context.Context,
	id uint,
) (bool, error) {
	return exists(ctx, r.db, &models.Appointment{}, "doctor_id = ?", id)
}

func (r *DoctorGormRepository) translateWrite(err error) error {
	if isDuplicate(err) {
		return domain.ErrLicenseTaken
	}
	return translate(err)
}

// Compile-time check
var _ domain.Repository = (*DoctorGormRepository)(nil)
