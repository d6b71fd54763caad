package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
	return r.translateWrite(err)
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *AppointmentGormRepository) PatientExists(
	ctx context.Context,
	patientID uint,
) (bool, error) {
	return exists(ctx, r.db, &models.Patient{}, "id = ?", patientID)
}

func (r *AppointmentGormRepository) LockDoctor(
	ctx context.Context,
	doctorID uint,
) (bool, error) {

	var d models.Doctor
	res := forUpdate(r.db.WithContext(ctx)).
		Select("id").
		Where("id = ?", doctorID).
		Limit(1).
		Find(&d)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// --------------------------------------------------
// Conflict
// --------------------------------------------------

func (r *AppointmentGormRepository) FindScheduledOverlapping(
	ctx context.Context,
	doctorID uint,
	w domain.Window,
	excludeID uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND status = ? AND start_at < ? AND end_at > ?",
			doctorID,
			string(domain.StatusScheduled),
			w.End.UTC(),
			w.Start.UTC(),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("start_at ASC").Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error)
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := forUpdate(r.db.WithContext(ctx)).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetDetailed(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.translateWrite(r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error)
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor")

	if f.PatientID != nil {
		q = q.Where("patient_id = ?", *f.PatientID)
	}
	if f.DoctorID != nil {
		q = q.Where("doctor_id = ?", *f.DoctorID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.From != nil {
		q = q.Where("start_at >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where("start_at <= ?", f.To.UTC())
	}

	var apps []models.Appointment
	if err := q.Order("start_at DESC").Order("id DESC").Find(&apps).Error; err != nil {
		return nil, translate(err)
	}
	return apps, nil
}

// translateWrite maps constraint violations raised by inserts and updates.
func (r *AppointmentGormRepository) translateWrite(err error) error {
	if isForeignKey(err) {
		if constraintMentions(err, "patient") {
			return domain.ErrPatientNotFound
		}
		return domain.ErrDoctorNotFound
	}
	return translate(err)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
