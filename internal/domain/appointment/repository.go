package appointment

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// Filter narrows List. Nil fields do not filter. From and To are inclusive.
type Filter struct {
	PatientID *uint
	DoctorID  *uint
	Status    *Status
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	SlotFinder

	// Transaction runs fn in one unit of work. Any error rolls it back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- References --------
	PatientExists(
		ctx context.Context,
		patientID uint,
	) (bool, error)

	// LockDoctor reports whether the doctor exists and, inside a
	// transaction, holds its row until commit so bookings for the same
	// doctor run one at a time.
	LockDoctor(
		ctx context.Context,
		doctorID uint,
	) (bool, error)

	// -------- Appointment --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Get returns ErrNotFound when the row is missing.
	Get(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetDetailed is Get with Patient and Doctor loaded.
	GetDetailed(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// List orders by start, most recent first, with Patient and Doctor loaded.
	List(
		ctx context.Context,
		f Filter,
	) ([]models.Appointment, error)
}
