package exam

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// Filter narrows List. Type matches case-insensitively anywhere.
type Filter struct {
	PatientID *uint
	Type      string
	Available *bool
}

type Patch struct {
	PatientID *uint
	Type      *string
	TakenAt   *time.Time
	Result    *string
	Available *bool
}

func Apply(e *models.Exam, p Patch) {
	if p.PatientID != nil {
		e.PatientID = *p.PatientID
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.TakenAt != nil {
		e.TakenAt = p.TakenAt.UTC()
	}
	if p.Result != nil {
		e.Result = p.Result
	}
	if p.Available != nil {
		e.Available = *p.Available
	}
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	PatientExists(ctx context.Context, patientID uint) (bool, error)

	// List orders by exam date, most recent first, with Patient loaded.
	List(ctx context.Context, f Filter) ([]models.Exam, error)
	Get(ctx context.Context, id uint) (*models.Exam, error)
	GetDetailed(ctx context.Context, id uint) (*models.Exam, error)

	Create(ctx context.Context, e *models.Exam) error
	Update(ctx context.Context, e *models.Exam) error
	Delete(ctx context.Context, id uint) error
}
