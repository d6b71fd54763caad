package doctor

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/models"
)

// Filter narrows List. Name matches case-insensitively anywhere in the name.
type Filter struct {
	Name      string
	Specialty *Specialty
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Name      *string
	License   *string
	Specialty *Specialty
}

func Apply(d *models.Doctor, p Patch) {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.License != nil {
		d.License = *p.License
	}
	if p.Specialty != nil {
		d.Specialty = string(*p.Specialty)
	}
}

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	List(ctx context.Context, f Filter) ([]models.Doctor, error)
	Get(ctx context.Context, id uint) (*models.Doctor, error)

	// LicenseTaken reports whether another doctor (not excludeID) holds license.
	LicenseTaken(ctx context.Context, license string, excludeID uint) (bool, error)

	Create(ctx context.Context, d *models.Doctor) error
	Update(ctx context.Context, d *models.Doctor) error
	Delete(ctx context.Context, id uint) error

	HasAppointments(ctx context.Context, id uint) (bool, error)
}
