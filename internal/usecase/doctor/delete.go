package doctor

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
)

type DeleteDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteDoctor(repo domain.Repository, audit *audit.Dispatcher) *DeleteDoctor {
	return &DeleteDoctor{repo: repo, audit: audit}
}

// Execute refuses to remove a doctor that appointments still point at.
func (uc *DeleteDoctor) Execute(ctx context.Context, id uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}

		has, err := tx.HasAppointments(ctx, id)
		if err != nil {
			return err
		}
		if has {
			return domain.ErrHasAppointments
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "doctor_deleted",
		Entity:   "doctor",
		EntityID: &id,
	})
	return nil
}
