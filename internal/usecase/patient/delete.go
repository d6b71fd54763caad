package patient

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
)

type DeletePatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePatient(repo domain.Repository, audit *audit.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, audit: audit}
}

func (uc *DeletePatient) Execute(ctx context.Context, id uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}

		has, err := tx.HasRecords(ctx, id)
		if err != nil {
			return err
		}
		if has {
			return domain.ErrHasRecords
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "patient_deleted",
		Entity:   "patient",
		EntityID: &id,
	})
	return nil
}
