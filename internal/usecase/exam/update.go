package exam

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type UpdateExam struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateExam(repo domain.Repository, audit *audit.Dispatcher) *UpdateExam {
	return &UpdateExam{repo: repo, audit: audit}
}

func (uc *UpdateExam) Execute(ctx context.Context, id uint, patch domain.Patch) (*models.Exam, error) {
	var e *models.Exam

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		current, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}

		if patch.PatientID != nil {
			ok, err := tx.PatientExists(ctx, *patch.PatientID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrPatientNotFound
			}
		}

		domain.Apply(current, patch)
		if err := tx.Update(ctx, current); err != nil {
			return err
		}
		e = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "exam_updated",
		Entity:   "exam",
		EntityID: &e.ID,
		Metadata: map[string]any{"disponivel": e.Available},
	})
	return e, nil
}
