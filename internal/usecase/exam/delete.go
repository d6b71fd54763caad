package exam

import (
	"context"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
)

type DeleteExam struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteExam(repo domain.Repository, audit *audit.Dispatcher) *DeleteExam {
	return &DeleteExam{repo: repo, audit: audit}
}

func (uc *DeleteExam) Execute(ctx context.Context, id uint) error {
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.Get(ctx, id); err != nil {
			return err
		}
		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "exam_deleted",
		Entity:   "exam",
		EntityID: &id,
	})
	return nil
}
