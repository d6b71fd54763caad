package exam

import (
	"context"
	"time"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/models"
)

type CreateExamInput struct {
	PatientID uint
	Type      string
	TakenAt   time.Time
	Result    *string
	Available bool
}

type CreateExam struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateExam(repo domain.Repository, audit *audit.Dispatcher) *CreateExam {
	return &CreateExam{repo: repo, audit: audit}
}

func (uc *CreateExam) Execute(ctx context.Context, in CreateExamInput) (*models.Exam, error) {
	e := &models.Exam{
		PatientID: in.PatientID,
		Type:      in.Type,
		TakenAt:   in.TakenAt.UTC(),
		Result:    in.Result,
		Available: in.Available,
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		ok, err := tx.PatientExists(ctx, in.PatientID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrPatientNotFound
		}
		return tx.Create(ctx, e)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "exam_created",
		Entity:   "exam",
		EntityID: &e.ID,
	})
	return e, nil
}
