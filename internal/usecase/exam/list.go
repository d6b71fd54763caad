package exam

import (
	"context"

	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/dto"
)

type ListExams struct {
	repo domain.Repository
}

func NewListExams(repo domain.Repository) *ListExams {
	return &ListExams{repo: repo}
}

func (uc *ListExams) Execute(ctx context.Context, f domain.Filter) ([]dto.ExamDTO, error) {
	exams, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return dto.NewExamDTOs(exams), nil
}

type GetExam struct {
	repo domain.Repository
}

func NewGetExam(repo domain.Repository) *GetExam {
	return &GetExam{repo: repo}
}

func (uc *GetExam) Execute(ctx context.Context, id uint) (*dto.ExamDTO, error) {
	e, err := uc.repo.GetDetailed(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewExamDTO(*e)
	return &out, nil
}
