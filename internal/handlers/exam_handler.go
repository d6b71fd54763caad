package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/exam"
	"github.com/6laercio/saude-integrada-api/internal/dto"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/httpresp"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/exam"
	"github.com/6laercio/saude-integrada-api/internal/validators"
)

type ExamHandler struct {
	list   *usecase.ListExams
	get    *usecase.GetExam
	create *usecase.CreateExam
	update *usecase.UpdateExam
	remove *usecase.DeleteExam
}

func NewExamHandler(repo domain.Repository, dispatcher *audit.Dispatcher) *ExamHandler {
	return &ExamHandler{
		list:   usecase.NewListExams(repo),
		get:    usecase.NewGetExam(repo),
		create: usecase.NewCreateExam(repo, dispatcher),
		update: usecase.NewUpdateExam(repo, dispatcher),
		remove: usecase.NewDeleteExam(repo, dispatcher),
	}
}

func (h *ExamHandler) Register(r gin.IRouter) {
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.POST("", h.Create)
	r.PATCH("/:id", h.Update)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

func (h *ExamHandler) List(c *gin.Context) {
	var q validators.ExamQuery
	if !bindQuery(c, &q) {
		return
	}

	exams, err := h.list.Execute(c.Request.Context(), q.Filter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, exams)
}

func (h *ExamHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	e, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, e)
}

func (h *ExamHandler) Create(c *gin.Context) {
	var req validators.CreateExamRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.create.Execute(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewExamDTO(*e))
}

// Update is also how a result gets attached: resultado + disponivel=true.
func (h *ExamHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validators.UpdateExamRequest
	if !bindJSON(c, &req) {
		return
	}

	e, err := h.update.Execute(c.Request.Context(), id, req.Patch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewExamDTO(*e))
}

func (h *ExamHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
