package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/httpresp"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/patient"
	"github.com/6laercio/saude-integrada-api/internal/validators"
)

type PatientHandler struct {
	list   *usecase.ListPatients
	get    *usecase.GetPatient
	create *usecase.CreatePatient
	update *usecase.UpdatePatient
	remove *usecase.DeletePatient
}

func NewPatientHandler(repo domain.Repository, dispatcher *audit.Dispatcher) *PatientHandler {
	return &PatientHandler{
		list:   usecase.NewListPatients(repo),
		get:    usecase.NewGetPatient(repo),
		create: usecase.NewCreatePatient(repo, dispatcher),
		update: usecase.NewUpdatePatient(repo, dispatcher),
		remove: usecase.NewDeletePatient(repo, dispatcher),
	}
}

func (h *PatientHandler) Register(r gin.IRouter) {
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.POST("", h.Create)
	r.PATCH("/:id", h.Update)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

func (h *PatientHandler) List(c *gin.Context) {
	var q validators.PatientQuery
	if !bindQuery(c, &q) {
		return
	}

	patients, err := h.list.Execute(c.Request.Context(), q.Filter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, patients)
}

func (h *PatientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Create(c *gin.Context) {
	var req validators.CreatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validators.UpdatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), id, req.Patch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PatientHandler) Delete(c *gin.Context) {
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
