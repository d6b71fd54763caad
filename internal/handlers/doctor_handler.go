package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/httpresp"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/doctor"
	"github.com/6laercio/saude-integrada-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	list   *usecase.ListDoctors
	get    *usecase.GetDoctor
	create *usecase.CreateDoctor
	update *usecase.UpdateDoctor
	remove *usecase.DeleteDoctor
}

func NewDoctorHandler(repo domain.Repository, dispatcher *audit.Dispatcher) *DoctorHandler {
	return &DoctorHandler{
		list:   usecase.NewListDoctors(repo),
		get:    usecase.NewGetDoctor(repo),
		create: usecase.NewCreateDoctor(repo, dispatcher),
		update: usecase.NewUpdateDoctor(repo, dispatcher),
		remove: usecase.NewDeleteDoctor(repo, dispatcher),
	}
}

func (h *DoctorHandler) Register(r gin.IRouter) {
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.POST("", h.Create)
	r.PATCH("/:id", h.Update)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	var q validators.DoctorQuery
	if !bindQuery(c, &q) {
		return
	}

	doctors, err := h.list.Execute(c.Request.Context(), q.Filter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	d, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req validators.CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.create.Execute(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, d)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validators.UpdateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.update.Execute(c.Request.Context(), id, req.Patch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *DoctorHandler) Delete(c *gin.Context) {
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
