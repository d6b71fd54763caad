package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	domain "github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/httpresp"
	usecase "github.com/6laercio/saude-integrada-api/internal/usecase/appointment"
	"github.com/6laercio/saude-integrada-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	loc *time.Location

	list     *usecase.ListAppointments
	get      *usecase.GetAppointment
	create   *usecase.CreateAppointment
	update   *usecase.UpdateAppointment
	remove   *usecase.DeleteAppointment
	cancel   *usecase.CancelAppointment
	complete *usecase.CompleteAppointment
}

// NewAppointmentHandler wires the booking use cases. loc is the clinic
// timezone used to read bare dates in list filters.
func NewAppointmentHandler(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	reminders usecase.ReminderQueue,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		loc:      loc,
		list:     usecase.NewListAppointments(repo),
		get:      usecase.NewGetAppointment(repo),
		create:   usecase.NewCreateAppointment(repo, dispatcher, reminders),
		update:   usecase.NewUpdateAppointment(repo, dispatcher, reminders),
		remove:   usecase.NewDeleteAppointment(repo, dispatcher),
		cancel:   usecase.NewCancelAppointment(repo, dispatcher),
		complete: usecase.NewCompleteAppointment(repo, dispatcher),
	}
}

func (h *AppointmentHandler) Register(r gin.IRouter) {
	r.GET("", h.List)
	r.GET("/:id", h.Get)
	r.POST("", h.Create)
	r.PATCH("/:id", h.Update)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)

	r.PATCH("/:id/cancelar", h.Cancel)
	r.PATCH("/:id/concluir", h.Complete)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	var q validators.AppointmentQuery
	if !bindQuery(c, &q) {
		return
	}

	filter, err := q.Filter(h.loc)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	appointments, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, appointments)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req validators.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.Input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req validators.UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, req.Patch())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
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

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}
