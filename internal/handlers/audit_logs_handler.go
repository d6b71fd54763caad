package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/audit"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
	loc  *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, loc: loc}
}

// List: ?action=&entity=&entityId=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultLimit)))

	if raw := c.Query("entityId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			v := uint(id)
			q.EntityID = &v
		}
	}

	// --------------------------------------------------
	// Datas no fuso da clínica; "to" cobre o dia inteiro
	// --------------------------------------------------

	if from, err := time.ParseInLocation("2006-01-02", c.Query("from"), h.loc); err == nil {
		q.From = &from
	}
	if to, err := time.ParseInLocation("2006-01-02", c.Query("to"), h.loc); err == nil {
		end := to.Add(24 * time.Hour)
		q.To = &end
	}

	page, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, page)
}
