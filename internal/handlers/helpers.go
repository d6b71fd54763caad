package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/6laercio/saude-integrada-api/internal/httperr"
	"github.com/6laercio/saude-integrada-api/internal/validators"
)

// pathID parses :id. On failure the 400 is already written.
func pathID(c *gin.Context) (uint, bool) {
	id, err := validators.ParseID(c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the body. On failure the 400 is already written.
func bindJSON(c *gin.Context, dst any) bool {
	if err := validators.DecodeJSON(c, dst); err != nil {
		httperr.Respond(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := validators.BindQuery(c, dst); err != nil {
		httperr.Respond(c, err)
		return false
	}
	return true
}
