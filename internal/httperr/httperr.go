package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(k Kind) int {
	switch k {
	case KindValidation, KindInvalidReference:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindDuplicateKey, KindSlotConflict, KindReferenced, KindInvalidState:
		return http.StatusConflict
	case KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as the JSON error body and attaches it to the
// context so the request logger can pick it up.
func Respond(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := KindOf(err)
	status := StatusOf(kind)

	var ve *ValidationError
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(status, HTTPError{
			Code:    "VALIDATION_ERROR",
			Message: "Dados inválidos.",
			Details: ve.Fields,
		})
		return
	}

	var be BusinessError
	if kind != KindInternal && errors.As(err, &be) {
		body := HTTPError{Code: be.Code, Message: be.Error()}
		if be.Field != "" {
			body.Details = gin.H{"field": be.Field}
		}
		c.AbortWithStatusJSON(status, body)
		return
	}

	c.AbortWithStatusJSON(status, HTTPError{
		Code:    "INTERNAL_ERROR",
		Message: "Erro interno do servidor.",
	})
}
