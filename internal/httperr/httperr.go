package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From maps a use-case error onto the response envelope. Anything that is
// not a typed domain error is reported as 500 without details and attached
// to the gin context so the request logger records it.
func From(c *gin.Context, err error) {
	var (
		be BusinessError
		nf NotFoundError
		fe ForbiddenError
		ue UnauthorizedError
	)
	switch {
	case errors.As(err, &be):
		BadRequest(c, be.Code, messageFor(be.Code))
	case errors.As(err, &nf):
		NotFound(c, nf.Code, messageFor(nf.Code))
	case errors.As(err, &fe):
		Forbidden(c, fe.Code, messageFor(fe.Code))
	case errors.As(err, &ue):
		Unauthorized(c, ue.Code, messageFor(ue.Code))
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Unexpected error.")
	}
}
