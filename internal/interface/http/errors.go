package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/pkg/helpers"
	"github.com/oksasatya/starwars-api/pkg/response"
)

const msgInternal = "internal server error"

// idParam validates a positive integer path id.
type idParam struct {
	ID int64 `uri:"id" binding:"id"`
}

// pathID binds :id and writes 400 when it is not a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return p.ID, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrUnauthorized), errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, application.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps service errors to statuses. Anything unclassified is
// logged and hidden behind a generic 500.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			helpers.LogError(logger, "request failed", err, logrus.Fields{
				"request_id": c.GetString(middleware.CtxRequestIDKey),
				"path":       c.FullPath(),
			})
		}
		response.Error(c, status, msgInternal)
		return
	}
	response.Error(c, status, application.Message(err, http.StatusText(status)))
}
