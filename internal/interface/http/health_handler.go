package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/pkg/helpers"
	"github.com/oksasatya/starwars-api/pkg/response"
)

// HealthChecker is satisfied by the database handle.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthHandler struct {
	DB     HealthChecker
	Logger *logrus.Logger
}

func NewHealthHandler(db HealthChecker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger}
}

// Get GET /healthz
func (h *HealthHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.HealthCheck(ctx); err != nil {
		if h.Logger != nil {
			helpers.LogError(h.Logger, "health check failed", err, nil)
		}
		response.Success(c, http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "ok"})
}
