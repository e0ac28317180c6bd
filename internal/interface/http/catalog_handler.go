package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/pkg/response"
)

// CatalogHandler serves the read-only planet and people endpoints.
type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

func (h *CatalogHandler) ListPlanets(c *gin.Context) {
	planets, err := h.Svc.ListPlanets(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, planets)
}

func (h *CatalogHandler) GetPlanet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	planet, err := h.Svc.GetPlanet(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, planet)
}

func (h *CatalogHandler) ListPeople(c *gin.Context) {
	people, err := h.Svc.ListPeople(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, people)
}

func (h *CatalogHandler) GetPerson(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	person, err := h.Svc.GetPerson(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, person)
}
