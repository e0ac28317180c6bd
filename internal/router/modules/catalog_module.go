package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-api/internal/interface/http"
)

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/planets", m.Handler.ListPlanets)
	rg.GET("/planets/:id", m.Handler.GetPlanet)
	rg.GET("/people", m.Handler.ListPeople)
	rg.GET("/people/:id", m.Handler.GetPerson)
}
