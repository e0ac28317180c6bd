package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-api/internal/interface/http"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
)

// FavoriteModule registers the favorite mutations; every route requires a token.
type FavoriteModule struct {
	Handler  *handlers.FavoriteHandler
	Verifier middleware.TokenVerifier
}

func NewFavoriteModule(h *handlers.FavoriteHandler, verifier middleware.TokenVerifier) *FavoriteModule {
	return &FavoriteModule{Handler: h, Verifier: verifier}
}

func (m *FavoriteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/favorite")
	auth.Use(middleware.BearerAuth(m.Verifier))
	{
		auth.POST("/planet/:id", m.Handler.AddPlanet)
		auth.DELETE("/planet/:id", m.Handler.RemovePlanet)
		auth.POST("/people/:id", m.Handler.AddPerson)
		auth.DELETE("/people/:id", m.Handler.RemovePerson)
	}
}
