package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-api/internal/interface/http"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
)

// UserModule wires user HTTP handlers into routes
// Public: GET /users, GET /users/:id
// Protected: GET /users/favorites
type UserModule struct {
	Handler  *handlers.UserHandler
	Verifier middleware.TokenVerifier
}

func NewUserModule(h *handlers.UserHandler, verifier middleware.TokenVerifier) *UserModule {
	return &UserModule{Handler: h, Verifier: verifier}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.GET("/users", m.Handler.List)
	rg.GET("/users/:id", m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.BearerAuth(m.Verifier))
	{
		auth.GET("/users/favorites", m.Handler.Favorites)
	}
}
