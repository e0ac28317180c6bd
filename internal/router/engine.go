package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-api/config"
	"github.com/oksasatya/starwars-api/internal/container"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/pkg/response"
	"github.com/oksasatya/starwars-api/pkg/validation"
)

// New builds the Gin engine with global middleware and every module registered.
func New(c *container.Container) *gin.Engine {
	validation.Init()

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.CustomRecovery(func(ctx *gin.Context, _ any) {
		response.Error(ctx, http.StatusInternalServerError, "internal server error")
	}))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if c.Metrics != nil {
		r.Use(c.Metrics.Middleware())
	}
	if c.Config.HTTPLogEnabled && c.Logger != nil {
		r.Use(middleware.AccessLog(c.Logger))
	}
	r.Use(cors.New(corsConfig(c.Config)))

	r.NoRoute(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(ctx *gin.Context) {
		response.Error(ctx, http.StatusMethodNotAllowed, "method not allowed")
	})

	reg := NewRegistry(r)
	InitModules(reg, c)
	reg.RegisterAll()
	return r
}

// corsConfig allows any origin without credentials for "*", otherwise the
// listed origins with credentials.
func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	origins := cfg.CORSOrigins()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cc.AllowAllOrigins = true
		return cc
	}
	cc.AllowOrigins = origins
	cc.AllowCredentials = true
	return cc
}
