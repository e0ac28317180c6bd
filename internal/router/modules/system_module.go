package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/starwars-api/internal/interface/http"
)

// SystemModule serves the sitemap and the health probe.
type SystemModule struct {
	Sitemap *handlers.SitemapHandler
	Health  *handlers.HealthHandler
}

func NewSystemModule(sitemap *handlers.SitemapHandler, health *handlers.HealthHandler) *SystemModule {
	return &SystemModule{Sitemap: sitemap, Health: health}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Sitemap.Get)
	rg.GET("/healthz", m.Health.Get)
}
