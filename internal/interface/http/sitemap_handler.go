package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-api/pkg/response"
)

type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

type Sitemap struct {
	Routes []RouteInfo `json:"routes"`
}

// SitemapHandler lists the registered routes. The table is read on each
// request so routes added after construction are included.
type SitemapHandler struct {
	Engine *gin.Engine
}

func NewSitemapHandler(engine *gin.Engine) *SitemapHandler {
	return &SitemapHandler{Engine: engine}
}

// Get GET /
func (h *SitemapHandler) Get(c *gin.Context) {
	routes := h.Engine.Routes()
	out := make([]RouteInfo, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteInfo{Method: r.Method, Path: r.Path})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	response.Success(c, http.StatusOK, Sitemap{Routes: out})
}
