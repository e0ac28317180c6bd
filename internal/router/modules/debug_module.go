package modules

import (
	"expvar"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/starwars-api/internal/interface/middleware"
)

type DebugModule struct {
	Metrics *middleware.Metrics
}

func NewDebugModule(m *middleware.Metrics) *DebugModule { return &DebugModule{Metrics: m} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rg.GET("/metrics", gin.WrapH(m.Metrics.Handler()))
	rg.GET("/debug/vars", gin.WrapH(expvar.Handler()))
}
