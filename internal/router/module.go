package router

import "github.com/gin-gonic/gin"

// Module is one feature area (catalog, users, favorites...). Register mounts
// its routes, plus any per-group middleware such as BearerAuth, on rg.
type Module interface {
	Register(rg *gin.RouterGroup)
}
