package router

import (
	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/container"
	"github.com/oksasatya/starwars-api/internal/infrastructure/persistence"
	handlers "github.com/oksasatya/starwars-api/internal/interface/http"
	"github.com/oksasatya/starwars-api/internal/router/modules"
)

type moduleDeps struct {
	Auth     *application.AuthService
	Users    *application.UserService
	Catalog  *application.CatalogService
	Favorite *application.FavoriteService
}

func buildDeps(c *container.Container) moduleDeps {
	uow := persistence.NewUnitOfWork(c.DB)
	return moduleDeps{
		Auth:     application.NewAuthService(uow, c.JWT, c.Logger),
		Users:    application.NewUserService(uow),
		Catalog:  application.NewCatalogService(uow, c.Redis, c.Config.CatalogCacheTTL, c.Logger),
		Favorite: application.NewFavoriteService(uow, c.Events, c.Logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	deps := buildDeps(c)

	r.Add(modules.NewSystemModule(
		handlers.NewSitemapHandler(r.Engine),
		handlers.NewHealthHandler(c.DB, c.Logger),
	))
	r.Add(modules.NewCatalogModule(handlers.NewCatalogHandler(deps.Catalog, c.Logger)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(deps.Auth, c.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(deps.Users, deps.Favorite, c.Logger), deps.Auth))
	r.Add(modules.NewFavoriteModule(handlers.NewFavoriteHandler(deps.Favorite, c.Logger), deps.Auth))
	if c.Config.DebugMetricsEnabled && c.Metrics != nil {
		r.Add(modules.NewDebugModule(c.Metrics))
	}
}
