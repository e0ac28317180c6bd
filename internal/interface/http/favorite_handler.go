package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/pkg/response"
)

type FavoriteHandler struct {
	Svc    *application.FavoriteService
	Logger *logrus.Logger
}

func NewFavoriteHandler(svc *application.FavoriteService, logger *logrus.Logger) *FavoriteHandler {
	return &FavoriteHandler{Svc: svc, Logger: logger}
}

type favoriteOp func(ctx context.Context, identity string, id int64) (*application.UserView, error)

func (h *FavoriteHandler) AddPlanet(c *gin.Context)    { h.handle(c, h.Svc.AddPlanetFavorite) }
func (h *FavoriteHandler) RemovePlanet(c *gin.Context) { h.handle(c, h.Svc.RemovePlanetFavorite) }
func (h *FavoriteHandler) AddPerson(c *gin.Context)    { h.handle(c, h.Svc.AddPersonFavorite) }
func (h *FavoriteHandler) RemovePerson(c *gin.Context) { h.handle(c, h.Svc.RemovePersonFavorite) }

func (h *FavoriteHandler) handle(c *gin.Context, op favoriteOp) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := op(c.Request.Context(), middleware.Identity(c), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
