package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/starwars-api/internal/application"
	"github.com/oksasatya/starwars-api/internal/interface/middleware"
	"github.com/oksasatya/starwars-api/pkg/response"
)

type UserHandler struct {
	Users       *application.UserService
	FavoriteSvc *application.FavoriteService
	Logger      *logrus.Logger
}

func NewUserHandler(users *application.UserService, favorites *application.FavoriteService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, FavoriteSvc: favorites, Logger: logger}
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// Get GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.Users.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// Favorites GET /users/favorites (auth required)
func (h *UserHandler) Favorites(c *gin.Context) {
	user, err := h.FavoriteSvc.ListFavoritesForUser(c.Request.Context(), middleware.Identity(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}
