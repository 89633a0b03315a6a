package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/nexus-api/internal/core/ports"
)

// UserHandler serves the identity directory.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// ListDevelopers handles GET /api/users/developers. Project Lead only.
//
// @Summary      List all Developer-role users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users/developers [get]
func (h *UserHandler) ListDevelopers(c echo.Context) error {
	developers, err := h.userService.ListDevelopers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(developers))
}
