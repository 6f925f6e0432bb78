package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/present-lee/module-6/internal/data_models"
	middleware "github.com/present-lee/module-6/internal/http/middlewares"
	"github.com/present-lee/module-6/internal/http/validators"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context(), middleware.Actor(c))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, users)
}

func (h *Handler) UpdateUserRole(c echo.Context) error {
	var req dto.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateRoleRequest(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateRole(c.Request().Context(), middleware.Actor(c), c.Param("id"), req.Role)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), middleware.Actor(c), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
