package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/present-lee/module-6/internal/errors"
	"github.com/present-lee/module-6/internal/services"
)

type Handler struct {
	userService     *services.UserService
	categoryService *services.CategoryService
	taskService     *services.TaskService
}

func NewHandler(
	userService *services.UserService,
	categoryService *services.CategoryService,
	taskService *services.TaskService,
) *Handler {
	return &Handler{
		userService:     userService,
		categoryService: categoryService,
		taskService:     taskService,
	}
}

// httpError maps a service error onto its outcome code. Unexpected errors
// surface as a generic 500 without leaking internal detail.
func httpError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
