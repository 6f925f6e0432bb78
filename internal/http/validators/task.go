package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "github.com/present-lee/module-6/internal/data_models"
)

func validTaskTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 1 && n <= 200
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if !validTaskTitle(r.Title) {
		return echo.NewHTTPError(http.StatusBadRequest, "title must be 1-200 characters")
	}
	if r.CategoryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category_id is required")
	}
	if r.Priority != "" && !r.Priority.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high, urgent")
	}
	if r.Order != nil && *r.Order < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "order must be non-negative")
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if r.Title.Present {
		if !r.Title.Valid {
			return echo.NewHTTPError(http.StatusBadRequest, "title cannot be null")
		}
		if !validTaskTitle(r.Title.Value) {
			return echo.NewHTTPError(http.StatusBadRequest, "title must be 1-200 characters")
		}
	}
	if r.CategoryID.Present && (!r.CategoryID.Valid || r.CategoryID.Value == "") {
		return echo.NewHTTPError(http.StatusBadRequest, "category_id cannot be null")
	}
	if r.Priority.Present {
		if !r.Priority.Valid || !r.Priority.Value.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high, urgent")
		}
	}
	if r.Order.Present {
		if !r.Order.Valid {
			return echo.NewHTTPError(http.StatusBadRequest, "order cannot be null")
		}
		if r.Order.Value < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "order must be non-negative")
		}
	}
	return nil
}

func ValidateMoveTaskRequest(r *dto.MoveTaskRequest) error {
	if r.CategoryID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "category_id is required")
	}
	if r.Order < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "order must be non-negative")
	}
	return nil
}
