package validators

import (
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "github.com/present-lee/module-6/internal/data_models"
)

func validCategoryName(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= 1 && n <= 100
}

func ValidateCreateCategoryRequest(r *dto.CreateCategoryRequest) error {
	if !validCategoryName(r.Name) {
		return echo.NewHTTPError(http.StatusBadRequest, "name must be 1-100 characters")
	}
	if r.Order != nil && *r.Order < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "order must be non-negative")
	}
	if r.Color != nil && utf8.RuneCountInString(*r.Color) > 20 {
		return echo.NewHTTPError(http.StatusBadRequest, "color must be at most 20 characters")
	}
	return nil
}

func ValidateUpdateCategoryRequest(r *dto.UpdateCategoryRequest) error {
	if r.Name.Present {
		if !r.Name.Valid {
			return echo.NewHTTPError(http.StatusBadRequest, "name cannot be null")
		}
		if !validCategoryName(r.Name.Value) {
			return echo.NewHTTPError(http.StatusBadRequest, "name must be 1-100 characters")
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
	if r.Color.Present && r.Color.Valid && utf8.RuneCountInString(r.Color.Value) > 20 {
		return echo.NewHTTPError(http.StatusBadRequest, "color must be at most 20 characters")
	}
	return nil
}

func ValidateReorderCategoriesRequest(r *dto.ReorderCategoriesRequest) error {
	if len(r.Items) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "items must not be empty")
	}
	for _, item := range r.Items {
		if item.ID == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "item id is required")
		}
		if item.Order < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "order must be non-negative")
		}
	}
	return nil
}
