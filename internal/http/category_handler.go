package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "github.com/present-lee/module-6/internal/data_models"
	middleware "github.com/present-lee/module-6/internal/http/middlewares"
	"github.com/present-lee/module-6/internal/http/validators"
)

func (h *Handler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *Handler) GetCategory(c echo.Context) error {
	category, err := h.categoryService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), middleware.Actor(c), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c echo.Context) error {
	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateCategoryRequest(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	if err := h.categoryService.Delete(c.Request().Context(), middleware.Actor(c), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ReorderCategories(c echo.Context) error {
	var req dto.ReorderCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateReorderCategoriesRequest(&req); err != nil {
		return err
	}

	categories, err := h.categoryService.Reorder(c.Request().Context(), middleware.Actor(c), req.Items)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, categories)
}
