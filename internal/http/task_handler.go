package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/present-lee/module-6/internal/constants"
	dto "github.com/present-lee/module-6/internal/data_models"
	middleware "github.com/present-lee/module-6/internal/http/middlewares"
	"github.com/present-lee/module-6/internal/http/validators"
	repository "github.com/present-lee/module-6/internal/repositories"
)

func (h *Handler) ListTasks(c echo.Context) error {
	filter := repository.TaskFilter{
		CategoryID: c.QueryParam("category_id"),
		AssignedTo: c.QueryParam("assigned_to"),
	}
	if p := c.QueryParam("priority"); p != "" {
		priority := constants.TaskPriority(p)
		if !priority.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "priority must be one of low, medium, high, urgent")
		}
		filter.Priority = priority
	}

	tasks, err := h.taskService.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Create(c.Request().Context(), middleware.Actor(c), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Update(c.Request().Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) MoveTask(c echo.Context) error {
	var req dto.MoveTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateMoveTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.Move(c.Request().Context(), middleware.Actor(c), c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.Delete(c.Request().Context(), middleware.Actor(c), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
