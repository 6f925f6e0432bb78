package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "github.com/present-lee/module-6/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, authn echo.MiddlewareFunc, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", h.Me, authn)

	users := api.Group("/users", authn)
	users.GET("", h.ListUsers)
	users.PUT("/:id/role", h.UpdateUserRole)
	users.DELETE("/:id", h.DeleteUser)

	categories := api.Group("/categories", authn)
	categories.GET("", h.ListCategories)
	categories.POST("", h.CreateCategory)
	categories.PUT("/reorder", h.ReorderCategories)
	categories.GET("/:id", h.GetCategory)
	categories.PUT("/:id", h.UpdateCategory)
	categories.DELETE("/:id", h.DeleteCategory)

	tasks := api.Group("/tasks", authn)
	tasks.GET("", h.ListTasks)
	tasks.POST("", h.CreateTask)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.PUT("/:id/move", h.MoveTask)
	tasks.DELETE("/:id", h.DeleteTask)
}
