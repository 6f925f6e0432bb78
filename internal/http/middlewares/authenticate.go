package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/present-lee/module-6/internal/auth"
	apperrors "github.com/present-lee/module-6/internal/errors"
	model "github.com/present-lee/module-6/internal/models"
	repository "github.com/present-lee/module-6/internal/repositories"
)

const actorContextKey = "actor"

// Authenticate resolves the bearer token into the acting user and stores
// it in the request context. The user is re-read from the database on every
// request so role changes take effect immediately.
func Authenticate(tokens *auth.TokenManager, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return echo.NewHTTPError(
					apperrors.ErrUnauthenticated.StatusCode,
					apperrors.ErrUnauthenticated.Message,
				)
			}

			userID, err := tokens.Decode(strings.TrimPrefix(header, prefix))
			if err != nil {
				return echo.NewHTTPError(
					apperrors.ErrUnauthenticated.StatusCode,
					apperrors.ErrUnauthenticated.Message,
				)
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(
					apperrors.ErrUnauthenticated.StatusCode,
					apperrors.ErrUnauthenticated.Message,
				)
			}

			c.Set(actorContextKey, user)
			return next(c)
		}
	}
}

// Actor returns the authenticated user set by Authenticate, or nil.
func Actor(c echo.Context) *model.User {
	user, _ := c.Get(actorContextKey).(*model.User)
	return user
}
