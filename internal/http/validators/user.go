package validators

import (
	"net/http"
	"net/mail"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	dto "github.com/present-lee/module-6/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if n := utf8.RuneCountInString(r.Username); n < 2 || n > 50 {
		return echo.NewHTTPError(http.StatusBadRequest, "username must be 2-50 characters")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email address")
	}
	if utf8.RuneCountInString(r.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}

func ValidateUpdateRoleRequest(r *dto.UpdateRoleRequest) error {
	if !r.Role.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "role must be one of admin, member, viewer")
	}
	return nil
}
