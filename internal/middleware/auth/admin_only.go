package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftroots/marketplace/internal/models"
)

// RequireAdmin gates administrative operations such as order-status changes.
// It must run after RequireLogin.
func (m *TokenAuth) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("role").(string)
		if role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}
