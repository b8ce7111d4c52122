package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func setUserContext(c echo.Context, claims jwt.MapClaims) {
	c.Set("user_id", uint(claims["sub"].(float64)))
	c.Set("role", claims["role"].(string))
}

// UserID returns the authenticated identity stored by RequireLogin.
func UserID(c echo.Context) (uint, error) {
	id, ok := c.Get("user_id").(uint)
	if !ok {
		return 0, errors.New("unauthorized")
	}
	return id, nil
}
