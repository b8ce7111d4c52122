package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type TokenAuth struct {
	JWTSecret []byte
}

func New(secret []byte) *TokenAuth {
	return &TokenAuth{JWTSecret: secret}
}

// RequireLogin validates the Bearer token and puts the authenticated
// identity (user id, role) into the echo context.
func (m *TokenAuth) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := m.parse(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		setUserContext(c, claims)
		return next(c)
	}
}

func (m *TokenAuth) parse(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("cannot parse claims")
	}
	if _, ok := claims["sub"].(float64); !ok {
		return nil, fmt.Errorf("missing sub claim")
	}
	if _, ok := claims["role"].(string); !ok {
		return nil, fmt.Errorf("missing role claim")
	}
	return claims, nil
}
