package httpserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/craftroots/marketplace/internal/service"
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// httpError maps the service error taxonomy onto status codes with the
// uniform {"message": ...} body, logging at the matching level. Anything
// unclassified falls through to a 500 carrying the underlying text.
func httpError(l *slog.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn("request_rejected", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrForbidden):
		l.Warn("request_rejected", "status", 403, "error", err)
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		l.Warn("request_rejected", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn("request_rejected", "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	l.Error("request_failed", "status", 500, "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
