package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/craftroots/marketplace/internal/logging"
	"github.com/craftroots/marketplace/internal/middleware/auth"
	"github.com/craftroots/marketplace/internal/service"
	"github.com/craftroots/marketplace/internal/transport"
)

type ArtisanHTTP struct {
	Svc *service.ArtisanService
}

func (h *ArtisanHTTP) ListArtisans(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "artisan.list")

	views, err := h.Svc.List(ctx)
	if err != nil {
		return httpError(l, err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *ArtisanHTTP) GetArtisan(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "artisan.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	view, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *ArtisanHTTP) ListArtisanProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "artisan.list_products")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	products, err := h.Svc.ListProducts(ctx, id)
	if err != nil {
		return httpError(l, err)
	}
	return c.JSON(http.StatusOK, products)
}

// UpdateArtisan is the self-only profile merge-patch.
func (h *ArtisanHTTP) UpdateArtisan(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "artisan.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}
	requesterID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.UpdateArtisanRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_artisan_rejected", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.Svc.UpdateProfile(ctx, id, requesterID, req)
	if err != nil {
		return httpError(l, err)
	}

	l.Info("update_artisan_success", "artisan_id", id)
	return c.JSON(http.StatusOK, view)
}
