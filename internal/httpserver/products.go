package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/craftroots/marketplace/internal/logging"
	"github.com/craftroots/marketplace/internal/middleware/auth"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/service"
	"github.com/craftroots/marketplace/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

func (h *ProductHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	filter := repo.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if raw := c.QueryParam("artisanId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			l.Warn("list_products_rejected", "status", 400, "reason", "invalid artisanId", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid artisanId")
		}
		filter.ArtisanID = uint(id)
	}

	products, err := h.Svc.List(ctx, filter)
	if err != nil {
		return httpError(l, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get")

	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	artisanID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_rejected", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.Svc.Create(ctx, artisanID, req)
	if err != nil {
		return httpError(l, err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update")

	id, err := parseID(c)
	if err != nil {
		return err
	}
	artisanID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_product_rejected", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.Svc.Update(ctx, id, artisanID, req)
	if err != nil {
		return httpError(l, err)
	}

	l.Info("update_product_success", "product_id", id)
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete")

	id, err := parseID(c)
	if err != nil {
		return err
	}
	artisanID, err := auth.UserID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := h.Svc.Delete(ctx, id, artisanID); err != nil {
		return httpError(l, err)
	}

	l.Info("delete_product_success", "product_id", id)
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
