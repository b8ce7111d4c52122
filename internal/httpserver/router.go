package httpserver

import (
	"github.com/labstack/echo/v4"

	"github.com/craftroots/marketplace/internal/middleware/auth"
)

type Deps struct {
	Auth           *auth.TokenAuth
	AuthHandler    *AuthHTTP
	ArtisanHandler *ArtisanHTTP
	ProductHandler *ProductHTTP
	OrderHandler   *OrderHTTP
	SearchHandler  *SearchHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1")

	v1.POST("/auth/register", d.AuthHandler.Register)
	v1.POST("/auth/login", d.AuthHandler.Login)

	artisans := v1.Group("/artisans")
	artisans.GET("", d.ArtisanHandler.ListArtisans)
	artisans.GET("/:id", d.ArtisanHandler.GetArtisan)
	artisans.GET("/:id/products", d.ArtisanHandler.ListArtisanProducts)
	artisans.PUT("/:id", d.ArtisanHandler.UpdateArtisan, d.Auth.RequireLogin)

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.ListProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct, d.Auth.RequireLogin)
	products.PUT("/:id", d.ProductHandler.UpdateProduct, d.Auth.RequireLogin)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct, d.Auth.RequireLogin)

	orders := v1.Group("/orders", d.Auth.RequireLogin)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.PUT("/:id/status", d.OrderHandler.UpdateOrderStatus, d.Auth.RequireAdmin)

	if d.SearchHandler != nil {
		v1.GET("/search", d.SearchHandler.Search)
	}
}
