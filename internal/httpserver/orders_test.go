package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftroots/marketplace/internal/models"
)

func TestCreateOrderForcesPendingStatus(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedArtisan("owner@x.com")
	p := env.seedProduct(owner.ID, true)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"items":           []map[string]any{{"productId": p.ID, "quantity": 2}},
		"shippingAddress": "1 Clay Rd",
		"paymentMethod":   "card",
		"status":          "delivered",
	})
	asLoggedIn(c, 42, models.RoleCustomer)

	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, uint(42), order.UserID)
	require.Equal(t, 24.0, order.Total)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedArtisan("owner@x.com")
	p := env.seedProduct(owner.ID, true)

	_, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"items":           []map[string]any{{"productId": p.ID, "quantity": 0}},
		"shippingAddress": "1 Clay Rd",
		"paymentMethod":   "card",
	})
	asLoggedIn(c, 42, models.RoleCustomer)

	err := env.Orders.CreateOrder(c)
	require.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestGetOrderScopedToOwner(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedArtisan("owner@x.com")
	p := env.seedProduct(owner.ID, true)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"items":           []map[string]any{{"productId": p.ID, "quantity": 1}},
		"shippingAddress": "addr",
		"paymentMethod":   "card",
	})
	asLoggedIn(c, 1, models.RoleCustomer)
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	_, c = env.doJSONRequest(http.MethodGet, "/api/v1/orders/1", nil)
	c.SetParamNames("id")
	c.SetParamValues(itoa(order.ID))
	asLoggedIn(c, 2, models.RoleCustomer)

	err := env.Orders.GetOrder(c)
	require.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestUpdateOrderStatusUnknownValue(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedArtisan("owner@x.com")
	p := env.seedProduct(owner.ID, true)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"items":           []map[string]any{{"productId": p.ID, "quantity": 1}},
		"shippingAddress": "addr",
		"paymentMethod":   "card",
	})
	asLoggedIn(c, 1, models.RoleCustomer)
	require.NoError(t, env.Orders.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	_, c = env.doJSONRequest(http.MethodPut, "/api/v1/orders/1/status", map[string]any{"status": "teleported"})
	c.SetParamNames("id")
	c.SetParamValues(itoa(order.ID))
	asLoggedIn(c, 1, models.RoleAdmin)

	err := env.Orders.UpdateOrderStatus(c)
	require.Equal(t, http.StatusBadRequest, httpStatus(t, err))

	var stored models.Order
	require.NoError(t, env.Repo.DB.First(&stored, order.ID).Error)
	require.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedArtisan("owner@x.com")
	p := env.seedProduct(owner.ID, true)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]any{
		"items":           []map[string]any{{"productId": p.ID, "quantity": 1}},
		"shippingAddress": "addr",
		"paymentMethod":   "card",
	})
	asLoggedIn(c, 1, models.RoleCustomer)
	require.NoError(t, env.Orders.CreateOrder(c))

	var order models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))

	rec, c = env.doJSONRequest(http.MethodPut, "/api/v1/orders/1/status", map[string]any{"status": "shipped"})
	c.SetParamNames("id")
	c.SetParamValues(itoa(order.ID))
	asLoggedIn(c, 1, models.RoleAdmin)

	require.NoError(t, env.Orders.UpdateOrderStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, models.OrderStatusShipped, updated.Status)
}
