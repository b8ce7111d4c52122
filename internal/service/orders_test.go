package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/transport"
)

func TestCreateOrderForcesPending(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	artisan := seedArtisan(t, r, "a@x.com")
	p := seedActiveProduct(t, r, artisan.ID, 10)

	order, err := svc.Create(ctx, 42, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 2}},
		ShippingAddress: "1 Clay Rd",
		PaymentMethod:   "card",
		Status:          "shipped",
	})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, uint(42), order.UserID)
	require.Equal(t, 20.0, order.Total)
	require.Len(t, order.Items, 1)
	require.Equal(t, 10.0, order.Items[0].UnitPrice)
}

func TestCreateOrderDecimalTotal(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	artisan := seedArtisan(t, r, "a@x.com")
	p := seedActiveProduct(t, r, artisan.ID, 0.1)

	// 0.1 * 3 accumulates float error without decimal arithmetic.
	order, err := svc.Create(ctx, 1, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 3}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)
	require.Equal(t, 0.3, order.Total)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	_, err := svc.Create(context.Background(), 1, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: 999, Quantity: 1}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}

	_, err := svc.Create(context.Background(), 1, transport.CreateOrderRequest{
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestOrdersScopedToOwner(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	artisan := seedArtisan(t, r, "a@x.com")
	p := seedActiveProduct(t, r, artisan.ID, 5)

	mine, err := svc.Create(ctx, 1, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 2, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	orders, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, mine.ID, orders[0].ID)

	_, err = svc.Get(ctx, mine.ID, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusRejectsUnknownState(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	artisan := seedArtisan(t, r, "a@x.com")
	p := seedActiveProduct(t, r, artisan.ID, 5)

	order, err := svc.Create(ctx, 1, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, order.ID, "teleported")
	require.ErrorIs(t, err, ErrValidation)

	stored, err := svc.Get(ctx, order.ID, 1)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, stored.Status)
}

func TestUpdateStatusTransitions(t *testing.T) {
	r := newTestRepo(t)
	svc := &OrderService{Repo: r}
	ctx := context.Background()

	artisan := seedArtisan(t, r, "a@x.com")
	p := seedActiveProduct(t, r, artisan.ID, 5)

	order, err := svc.Create(ctx, 1, transport.CreateOrderRequest{
		Items:           []transport.CreateOrderItem{{ProductID: p.ID, Quantity: 1}},
		ShippingAddress: "addr",
		PaymentMethod:   "card",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusShipped, updated.Status)

	_, err = svc.UpdateStatus(ctx, order.ID+100, models.OrderStatusShipped)
	require.ErrorIs(t, err, ErrNotFound)
}
