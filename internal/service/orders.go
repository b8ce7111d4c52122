package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/craftroots/marketplace/internal/events"
	"github.com/craftroots/marketplace/internal/logging"
	"github.com/craftroots/marketplace/internal/models"
	"github.com/craftroots/marketplace/internal/repo"
	"github.com/craftroots/marketplace/internal/transport"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer events.Publisher
}

// Create builds an order for the requesting user. The status is always
// pending regardless of what the client sent, and unit prices come from the
// current product rows, totalled with decimal arithmetic.
func (s *OrderService) Create(ctx context.Context, userID uint, req transport.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
		p, err := s.Repo.GetActiveProduct(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: product %d not available", ErrValidation, it.ProductID)
			}
			return nil, err
		}

		unit := decimal.NewFromFloat(p.Price)
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
		})
	}

	order := &models.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
		Total:           total.Round(2).InexactFloat64(),
	}
	if err := s.Repo.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":    "order_created",
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.Total,
	})
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrdersByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, id, userID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrderForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

// UpdateStatus moves an order to a new state. Callers must have already
// passed the admin gate; the status must be one of the five known states.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := s.Repo.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}

	s.publish(ctx, order.ID, map[string]any{
		"type":    "order_status_changed",
		"orderID": order.ID,
		"status":  order.Status,
	})
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, orderID uint, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, events.TopicOrderEvents, fmt.Sprint(orderID), event); err != nil {
		logging.FromContext(ctx).Warn("event_publish_failed", "topic", events.TopicOrderEvents, "error", err)
	}
}
