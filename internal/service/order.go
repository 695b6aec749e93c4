package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) (string, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatus, at time.Time) (entities.Order, error)
}

type orderService struct {
	logger *slog.Logger
	repo   OrderRepo
}

func NewOrderService(logger *slog.Logger, repo OrderRepo) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		repo:   repo,
	}
}

// CreateOrder validates checkout input and persists a new pending order.
// Totals are stored as sent by the caller.
func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (string, error) {
	if err := order.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	order.ID = ""
	order.Status = entities.StatusPending
	order.StatusUpdatedAt = nil
	order.CreatedAt = now
	order.UpdatedAt = now

	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Debug("order created", slog.String("order_id", id), slog.Int("items", len(order.Items)))
	return id, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	return s.repo.GetOrderByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context) ([]entities.Order, error) {
	return s.repo.ListOrders(ctx)
}

// UpdateStatus sets any of the known statuses regardless of the current
// one. Unknown statuses fail before the store is touched.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, status string) (entities.Order, error) {
	st, err := entities.ParseOrderStatus(status)
	if err != nil {
		return entities.Order{}, err
	}

	order, err := s.repo.UpdateOrderStatus(ctx, orderID, st, time.Now())
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order status updated", slog.String("order_id", orderID), slog.String("status", string(st)))
	return order, nil
}
