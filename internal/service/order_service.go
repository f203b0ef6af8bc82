package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/notify"
	"github.com/nikolayk812/marketplace/internal/port"
	"github.com/shopspring/decimal"
)

// Notifier queues a message without waiting for its delivery.
type Notifier interface {
	Dispatch(msg notify.Message)
}

type OrderService struct {
	orders   port.OrderRepository
	users    port.UserRepository
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

func NewOrderService(orders port.OrderRepository, users port.UserRepository, notifier Notifier, logger *slog.Logger) (*OrderService, error) {
	if orders == nil {
		return nil, errors.New("orders is nil")
	}
	if users == nil {
		return nil, errors.New("users is nil")
	}
	if notifier == nil {
		return nil, errors.New("notifier is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &OrderService{
		orders:   orders,
		users:    users,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// CreateOrder persists a Processing order and queues one confirmation message.
// The message outcome never affects the returned result.
func (s *OrderService) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, domain.User, error) {
	var (
		o domain.Order
		u domain.User
	)

	if err := order.Validate(); err != nil {
		return o, u, fmt.Errorf("order.Validate: %w", err)
	}

	user, err := s.users.GetUser(ctx, order.UserID)
	if err != nil {
		return o, u, fmt.Errorf("users.GetUser: %w", err)
	}

	order.Status = domain.OrderStatusProcessing
	order.PaidAt = s.now().UTC()

	orderID, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		return o, u, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	order.ID = orderID

	// the order is committed, a failed read-back must not report it as lost
	created, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		s.logger.Warn("failed to read back created order",
			"method", "OrderService.CreateOrder",
			"order_id", orderID,
			"error", err)

		order.CreatedAt = order.PaidAt
		order.UpdatedAt = order.PaidAt
		created.Order = order
	}

	s.notifyPlaced(created.Order, user)

	return created.Order, user, nil
}

func (s *OrderService) notifyPlaced(order domain.Order, user domain.User) {
	msg, err := notify.OrderConfirmation(order, user)
	if err != nil {
		s.logger.Error("failed to render confirmation",
			"method", "OrderService.CreateOrder",
			"order_id", order.ID,
			"error", err)
		return
	}

	s.notifier.Dispatch(msg)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.OrderDetails, error) {
	details, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return domain.OrderDetails{}, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return details, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.orders.SearchOrders(ctx, domain.OrderFilter{UserIDs: []uuid.UUID{userID}})
	if err != nil {
		return nil, fmt.Errorf("orders.SearchOrders: %w", err)
	}

	return orders, nil
}

// ListAllOrders returns every order, optionally narrowed by status, with the sum of their totals.
func (s *OrderService) ListAllOrders(ctx context.Context, statuses ...domain.OrderStatus) ([]domain.Order, decimal.Decimal, error) {
	var (
		orders []domain.Order
		err    error
	)

	if len(statuses) > 0 {
		orders, err = s.orders.SearchOrders(ctx, domain.OrderFilter{Statuses: statuses})
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("orders.SearchOrders: %w", err)
		}
	} else {
		orders, err = s.orders.ListOrders(ctx)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("orders.ListOrders: %w", err)
		}
	}

	return orders, domain.SumTotals(orders), nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) (domain.Transition, error) {
	target, err := domain.ToOrderStatus(status)
	if err != nil {
		return domain.Transition{}, fmt.Errorf("%w: status[%s]: %v", domain.ErrValidation, status, err)
	}

	transition, err := s.orders.TransitionOrder(ctx, orderID, target, s.now().UTC())
	if err != nil {
		return domain.Transition{}, fmt.Errorf("orders.TransitionOrder: %w", err)
	}

	for _, adj := range transition.Skipped() {
		s.logger.Warn("stock not decremented, product no longer exists",
			"method", "OrderService.UpdateOrderStatus",
			"order_id", orderID,
			"product_id", adj.ProductID,
			"quantity", adj.Quantity)
	}

	return transition, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("orders.DeleteOrder: %w", err)
	}

	return nil
}
