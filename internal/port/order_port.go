package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.OrderDetails, error)

	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	// TransitionOrder moves the order to target under a row lock, applying
	// stock decrements in the same transaction when target is Shipped.
	TransitionOrder(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus, at time.Time) (domain.Transition, error)

	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}
