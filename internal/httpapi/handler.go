package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/payment"
	"github.com/nikolayk812/marketplace/internal/service"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, domain.User, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.OrderDetails, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	ListAllOrders(ctx context.Context, statuses ...domain.OrderStatus) ([]domain.Order, decimal.Decimal, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string) (domain.Transition, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

type UserService interface {
	Register(ctx context.Context, reg service.Registration) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	Logout(ctx context.Context, token string) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

type CatalogService interface {
	CreateProduct(ctx context.Context, product domain.Product, ownerID uuid.UUID) (domain.Product, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID uuid.UUID) error
	CreateProperty(ctx context.Context, property domain.Property) (domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type RPCCaller interface {
	Call(ctx context.Context, call payment.RPCCall) (payment.Response, error)
}

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Orders  OrderService
	Users   UserService
	Catalog CatalogService
	Auth    Authenticator

	Stripe payment.Gateway
	Paytm  payment.Gateway
	RPC    RPCCaller

	Checks     map[string]HealthCheck
	SessionTTL time.Duration
	Logger     *slog.Logger
}

type Handler struct {
	orders  OrderService
	users   UserService
	catalog CatalogService
	auth    Authenticator

	stripe payment.Gateway
	paytm  payment.Gateway
	rpc    RPCCaller

	checks     map[string]HealthCheck
	sessionTTL time.Duration
	logger     *slog.Logger
}

func NewHandler(deps Deps) (*Handler, error) {
	if deps.Orders == nil {
		return nil, errors.New("orders is nil")
	}
	if deps.Users == nil {
		return nil, errors.New("users is nil")
	}
	if deps.Catalog == nil {
		return nil, errors.New("catalog is nil")
	}
	if deps.Auth == nil {
		return nil, errors.New("auth is nil")
	}
	if deps.Stripe == nil || deps.Paytm == nil || deps.RPC == nil {
		return nil, errors.New("payment gateway is nil")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		orders:     deps.Orders,
		users:      deps.Users,
		catalog:    deps.Catalog,
		auth:       deps.Auth,
		stripe:     deps.Stripe,
		paytm:      deps.Paytm,
		rpc:        deps.RPC,
		checks:     deps.Checks,
		sessionTTL: deps.SessionTTL,
		logger:     logger,
	}, nil
}
