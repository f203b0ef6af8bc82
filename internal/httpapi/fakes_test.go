package httpapi_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/payment"
	"github.com/nikolayk812/marketplace/internal/service"
	"github.com/shopspring/decimal"
)

var errNotStubbed = errors.New("not stubbed")

type fakeOrders struct {
	createOrder  func(domain.Order) (domain.Order, domain.User, error)
	getOrder     func(uuid.UUID) (domain.OrderDetails, error)
	listAll      func(...domain.OrderStatus) ([]domain.Order, decimal.Decimal, error)
	updateStatus func(uuid.UUID, string) (domain.Transition, error)
}

func (f *fakeOrders) CreateOrder(_ context.Context, order domain.Order) (domain.Order, domain.User, error) {
	if f.createOrder == nil {
		return domain.Order{}, domain.User{}, errNotStubbed
	}
	return f.createOrder(order)
}

func (f *fakeOrders) GetOrder(_ context.Context, orderID uuid.UUID) (domain.OrderDetails, error) {
	if f.getOrder == nil {
		return domain.OrderDetails{}, errNotStubbed
	}
	return f.getOrder(orderID)
}

func (f *fakeOrders) ListMyOrders(context.Context, uuid.UUID) ([]domain.Order, error) {
	return []domain.Order{}, nil
}

func (f *fakeOrders) ListAllOrders(_ context.Context, statuses ...domain.OrderStatus) ([]domain.Order, decimal.Decimal, error) {
	if f.listAll == nil {
		return nil, decimal.Zero, errNotStubbed
	}
	return f.listAll(statuses...)
}

func (f *fakeOrders) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status string) (domain.Transition, error) {
	if f.updateStatus == nil {
		return domain.Transition{}, errNotStubbed
	}
	return f.updateStatus(orderID, status)
}

func (f *fakeOrders) DeleteOrder(context.Context, uuid.UUID) error {
	return domain.ErrOrderNotFound
}

type fakeUsers struct {
	loggedOut  []string
	deleted    []uuid.UUID
	withOrders uuid.UUID
}

func (f *fakeUsers) Register(_ context.Context, reg service.Registration) (domain.User, string, error) {
	return domain.User{ID: uuid.New(), Name: reg.Name, Email: reg.Email, Role: domain.RoleUser}, "new-token", nil
}

func (f *fakeUsers) Login(context.Context, string, string) (domain.User, string, error) {
	return domain.User{}, "", errors.Join(errors.New("users.Login"), domain.ErrUnauthorized)
}

func (f *fakeUsers) DeleteUser(_ context.Context, userID uuid.UUID) error {
	if userID == f.withOrders {
		return fmt.Errorf("users.DeleteUser: %w", domain.ErrUserHasOrders)
	}
	f.deleted = append(f.deleted, userID)
	return nil
}

func (f *fakeUsers) Logout(_ context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

type fakeCatalog struct {
	created []domain.Product
}

func (f *fakeCatalog) CreateProduct(_ context.Context, product domain.Product, ownerID uuid.UUID) (domain.Product, error) {
	product.ID = uuid.New()
	product.OwnerID = &ownerID
	f.created = append(f.created, product)
	return product, nil
}

func (f *fakeCatalog) GetProduct(context.Context, uuid.UUID) (domain.Product, error) {
	return domain.Product{}, domain.ErrProductNotFound
}

func (f *fakeCatalog) ListProducts(context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, product domain.Product) (domain.Product, error) {
	return product, nil
}

func (f *fakeCatalog) DeleteProduct(context.Context, uuid.UUID) error {
	return nil
}

func (f *fakeCatalog) CreateProperty(_ context.Context, property domain.Property) (domain.Property, error) {
	property.ID = uuid.New()
	return property, nil
}

func (f *fakeCatalog) ListProperties(context.Context) ([]domain.Property, error) {
	return nil, nil
}

// fakeAuth maps tokens to users.
type fakeAuth map[string]domain.User

func (f fakeAuth) Authenticate(_ context.Context, token string) (domain.User, error) {
	user, ok := f[token]
	if !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	return user, nil
}

type fakeGateway struct {
	resp    payment.Response
	err     error
	intents []payment.Intent
	calls   []payment.RPCCall
}

func (f *fakeGateway) Process(_ context.Context, intent payment.Intent) (payment.Response, error) {
	f.intents = append(f.intents, intent)
	return f.resp, f.err
}

func (f *fakeGateway) Call(_ context.Context, call payment.RPCCall) (payment.Response, error) {
	f.calls = append(f.calls, call)
	return f.resp, f.err
}
