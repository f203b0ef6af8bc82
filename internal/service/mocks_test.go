package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/notify"
	"github.com/stretchr/testify/mock"
)

type orderRepoMock struct {
	mock.Mock
}

func (m *orderRepoMock) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.OrderDetails, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(domain.OrderDetails), args.Error(1)
}

func (m *orderRepoMock) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepoMock) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *orderRepoMock) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *orderRepoMock) TransitionOrder(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus, at time.Time) (domain.Transition, error) {
	args := m.Called(ctx, orderID, target, at)
	return args.Get(0).(domain.Transition), args.Error(1)
}

func (m *orderRepoMock) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepoMock) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepoMock) InsertUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *userRepoMock) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *productRepoMock) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *productRepoMock) InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *productRepoMock) UpdateProduct(ctx context.Context, product domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *productRepoMock) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	return m.Called(ctx, productID).Error(0)
}

func (m *productRepoMock) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int32) error {
	return m.Called(ctx, productID, quantity).Error(0)
}

type propertyRepoMock struct {
	mock.Mock
}

func (m *propertyRepoMock) GetProperty(ctx context.Context, propertyID uuid.UUID) (domain.Property, error) {
	args := m.Called(ctx, propertyID)
	return args.Get(0).(domain.Property), args.Error(1)
}

func (m *propertyRepoMock) ListProperties(ctx context.Context) ([]domain.Property, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Property), args.Error(1)
}

func (m *propertyRepoMock) InsertProperty(ctx context.Context, property domain.Property) (uuid.UUID, error) {
	args := m.Called(ctx, property)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) Dispatch(msg notify.Message) {
	m.Called(msg)
}

type sessionStoreMock struct {
	mock.Mock
}

func (m *sessionStoreMock) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *sessionStoreMock) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
