package repository_test

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"github.com/nikolayk812/marketplace/internal/repository"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"golang.org/x/text/currency"
)

type orderRepositorySuite struct {
	suite.Suite

	pool      *pgxpool.Pool
	container testcontainers.Container

	repo     port.OrderRepository
	users    port.UserRepository
	products port.ProductRepository

	userID uuid.UUID
}

// entry point to run the tests in the suite
func TestOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(orderRepositorySuite))
}

// before all tests in the suite
func (suite *orderRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var err error

	suite.container, suite.pool, err = newMigratedPool(ctx)
	suite.Require().NoError(err)

	suite.repo, err = repository.NewOrder(suite.pool)
	suite.Require().NoError(err)

	suite.users = repository.NewUser(suite.pool)
	suite.products = repository.NewProduct(suite.pool)
}

// after all tests in the suite
func (suite *orderRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

// before each test
func (suite *orderRepositorySuite) SetupTest() {
	ctx := suite.T().Context()

	suite.Require().NoError(truncateAll(ctx, suite.pool))

	var err error
	suite.userID, err = suite.users.InsertUser(ctx, randomUser())
	suite.Require().NoError(err)
}

func (suite *orderRepositorySuite) TestNewOrderNilPool() {
	_, err := repository.NewOrder(nil)
	suite.EqualError(err, "pool is nil")
}

func (suite *orderRepositorySuite) TestInsertOrder() {
	tests := []struct {
		name      string
		orderFunc func() domain.Order
		wantError string
		wantErrIs error
	}{
		{
			name:      "valid order with all fields: ok",
			orderFunc: func() domain.Order { return randomOrder(suite.userID) },
		},
		{
			name: "valid order, empty shipping details except address: ok",
			orderFunc: func() domain.Order {
				o := randomOrder(suite.userID)
				o.ShippingInfo = domain.ShippingInfo{Address: gofakeit.Street()}
				o.PaymentInfo.Status = ""
				return o
			},
		},
		{
			name: "invalid order, no items: fail",
			orderFunc: func() domain.Order {
				o := randomOrder(suite.userID)
				o.Items = nil
				return o
			},
			wantError: "no items in order",
		},
		{
			name: "unknown user: fail",
			orderFunc: func() domain.Order {
				return randomOrder(uuid.MustParse(gofakeit.UUID()))
			},
			wantErrIs: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			ttOrder := tt.orderFunc()

			orderID, err := suite.repo.InsertOrder(ctx, ttOrder)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				return
			}
			require.NoError(t, err)

			actual, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			assertOrder(t, ttOrder, actual.Order)
			assert.Equal(t, orderID, actual.ID)
			assert.Nil(t, actual.ShippedAt)
			assert.Nil(t, actual.DeliveredAt)
		})
	}
}

func (suite *orderRepositorySuite) TestInsertOrderDuplicates() {
	t := suite.T()
	ctx := t.Context()

	first := randomOrder(suite.userID)
	_, err := suite.repo.InsertOrder(ctx, first)
	require.NoError(t, err)

	samePayment := randomOrder(suite.userID)
	samePayment.PaymentInfo.ID = first.PaymentInfo.ID

	_, err = suite.repo.InsertOrder(ctx, samePayment)
	require.ErrorIs(t, err, domain.ErrDuplicatePayment)
	require.ErrorIs(t, err, domain.ErrConflict)

	sameNumber := randomOrder(suite.userID)
	sameNumber.OrderNumber = first.OrderNumber

	_, err = suite.repo.InsertOrder(ctx, sameNumber)
	require.ErrorIs(t, err, domain.ErrDuplicateOrderNumber)

	orders, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	// a rejected order leaves no orphan items behind
	var items int
	require.NoError(t, suite.pool.QueryRow(ctx, "SELECT count(*) FROM order_items").Scan(&items))
	assert.Equal(t, len(first.Items), items)
}

func (suite *orderRepositorySuite) TestInsertOrderConcurrentSamePayment() {
	t := suite.T()
	ctx := t.Context()

	const attempts = 8
	paymentRef := "pi_" + gofakeit.UUID()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			order := randomOrder(suite.userID)
			order.PaymentInfo.ID = paymentRef

			_, err := suite.repo.InsertOrder(ctx, order)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrDuplicatePayment):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	orders, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func (suite *orderRepositorySuite) TestGetOrder() {
	t := suite.T()
	ctx := t.Context()

	user, err := suite.users.GetUser(ctx, suite.userID)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	details, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)

	assertOrder(t, order, details.Order)
	assert.Equal(t, domain.OrderOwner{Name: user.Name, Email: user.Email}, details.Owner)

	_, err = suite.repo.GetOrder(ctx, uuid.MustParse(gofakeit.UUID()))
	require.EqualError(t, err, "withTx: q.GetOrder: order not found")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *orderRepositorySuite) TestTransitionOrder() {
	tests := []struct {
		name      string
		path      []domain.OrderStatus // applied before the transition under test
		target    domain.OrderStatus
		wantErrIs error
	}{
		{
			name:   "processing to shipped: ok",
			target: domain.OrderStatusShipped,
		},
		{
			name:   "shipped to delivered: ok",
			path:   []domain.OrderStatus{domain.OrderStatusShipped},
			target: domain.OrderStatusDelivered,
		},
		{
			name:      "processing to delivered: invalid",
			target:    domain.OrderStatusDelivered,
			wantErrIs: domain.ErrInvalidTransition,
		},
		{
			name:      "processing to processing: invalid",
			target:    domain.OrderStatusProcessing,
			wantErrIs: domain.ErrInvalidTransition,
		},
		{
			name:      "shipped to shipped: invalid",
			path:      []domain.OrderStatus{domain.OrderStatusShipped},
			target:    domain.OrderStatusShipped,
			wantErrIs: domain.ErrInvalidTransition,
		},
		{
			name:      "shipped back to processing: invalid",
			path:      []domain.OrderStatus{domain.OrderStatusShipped},
			target:    domain.OrderStatusProcessing,
			wantErrIs: domain.ErrInvalidTransition,
		},
		{
			name:      "delivered to shipped: already delivered",
			path:      []domain.OrderStatus{domain.OrderStatusShipped, domain.OrderStatusDelivered},
			target:    domain.OrderStatusShipped,
			wantErrIs: domain.ErrAlreadyDelivered,
		},
		{
			name:      "delivered to delivered: already delivered",
			path:      []domain.OrderStatus{domain.OrderStatusShipped, domain.OrderStatusDelivered},
			target:    domain.OrderStatusDelivered,
			wantErrIs: domain.ErrAlreadyDelivered,
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			orderID, err := suite.repo.InsertOrder(ctx, randomOrder(suite.userID))
			require.NoError(t, err)

			for _, status := range tt.path {
				_, err := suite.repo.TransitionOrder(ctx, orderID, status, time.Now())
				require.NoError(t, err)
			}

			before, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)

			_, err = suite.repo.TransitionOrder(ctx, orderID, tt.target, time.Now())
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
				require.ErrorIs(t, err, domain.ErrConflict)

				after, err := suite.repo.GetOrder(ctx, orderID)
				require.NoError(t, err)
				assert.Equal(t, before.Status, after.Status)
				assert.Equal(t, before.ShippedAt, after.ShippedAt)
				assert.Equal(t, before.DeliveredAt, after.DeliveredAt)
				return
			}
			require.NoError(t, err)

			after, err := suite.repo.GetOrder(ctx, orderID)
			require.NoError(t, err)
			assert.Equal(t, tt.target, after.Status)
		})
	}
}

func (suite *orderRepositorySuite) TestTransitionOrderInvalidInput() {
	t := suite.T()
	ctx := t.Context()

	_, err := suite.repo.TransitionOrder(ctx, uuid.Nil, domain.OrderStatusShipped, time.Now())
	require.EqualError(t, err, "orderID is empty")

	orderID, err := suite.repo.InsertOrder(ctx, randomOrder(suite.userID))
	require.NoError(t, err)

	_, err = suite.repo.TransitionOrder(ctx, orderID, "Cancelled", time.Now())
	require.EqualError(t, err, "domain.ToOrderStatus[Cancelled]: invalid order status")

	_, err = suite.repo.TransitionOrder(ctx, uuid.MustParse(gofakeit.UUID()), domain.OrderStatusShipped, time.Now())
	require.EqualError(t, err, "withTx: q.GetOrderForUpdate: order not found")
}

// ORD-1001 / PAY-1 walk through the whole lifecycle.
func (suite *orderRepositorySuite) TestOrderLifecycle() {
	t := suite.T()
	ctx := t.Context()

	usd := currency.USD

	product := randomProduct()
	product.Price = domain.Money{Amount: decimal.NewFromInt(50), Currency: usd}
	product.Stock = 10
	productID, err := suite.products.InsertProduct(ctx, product)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	order.OrderNumber = "ORD-1001"
	order.PaymentInfo = domain.PaymentInfo{ID: "PAY-1"}
	order.Items = []domain.OrderItem{{
		ProductID: productID,
		Name:      "P1",
		Quantity:  2,
		Price:     domain.Money{Amount: decimal.NewFromInt(50), Currency: usd},
	}}
	order.TotalPrice = domain.Money{Amount: decimal.NewFromInt(100), Currency: usd}

	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	created, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, created.Status)
	assert.True(t, decimal.NewFromInt(100).Equal(created.TotalPrice.Amount))

	// resubmitting the same payment is rejected
	again := order
	again.OrderNumber = "ORD-1002"
	_, err = suite.repo.InsertOrder(ctx, again)
	require.ErrorIs(t, err, domain.ErrDuplicatePayment)

	shippedAt := time.Now().UTC().Truncate(time.Microsecond)
	transition, err := suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, shippedAt)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, transition.From)
	assert.Equal(t, []domain.StockAdjustment{{ProductID: productID, Quantity: 2, Result: domain.StockDecremented}}, transition.Stock)
	assert.Empty(t, transition.Skipped())

	stored, err := suite.products.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int32(8), stored.Stock)

	shipped, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, shipped.Status)
	require.NotNil(t, shipped.ShippedAt)
	assert.True(t, shippedAt.Equal(*shipped.ShippedAt))
	assert.Nil(t, shipped.DeliveredAt)

	deliveredAt := shippedAt.Add(time.Hour)
	_, err = suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusDelivered, deliveredAt)
	require.NoError(t, err)

	delivered, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.DeliveredAt)
	assert.True(t, deliveredAt.Equal(*delivered.DeliveredAt))
	// shippedAt is set once and kept
	assert.True(t, shippedAt.Equal(*delivered.ShippedAt))

	for _, status := range domain.OrderStatuses() {
		_, err = suite.repo.TransitionOrder(ctx, orderID, status, time.Now())
		require.ErrorIs(t, err, domain.ErrAlreadyDelivered)
	}

	// delivery has no stock effect
	stored, err = suite.products.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int32(8), stored.Stock)
}

func (suite *orderRepositorySuite) TestShipSkipsMissingProducts() {
	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	productID, err := suite.products.InsertProduct(ctx, product)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	order.Items = order.Items[:1]
	missing := order.Items[0]

	present := randomOrderItem(order.TotalPrice.Currency)
	present.ProductID = productID
	present.Quantity = 3
	order.Items = append(order.Items, present)

	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	transition, err := suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, time.Now())
	require.NoError(t, err)

	assert.ElementsMatch(t, []domain.StockAdjustment{
		{ProductID: missing.ProductID, Quantity: missing.Quantity, Result: domain.StockSkippedMissing},
		{ProductID: productID, Quantity: 3, Result: domain.StockDecremented},
	}, transition.Stock)
	assert.Len(t, transition.Skipped(), 1)
	assert.Equal(t, domain.OrderStatusShipped, transition.Order.Status)

	stored, err := suite.products.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, product.Stock-3, stored.Stock)
}

func (suite *orderRepositorySuite) TestShipInsufficientStockRollsBack() {
	t := suite.T()
	ctx := t.Context()

	plenty := randomProduct()
	plenty.Stock = 50
	plentyID, err := suite.products.InsertProduct(ctx, plenty)
	require.NoError(t, err)

	scarce := randomProduct()
	scarce.Stock = 1
	scarceID, err := suite.products.InsertProduct(ctx, scarce)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	first := randomOrderItem(order.TotalPrice.Currency)
	first.ProductID = plentyID
	first.Quantity = 5
	second := randomOrderItem(order.TotalPrice.Currency)
	second.ProductID = scarceID
	second.Quantity = 2
	order.Items = []domain.OrderItem{first, second}

	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	_, err = suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, time.Now())
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.ErrorIs(t, err, domain.ErrConflict)

	// the first decrement was rolled back with the rest of the transaction
	storedPlenty, err := suite.products.GetProduct(ctx, plentyID)
	require.NoError(t, err)
	assert.Equal(t, int32(50), storedPlenty.Stock)

	storedScarce, err := suite.products.GetProduct(ctx, scarceID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), storedScarce.Stock)

	stored, err := suite.repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusProcessing, stored.Status)
	assert.Nil(t, stored.ShippedAt)
}

func (suite *orderRepositorySuite) TestConcurrentShipDecrementsOnce() {
	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	product.Stock = 20
	productID, err := suite.products.InsertProduct(ctx, product)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	item := randomOrderItem(order.TotalPrice.Currency)
	item.ProductID = productID
	item.Quantity = 4
	order.Items = []domain.OrderItem{item}

	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	const attempts = 6

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, time.Now())

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, domain.ErrInvalidTransition):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	stored, err := suite.products.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int32(16), stored.Stock)
}

func (suite *orderRepositorySuite) TestConcurrentShipOverlappingProducts() {
	t := suite.T()
	ctx := t.Context()

	productIDs := make([]uuid.UUID, 2)
	for i := range productIDs {
		product := randomProduct()
		product.Stock = 100

		var err error
		productIDs[i], err = suite.products.InsertProduct(ctx, product)
		require.NoError(t, err)
	}

	const pairs = 5

	// every pair lists the same products in opposite order
	var orderIDs []uuid.UUID
	for i := 0; i < pairs; i++ {
		for _, ids := range [][]uuid.UUID{productIDs, {productIDs[1], productIDs[0]}} {
			order := randomOrder(suite.userID)
			order.Items = lo.Map(ids, func(productID uuid.UUID, _ int) domain.OrderItem {
				item := randomOrderItem(order.TotalPrice.Currency)
				item.ProductID = productID
				item.Quantity = 1
				return item
			})

			orderID, err := suite.repo.InsertOrder(ctx, order)
			require.NoError(t, err)
			orderIDs = append(orderIDs, orderID)
		}
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(orderIDs))

	for _, orderID := range orderIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			transition, err := suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, time.Now())
			if err == nil && !slices.IsSortedFunc(transition.Stock, func(a, b domain.StockAdjustment) int {
				return strings.Compare(a.ProductID.String(), b.ProductID.String())
			}) {
				err = errors.New("stock adjustments are not ordered by product")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	for _, productID := range productIDs {
		stored, err := suite.products.GetProduct(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, int32(100-2*pairs), stored.Stock)
	}
}

func (suite *orderRepositorySuite) TestShipMergesRepeatedProduct() {
	t := suite.T()
	ctx := t.Context()

	product := randomProduct()
	product.Stock = 10
	productID, err := suite.products.InsertProduct(ctx, product)
	require.NoError(t, err)

	order := randomOrder(suite.userID)
	first := randomOrderItem(order.TotalPrice.Currency)
	first.ProductID = productID
	first.Quantity = 2
	second := randomOrderItem(order.TotalPrice.Currency)
	second.ProductID = productID
	second.Quantity = 3
	order.Items = []domain.OrderItem{first, second}

	orderID, err := suite.repo.InsertOrder(ctx, order)
	require.NoError(t, err)

	transition, err := suite.repo.TransitionOrder(ctx, orderID, domain.OrderStatusShipped, time.Now())
	require.NoError(t, err)

	assert.Equal(t, []domain.StockAdjustment{
		{ProductID: productID, Quantity: 5, Result: domain.StockDecremented},
	}, transition.Stock)
	// the order keeps both line items
	assert.Len(t, transition.Order.Items, 2)

	stored, err := suite.products.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int32(5), stored.Stock)
}

func (suite *orderRepositorySuite) TestSearchOrders() {
	t := suite.T()
	ctx := t.Context()

	otherUserID, err := suite.users.InsertUser(ctx, randomUser())
	require.NoError(t, err)

	order1 := randomOrder(suite.userID)
	order2 := randomOrder(suite.userID)
	order3 := randomOrder(otherUserID)

	ids := suite.insertOrders(order1, order2, order3)

	_, err = suite.repo.TransitionOrder(ctx, ids[1], domain.OrderStatusShipped, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name      string
		filter    domain.OrderFilter
		wantIDs   []uuid.UUID
		wantError string
	}{
		{
			name:    "by user: ok",
			filter:  domain.OrderFilter{UserIDs: []uuid.UUID{suite.userID}},
			wantIDs: []uuid.UUID{ids[1], ids[0]},
		},
		{
			name:    "by status: ok",
			filter:  domain.OrderFilter{Statuses: []domain.OrderStatus{domain.OrderStatusProcessing}},
			wantIDs: []uuid.UUID{ids[2], ids[0]},
		},
		{
			name: "by user and status: ok",
			filter: domain.OrderFilter{
				UserIDs:  []uuid.UUID{suite.userID},
				Statuses: []domain.OrderStatus{domain.OrderStatusShipped},
			},
			wantIDs: []uuid.UUID{ids[1]},
		},
		{
			name:    "by ids: ok",
			filter:  domain.OrderFilter{IDs: []uuid.UUID{ids[0], ids[2]}},
			wantIDs: []uuid.UUID{ids[2], ids[0]},
		},
		{
			name: "created in the future: empty",
			filter: domain.OrderFilter{CreatedAt: &domain.TimeRange{
				After: lo.ToPtr(time.Now().Add(time.Hour)),
			}},
		},
		{
			name:      "empty filter: error",
			filter:    domain.OrderFilter{},
			wantError: "filter.Validate: all fields are empty",
		},
		{
			name:      "unknown status: error",
			filter:    domain.OrderFilter{Statuses: []domain.OrderStatus{"Lost"}},
			wantError: "filter.Validate: status[Lost]: invalid order status",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			orders, err := suite.repo.SearchOrders(t.Context(), tt.filter)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// newest first
			actualIDs := lo.Map(orders, func(o domain.Order, _ int) uuid.UUID { return o.ID })
			assert.Equal(t, tt.wantIDs, nilIfEmpty(actualIDs))
		})
	}

	byUser, err := suite.repo.SearchOrders(ctx, domain.OrderFilter{IDs: []uuid.UUID{ids[0]}})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assertOrder(t, order1, byUser[0])

	all, err := suite.repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func (suite *orderRepositorySuite) TestDeleteOrder() {
	t := suite.T()
	ctx := t.Context()

	orderID, err := suite.repo.InsertOrder(ctx, randomOrder(suite.userID))
	require.NoError(t, err)

	require.NoError(t, suite.repo.DeleteOrder(ctx, orderID))

	_, err = suite.repo.GetOrder(ctx, orderID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)

	var items int
	require.NoError(t, suite.pool.QueryRow(ctx, "SELECT count(*) FROM order_items WHERE order_id = $1", orderID).Scan(&items))
	assert.Zero(t, items)

	err = suite.repo.DeleteOrder(ctx, orderID)
	require.EqualError(t, err, "q.DeleteOrder: order not found")

	err = suite.repo.DeleteOrder(ctx, uuid.Nil)
	require.EqualError(t, err, "orderID is empty")
}

func (suite *orderRepositorySuite) TestNewOrderWithTx() {
	t := suite.T()
	ctx := t.Context()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txRepo := repository.NewOrderWithTx(tx)

	orderID, err := txRepo.InsertOrder(ctx, randomOrder(suite.userID))
	require.NoError(t, err)

	_, err = txRepo.GetOrder(ctx, orderID)
	require.NoError(t, err)

	require.NoError(t, tx.Rollback(ctx))

	_, err = suite.repo.GetOrder(ctx, orderID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func (suite *orderRepositorySuite) insertOrders(orders ...domain.Order) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(orders))

	for _, order := range orders {
		id, err := suite.repo.InsertOrder(suite.T().Context(), order)
		suite.Require().NoError(err)
		ids = append(ids, id)
	}

	return ids
}

func nilIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
