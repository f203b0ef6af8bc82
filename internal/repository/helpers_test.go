package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("marketplace"),
		postgres.WithUsername("marketplace"),
		postgres.WithPassword("marketplace"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, "", fmt.Errorf("container.ConnectionString: %w", err)
	}

	return container, connStr, nil
}

// newMigratedPool starts a container and applies the embedded schema to it.
func newMigratedPool(ctx context.Context) (testcontainers.Container, *pgxpool.Pool, error) {
	container, connStr, err := startPostgres(ctx)
	if err != nil {
		return container, nil, fmt.Errorf("startPostgres: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return container, nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	if err := repository.Migrate(ctx, pool); err != nil {
		return container, pool, fmt.Errorf("repository.Migrate: %w", err)
	}

	// second run must be a no-op
	if err := repository.Migrate(ctx, pool); err != nil {
		return container, pool, fmt.Errorf("repository.Migrate again: %w", err)
	}

	return container, pool, nil
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE order_items, orders, products, properties, users CASCADE")
	return err
}

func randomUser() domain.User {
	return domain.User{
		Name:         gofakeit.Name(),
		Email:        gofakeit.UUID() + "@" + gofakeit.DomainName(),
		PasswordHash: gofakeit.Password(true, true, true, false, false, 60),
		Role:         domain.RoleUser,
		Avatar: domain.Avatar{
			PublicID: gofakeit.UUID(),
			URL:      gofakeit.URL(),
		},
	}
}

func randomProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.ProductDescription(),
		Price:       randomMoney(randomCurrency()),
		Stock:       int32(gofakeit.Number(10, 100)),
		Category:    gofakeit.ProductCategory(),
	}
}

func randomProperty() domain.Property {
	return domain.Property{
		Name:      gofakeit.Street(),
		Images:    []string{gofakeit.URL(), gofakeit.URL()},
		Price:     decimal.NewFromFloat(gofakeit.Price(10000, 900000)).Round(2),
		Profit:    decimal.NewFromFloat(gofakeit.Price(100, 9000)).Round(2),
		Returns:   decimal.NewFromFloat(gofakeit.Price(1, 20)).Round(2),
		Investors: int32(gofakeit.Number(0, 50)),
	}
}

func randomOrder(userID uuid.UUID) domain.Order {
	currencyUnit := randomCurrency() // it has to be the same for all items
	orderAmount := decimal.Zero

	var items []domain.OrderItem
	for i := 0; i < gofakeit.Number(1, 5); i++ {
		orderItem := randomOrderItem(currencyUnit)
		orderAmount = orderAmount.Add(orderItem.Price.Amount.Mul(decimal.NewFromInt32(orderItem.Quantity)))
		items = append(items, orderItem)
	}

	return domain.Order{
		OrderNumber: "ORD-" + gofakeit.DigitN(10),
		UserID:      userID,
		ShippingInfo: domain.ShippingInfo{
			Address: gofakeit.Street(),
			City:    gofakeit.City(),
			State:   gofakeit.State(),
			Country: gofakeit.Country(),
			PinCode: gofakeit.Zip(),
			PhoneNo: gofakeit.Phone(),
		},
		Items: items,
		PaymentInfo: domain.PaymentInfo{
			ID:     "pi_" + gofakeit.UUID(),
			Status: "succeeded",
		},
		TotalPrice: domain.Money{
			Amount:   orderAmount,
			Currency: currencyUnit,
		},
		Status: domain.OrderStatusProcessing,
		PaidAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func randomOrderItem(currencyUnit currency.Unit) domain.OrderItem {
	return domain.OrderItem{
		ProductID: uuid.MustParse(gofakeit.UUID()),
		Name:      gofakeit.ProductName(),
		Quantity:  int32(gofakeit.Number(1, 5)),
		Price:     randomMoney(currencyUnit),
		Image:     gofakeit.URL(),
	}
}

func randomMoney(currencyUnit currency.Unit) domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: currencyUnit,
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func assertOrder(t *testing.T, expected, actual domain.Order) {
	t.Helper()

	// Ignore generated fields and treat empty slices as equal to nil
	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.OrderItem{}, "CreatedAt"),
		cmpopts.IgnoreFields(domain.Order{}, "CreatedAt", "UpdatedAt", "ID"),
		cmpopts.EquateEmpty(),
		currencyComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
	assert.False(t, actual.UpdatedAt.IsZero())
	assert.NotEqual(t, uuid.Nil, actual.ID)
}
