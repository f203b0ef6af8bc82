package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID           uuid.UUID
	OrderNumber  string
	UserID       uuid.UUID
	ShippingInfo ShippingInfo
	Items        []OrderItem
	PaymentInfo  PaymentInfo
	TotalPrice   Money
	Status       OrderStatus

	PaidAt      time.Time
	ShippedAt   *time.Time
	DeliveredAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem is a purchase-time snapshot, it is never re-read from the catalog.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int32
	Price     Money
	Image     string

	CreatedAt time.Time
}

type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	PinCode string `json:"pinCode"`
	PhoneNo string `json:"phoneNo"`
}

// PaymentInfo references the payment transaction, ID is unique across orders.
type PaymentInfo struct {
	ID     string
	Status string
}

// OrderOwner is the user summary resolved alongside a single order.
type OrderOwner struct {
	Name  string
	Email string
}

type OrderDetails struct {
	Order
	Owner OrderOwner
}

// Validate checks a new order before it is persisted.
func (o Order) Validate() error {
	if strings.TrimSpace(o.OrderNumber) == "" {
		return validationError("orderNumber is required")
	}
	if o.UserID == uuid.Nil {
		return validationError("user is required")
	}
	if strings.TrimSpace(o.PaymentInfo.ID) == "" {
		return validationError("paymentInfo.id is required")
	}
	if strings.TrimSpace(o.ShippingInfo.Address) == "" {
		return validationError("shippingInfo.address is required")
	}
	if len(o.Items) == 0 {
		return validationError("no items in order")
	}
	if o.TotalPrice.Amount.IsNegative() {
		return validationError("totalPrice must not be negative")
	}

	for i, item := range o.Items {
		if item.ProductID == uuid.Nil {
			return validationError("orderItems[%d].product is required", i)
		}
		if item.Quantity <= 0 {
			return validationError("orderItems[%d].quantity must be positive", i)
		}
		if item.Price.Amount.IsNegative() {
			return validationError("orderItems[%d].price must not be negative", i)
		}
		if !item.Price.SameCurrency(o.TotalPrice) {
			return validationError("orderItems[%d].price currency differs from totalPrice", i)
		}
	}

	return nil
}

// SumTotals adds up TotalPrice amounts regardless of currency.
func SumTotals(orders []Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice.Amount)
	}
	return total
}
