package domain

import (
	"errors"
	"fmt"
)

type OrderStatus string

// remember to add new statuses to the validOrderStatuses map
const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusDelivered:  {},
}

// allowed edges of the lifecycle, Delivered has none
var orderTransitions = map[OrderStatus]OrderStatus{
	OrderStatusProcessing: OrderStatusShipped,
	OrderStatusShipped:    OrderStatusDelivered,
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid order status")
}

func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered
}

// CheckTransition returns nil when an order in status s may move to target.
func (s OrderStatus) CheckTransition(target OrderStatus) error {
	if s.IsTerminal() {
		return ErrAlreadyDelivered
	}

	if next, ok := orderTransitions[s]; !ok || next != target {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, s, target)
	}

	return nil
}
