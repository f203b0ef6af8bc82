package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete errors wrap exactly one kind so callers at the edge
// can classify with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrUpstream     = errors.New("upstream failure")
)

var (
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("property %w", ErrNotFound)

	ErrDuplicatePayment     = fmt.Errorf("%w: order already placed for this payment", ErrConflict)
	ErrDuplicateOrderNumber = fmt.Errorf("%w: order number already used", ErrConflict)
	ErrDuplicateEmail       = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrUserHasOrders        = fmt.Errorf("%w: user still has orders", ErrConflict)
	ErrAlreadyDelivered     = fmt.Errorf("%w: order already delivered", ErrConflict)
	ErrInvalidTransition    = fmt.Errorf("%w: invalid status transition", ErrConflict)
	ErrInsufficientStock    = fmt.Errorf("%w: insufficient stock", ErrConflict)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
