package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Property is an investment listing, unrelated to orders.
type Property struct {
	ID        uuid.UUID
	Name      string
	Images    []string
	Price     decimal.Decimal
	Profit    decimal.Decimal
	Returns   decimal.Decimal
	Investors int32

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Property) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationError("property name is required")
	}
	if len(p.Images) == 0 {
		return validationError("property needs at least one image")
	}
	if p.Investors < 0 {
		return validationError("investors must not be negative")
	}
	return nil
}
