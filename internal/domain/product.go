package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       Money
	Stock       int32
	Category    string
	OwnerID     *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return validationError("product name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		return validationError("product category is required")
	}
	if p.Price.Amount.IsNegative() {
		return validationError("product price must not be negative")
	}
	if p.Stock < 0 {
		return validationError("product stock must not be negative")
	}
	return nil
}
