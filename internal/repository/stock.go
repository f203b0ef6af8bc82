package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/marketplace/internal/db"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/samber/lo"
)

// decrementStock subtracts quantity from a single product. Only stock and
// updated_at are written, other product fields are not re-validated.
func decrementStock(ctx context.Context, q *db.Queries, productID uuid.UUID, quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}

	cmdTag, err := q.DecrementProductStock(ctx, db.DecrementProductStockParams{
		Quantity: quantity,
		ID:       productID,
	})
	if err != nil {
		return fmt.Errorf("q.DecrementProductStock: %w", err)
	}

	if cmdTag.RowsAffected() > 0 {
		return nil
	}

	// nothing updated: either the product is gone or it has too little stock
	stock, err := q.GetProductStock(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("q.GetProductStock[%s]: %w", productID, domain.ErrProductNotFound)
		}
		return fmt.Errorf("q.GetProductStock: %w", err)
	}

	return fmt.Errorf("product[%s] stock %d, requested %d: %w", productID, stock, quantity, domain.ErrInsufficientStock)
}

// decrementItemsStock applies every item of a shipped order. Vanished products
// are skipped and reported, any other failure aborts the whole batch.
func decrementItemsStock(ctx context.Context, q *db.Queries, items []domain.OrderItem) ([]domain.StockAdjustment, error) {
	adjustments := lockOrdered(items)

	for i, adj := range adjustments {
		if err := decrementStock(ctx, q, adj.ProductID, adj.Quantity); err != nil {
			if !errors.Is(err, domain.ErrProductNotFound) {
				return nil, err
			}
			adjustments[i].Result = domain.StockSkippedMissing
		}
	}

	return adjustments, nil
}

// lockOrdered merges items of the same product and sorts them by product id.
// Concurrent shipments then take product row locks in the same order.
func lockOrdered(items []domain.OrderItem) []domain.StockAdjustment {
	quantities := make(map[uuid.UUID]int32, len(items))
	for _, item := range items {
		quantities[item.ProductID] += item.Quantity
	}

	adjustments := lo.MapToSlice(quantities, func(productID uuid.UUID, quantity int32) domain.StockAdjustment {
		return domain.StockAdjustment{
			ProductID: productID,
			Quantity:  quantity,
			Result:    domain.StockDecremented,
		}
	})

	slices.SortFunc(adjustments, func(a, b domain.StockAdjustment) int {
		return bytes.Compare(a.ProductID[:], b.ProductID[:])
	})

	return adjustments
}
