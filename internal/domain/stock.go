package domain

import "github.com/google/uuid"

type StockResult string

const (
	StockDecremented    StockResult = "decremented"
	StockSkippedMissing StockResult = "skipped_missing"
)

// StockAdjustment is the per-item outcome of shipping an order.
type StockAdjustment struct {
	ProductID uuid.UUID
	Quantity  int32
	Result    StockResult
}

// Transition is the result of a successful order status update.
type Transition struct {
	From  OrderStatus
	Order Order
	Stock []StockAdjustment
}

// Skipped returns the adjustments that did not touch the ledger.
func (t Transition) Skipped() []StockAdjustment {
	var skipped []StockAdjustment
	for _, adj := range t.Stock {
		if adj.Result != StockDecremented {
			skipped = append(skipped, adj)
		}
	}
	return skipped
}
