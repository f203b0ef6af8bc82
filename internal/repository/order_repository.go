package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/db"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"github.com/samber/lo"
	"golang.org/x/text/currency"
)

type orderRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewOrder(pool *pgxpool.Pool) (port.OrderRepository, error) {
	if pool == nil {
		return nil, errors.New("pool is nil")
	}

	return &orderRepository{
		q:    db.New(pool),
		dbtx: pool,
	}, nil
}

func NewOrderWithTx(tx pgx.Tx) port.OrderRepository {
	return &orderRepository{
		q:    db.New(tx),
		dbtx: tx, // use provided transaction instead
	}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.OrderDetails, error) {
	var o domain.OrderDetails

	details, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.OrderDetails, error) {
		dbOrder, err := q.GetOrder(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return o, fmt.Errorf("q.GetOrder: %w", domain.ErrOrderNotFound)
			}
			return o, fmt.Errorf("q.GetOrder: %w", err)
		}

		dbOrderItems, err := q.GetOrderItems(ctx, orderID)
		if err != nil {
			return o, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		items, err := mapGetOrderItemsRowsToDomain(dbOrderItems)
		if err != nil {
			return o, fmt.Errorf("mapGetOrderItemsRowsToDomain: %w", err)
		}

		order, err := mapDBOrderToDomain(getOrderRowToDBOrder(dbOrder), items)
		if err != nil {
			return o, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		return domain.OrderDetails{
			Order: order,
			Owner: domain.OrderOwner{Name: dbOrder.UserName, Email: dbOrder.UserEmail},
		}, nil
	})
	if err != nil {
		return o, fmt.Errorf("withTx: %w", err)
	}

	return details, nil
}

func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, errors.New("no items in order")
	}

	shippingInfo, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal: %w", err)
	}

	orderID, err := withTx(ctx, r.dbtx, func(q *db.Queries) (uuid.UUID, error) {
		orderID, err := q.InsertOrder(ctx, db.InsertOrderParams{
			OrderNumber:   order.OrderNumber,
			UserID:        order.UserID,
			ShippingInfo:  shippingInfo,
			PaymentRef:    order.PaymentInfo.ID,
			PaymentStatus: order.PaymentInfo.Status,
			TotalAmount:   order.TotalPrice.Amount,
			TotalCurrency: order.TotalPrice.Currency.String(),
			PaidAt:        order.PaidAt,
		})
		if err != nil {
			return uuid.Nil, fmt.Errorf("q.InsertOrder: %w", mapConstraintViolation(err))
		}

		for idx, item := range order.Items {
			arg := db.InsertOrderItemParams{
				OrderID:       orderID,
				Position:      int32(idx),
				ProductID:     item.ProductID,
				Name:          item.Name,
				Quantity:      item.Quantity,
				PriceAmount:   item.Price.Amount,
				PriceCurrency: item.Price.Currency.String(),
				Image:         item.Image,
			}
			if err := q.InsertOrderItem(ctx, arg); err != nil {
				return uuid.Nil, fmt.Errorf("q.InsertOrderItem: %w", err)
			}
		}

		return orderID, nil
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("withTx: %w", err)
	}

	return orderID, nil
}

func mapDomainOrderFilterToDBFilter(filter domain.OrderFilter) db.SearchOrdersParams {
	statuses := lo.Map(filter.Statuses, func(s domain.OrderStatus, _ int) string {
		return string(s)
	})

	var createdAfter, createdBefore *time.Time

	if filter.CreatedAt != nil {
		createdAfter = filter.CreatedAt.After
		createdBefore = filter.CreatedAt.Before
	}

	return db.SearchOrdersParams{
		Ids:           nilSliceIfEmpty(filter.IDs),
		UserIds:       nilSliceIfEmpty(filter.UserIDs),
		Statuses:      nilSliceIfEmpty(statuses),
		CreatedAfter:  createdAfter,
		CreatedBefore: createdBefore,
	}
}

func (r *orderRepository) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("filter.Validate: %w", err)
	}

	return r.searchOrders(ctx, mapDomainOrderFilterToDBFilter(filter))
}

func (r *orderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return r.searchOrders(ctx, db.SearchOrdersParams{})
}

func (r *orderRepository) searchOrders(ctx context.Context, arg db.SearchOrdersParams) ([]domain.Order, error) {
	dbOrders, err := r.q.SearchOrders(ctx, arg)
	if err != nil {
		return nil, fmt.Errorf("q.SearchOrders: %w", err)
	}

	// rows come one per item, newest order first; keep that order while grouping
	var orders []domain.Order
	positions := make(map[uuid.UUID]int)

	for _, row := range dbOrders {
		pos, exists := positions[row.ID]
		if !exists {
			order, err := mapDBOrderToDomain(searchOrdersRowToDBOrder(row), nil)
			if err != nil {
				return nil, fmt.Errorf("mapDBOrderToDomain: %w", err)
			}
			orders = append(orders, order)
			pos = len(orders) - 1
			positions[row.ID] = pos
		}

		item, err := mapSearchOrdersRowToDomainOrderItem(row)
		if err != nil {
			return nil, fmt.Errorf("mapSearchOrdersRowToDomainOrderItem: %w", err)
		}

		orders[pos].Items = append(orders[pos].Items, item)
	}

	return orders, nil
}

func (r *orderRepository) TransitionOrder(ctx context.Context, orderID uuid.UUID, target domain.OrderStatus, at time.Time) (domain.Transition, error) {
	var t domain.Transition

	if orderID == uuid.Nil {
		return t, fmt.Errorf("orderID is empty")
	}

	if _, err := domain.ToOrderStatus(string(target)); err != nil {
		return t, fmt.Errorf("domain.ToOrderStatus[%s]: %w", target, err)
	}

	transition, err := withTx(ctx, r.dbtx, func(q *db.Queries) (domain.Transition, error) {
		dbOrder, err := q.GetOrderForUpdate(ctx, orderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return t, fmt.Errorf("q.GetOrderForUpdate: %w", domain.ErrOrderNotFound)
			}
			return t, fmt.Errorf("q.GetOrderForUpdate: %w", err)
		}

		current, err := domain.ToOrderStatus(dbOrder.Status)
		if err != nil {
			return t, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
		}

		if err := current.CheckTransition(target); err != nil {
			return t, err
		}

		dbOrderItems, err := q.GetOrderItems(ctx, orderID)
		if err != nil {
			return t, fmt.Errorf("q.GetOrderItems: %w", err)
		}

		items, err := mapGetOrderItemsRowsToDomain(dbOrderItems)
		if err != nil {
			return t, fmt.Errorf("mapGetOrderItemsRowsToDomain: %w", err)
		}

		arg := db.UpdateOrderStatusParams{
			ID:     orderID,
			Status: string(target),
		}

		var adjustments []domain.StockAdjustment

		switch target {
		case domain.OrderStatusShipped:
			arg.ShippedAt = lo.ToPtr(at)

			adjustments, err = decrementItemsStock(ctx, q, items)
			if err != nil {
				return t, fmt.Errorf("decrementItemsStock: %w", err)
			}
		case domain.OrderStatusDelivered:
			arg.DeliveredAt = lo.ToPtr(at)
		}

		cmdTag, err := q.UpdateOrderStatus(ctx, arg)
		if err != nil {
			return t, fmt.Errorf("q.UpdateOrderStatus: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return t, fmt.Errorf("q.UpdateOrderStatus: %w", domain.ErrOrderNotFound)
		}

		order, err := mapDBOrderToDomain(dbOrder, items)
		if err != nil {
			return t, fmt.Errorf("mapDBOrderToDomain: %w", err)
		}

		order.Status = target
		order.UpdatedAt = at
		if arg.ShippedAt != nil {
			order.ShippedAt = arg.ShippedAt
		}
		if arg.DeliveredAt != nil {
			order.DeliveredAt = arg.DeliveredAt
		}

		return domain.Transition{
			From:  current,
			Order: order,
			Stock: adjustments,
		}, nil
	})
	if err != nil {
		return t, fmt.Errorf("withTx: %w", err)
	}

	return transition, nil
}

func (r *orderRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return fmt.Errorf("orderID is empty")
	}

	// order_items rows go with the order through ON DELETE CASCADE
	cmdTag, err := r.q.DeleteOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("q.DeleteOrder: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteOrder: %w", domain.ErrOrderNotFound)
	}

	return nil
}

func getOrderRowToDBOrder(row db.GetOrderRow) db.Order {
	return db.Order{
		ID:            row.ID,
		OrderNumber:   row.OrderNumber,
		UserID:        row.UserID,
		ShippingInfo:  row.ShippingInfo,
		PaymentRef:    row.PaymentRef,
		PaymentStatus: row.PaymentStatus,
		TotalAmount:   row.TotalAmount,
		TotalCurrency: row.TotalCurrency,
		Status:        row.Status,
		PaidAt:        row.PaidAt,
		ShippedAt:     row.ShippedAt,
		DeliveredAt:   row.DeliveredAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func searchOrdersRowToDBOrder(row db.SearchOrdersRow) db.Order {
	return db.Order{
		ID:            row.ID,
		OrderNumber:   row.OrderNumber,
		UserID:        row.UserID,
		ShippingInfo:  row.ShippingInfo,
		PaymentRef:    row.PaymentRef,
		PaymentStatus: row.PaymentStatus,
		TotalAmount:   row.TotalAmount,
		TotalCurrency: row.TotalCurrency,
		Status:        row.Status,
		PaidAt:        row.PaidAt,
		ShippedAt:     row.ShippedAt,
		DeliveredAt:   row.DeliveredAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func mapDBOrderToDomain(dbOrder db.Order, items []domain.OrderItem) (domain.Order, error) {
	var o domain.Order

	totalCurrency, err := currency.ParseISO(dbOrder.TotalCurrency)
	if err != nil {
		return o, fmt.Errorf("currency[%s] is not valid: %w", dbOrder.TotalCurrency, err)
	}

	status, err := domain.ToOrderStatus(dbOrder.Status)
	if err != nil {
		return o, fmt.Errorf("domain.ToOrderStatus[%s]: %w", dbOrder.Status, err)
	}

	var shippingInfo domain.ShippingInfo
	if err := json.Unmarshal(dbOrder.ShippingInfo, &shippingInfo); err != nil {
		return o, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return domain.Order{
		ID:           dbOrder.ID,
		OrderNumber:  dbOrder.OrderNumber,
		UserID:       dbOrder.UserID,
		ShippingInfo: shippingInfo,
		Items:        items,
		PaymentInfo: domain.PaymentInfo{
			ID:     dbOrder.PaymentRef,
			Status: dbOrder.PaymentStatus,
		},
		TotalPrice:  domain.Money{Amount: dbOrder.TotalAmount, Currency: totalCurrency},
		Status:      status,
		PaidAt:      dbOrder.PaidAt,
		ShippedAt:   dbOrder.ShippedAt,
		DeliveredAt: dbOrder.DeliveredAt,
		CreatedAt:   dbOrder.CreatedAt,
		UpdatedAt:   dbOrder.UpdatedAt,
	}, nil
}

func mapGetOrderItemsRowToDomain(row db.GetOrderItemsRow) (domain.OrderItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.OrderItem{
		ProductID: row.ProductID,
		Name:      row.Name,
		Quantity:  row.Quantity,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image:     row.Image,
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapGetOrderItemsRowsToDomain(rows []db.GetOrderItemsRow) ([]domain.OrderItem, error) {
	var items []domain.OrderItem

	for _, row := range rows {
		item, err := mapGetOrderItemsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetOrderItemsRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func mapSearchOrdersRowToDomainOrderItem(row db.SearchOrdersRow) (domain.OrderItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	return domain.OrderItem{
		ProductID: row.ProductID,
		Name:      row.Name,
		Quantity:  row.Quantity,
		Price:     domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Image:     row.Image,
	}, nil
}

func nilSliceIfEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}
