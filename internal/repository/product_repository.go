package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/db"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q    *db.Queries
	dbtx db.DBTX
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		dbtx: pool,
	}
}

func (r *productRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var p domain.Product

	dbProduct, err := r.q.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, fmt.Errorf("q.GetProduct: %w", domain.ErrProductNotFound)
		}
		return p, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapDBProductToDomain(dbProduct)
	if err != nil {
		return p, fmt.Errorf("mapDBProductToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	dbProducts, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(dbProducts))
	for _, dbProduct := range dbProducts {
		product, err := mapDBProductToDomain(dbProduct)
		if err != nil {
			return nil, fmt.Errorf("mapDBProductToDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	if err := product.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("product.Validate: %w", err)
	}

	productID, err := r.q.InsertProduct(ctx, db.InsertProductParams{
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         product.Stock,
		Category:      product.Category,
		OwnerID:       product.OwnerID,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertProduct: %w", mapConstraintViolation(err))
	}

	return productID, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	if product.ID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	if err := product.Validate(); err != nil {
		return fmt.Errorf("product.Validate: %w", err)
	}

	cmdTag, err := r.q.UpdateProduct(ctx, db.UpdateProductParams{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		PriceAmount:   product.Price.Amount,
		PriceCurrency: product.Price.Currency.String(),
		Stock:         product.Stock,
		Category:      product.Category,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.UpdateProduct: %w", domain.ErrProductNotFound)
	}

	return nil
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if productID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	cmdTag, err := r.q.DeleteProduct(ctx, productID)
	if err != nil {
		return fmt.Errorf("q.DeleteProduct: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteProduct: %w", domain.ErrProductNotFound)
	}

	return nil
}

func (r *productRepository) DecrementStock(ctx context.Context, productID uuid.UUID, quantity int32) error {
	if productID == uuid.Nil {
		return fmt.Errorf("productID is empty")
	}

	if err := withTxNoResult(ctx, r.dbtx, func(q *db.Queries) error {
		return decrementStock(ctx, q, productID, quantity)
	}); err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func mapDBProductToDomain(dbProduct db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(dbProduct.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", dbProduct.PriceCurrency, err)
	}

	return domain.Product{
		ID:          dbProduct.ID,
		Name:        dbProduct.Name,
		Description: dbProduct.Description,
		Price:       domain.Money{Amount: dbProduct.PriceAmount, Currency: parsedCurrency},
		Stock:       dbProduct.Stock,
		Category:    dbProduct.Category,
		OwnerID:     dbProduct.OwnerID,
		CreatedAt:   dbProduct.CreatedAt,
		UpdatedAt:   dbProduct.UpdatedAt,
	}, nil
}
