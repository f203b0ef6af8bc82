package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"github.com/samber/lo"
)

type CatalogService struct {
	products   port.ProductRepository
	properties port.PropertyRepository
}

func NewCatalogService(products port.ProductRepository, properties port.PropertyRepository) (*CatalogService, error) {
	if products == nil {
		return nil, errors.New("products is nil")
	}
	if properties == nil {
		return nil, errors.New("properties is nil")
	}

	return &CatalogService{
		products:   products,
		properties: properties,
	}, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product, ownerID uuid.UUID) (domain.Product, error) {
	if ownerID != uuid.Nil {
		product.OwnerID = lo.ToPtr(ownerID)
	}

	productID, err := s.products.InsertProduct(ctx, product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.InsertProduct: %w", err)
	}

	return s.GetProduct(ctx, productID)
}

func (s *CatalogService) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("products.GetProduct: %w", err)
	}

	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return products, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if err := s.products.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("products.UpdateProduct: %w", err)
	}

	return s.GetProduct(ctx, product.ID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}

	return nil
}

func (s *CatalogService) CreateProperty(ctx context.Context, property domain.Property) (domain.Property, error) {
	propertyID, err := s.properties.InsertProperty(ctx, property)
	if err != nil {
		return domain.Property{}, fmt.Errorf("properties.InsertProperty: %w", err)
	}

	created, err := s.properties.GetProperty(ctx, propertyID)
	if err != nil {
		return domain.Property{}, fmt.Errorf("properties.GetProperty: %w", err)
	}

	return created, nil
}

func (s *CatalogService) ListProperties(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.properties.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("properties.ListProperties: %w", err)
	}

	return properties, nil
}
