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
	"github.com/samber/lo"
)

type propertyRepository struct {
	q *db.Queries
}

func NewProperty(pool *pgxpool.Pool) port.PropertyRepository {
	return &propertyRepository{
		q: db.New(pool),
	}
}

func (r *propertyRepository) GetProperty(ctx context.Context, propertyID uuid.UUID) (domain.Property, error) {
	dbProperty, err := r.q.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, fmt.Errorf("q.GetProperty: %w", domain.ErrPropertyNotFound)
		}
		return domain.Property{}, fmt.Errorf("q.GetProperty: %w", err)
	}

	return mapDBPropertyToDomain(dbProperty), nil
}

func (r *propertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	dbProperties, err := r.q.ListProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProperties: %w", err)
	}

	return lo.Map(dbProperties, func(p db.Property, _ int) domain.Property {
		return mapDBPropertyToDomain(p)
	}), nil
}

func (r *propertyRepository) InsertProperty(ctx context.Context, property domain.Property) (uuid.UUID, error) {
	if err := property.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("property.Validate: %w", err)
	}

	propertyID, err := r.q.InsertProperty(ctx, db.InsertPropertyParams{
		Name:      property.Name,
		Images:    property.Images,
		Price:     property.Price,
		Profit:    property.Profit,
		Returns:   property.Returns,
		Investors: property.Investors,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertProperty: %w", err)
	}

	return propertyID, nil
}

func mapDBPropertyToDomain(p db.Property) domain.Property {
	return domain.Property{
		ID:        p.ID,
		Name:      p.Name,
		Images:    p.Images,
		Price:     p.Price,
		Profit:    p.Profit,
		Returns:   p.Returns,
		Investors: p.Investors,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
