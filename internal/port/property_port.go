package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
)

type PropertyRepository interface {
	GetProperty(ctx context.Context, propertyID uuid.UUID) (domain.Property, error)
	ListProperties(ctx context.Context) ([]domain.Property, error)

	InsertProperty(ctx context.Context, property domain.Property) (uuid.UUID, error)
}
