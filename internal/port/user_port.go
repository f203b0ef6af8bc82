package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	InsertUser(ctx context.Context, user domain.User) (uuid.UUID, error)

	// DeleteUser fails with ErrUserHasOrders while orders still reference the user.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
