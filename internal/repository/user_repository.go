package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/marketplace/internal/db"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"github.com/samber/lo"
)

type userRepository struct {
	q *db.Queries
}

func NewUser(pool *pgxpool.Pool) port.UserRepository {
	return &userRepository{
		q: db.New(pool),
	}
}

func (r *userRepository) GetUser(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	var u domain.User

	dbUser, err := r.q.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, fmt.Errorf("q.GetUser: %w", domain.ErrUserNotFound)
		}
		return u, fmt.Errorf("q.GetUser: %w", err)
	}

	user, err := mapDBUserToDomain(dbUser)
	if err != nil {
		return u, fmt.Errorf("mapDBUserToDomain: %w", err)
	}

	return user, nil
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User

	dbUser, err := r.q.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return u, fmt.Errorf("q.GetUserByEmail: %w", domain.ErrUserNotFound)
		}
		return u, fmt.Errorf("q.GetUserByEmail: %w", err)
	}

	user, err := mapDBUserToDomain(dbUser)
	if err != nil {
		return u, fmt.Errorf("mapDBUserToDomain: %w", err)
	}

	return user, nil
}

func (r *userRepository) InsertUser(ctx context.Context, user domain.User) (uuid.UUID, error) {
	if user.PasswordHash == "" {
		return uuid.Nil, errors.New("password hash is empty")
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	userID, err := r.q.InsertUser(ctx, db.InsertUserParams{
		Name:           user.Name,
		Email:          strings.TrimSpace(user.Email),
		PasswordHash:   user.PasswordHash,
		Role:           string(role),
		AvatarPublicID: lo.EmptyableToPtr(user.Avatar.PublicID),
		AvatarUrl:      lo.EmptyableToPtr(user.Avatar.URL),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("q.InsertUser: %w", mapConstraintViolation(err))
	}

	return userID, nil
}

func mapDBUserToDomain(dbUser db.User) (domain.User, error) {
	role, err := domain.ToRole(dbUser.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("domain.ToRole[%s]: %w", dbUser.Role, err)
	}

	return domain.User{
		ID:           dbUser.ID,
		Name:         dbUser.Name,
		Email:        dbUser.Email,
		PasswordHash: dbUser.PasswordHash,
		Role:         role,
		Avatar: domain.Avatar{
			PublicID: lo.FromPtr(dbUser.AvatarPublicID),
			URL:      lo.FromPtr(dbUser.AvatarUrl),
		},
		CreatedAt: dbUser.CreatedAt,
	}, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.New("userID is empty")
	}

	// owned products keep their rows, owner_id is set to NULL
	cmdTag, err := r.q.DeleteUser(ctx, userID)
	if err != nil {
		// orders have no ON DELETE action, they block the delete
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("q.DeleteUser: %w", domain.ErrUserHasOrders)
		}
		return fmt.Errorf("q.DeleteUser: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("q.DeleteUser: %w", domain.ErrUserNotFound)
	}

	return nil
}
