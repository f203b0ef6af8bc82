package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/port"
	"golang.org/x/sync/singleflight"
)

// lookupTimeout bounds a shared lookup once it no longer follows any caller's context.
const lookupTimeout = 5 * time.Second

type Resolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

// Gate turns a session token into the calling user.
type Gate struct {
	sessions Resolver
	users    port.UserRepository

	// concurrent requests carrying the same token share one lookup
	group singleflight.Group
}

func NewGate(sessions Resolver, users port.UserRepository) (*Gate, error) {
	if sessions == nil {
		return nil, errors.New("sessions is nil")
	}
	if users == nil {
		return nil, errors.New("users is nil")
	}

	return &Gate{
		sessions: sessions,
		users:    users,
	}, nil
}

func (g *Gate) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, fmt.Errorf("%w: login first to access this resource", domain.ErrUnauthorized)
	}

	ch := g.group.DoChan(token, func() (any, error) {
		// the first caller may leave early, the others still wait on this lookup
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		return g.lookup(lookupCtx, token)
	})

	select {
	case <-ctx.Done():
		return domain.User{}, fmt.Errorf("authenticate: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.User{}, res.Err
		}
		return res.Val.(domain.User), nil
	}
}

func (g *Gate) lookup(ctx context.Context, token string) (domain.User, error) {
	userID, err := g.sessions.Resolve(ctx, token)
	if err != nil {
		return domain.User{}, fmt.Errorf("sessions.Resolve: %w", err)
	}

	user, err := g.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, fmt.Errorf("%w: session user no longer exists", domain.ErrUnauthorized)
		}
		return domain.User{}, fmt.Errorf("users.GetUser: %w", err)
	}

	return user, nil
}

// Authorize fails with ErrForbidden unless the user holds one of roles.
func Authorize(user domain.User, roles ...domain.Role) error {
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}

	return fmt.Errorf("%w: role[%s] is not allowed to access this resource", domain.ErrForbidden, user.Role)
}
