package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

var ErrSessionNotFound = fmt.Errorf("%w: session expired or unknown", domain.ErrUnauthorized)

// SessionStore keeps opaque session tokens in redis, each pointing at a user id.
type SessionStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewSessionStore(client redis.Cmdable, ttl time.Duration) (*SessionStore, error) {
	if client == nil {
		return nil, errors.New("client is nil")
	}
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}

	return &SessionStore{
		client: client,
		ttl:    ttl,
	}, nil
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", errors.New("userID is empty")
	}

	token := uuid.NewString()

	if err := s.client.Set(ctx, sessionKey(token), userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("client.Set: %w", err)
	}

	return token, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrSessionNotFound
	}

	value, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrSessionNotFound
		}
		return uuid.Nil, fmt.Errorf("client.Get: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uuid.Parse: %w", err)
	}

	return userID, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}
