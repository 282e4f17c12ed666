package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "carenow/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// sessionRepository stores session tokens in Redis under
// "<kind>:<user_id>:<token_id>" with the token's remaining lifetime as TTL.
type sessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{client: client}
}

func (r *sessionRepository) Store(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	key := fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
	return r.client.Set(ctx, key, "valid", ttl).Err()
}

func (r *sessionRepository) Exists(ctx context.Context, kind domainRepo.TokenKind, userID uuid.UUID, tokenID string) (bool, error) {
	key := fmt.Sprintf("%s:%s:%s", kind, userID.String(), tokenID)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, kind domainRepo.TokenKind, tokenID string) error {
	if tokenID == "" {
		return nil
	}

	pattern := fmt.Sprintf("%s:*:%s", kind, tokenID)
	keys, err := r.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
