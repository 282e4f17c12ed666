package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the two session token records held at the gateway.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access_token"
	TokenKindRefresh TokenKind = "refresh_token"
)

// SessionRepository is the gateway-side session store. Revoke is idempotent:
// revoking a token that does not exist is not an error.
type SessionRepository interface {
	Store(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, kind TokenKind, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, kind TokenKind, tokenID string) error
}
