package token

import (
	"context"
	"time"
)

// Token is an opaque credential persisted server-side.
type Token struct {
	Token     string
	UserID    string
	Kind      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (Token, error)
	Delete(ctx context.Context, token string) error
}
