package cartstore

import (
	"context"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
)

// Storage persists the cart so a reload does not empty it. Implementations
// scope the cart to one storefront session.
type Storage interface {
	Load(ctx context.Context) ([]domain.CartItem, error)
	Save(ctx context.Context, items []domain.CartItem) error
	Clear(ctx context.Context) error
}
