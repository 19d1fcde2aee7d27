package product

import (
	"context"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
