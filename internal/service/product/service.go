package product

import (
	"context"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	productrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete permanently removes a product. Admin gating happens at the HTTP
// layer.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
