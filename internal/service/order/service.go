package order

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	orderrepo "github.com/aleksandar-ristic/StarterStore/internal/repository/order"
)

type Service struct {
	repo orderRepo
	now  func() time.Time
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time, result domain.PaymentResult) error
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// CreateInput is the checkout submission. Prices are not accepted from the
// client; the service derives them.
type CreateInput struct {
	Items           []domain.CartItem      `json:"orderItems"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, errors.New("no order items")
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, errors.New("payment method required")
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, ci := range in.Items {
		if ci.Qty <= 0 {
			return nil, errors.New("quantity must be positive")
		}
		items = append(items, domain.OrderItem{
			ProductID: ci.ProductID,
			Name:      ci.Name,
			Image:     ci.Image,
			Price:     ci.Price,
			Qty:       ci.Qty,
		})
	}

	pricing := derivePricing(items)
	return s.repo.Create(ctx, orderrepo.CreateOrderInput{
		UserID:          userID,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		ItemsPrice:      pricing.ItemsPrice,
		ShippingPrice:   pricing.ShippingPrice,
		TaxPrice:        pricing.TaxPrice,
		TotalPrice:      pricing.TotalPrice,
	})
}

// Get returns the order when the requester owns it or is an admin. Foreign
// orders are indistinguishable from missing ones.
func (s *Service) Get(ctx context.Context, requester *domain.User, id string) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if requester == nil || (o.UserID != requester.ID && !requester.IsAdmin) {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// ListMine returns the requester's orders, newest first, without items.
func (s *Service) ListMine(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Pay records the gateway result and stamps paidAt with the server clock.
func (s *Service) Pay(ctx context.Context, requester *domain.User, id string, result domain.PaymentResult) (*domain.Order, error) {
	if _, err := s.Get(ctx, requester, id); err != nil {
		return nil, err
	}
	if err := s.repo.MarkPaid(ctx, id, s.now().UTC(), result); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Deliver stamps deliveredAt with the server clock. Admin gating happens at
// the HTTP layer; whether the order is paid is gated at the view layer.
func (s *Service) Deliver(ctx context.Context, id string) (*domain.Order, error) {
	if err := s.repo.MarkDelivered(ctx, id, s.now().UTC()); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
