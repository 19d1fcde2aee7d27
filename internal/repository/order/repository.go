package order

import (
	"context"
	"time"

	"github.com/aleksandar-ristic/StarterStore/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries everything needed to persist a new order. Prices
// are computed by the caller before hitting the repository.
type CreateOrderInput struct {
	UserID          string
	Items           []domain.OrderItem
	ShippingAddress domain.ShippingAddress
	PaymentMethod   string
	ItemsPrice      decimal.Decimal
	ShippingPrice   decimal.Decimal
	TaxPrice        decimal.Decimal
	TotalPrice      decimal.Decimal
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time, result domain.PaymentResult) error
	MarkDelivered(ctx context.Context, id string, deliveredAt time.Time) error
}
